// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/astrovis/go-skyticks/scale"
	"github.com/astrovis/go-skyticks/ticks"
)

// axisStyle controls tick and label rendering. labelH is the line
// height of a label in pixels, usually measured from the font.
type axisStyle struct {
	tickLen, textSep float64
	fontSize         float64
	labelH           float64
	tickColor        color.Color
	labelColor       color.Color
}

func (st *axisStyle) colors() (tick, label color.Color) {
	tick, label = st.tickColor, st.labelColor
	if tick == nil {
		tick = color.Black
	}
	if label == nil {
		label = color.Black
	}
	return
}

// drawX draws ticks and labels for fl along the horizontal axis at
// pixel row y. world maps world x coordinates to [0, 1] and out maps
// [0, 1] to pixel columns.
func (st *axisStyle) drawX(svg *SVG, fl ticks.FormatterLocator, min, max float64, world scale.Linear, out scale.OutputScale, y float64) {
	out.Crop()
	values, labels := fl.TickLabels(min, max)

	tickColor, labelColor := st.colors()
	svg.SetStroke(tickColor)
	svg.NewPath()
	for _, v := range values {
		if x, ok := out.Of(world.Of(v)); ok {
			svg.MoveTo(x, y)
			svg.LineToRel(0, -st.tickLen)
		}
	}
	svg.Stroke()
	svg.SetStroke(nil)

	svg.SetFill(labelColor)
	lOpts := TextOpts{Anchor: AnchorMiddle, FontSize: st.fontSize}
	for i, v := range values {
		if x, ok := out.Of(world.Of(v)); ok {
			svg.Text(x, y+st.textSep+st.labelH, lOpts, labels[i])
		}
	}
	svg.SetFill(nil)
}

// drawY draws ticks and labels for fl along the vertical axis at
// pixel column x, labels to the left.
func (st *axisStyle) drawY(svg *SVG, fl ticks.FormatterLocator, min, max float64, world scale.Linear, out scale.OutputScale, x float64) {
	out.Crop()
	values, labels := fl.TickLabels(min, max)

	tickColor, labelColor := st.colors()
	svg.SetStroke(tickColor)
	svg.NewPath()
	for _, v := range values {
		if y, ok := out.Of(world.Of(v)); ok {
			svg.MoveTo(x, y)
			svg.LineToRel(st.tickLen, 0)
		}
	}
	svg.Stroke()
	svg.SetStroke(nil)

	svg.SetFill(labelColor)
	lOpts := TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle, FontSize: st.fontSize}
	for i, v := range values {
		if y, ok := out.Of(world.Of(v)); ok {
			svg.Text(x-st.textSep, y, lOpts, labels[i])
		}
	}
	svg.SetFill(nil)
}
