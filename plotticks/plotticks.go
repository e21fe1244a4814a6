// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotticks exposes a ticks.FormatterLocator as a
// gonum.org/v1/plot axis Ticker.
package plotticks // import "github.com/astrovis/go-skyticks/plotticks"

import (
	"gonum.org/v1/plot"

	"github.com/astrovis/go-skyticks/ticks"
)

// Ticker adapts FL to plot.Ticker. Every located tick is labeled, so
// gonum treats them all as major ticks.
type Ticker struct {
	FL ticks.FormatterLocator
}

var _ plot.Ticker = Ticker{}

func (t Ticker) Ticks(min, max float64) []plot.Tick {
	values, labels := t.FL.TickLabels(min, max)
	out := make([]plot.Tick, len(values))
	for i := range values {
		out[i] = plot.Tick{Value: values[i], Label: labels[i]}
	}
	return out
}
