// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command skyaxis renders a labeled axis pair to SVG.
//
// The x axis is angular and labeled by an AngleFormatterLocator; the
// y axis is a plain scalar axis. Exactly one of -values, -spacing and
// -number selects the x tick rule; the -format flag picks the label
// style, for example
//
//	skyaxis -xmin 0 -xmax 45 -format dd:mm -number 6 -o axis.svg
//	skyaxis -xmax 180 -format hh -spacing 30 -curve -ylog
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	moremath "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/golang/freetype"

	"github.com/astrovis/go-skyticks/angle"
	"github.com/astrovis/go-skyticks/scale"
	"github.com/astrovis/go-skyticks/ticks"
)

const fontSize = 12

func main() {
	var (
		flagOut     = flag.String("o", "axis.svg", "write SVG to `file`")
		flagWidth   = flag.Int("w", 800, "output width in pixels")
		flagHeight  = flag.Int("h", 360, "output height in pixels")
		flagXMin    = flag.Float64("xmin", 0, "x axis minimum in degrees")
		flagXMax    = flag.Float64("xmax", 45, "x axis maximum in degrees")
		flagYMin    = flag.Float64("ymin", 1, "y axis minimum")
		flagYMax    = flag.Float64("ymax", 1000, "y axis maximum")
		flagFormat  = flag.String("format", "", "x tick label `format` (dd:mm:ss.s, hh:mm, d.dd, ...)")
		flagYFormat = flag.String("yformat", "", "y tick label `format` (x, x.xx, ...)")
		flagNumber  = flag.Int("number", 0, "desired `number` of x ticks")
		flagSpacing = flag.Float64("spacing", 0, "fixed x tick spacing in `degrees`")
		flagValues  = flag.String("values", "", "comma-separated explicit x tick positions in degrees")
		flagFont    = flag.String("font", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "TTF `font` used for label metrics")
		flagCurve   = flag.Bool("curve", false, "draw a sample data curve")
		flagYLog    = flag.Bool("ylog", false, "map the sample curve through a log y scale")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	values, err := parseValues(*flagValues)
	if err != nil {
		log.Fatal(err)
	}
	xfl, err := ticks.NewAngle(ticks.AngleConfig{
		Values:  values,
		Count:   *flagNumber,
		Spacing: angle.Degrees(*flagSpacing),
		Format:  *flagFormat,
	})
	if err != nil {
		log.Fatal(err)
	}
	yfl, err := ticks.NewScalar(ticks.ScalarConfig{Format: *flagYFormat})
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	labelH := labelHeight(*flagFont, fontSize)

	// Plot rectangle with room for labels on the left and below.
	var (
		left   = 8 + 6*fontSize
		top    = 8
		right  = *flagWidth - 8
		bottom = *flagHeight - (8 + int(labelH) + 10)
	)

	svg := NewSVG(w, *flagWidth, *flagHeight)
	svg.SetStroke(color.Black)
	svg.Rect(float64(left), float64(top), float64(right-left), float64(bottom-top))
	svg.Stroke()
	svg.SetStroke(nil)

	xWorld := scale.NewLinear(*flagXMin, *flagXMax)
	xOut := scale.NewOutputScale(float64(left), float64(right))
	yWorld := scale.NewLinear(*flagYMin, *flagYMax)
	yOut := scale.NewOutputScale(float64(bottom), float64(top)) // y grows downward

	if *flagCurve {
		drawCurve(svg, *flagXMin, *flagXMax, *flagYMin, *flagYMax, *flagYLog, xWorld, xOut, yOut)
	}

	st := &axisStyle{tickLen: 6, textSep: 4, fontSize: fontSize, labelH: labelH}
	st.drawX(svg, xfl, *flagXMin, *flagXMax, xWorld, xOut, float64(bottom))
	st.drawY(svg, yfl, *flagYMin, *flagYMax, yWorld, yOut, float64(left))

	if err := svg.Done(); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *flagOut)
}

// drawCurve draws a synthetic data curve spanning the axis ranges,
// optionally mapped through a log y scale.
func drawCurve(svg *SVG, xmin, xmax, ymin, ymax float64, ylog bool, xWorld scale.Linear, xOut, yOut scale.OutputScale) {
	xs := vec.Linspace(xmin, xmax, 200)
	ys := vec.Map(func(x float64) float64 {
		t := xWorld.Of(x)
		return ymin + (ymax-ymin)*(0.5+0.5*math.Sin(2*math.Pi*t))*t
	}, xs)

	mapY := scale.NewLinear(ymin, ymax).Of
	if ylog {
		lg, err := moremath.NewLog(ymin, ymax, 10)
		if err != nil {
			log.Fatal(err)
		}
		mapY = lg.Map
	}

	yOut.Clamp()
	svg.SetStroke(color.RGBA{0x21, 0x66, 0xac, 0xff})
	svg.NewPath()
	first := true
	for i, x := range xs {
		px, ok1 := xOut.Of(xWorld.Of(x))
		py, ok2 := yOut.Of(mapY(ys[i]))
		if !ok1 || !ok2 {
			continue
		}
		if first {
			svg.MoveTo(px, py)
			first = false
		} else {
			svg.LineTo(px, py)
		}
	}
	svg.Stroke()
	svg.SetStroke(nil)
}

// labelHeight measures the pixel height of one label line in the
// given font, falling back to a nominal height when the font is
// unavailable.
func labelHeight(fontPath string, pts float64) float64 {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("font unavailable, using nominal label metrics: %v", err)
		return pts * 1.2
	}
	font, err := freetype.ParseFont(data)
	if err != nil {
		log.Printf("parsing font %s: %v", fontPath, err)
		return pts * 1.2
	}
	ctx := freetype.NewContext()
	bounds := font.Bounds(ctx.PointToFixed(pts))
	return float64((bounds.Max.Y - bounds.Min.Y) >> 6)
}

func parseValues(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad tick value %q: %v", p, err)
		}
		out[i] = v
	}
	return out, nil
}
