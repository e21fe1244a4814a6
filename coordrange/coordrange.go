// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coordrange estimates the world-coordinate range covered by
// a plot viewport.
//
// A pixel-to-world transform is sampled on a coarse grid over the
// viewport. Angular coordinates are unwrapped across 360° seams
// before taking the extrema, then re-normalized to whichever wrap
// convention ([0, 360) or [-180, 180)) gives the tighter interval.
// The resulting range is what a caller feeds to a tick locator.
//
// The algorithm follows PGSBOX from WCSLIB.
package coordrange // import "github.com/astrovis/go-skyticks/coordrange"

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Type classifies one world coordinate axis.
type Type int

const (
	Scalar Type = iota
	Longitude
	Latitude
)

func (t Type) angular() bool {
	return t == Longitude || t == Latitude
}

// A Transform maps pixel coordinates to world coordinates.
type Transform func(x, y float64) (xw, yw float64)

// A Range is a closed world-coordinate interval.
type Range struct {
	Min, Max float64
}

// gridN is the number of sample cells per viewport axis.
const gridN = 50

// Find samples transform over the viewport extent
// [xmin, xmax, ymin, ymax] and returns the world ranges of the two
// coordinates. Longitude ranges are padded by 10% and clamped to a
// single revolution (the full [0, 360] when the data covers more than
// 300°); latitude ranges are padded and clamped to [-90, 90]; scalar
// ranges are returned as sampled.
func Find(transform Transform, extent [4]float64, xType, yType Type) (Range, Range) {
	xs := vec.Linspace(extent[0], extent[1], gridN+1)
	ys := vec.Linspace(extent[2], extent[3], gridN+1)

	xw := make([][]float64, len(ys))
	yw := make([][]float64, len(ys))
	for iy, y := range ys {
		xw[iy] = make([]float64, len(xs))
		yw[iy] = make([]float64, len(xs))
		for ix, x := range xs {
			xw[iy][ix], yw[iy][ix] = transform(x, y)
		}
	}

	if xType.angular() {
		unwrap(xw)
	}
	if yType.angular() {
		unwrap(yw)
	}

	return worldRange(xw, xType), worldRange(yw, yType)
}

// unwrap irons out >180° jumps between neighboring samples, first
// along the first row and then down every column, so that a
// coordinate crossing the 0/360 seam varies continuously.
func unwrap(w [][]float64) {
	adjust := func(cur, prev float64) float64 {
		jump := cur - prev
		if math.IsNaN(jump) || math.Abs(jump) <= 180 {
			return cur
		}
		jump += math.Copysign(180, jump)
		return cur - 360*math.Trunc(jump/360)
	}
	for ix := 1; ix < len(w[0]); ix++ {
		w[0][ix] = adjust(w[0][ix], w[0][ix-1])
	}
	for iy := 1; iy < len(w); iy++ {
		for ix := range w[iy] {
			w[iy][ix] = adjust(w[iy][ix], w[iy-1][ix])
		}
	}
}

func mod360(v float64) float64 {
	m := math.Mod(v, 360)
	if m < 0 {
		m += 360
	}
	return m
}

func wrap180(v float64) float64 {
	m := mod360(v)
	if m > 180 {
		m -= 360
	}
	return m
}

// minmax returns the extrema of w, skipping NaNs.
func minmax(w [][]float64, f func(float64) float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range w {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			v = f(v)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return
}

func ident(v float64) float64 { return v }

func worldRange(w [][]float64, t Type) Range {
	min, max := minmax(w, ident)

	if t.angular() {
		// Prefer whichever wrap convention gives the tighter
		// interval.
		if lo, hi := minmax(w, mod360); max-min < 360 && max-min >= hi-lo {
			min, max = lo, hi
		}
		if lo, hi := minmax(w, wrap180); hi-lo < 360 && max-min >= hi-lo {
			min, max = lo, hi
		}
	}

	span := max - min
	switch t {
	case Longitude:
		if span > 300 {
			return Range{0, 360}
		}
		if min < 0 {
			return Range{
				math.Max(-180, min-0.1*span),
				math.Min(180, max+0.1*span),
			}
		}
		return Range{
			math.Max(0, min-0.1*span),
			math.Min(360, max+0.1*span),
		}
	case Latitude:
		return Range{
			math.Max(-90, min-0.1*span),
			math.Min(90, max+0.1*span),
		}
	}
	return Range{min, max}
}
