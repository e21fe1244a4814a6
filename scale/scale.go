// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps world coordinates to render coordinates.
//
// A Linear scale maps a world interval to [0, 1]; an OutputScale maps
// [0, 1] on to a pixel interval, optionally cropping or clamping
// values that land outside it. Composing the two places a tick
// position on an axis.
package scale // import "github.com/astrovis/go-skyticks/scale"

// A Linear scale maps [min, max] linearly on to [0, 1].
type Linear struct {
	min, width float64
}

// NewLinear returns a linear scale over the world interval
// [min, max].
func NewLinear(min, max float64) Linear {
	return Linear{min, max - min}
}

func (s Linear) Of(x float64) float64 {
	return (x - s.min) / s.width
}

// Invert maps a [0, 1] position back to a world coordinate.
func (s Linear) Invert(y float64) float64 {
	return y*s.width + s.min
}

type clampMode int

const (
	clampCrop clampMode = iota
	clampNone
	clampClamp
)

// An OutputScale maps [0, 1] on to the pixel interval [min, max].
// min may exceed max; an axis whose pixel coordinates grow downward
// uses a reversed output scale.
type OutputScale struct {
	min, max float64
	clamp    clampMode
}

func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes Of reject inputs outside [0, 1]. This is the default.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp makes Of extrapolate inputs outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp makes Of pin inputs outside [0, 1] to the interval edge.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x in [0, 1] to a pixel coordinate. ok is false if x was
// cropped.
func (s OutputScale) Of(x float64) (float64, bool) {
	switch s.clamp {
	case clampCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}
