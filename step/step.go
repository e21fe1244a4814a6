// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package step selects "clean" tick spacings near a requested raw
// spacing.
//
// Degree and Hour pick from fixed tables of human-friendly angular
// steps (1, 2, 5, 10, 15, 30, ... degrees; 1, 2, 3, 4, 6, 12, ...
// hours; and matching sub-minute/sub-second steps). Scalar snaps to
// the nearest 1, 2, 5 or 10 times a power of ten. All three are pure
// and total over positive finite inputs.
package step // import "github.com/astrovis/go-skyticks/step"

import (
	"math"

	"github.com/astrovis/go-skyticks/angle"
)

type cleanStep struct {
	limit float64 // upper bound on the raw spacing, in the search unit
	step  angle.Angle
}

// Sub-degree and sub-hour fields share their step progression; only
// the attached unit differs.
var (
	dmsSteps  = []float64{1, 2, 3, 5, 10, 15, 20, 30}
	dmsLimits = []float64{1.5, 2.5, 3.5, 8, 11, 18, 25, 45}

	degSteps  = []float64{1, 2, 5, 10, 15, 30, 45, 90, 180, 360}
	degLimits = []float64{1.5, 3, 7, 13, 20, 40, 70, 120, 270, 520}

	hmsSteps  = []float64{1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30}
	hmsLimits = []float64{1.5, 2.5, 3.5, 4.5, 5.5, 8, 11, 14, 18, 25, 45}

	hourSteps  = []float64{1, 2, 3, 4, 6, 8, 12, 18, 24}
	hourLimits = []float64{1.5, 2.5, 3.5, 5, 7, 10, 15, 21, 36}
)

// degreeTable is searched in degrees; hourTable in hour angle.
var degreeTable, hourTable []cleanStep

func init() {
	add := func(table []cleanStep, limits, steps []float64, limitScale float64, unit angle.Unit, stepScale float64) []cleanStep {
		for i, lim := range limits {
			table = append(table, cleanStep{
				limit: lim / limitScale,
				step:  angle.New(steps[i]*stepScale, unit),
			})
		}
		return table
	}

	degreeTable = add(degreeTable, dmsLimits, dmsSteps, 3600, angle.Arcsec, 1)
	degreeTable = add(degreeTable, dmsLimits, dmsSteps, 60, angle.Arcmin, 1)
	degreeTable = add(degreeTable, degLimits, degSteps, 1, angle.Degree, 1)

	// Hour-angle sub-fields are minutes and seconds of time, i.e. 15
	// arcmin and 15 arcsec.
	hourTable = add(hourTable, hmsLimits, hmsSteps, 3600, angle.Arcsec, 15)
	hourTable = add(hourTable, hmsLimits, hmsSteps, 60, angle.Arcmin, 15)
	hourTable = add(hourTable, hourLimits, hourSteps, 1, angle.HourAngle, 1)
}

func search(table []cleanStep, v float64) angle.Angle {
	for _, e := range table {
		if v <= e.limit {
			return e.step
		}
	}
	return table[len(table)-1].step
}

// Degree returns the clean degree-like spacing for a raw spacing dv.
// Spacings of an arcsecond or less fall back to a scalar power-of-ten
// step in arcseconds.
func Degree(dv angle.Angle) angle.Angle {
	if !angle.New(1, angle.Arcsec).Less(dv) {
		return angle.New(Scalar(dv.In(angle.Arcsec)), angle.Arcsec)
	}
	return search(degreeTable, dv.In(angle.Degree))
}

// Hour returns the clean hour-angle spacing for a raw spacing dv.
// Spacings of a second of time or less fall back to a scalar
// power-of-ten step in arcseconds.
func Hour(dv angle.Angle) angle.Angle {
	if !angle.New(15, angle.Arcsec).Less(dv) {
		return angle.New(Scalar(dv.In(angle.Arcsec)), angle.Arcsec)
	}
	return search(hourTable, dv.In(angle.HourAngle))
}

// Scalar returns the member of {1, 2, 5, 10}·10ⁿ nearest dv in log
// space.
func Scalar(dv float64) float64 {
	l := math.Log10(dv)
	base := math.Floor(l)
	frac := l - base

	steps := [...]float64{1, 2, 5, 10}
	best, bestDist := 0, math.Inf(1)
	for i, s := range steps {
		if d := math.Abs(frac - math.Log10(s)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return math.Pow(10, base) * steps[best]
}
