// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"math"
	"testing"

	"github.com/astrovis/go-skyticks/angle"
)

func TestScalar(t *testing.T) {
	checks := []struct{ in, want float64 }{
		{1, 1},
		{0.3, 0.2},
		{0.4, 0.5},
		{3, 2},
		{4, 5},
		{7, 5},
		{8, 10},
		{30, 20},
		{0.015, 0.02},
		{1500, 2000},
	}
	for _, c := range checks {
		got := Scalar(c.in)
		if math.Abs(got-c.want) > 1e-12*c.want {
			t.Errorf("Scalar(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDegree(t *testing.T) {
	checks := []struct {
		in   angle.Angle
		want angle.Angle
	}{
		{angle.Degrees(0.5), angle.New(30, angle.Arcmin)},
		{angle.Degrees(2), angle.Degrees(2)},
		{angle.Degrees(6), angle.Degrees(5)},
		{angle.Degrees(25), angle.Degrees(30)},
		{angle.Degrees(100), angle.Degrees(90)},
		{angle.New(2, angle.Arcmin), angle.New(2, angle.Arcmin)},
		{angle.New(7, angle.Arcsec), angle.New(5, angle.Arcsec)},
		// At or below an arcsecond, power-of-ten arcsecond steps.
		{angle.New(0.3, angle.Arcsec), angle.New(0.2, angle.Arcsec)},
		{angle.New(0.04, angle.Arcsec), angle.New(0.05, angle.Arcsec)},
	}
	for _, c := range checks {
		got := Degree(c.in)
		if math.Abs(got.Degrees()-c.want.Degrees()) > 1e-12 {
			t.Errorf("Degree(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHour(t *testing.T) {
	checks := []struct {
		in   angle.Angle
		want angle.Angle
	}{
		{angle.New(2, angle.HourAngle), angle.New(2, angle.HourAngle)},
		{angle.New(5, angle.HourAngle), angle.New(4, angle.HourAngle)},
		{angle.New(30, angle.HourAngle), angle.New(24, angle.HourAngle)},
		// 20 minutes of time asks for a 20-minute step (15 arcmin * 20).
		{angle.New(20.0/60, angle.HourAngle), angle.New(300, angle.Arcmin)},
		// Below a second of time, scalar fallback in arcseconds.
		{angle.New(10, angle.Arcsec), angle.New(10, angle.Arcsec)},
	}
	for _, c := range checks {
		got := Hour(c.in)
		if math.Abs(got.Degrees()-c.want.Degrees()) > 1e-12 {
			t.Errorf("Hour(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
