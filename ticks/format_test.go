// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"errors"
	"math"
	"testing"

	"github.com/astrovis/go-skyticks/angle"
)

func TestParseAngleFormat(t *testing.T) {
	checks := []struct {
		format  string
		decimal bool
		unit    angle.Unit
		fields  int
		prec    int
	}{
		{"dd", false, angle.Degree, 1, 0},
		{"dd:mm", false, angle.Degree, 2, 0},
		{"dd:mm:ss", false, angle.Degree, 3, 0},
		{"dd:mm:ss.s", false, angle.Degree, 3, 1},
		{"dd:mm:ss.ssss", false, angle.Degree, 3, 4},
		{"hh", false, angle.HourAngle, 1, 0},
		{"hh:mm", false, angle.HourAngle, 2, 0},
		{"hh:mm:ss.ss", false, angle.HourAngle, 3, 2},
		{"d", true, angle.Degree, 1, 0},
		{"d.dd", true, angle.Degree, 1, 2},
		{"m", true, angle.Arcmin, 1, 0},
		{"m.mmm", true, angle.Arcmin, 1, 3},
		{"s", true, angle.Arcsec, 1, 0},
		{"s.s", true, angle.Arcsec, 1, 1},
	}
	for _, c := range checks {
		f, err := parseAngleFormat(c.format)
		if err != nil {
			t.Errorf("parseAngleFormat(%q) failed: %v", c.format, err)
			continue
		}
		if f.decimal != c.decimal || f.unit != c.unit || f.fields != c.fields || f.prec != c.prec {
			t.Errorf("parseAngleFormat(%q) = %+v, want decimal=%v unit=%v fields=%d prec=%d",
				c.format, f, c.decimal, c.unit, c.fields, c.prec)
		}
	}
}

func TestParseAngleFormatInvalid(t *testing.T) {
	for _, format := range []string{
		"", "x", "x.xx", "ddd", "dd:", "dd:ss", "mm", "hh:mm:ss.",
		"d.", "dd:mm.s", "s.ss.s", "DD:MM",
	} {
		_, err := parseAngleFormat(format)
		if err == nil {
			t.Errorf("parseAngleFormat(%q) succeeded, want error", format)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Format != format {
			t.Errorf("parseAngleFormat(%q) error = %v, want *ParseError", format, err)
		}
	}
}

func TestAngleBaseSpacing(t *testing.T) {
	checks := []struct {
		format string
		want   angle.Angle
	}{
		{"dd", angle.Degrees(1)},
		{"dd:mm", angle.New(1, angle.Arcmin)},
		{"dd:mm:ss", angle.New(1, angle.Arcsec)},
		{"dd:mm:ss.ss", angle.New(0.01, angle.Arcsec)},
		{"hh", angle.Degrees(15)},
		{"hh:mm", angle.New(15, angle.Arcmin)},
		{"hh:mm:ss", angle.New(15, angle.Arcsec)},
		{"d.d", angle.Degrees(0.1)},
		{"m.m", angle.New(0.1, angle.Arcmin)},
		{"s.ss", angle.New(0.01, angle.Arcsec)},
	}
	for _, c := range checks {
		f, err := parseAngleFormat(c.format)
		if err != nil {
			t.Fatalf("parseAngleFormat(%q) failed: %v", c.format, err)
		}
		got := f.baseSpacing()
		if math.Abs(got.Degrees()-c.want.Degrees()) > 1e-15*c.want.Degrees() {
			t.Errorf("baseSpacing(%q) = %v, want %v", c.format, got, c.want)
		}
	}
}

func TestParseScalarFormat(t *testing.T) {
	for _, c := range []struct {
		format string
		prec   int
	}{
		{"x", 0},
		{"x.x", 1},
		{"x.xxx", 3},
	} {
		f, err := parseScalarFormat(c.format)
		if err != nil {
			t.Errorf("parseScalarFormat(%q) failed: %v", c.format, err)
			continue
		}
		if f.prec != c.prec {
			t.Errorf("parseScalarFormat(%q).prec = %d, want %d", c.format, f.prec, c.prec)
		}
	}

	for _, format := range []string{"", "xx", "x.", "d", "x.xx.x"} {
		if _, err := parseScalarFormat(format); err == nil {
			t.Errorf("parseScalarFormat(%q) succeeded, want error", format)
		}
	}
}
