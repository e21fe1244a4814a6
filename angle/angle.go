// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package angle provides a small closed set of angular units and a
// fixed-point-safe string renderer for sexagesimal angles.
//
// An Angle is stored canonically in degrees. Only the five unit kinds
// needed by axis labeling exist: degrees, hour angle, arcminutes and
// arcseconds (a dimensionless scalar axis carries no Angle at all).
package angle // import "github.com/astrovis/go-skyticks/angle"

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is an angular unit kind.
type Unit int

const (
	Degree Unit = iota
	HourAngle
	Arcmin
	Arcsec
)

// degrees returns the size of one u in degrees.
func (u Unit) degrees() float64 {
	switch u {
	case Degree:
		return 1
	case HourAngle:
		return 15
	case Arcmin:
		return 1.0 / 60
	case Arcsec:
		return 1.0 / 3600
	}
	panic(fmt.Sprintf("unknown angle unit %d", int(u)))
}

func (u Unit) String() string {
	switch u {
	case Degree:
		return "deg"
	case HourAngle:
		return "hourangle"
	case Arcmin:
		return "arcmin"
	case Arcsec:
		return "arcsec"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// An Angle is an angular quantity.
type Angle struct {
	deg float64
}

// New returns v in units of u as an Angle.
func New(v float64, u Unit) Angle {
	return Angle{v * u.degrees()}
}

// Degrees returns v degrees as an Angle.
func Degrees(v float64) Angle {
	return Angle{v}
}

// Degrees returns a in degrees.
func (a Angle) Degrees() float64 {
	return a.deg
}

// In returns a expressed in units of u.
func (a Angle) In(u Unit) float64 {
	return a.deg / u.degrees()
}

// IsZero reports whether a is exactly zero.
func (a Angle) IsZero() bool {
	return a.deg == 0
}

// Less reports whether a < b.
func (a Angle) Less(b Angle) bool {
	return a.deg < b.deg
}

// Abs returns the magnitude of a.
func (a Angle) Abs() Angle {
	return Angle{math.Abs(a.deg)}
}

// Mul returns a scaled by k.
func (a Angle) Mul(k float64) Angle {
	return Angle{a.deg * k}
}

// Div returns the dimensionless ratio a/b.
func (a Angle) Div(b Angle) float64 {
	return a.deg / b.deg
}

func (a Angle) String() string {
	return strconv.FormatFloat(a.deg, 'g', -1, 64) + " deg"
}

// DecimalString renders a as a single signed decimal number in units
// of u with exactly prec fractional digits. No unit symbol is
// appended.
func (a Angle) DecimalString(u Unit, prec int) string {
	return strconv.FormatFloat(a.In(u), 'f', prec, 64)
}

// Sexagesimal renders a in base-60 fields. unit selects the top field
// (Degree or HourAngle), fields how many of the three fields to emit,
// and prec the number of fractional digits on the last emitted field.
// seps[i] is appended after field i.
//
// Rounding happens once, at the resolution of the last field, and
// carries upward, so a value a hair under a field boundary never
// renders as 60 in a lower field.
func (a Angle) Sexagesimal(unit Unit, fields, prec int, seps [3]string) string {
	if fields < 1 || fields > 3 {
		panic(fmt.Sprintf("sexagesimal fields must be 1..3, got %d", fields))
	}

	v := a.In(unit)
	neg := math.Signbit(v)
	v = math.Abs(v)

	// Scale to integer units of the last field's smallest digit.
	p10 := int64(1)
	for i := 0; i < prec; i++ {
		p10 *= 10
	}
	mult := int64(1)
	for i := 1; i < fields; i++ {
		mult *= 60
	}
	scaled := int64(math.Round(v * float64(mult) * float64(p10)))

	frac := scaled % p10
	rest := scaled / p10
	var field [3]int64
	for i := fields - 1; i > 0; i-- {
		field[i] = rest % 60
		rest /= 60
	}
	field[0] = rest

	var b strings.Builder
	if neg && scaled != 0 {
		b.WriteByte('-')
	}
	for i := 0; i < fields; i++ {
		if i == 0 {
			fmt.Fprintf(&b, "%d", field[0])
		} else {
			fmt.Fprintf(&b, "%02d", field[i])
		}
		if i == fields-1 && prec > 0 {
			fmt.Fprintf(&b, ".%0*d", prec, frac)
		}
		b.WriteString(seps[i])
	}
	return b.String()
}
