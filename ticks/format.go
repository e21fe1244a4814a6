// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"regexp"
	"strings"

	"github.com/astrovis/go-skyticks/angle"
)

// angleFormat is the parsed, immutable form of an angle tick format
// string such as "dd:mm:ss.s" or "d.dd".
type angleFormat struct {
	decimal bool
	unit    angle.Unit
	fields  int
	prec    int
}

// angleGrammar lists the recognized angle format patterns in match
// priority order.
var angleGrammar = []struct {
	re    *regexp.Regexp
	build func(s string) angleFormat
}{
	{regexp.MustCompile(`^dd(:mm(:ss(\.s+)?)?)?$`), func(s string) angleFormat {
		return sexagesimalFormat(s, angle.Degree)
	}},
	{regexp.MustCompile(`^hh(:mm(:ss(\.s+)?)?)?$`), func(s string) angleFormat {
		return sexagesimalFormat(s, angle.HourAngle)
	}},
	{regexp.MustCompile(`^d(\.d+)?$`), func(s string) angleFormat {
		return angleFormat{decimal: true, unit: angle.Degree, fields: 1, prec: formatPrecision(s)}
	}},
	{regexp.MustCompile(`^m(\.m+)?$`), func(s string) angleFormat {
		return angleFormat{decimal: true, unit: angle.Arcmin, fields: 1, prec: formatPrecision(s)}
	}},
	{regexp.MustCompile(`^s(\.s+)?$`), func(s string) angleFormat {
		return angleFormat{decimal: true, unit: angle.Arcsec, fields: 1, prec: formatPrecision(s)}
	}},
}

// formatPrecision counts the fractional placeholders after the dot.
func formatPrecision(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func sexagesimalFormat(s string, unit angle.Unit) angleFormat {
	f := angleFormat{unit: unit, prec: formatPrecision(s)}
	if strings.IndexByte(s, '.') >= 0 {
		f.fields = 3
	} else {
		f.fields = strings.Count(s, ":") + 1
	}
	return f
}

func parseAngleFormat(s string) (angleFormat, error) {
	for _, rule := range angleGrammar {
		if rule.re.MatchString(s) {
			return rule.build(s), nil
		}
	}
	return angleFormat{}, &ParseError{Format: s}
}

// baseSpacing is the smallest spacing increment f renders exactly:
// two ticks one base spacing apart always format to distinct labels.
func (f angleFormat) baseSpacing() angle.Angle {
	if f.decimal {
		return angle.New(math.Pow(10, -float64(f.prec)), f.unit)
	}
	var b angle.Angle
	switch f.fields {
	case 1:
		b = angle.Degrees(1)
	case 2:
		b = angle.New(1, angle.Arcmin)
	default:
		b = angle.New(math.Pow(10, -float64(f.prec)), angle.Arcsec)
	}
	if f.unit == angle.HourAngle {
		b = b.Mul(15)
	}
	return b
}

// scalarFormat is the parsed form of a scalar tick format string such
// as "x.xx".
type scalarFormat struct {
	prec int
}

var scalarRe = regexp.MustCompile(`^x(\.x+)?$`)

func parseScalarFormat(s string) (scalarFormat, error) {
	if !scalarRe.MatchString(s) {
		return scalarFormat{}, &ParseError{Format: s}
	}
	return scalarFormat{prec: formatPrecision(s)}, nil
}

func (f scalarFormat) baseSpacing() float64 {
	return math.Pow(10, -float64(f.prec))
}
