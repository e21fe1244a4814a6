// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes axis tick positions and the labels for them.
//
// A formatter/locator pairs the two halves of axis labeling so they
// stay mutually consistent: the tick spacing is always representable
// by the label format, and the label format always resolves adjacent
// ticks. A "dd:mm" format, for example, cannot label ticks spaced
// finer than one arcminute, so such spacings are corrected.
//
// Two variants exist. AngleFormatterLocator works in degrees and
// renders decimal or sexagesimal angle labels (degree or hour-angle
// flavored). ScalarFormatterLocator works on dimensionless values
// with fixed-precision decimal labels.
//
// A formatter/locator holds only configuration; Locator and Formatter
// are pure given that configuration, so repeated calls with the same
// range return the same ticks. Configuration mutation is not
// synchronized; a locator is owned by a single axis.
package ticks // import "github.com/astrovis/go-skyticks/ticks"

import (
	"errors"
	"fmt"
	"math"
)

// ErrConflictingRules reports a construction that supplies more than
// one of explicit values, a desired count, and a fixed spacing.
var ErrConflictingRules = errors.New("at most one of Values, Count, and Spacing may be set")

// A ParseError reports a tick format string matching none of the
// recognized patterns.
type ParseError struct {
	Format string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid tick format %q", e.Format)
}

// A FormatterLocator jointly locates ticks in a range and formats
// their labels.
type FormatterLocator interface {
	// TickLabels returns the tick positions inside [min, max] and
	// one label per position.
	TickLabels(min, max float64) (positions []float64, labels []string)
}

// ruleKind selects how tick positions are chosen. Exactly one mode is
// active at a time; assigning a mode replaces the previous one, so
// the three can never conflict.
type ruleKind int

const (
	ruleCount ruleKind = iota
	ruleValues
	ruleSpacing
)

// defaultCount is the tick-count target used when nothing else is
// configured.
const defaultCount = 5

// spacingTolerance is the absolute slack (degrees for the angle
// variant, raw units for the scalar one) allowed when checking that
// an explicit spacing is a whole multiple of the format's base
// spacing.
const spacingTolerance = 1e-10

// multiples returns every integer multiple of spacing inside
// [min, max], ascending. The multiplier index is integral so
// floating-point error does not accumulate across ticks. An empty
// result means no multiple falls in the range.
func multiples(min, max, spacing float64) []float64 {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil
	}
	imin := int64(math.Ceil(min / spacing))
	imax := int64(math.Floor(max / spacing))
	if imin > imax {
		return nil
	}
	out := make([]float64, 0, imax-imin+1)
	for i := imin; i <= imax; i++ {
		out = append(out, float64(i)*spacing)
	}
	return out
}
