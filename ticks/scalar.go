// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/astrovis/go-skyticks/step"
)

// scalarSentinel is the spacing reported alongside explicitly
// configured tick values on a scalar axis.
const scalarSentinel = 1.1

// A ScalarFormatterLocator locates and formats ticks on a
// dimensionless axis with fixed-precision decimal labels.
type ScalarFormatterLocator struct {
	rule    ruleKind
	values  []float64
	count   int
	spacing float64

	format    *scalarFormat
	formatStr string

	logger hclog.Logger
}

// ScalarConfig configures NewScalar. At most one of Values, Count and
// Spacing may be set; with none set the locator targets five ticks.
type ScalarConfig struct {
	Values  []float64
	Count   int
	Spacing float64
	Format  string // label format, e.g. "x.xx"
	Logger  hclog.Logger
}

// NewScalar returns a scalar formatter/locator for cfg. The error is
// ErrConflictingRules if more than one tick rule is supplied, or a
// *ParseError if cfg.Format is not recognized.
func NewScalar(cfg ScalarConfig) (*ScalarFormatterLocator, error) {
	fl := &ScalarFormatterLocator{rule: ruleCount, count: defaultCount, logger: cfg.Logger}

	n := 0
	if cfg.Values != nil {
		n++
		fl.SetValues(cfg.Values)
	}
	if cfg.Count != 0 {
		n++
		fl.SetCount(cfg.Count)
	}
	if cfg.Spacing != 0 {
		n++
		fl.SetSpacing(cfg.Spacing)
	}
	if n > 1 {
		return nil, ErrConflictingRules
	}

	if cfg.Format != "" {
		if err := fl.SetFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	return fl, nil
}

func (fl *ScalarFormatterLocator) log() hclog.Logger {
	if fl.logger == nil {
		return hclog.Default()
	}
	return fl.logger
}

// SetValues switches to explicit tick positions, used verbatim by
// Locator.
func (fl *ScalarFormatterLocator) SetValues(values []float64) {
	fl.rule = ruleValues
	fl.values = values
	fl.count = 0
	fl.spacing = 0
}

// SetCount switches to a desired tick count. Non-positive counts fall
// back to the default of five.
func (fl *ScalarFormatterLocator) SetCount(n int) {
	if n < 1 {
		n = defaultCount
	}
	fl.rule = ruleCount
	fl.count = n
	fl.values = nil
	fl.spacing = 0
}

// SetSpacing switches to a fixed tick spacing, corrected against the
// format's base spacing if one is set. The call never fails.
func (fl *ScalarFormatterLocator) SetSpacing(s float64) {
	fl.rule = ruleSpacing
	fl.spacing = s
	fl.values = nil
	fl.count = 0
	fl.checkSpacing()
}

// SetFormat parses and installs a label format, re-validating an
// active explicit spacing against the new base spacing.
func (fl *ScalarFormatterLocator) SetFormat(format string) error {
	f, err := parseScalarFormat(format)
	if err != nil {
		return err
	}
	fl.format = &f
	fl.formatStr = format
	fl.checkSpacing()
	return nil
}

// Values returns the explicit tick positions and whether that mode is
// active.
func (fl *ScalarFormatterLocator) Values() ([]float64, bool) {
	if fl.rule != ruleValues {
		return nil, false
	}
	return fl.values, true
}

// Count returns the desired tick count and whether that mode is
// active.
func (fl *ScalarFormatterLocator) Count() (int, bool) {
	if fl.rule != ruleCount {
		return 0, false
	}
	return fl.count, true
}

// Spacing returns the fixed spacing and whether that mode is active.
func (fl *ScalarFormatterLocator) Spacing() (float64, bool) {
	if fl.rule != ruleSpacing {
		return 0, false
	}
	return fl.spacing, true
}

// Format returns the configured format string, or "" if none is set.
func (fl *ScalarFormatterLocator) Format() string {
	return fl.formatStr
}

// BaseSpacing returns the smallest spacing the configured format can
// represent. ok is false when no format is set.
func (fl *ScalarFormatterLocator) BaseSpacing() (_ float64, ok bool) {
	if fl.format == nil {
		return 0, false
	}
	return fl.format.baseSpacing(), true
}

func (fl *ScalarFormatterLocator) checkSpacing() {
	if fl.rule != ruleSpacing || fl.format == nil {
		return
	}
	base := fl.format.baseSpacing()
	if fl.spacing < base {
		fl.log().Warn("tick spacing is too small for the format; resetting to the base spacing",
			"spacing", fl.spacing, "base", base)
		fl.spacing = base
		return
	}
	ratio := fl.spacing / base
	if math.Abs(ratio-math.Round(ratio))*base > spacingTolerance {
		fl.log().Warn("tick spacing is not a multiple of the format's base spacing; rounding to the nearest multiple",
			"spacing", fl.spacing, "base", base)
		fl.spacing = base * math.Round(ratio)
	}
}

// Locator returns the tick positions inside [min, max], ascending,
// and the spacing that produced them. An empty result is the valid
// "no ticks in range" outcome, not an error.
func (fl *ScalarFormatterLocator) Locator(min, max float64) ([]float64, float64) {
	switch fl.rule {
	case ruleValues:
		return fl.values, scalarSentinel
	case ruleSpacing:
		return multiples(min, max, fl.spacing), fl.spacing
	}

	dv := math.Abs(max-min) / float64(fl.count)
	var s float64
	switch {
	case fl.format != nil && dv < fl.format.baseSpacing():
		s = fl.format.baseSpacing()
	case dv > 0:
		s = step.Scalar(dv)
	default:
		return nil, 0
	}
	return multiples(min, max, s), s
}

// Formatter renders tick positions as fixed-precision decimal labels.
// spacing is the value returned by Locator; it selects the precision
// when no format is configured. Empty input yields empty output.
func (fl *ScalarFormatterLocator) Formatter(values []float64, spacing float64) []string {
	if len(values) == 0 {
		return nil
	}

	prec := 0
	if fl.format != nil {
		prec = fl.format.prec
	} else if spacing < 1 {
		prec = -int(math.Floor(math.Log10(spacing)))
	}

	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}
	return labels
}

// TickLabels locates and formats in one step.
func (fl *ScalarFormatterLocator) TickLabels(min, max float64) ([]float64, []string) {
	values, spacing := fl.Locator(min, max)
	return values, fl.Formatter(values, spacing)
}
