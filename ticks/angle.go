// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/astrovis/go-skyticks/angle"
	"github.com/astrovis/go-skyticks/step"
)

var (
	degreeSeps = [3]string{"°", "′", "″"}
	hourSeps   = [3]string{"h", "m", "s"}
)

// angleSentinel is the spacing reported alongside explicitly
// configured tick values. It only steers label precision downstream.
var angleSentinel = angle.New(1.1, angle.Arcsec)

// An AngleFormatterLocator locates and formats ticks on an angular
// axis. Positions are degrees everywhere; labels may be decimal or
// sexagesimal, degree- or hour-flavored, per the configured format.
type AngleFormatterLocator struct {
	rule    ruleKind
	values  []float64 // degrees
	count   int
	spacing angle.Angle

	format    *angleFormat
	formatStr string

	logger hclog.Logger
}

// AngleConfig configures NewAngle. At most one of Values, Count and
// Spacing may be set; with none set the locator targets five ticks.
// Logger, if non-nil, receives spacing-correction warnings.
type AngleConfig struct {
	Values  []float64   // explicit tick positions, degrees
	Count   int         // desired number of ticks
	Spacing angle.Angle // fixed tick spacing
	Format  string      // label format, e.g. "dd:mm:ss.s", "hh:mm" or "d.dd"
	Logger  hclog.Logger
}

// NewAngle returns an angle formatter/locator for cfg. The error is
// ErrConflictingRules if more than one tick rule is supplied, or a
// *ParseError if cfg.Format is not recognized.
func NewAngle(cfg AngleConfig) (*AngleFormatterLocator, error) {
	fl := &AngleFormatterLocator{rule: ruleCount, count: defaultCount, logger: cfg.Logger}

	n := 0
	if cfg.Values != nil {
		n++
		fl.SetValues(cfg.Values)
	}
	if cfg.Count != 0 {
		n++
		fl.SetCount(cfg.Count)
	}
	if !cfg.Spacing.IsZero() {
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

func (fl *AngleFormatterLocator) log() hclog.Logger {
	if fl.logger == nil {
		return hclog.Default()
	}
	return fl.logger
}

// SetValues switches to explicit tick positions, given in degrees.
// The positions are used verbatim by Locator, without range clipping.
func (fl *AngleFormatterLocator) SetValues(deg []float64) {
	fl.rule = ruleValues
	fl.values = deg
	fl.count = 0
	fl.spacing = angle.Angle{}
}

// SetCount switches to a desired tick count; the spacing is derived
// from the range on each Locator call. Non-positive counts fall back
// to the default of five.
func (fl *AngleFormatterLocator) SetCount(n int) {
	if n < 1 {
		n = defaultCount
	}
	fl.rule = ruleCount
	fl.count = n
	fl.values = nil
	fl.spacing = angle.Angle{}
}

// SetSpacing switches to a fixed tick spacing. If a format is set,
// spacings it cannot represent are corrected to the nearest
// representable one and the correction logged at warning level; the
// call never fails.
func (fl *AngleFormatterLocator) SetSpacing(s angle.Angle) {
	fl.rule = ruleSpacing
	fl.spacing = s
	fl.values = nil
	fl.count = 0
	fl.checkSpacing()
}

// SetFormat parses and installs a label format. On success the
// format's base spacing is recomputed and an explicit spacing, if
// active, is re-validated against it.
func (fl *AngleFormatterLocator) SetFormat(format string) error {
	f, err := parseAngleFormat(format)
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
func (fl *AngleFormatterLocator) Values() ([]float64, bool) {
	if fl.rule != ruleValues {
		return nil, false
	}
	return fl.values, true
}

// Count returns the desired tick count and whether that mode is
// active.
func (fl *AngleFormatterLocator) Count() (int, bool) {
	if fl.rule != ruleCount {
		return 0, false
	}
	return fl.count, true
}

// Spacing returns the fixed spacing and whether that mode is active.
func (fl *AngleFormatterLocator) Spacing() (angle.Angle, bool) {
	if fl.rule != ruleSpacing {
		return angle.Angle{}, false
	}
	return fl.spacing, true
}

// Format returns the configured format string, or "" if none is set.
func (fl *AngleFormatterLocator) Format() string {
	return fl.formatStr
}

// BaseSpacing returns the smallest spacing the configured format can
// represent. ok is false when no format is set.
func (fl *AngleFormatterLocator) BaseSpacing() (_ angle.Angle, ok bool) {
	if fl.format == nil {
		return angle.Angle{}, false
	}
	return fl.format.baseSpacing(), true
}

// checkSpacing reconciles an explicit spacing with the format's base
// spacing. Corrections are logged and absorbed, never surfaced as
// errors.
func (fl *AngleFormatterLocator) checkSpacing() {
	if fl.rule != ruleSpacing || fl.format == nil {
		return
	}
	base := fl.format.baseSpacing()
	if fl.spacing.Less(base) {
		fl.log().Warn("tick spacing is too small for the format; resetting to the base spacing",
			"spacing", fl.spacing.String(), "base", base.String())
		fl.spacing = base
		return
	}
	ratio := fl.spacing.Div(base)
	if math.Abs(ratio-math.Round(ratio))*base.Degrees() > spacingTolerance {
		fl.log().Warn("tick spacing is not a multiple of the format's base spacing; rounding to the nearest multiple",
			"spacing", fl.spacing.String(), "base", base.String())
		fl.spacing = base.Mul(math.Round(ratio))
	}
}

// Locator returns the tick positions inside [min, max] (degrees,
// ascending) and the spacing that produced them. An empty result is
// the valid "no ticks in range" outcome, not an error.
func (fl *AngleFormatterLocator) Locator(min, max float64) ([]float64, angle.Angle) {
	switch fl.rule {
	case ruleValues:
		return fl.values, angleSentinel
	case ruleSpacing:
		s := fl.spacing.Degrees()
		return multiples(min, max, s), angle.Degrees(s)
	}

	dv := math.Abs(max-min) / float64(fl.count)
	var s float64
	switch {
	case fl.format != nil && dv < fl.format.baseSpacing().Degrees():
		// The format cannot resolve ticks finer than its base
		// spacing.
		s = fl.format.baseSpacing().Degrees()
	case dv > 0:
		if fl.format != nil && fl.format.unit == angle.HourAngle {
			s = step.Hour(angle.Degrees(dv)).Degrees()
		} else {
			s = step.Degree(angle.Degrees(dv)).Degrees()
		}
	default:
		// Zero-width range and no format to supply a resolution.
		return nil, angle.Angle{}
	}
	return multiples(min, max, s), angle.Degrees(s)
}

// Formatter renders tick positions (degrees) as labels. spacing is
// the value returned by Locator; it selects the label resolution when
// no format is configured. Empty input yields empty output.
func (fl *AngleFormatterLocator) Formatter(values []float64, spacing angle.Angle) []string {
	if len(values) == 0 {
		return nil
	}

	var (
		fields, prec int
		decimal      bool
		unit         angle.Unit
	)
	if fl.format != nil {
		fields, prec = fl.format.fields, fl.format.prec
		decimal, unit = fl.format.decimal, fl.format.unit
	} else {
		// Derive the coarsest representation that still resolves
		// adjacent ticks at this spacing.
		unit = angle.Degree
		switch {
		case angle.Degrees(1).Less(spacing):
			fields = 1
		case angle.New(1, angle.Arcmin).Less(spacing):
			fields = 2
		case angle.New(1, angle.Arcsec).Less(spacing):
			fields = 3
		default:
			fields = 3
			prec = -int(math.Floor(math.Log10(spacing.In(angle.Arcsec))))
		}
	}

	seps := degreeSeps
	if unit == angle.HourAngle {
		seps = hourSeps
	}

	labels := make([]string, len(values))
	for i, v := range values {
		a := angle.Degrees(v)
		if decimal {
			labels[i] = a.DecimalString(unit, prec)
		} else {
			labels[i] = a.Sexagesimal(unit, fields, prec, seps)
		}
	}
	return labels
}

// TickLabels locates and formats in one step.
func (fl *AngleFormatterLocator) TickLabels(min, max float64) ([]float64, []string) {
	values, spacing := fl.Locator(min, max)
	return values, fl.Formatter(values, spacing)
}
