// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarConflictingConfig(t *testing.T) {
	_, err := NewScalar(ScalarConfig{Count: 5, Spacing: 0.1})
	require.ErrorIs(t, err, ErrConflictingRules)
}

func TestScalarInvalidFormat(t *testing.T) {
	_, err := NewScalar(ScalarConfig{Format: "dd:mm"})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "dd:mm", perr.Format)
}

func TestScalarExplicitSpacing(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{Spacing: 0.1, Format: "x.xx"})
	require.NoError(t, err)

	values, spacing := fl.Locator(0, 0.35)
	require.Equal(t, 0.1, spacing)
	require.Len(t, values, 4)
	for i, want := range []float64{0, 0.1, 0.2, 0.3} {
		require.InDelta(t, want, values[i], 1e-12)
	}
	require.Equal(t, []string{"0.00", "0.10", "0.20", "0.30"},
		fl.Formatter(values, spacing))
}

func TestScalarModeExclusivity(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{})
	require.NoError(t, err)

	n, ok := fl.Count()
	require.True(t, ok)
	require.Equal(t, 5, n)

	fl.SetSpacing(0.25)
	_, ok = fl.Count()
	require.False(t, ok)
	_, ok = fl.Values()
	require.False(t, ok)
	s, ok := fl.Spacing()
	require.True(t, ok)
	require.Equal(t, 0.25, s)

	fl.SetValues([]float64{3, 1, 4})
	_, ok = fl.Spacing()
	require.False(t, ok)
	v, ok := fl.Values()
	require.True(t, ok)
	require.Equal(t, []float64{3, 1, 4}, v)

	fl.SetCount(9)
	_, ok = fl.Values()
	require.False(t, ok)
	n, ok = fl.Count()
	require.True(t, ok)
	require.Equal(t, 9, n)
}

func TestScalarSpacingCorrected(t *testing.T) {
	var buf bytes.Buffer
	fl, err := NewScalar(ScalarConfig{Format: "x.x", Logger: testLogger(&buf)})
	require.NoError(t, err)

	fl.SetSpacing(0.01)
	s, ok := fl.Spacing()
	require.True(t, ok)
	require.Equal(t, 0.1, s)
	require.Contains(t, buf.String(), "too small")

	// Not a multiple of 0.1: rounded to the nearest multiple, not to
	// the base itself.
	buf.Reset()
	fl.SetSpacing(0.25)
	s, _ = fl.Spacing()
	require.InDelta(t, 0.3, s, 1e-12)
	require.Contains(t, buf.String(), "not a multiple")
}

func TestScalarCountMode(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{Count: 4})
	require.NoError(t, err)

	// dv = 0.25, snapped to the clean step 0.2.
	values, spacing := fl.Locator(0, 1)
	require.InDelta(t, 0.2, spacing, 1e-12)
	require.Equal(t, []string{"0.0", "0.2", "0.4", "0.6", "0.8"},
		fl.Formatter(values, spacing))
}

func TestScalarCountBelowFormatResolution(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{Count: 10, Format: "x.x"})
	require.NoError(t, err)

	// Ten ticks over [0, 0.3] would need a spacing of 0.03, finer
	// than the format resolves; the base spacing wins.
	_, spacing := fl.Locator(0, 0.3)
	require.Equal(t, 0.1, spacing)
}

func TestScalarExplicitValues(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{Values: []float64{1.2345}})
	require.NoError(t, err)

	values, spacing := fl.Locator(-100, 100)
	require.Equal(t, []float64{1.2345}, values)
	require.Equal(t, 1.1, spacing)
	// Sentinel spacing is coarser than 1, so auto labels carry no
	// fractional digits.
	require.Equal(t, []string{"1"}, fl.Formatter(values, spacing))
}

func TestScalarEmptyRange(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{Spacing: 1})
	require.NoError(t, err)

	values, spacing := fl.Locator(5.1, 5.9)
	require.Empty(t, values)
	require.Equal(t, 1.0, spacing)
	require.Empty(t, fl.Formatter(values, spacing))

	values, labels := fl.TickLabels(5.1, 5.9)
	require.Empty(t, values)
	require.Empty(t, labels)
}

func TestScalarLocatorIdempotent(t *testing.T) {
	fl, err := NewScalar(ScalarConfig{Count: 6})
	require.NoError(t, err)

	v1, s1 := fl.Locator(-2.7, 9.4)
	v2, s2 := fl.Locator(-2.7, 9.4)
	require.Equal(t, v1, v2)
	require.Equal(t, s1, s2)
}
