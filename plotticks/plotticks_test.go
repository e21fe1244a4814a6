// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotticks

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/astrovis/go-skyticks/angle"
	"github.com/astrovis/go-skyticks/ticks"
)

func TestTickerAngle(t *testing.T) {
	fl, err := ticks.NewAngle(ticks.AngleConfig{
		Spacing: angle.Degrees(45),
		Format:  "dd",
	})
	require.NoError(t, err)

	got := Ticker{FL: fl}.Ticks(0, 90)
	require.Equal(t, []plot.Tick{
		{Value: 0, Label: "0°"},
		{Value: 45, Label: "45°"},
		{Value: 90, Label: "90°"},
	}, got)
}

func TestTickerScalar(t *testing.T) {
	fl, err := ticks.NewScalar(ticks.ScalarConfig{Spacing: 0.5, Format: "x.x"})
	require.NoError(t, err)

	got := Ticker{FL: fl}.Ticks(0, 1)
	require.Len(t, got, 3)
	require.Equal(t, "0.5", got[1].Label)
}

func TestTickerEmptyRange(t *testing.T) {
	fl, err := ticks.NewScalar(ticks.ScalarConfig{Spacing: 1})
	require.NoError(t, err)

	require.Empty(t, Ticker{FL: fl}.Ticks(5.1, 5.9))
}
