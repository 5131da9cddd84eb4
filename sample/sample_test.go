// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New([]float64{})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New([]float64{1, math.NaN(), 3})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New([]float64{1, math.Inf(-1)})
	require.ErrorIs(t, err, ErrInvalidArgument)

	s, err := New([]float64{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []float64{3, 1, 2}, s.Values())
}

func TestImmutability(t *testing.T) {
	xs := []float64{3, 1, 2}
	s, err := New(xs)
	require.NoError(t, err)

	// Mutating the input after construction must not be visible.
	xs[0] = 99
	require.Equal(t, []float64{3, 1, 2}, s.Values())

	// Mutating a returned copy must not be visible either.
	vs := s.Values()
	vs[1] = 99
	require.Equal(t, []float64{3, 1, 2}, s.Values())
}

func TestMoments(t *testing.T) {
	s, err := New([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.InDelta(t, 2.5, s.Mean(), 1e-12)
	require.Equal(t, 1.0, s.Min())
	require.Equal(t, 4.0, s.Max())

	v, err := s.Variance()
	require.NoError(t, err)
	require.InDelta(t, 5.0/3, v, 1e-12)

	sd, err := s.StdDev()
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(5.0/3), sd, 1e-12)

	require.InDelta(t, 1.25, s.PopVariance(), 1e-12)
	require.InDelta(t, math.Sqrt(1.25), s.PopStdDev(), 1e-12)
}

func TestInsufficientData(t *testing.T) {
	s, err := New([]float64{5})
	require.NoError(t, err)

	_, err = s.Variance()
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = s.StdDev()
	require.ErrorIs(t, err, ErrInsufficientData)

	// Population moments are defined down to a single observation.
	require.Equal(t, 0.0, s.PopVariance())
	require.Equal(t, 0.0, s.PopStdDev())
}

func TestQuantile(t *testing.T) {
	s, err := New([]float64{4, 1, 3, 2})
	require.NoError(t, err)

	// Linear interpolation at rank p*(n-1) over [1 2 3 4].
	for _, c := range []struct{ p, want float64 }{
		{0, 1},
		{1, 4},
		{0.5, 2.5},
		{0.25, 1.75},
		{1.0 / 3, 2},
		{0.9, 3.7},
	} {
		got, err := s.Quantile(c.p)
		require.NoError(t, err)
		require.InDelta(t, c.want, got, 1e-12, "p=%v", c.p)
	}

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := s.Quantile(p)
		require.ErrorIs(t, err, ErrInvalidArgument, "p=%v", p)
	}
}

func TestQuantileSingle(t *testing.T) {
	s, err := New([]float64{7.5})
	require.NoError(t, err)
	for _, p := range []float64{0, 0.5, 1} {
		got, err := s.Quantile(p)
		require.NoError(t, err)
		require.Equal(t, 7.5, got)
	}
}

func TestQuantileSorted(t *testing.T) {
	got, err := QuantileSorted([]float64{10, 20}, 0.75)
	require.NoError(t, err)
	require.InDelta(t, 17.5, got, 1e-12)

	_, err = QuantileSorted(nil, 0.5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
