// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample provides an immutable sample of real-valued
// observations, along with the moments and order statistics the
// resampling packages are built on.
package sample

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors shared across the module. Callers test for them
// with errors.Is.
var (
	// ErrInvalidArgument reports a malformed input: an empty
	// sample, a non-finite observation, or an out-of-range
	// parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientData reports a sample too small for the
	// requested statistic.
	ErrInsufficientData = errors.New("insufficient data")
)

// A Sample is an ordered, fixed-size collection of float64
// observations. It is immutable once constructed: New copies its
// input and accessors never expose internal state.
type Sample struct {
	xs     []float64
	sorted []float64
}

// New constructs a Sample from xs. It fails with ErrInvalidArgument
// if xs is empty or contains a NaN or infinite observation.
func New(xs []float64) (*Sample, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidArgument)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: observation %d is %v", ErrInvalidArgument, i, x)
		}
	}
	s := &Sample{xs: append([]float64(nil), xs...)}
	s.sorted = append([]float64(nil), s.xs...)
	sort.Float64s(s.sorted)
	return s, nil
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.xs)
}

// Values returns a copy of the observations in their original order.
func (s *Sample) Values() []float64 {
	return append([]float64(nil), s.xs...)
}

// Min returns the smallest observation.
func (s *Sample) Min() float64 {
	return s.sorted[0]
}

// Max returns the largest observation.
func (s *Sample) Max() float64 {
	return s.sorted[len(s.sorted)-1]
}

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 {
	return stat.Mean(s.xs, nil)
}

// Variance returns the Bessel-corrected sample variance. It fails
// with ErrInsufficientData if the sample has fewer than two
// observations.
func (s *Sample) Variance() (float64, error) {
	if len(s.xs) < 2 {
		return 0, fmt.Errorf("%w: variance needs at least 2 observations, have %d", ErrInsufficientData, len(s.xs))
	}
	return stat.Variance(s.xs, nil), nil
}

// StdDev returns the Bessel-corrected sample standard deviation. It
// fails with ErrInsufficientData if the sample has fewer than two
// observations.
func (s *Sample) StdDev() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// PopVariance returns the population variance (normalized by n, not
// n-1). It is 0 for a single observation.
func (s *Sample) PopVariance() float64 {
	return stat.MomentAbout(2, s.xs, s.Mean(), nil)
}

// PopStdDev returns the population standard deviation.
func (s *Sample) PopStdDev() float64 {
	return math.Sqrt(s.PopVariance())
}

// Quantile returns the p-quantile of the sample for p in [0, 1],
// computed by linear interpolation at rank p*(n-1) over the sorted
// observations (the R-7 convention, as used by numpy.percentile).
// It fails with ErrInvalidArgument if p is outside [0, 1].
func (s *Sample) Quantile(p float64) (float64, error) {
	return QuantileSorted(s.sorted, p)
}

// QuantileSorted is Quantile over an already-sorted slice. sorted
// must be non-empty and in ascending order.
func QuantileSorted(sorted []float64, p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: quantile %v outside [0, 1]", ErrInvalidArgument, p)
	}
	if len(sorted) == 0 {
		return 0, fmt.Errorf("%w: empty sample", ErrInvalidArgument)
	}
	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}
