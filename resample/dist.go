// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/statkit/boot/sample"
)

// Default percentile bounds for confidence intervals: a 90% interval
// between the 5th and 95th percentiles.
const (
	DefaultCILo = 0.05
	DefaultCIHi = 0.95
)

// A Distribution is the empirical sampling distribution of a
// statistic: one value per resampling iteration.
type Distribution struct {
	// Values holds the statistic values in iteration order. Its
	// length equals the iteration count of the run that produced
	// it.
	Values []float64

	// Center is the median of Values.
	Center float64

	sorted []float64
}

func newDistribution(values []float64) *Distribution {
	samp := stats.Sample{Xs: append([]float64(nil), values...)}
	// Speed up order statistics.
	samp.Sort()
	return &Distribution{
		Values: values,
		Center: samp.Quantile(0.5),
		sorted: samp.Xs,
	}
}

// StdErr returns the standard error of the statistic: the population
// standard deviation of the sampling distribution. It is 0 exactly
// when the statistic was constant across all replicates.
func (d *Distribution) StdErr() float64 {
	if d.sorted[0] == d.sorted[len(d.sorted)-1] {
		// Exact zero for a constant distribution.
		return 0
	}
	mean := stat.Mean(d.Values, nil)
	return math.Sqrt(stat.MomentAbout(2, d.Values, mean, nil))
}

// CI returns the confidence interval between the lo and hi percentile
// ranks, each in [0, 1], computed by linear interpolation over the
// sorted distribution (see sample.QuantileSorted). It fails with
// ErrInvalidArgument if either rank is outside [0, 1] or lo > hi.
// The returned bounds satisfy low <= high and both lie within the
// range of observed statistic values.
func (d *Distribution) CI(lo, hi float64) (low, high float64, err error) {
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: percentile bounds %v > %v", ErrInvalidArgument, lo, hi)
	}
	low, err = sample.QuantileSorted(d.sorted, lo)
	if err != nil {
		return 0, 0, err
	}
	high, err = sample.QuantileSorted(d.sorted, hi)
	if err != nil {
		return 0, 0, err
	}
	return low, high, nil
}
