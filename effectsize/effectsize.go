// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package effectsize provides two-group effect-size statistics:
// Cohen's d, the overlap (misclassification) rate, and the
// probability of superiority.
//
// Each is a pure function of two groups, with a PairStatistic
// wrapper for bootstrapping its sampling distribution via
// resample.NewTwoSample.
package effectsize

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/statkit/boot/resample"
)

// CohenD returns Cohen's d, the standardized difference between the
// group means:
//
//	(mean(a) - mean(b)) / sqrt((n_a*var(a) + n_b*var(b)) / (n_a + n_b))
//
// where var is the population variance. The result is undefined (NaN)
// when both groups are constant.
func CohenD(a, b []float64) float64 {
	ma, mb := stat.Mean(a, nil), stat.Mean(b, nil)
	va := stat.MomentAbout(2, a, ma, nil)
	vb := stat.MomentAbout(2, b, mb, nil)
	na, nb := float64(len(a)), float64(len(b))
	pooled := (na*va + nb*vb) / (na + nb)
	return (ma - mb) / math.Sqrt(pooled)
}

// Overlap returns the misclassification rate when the two groups are
// separated at the threshold
//
//	(sd_a*mean_b + sd_b*mean_a) / (sd_a + sd_b)
//
// with sd the population standard deviation: the number of
// observations of the higher-mean group below the threshold plus the
// number of the lower-mean group above it, over the total number of
// observations. 0 means the groups are perfectly separated.
func Overlap(a, b []float64) float64 {
	ma, mb := stat.Mean(a, nil), stat.Mean(b, nil)
	sa := math.Sqrt(stat.MomentAbout(2, a, ma, nil))
	sb := math.Sqrt(stat.MomentAbout(2, b, mb, nil))
	if ma < mb {
		a, b = b, a
		ma, mb = mb, ma
		sa, sb = sb, sa
	}
	thresh := (sa*mb + sb*ma) / (sa + sb)
	wrong := 0
	for _, x := range a {
		if x < thresh {
			wrong++
		}
	}
	for _, y := range b {
		if y > thresh {
			wrong++
		}
	}
	return float64(wrong) / float64(len(a)+len(b))
}

// ProbabilityOfSuperiority returns the exact probability that a
// randomly chosen observation from a exceeds a randomly chosen
// observation from b, with ties counted as 1/2. It examines all
// len(a)*len(b) pairs, so it is quadratic in the group sizes.
func ProbabilityOfSuperiority(a, b []float64) float64 {
	wins := 0.0
	for _, x := range a {
		for _, y := range b {
			switch {
			case x > y:
				wins++
			case x == y:
				wins += 0.5
			}
		}
	}
	return wins / float64(len(a)*len(b))
}

// Statistics for bootstrapping the effect sizes with
// resample.NewTwoSample.
var (
	CohenDStat      = resample.PairStatistic{Name: "cohen-d", Min: 2, Func: CohenD}
	OverlapStat     = resample.PairStatistic{Name: "overlap", Min: 2, Func: Overlap}
	SuperiorityStat = resample.PairStatistic{Name: "superiority", Min: 1, Func: ProbabilityOfSuperiority}
)
