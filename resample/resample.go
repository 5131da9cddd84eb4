// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample estimates the sampling distribution of a statistic
// by bootstrap resampling: drawing same-size replicates of an
// observed sample with replacement, applying a statistic to each
// replicate, and collecting the resulting values into an empirical
// Distribution from which a standard error and a percentile
// confidence interval are derived.
//
// A Resampler bootstraps a statistic of a single sample. A TwoSample
// bootstraps a comparative statistic of two independent samples,
// resampling each group at its own size. Behavior varies by the
// injected Statistic or PairStatistic value, not by subtyping.
package resample

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/statkit/boot/sample"
)

// Sentinel errors, shared with package sample so errors.Is works
// across the module.
var (
	ErrInvalidArgument  = sample.ErrInvalidArgument
	ErrInsufficientData = sample.ErrInsufficientData
)

// A Statistic summarizes a sample as a single scalar.
//
// Func must be pure: the same replicate always yields the same value
// and no state is retained between calls. Min is the smallest sample
// size for which the statistic is defined; the resampler rejects
// smaller samples up front with ErrInsufficientData rather than
// letting Func return NaN.
type Statistic struct {
	Name string
	Min  int
	Func func(xs []float64) float64
}

// Built-in single-sample statistics.
var (
	// Mean is the arithmetic mean. It is the default statistic.
	Mean = Statistic{"mean", 1, meanOf}

	// Median is the sample median.
	Median = Statistic{"median", 1, medianOf}

	// StdDev is the Bessel-corrected sample standard deviation.
	// It is undefined for samples of fewer than two observations.
	StdDev = Statistic{"stddev", 2, stddevOf}
)

func meanOf(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

func stddevOf(xs []float64) float64 {
	return stat.StdDev(xs, nil)
}

func medianOf(xs []float64) float64 {
	ys := append([]float64(nil), xs...)
	sort.Float64s(ys)
	n := len(ys)
	if n%2 == 1 {
		return ys[n/2]
	}
	return (ys[n/2-1] + ys[n/2]) / 2
}

// A PairStatistic summarizes two samples as a single comparative
// scalar, such as a standardized mean difference. Min applies to
// each group independently. Func must be pure.
type PairStatistic struct {
	Name string
	Min  int
	Func func(a, b []float64) float64
}

// MeanDiff is the difference of group means, a - b. It is the
// default two-sample statistic.
var MeanDiff = PairStatistic{"mean-diff", 1, func(a, b []float64) float64 {
	return stat.Mean(a, nil) - stat.Mean(b, nil)
}}

// An Option configures a Resampler or TwoSample.
type Option func(*config)

type config struct {
	seed   [2]uint64
	seeded bool
}

// WithSeed seeds the resampler's random source with the two PCG seed
// words, making its replicate sequence reproducible. Without it, the
// resampler seeds itself from the process-wide source.
func WithSeed(seed1, seed2 uint64) Option {
	return func(c *config) {
		c.seed = [2]uint64{seed1, seed2}
		c.seeded = true
	}
}

func makeConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	if !c.seeded {
		c.seed = [2]uint64{rand.Uint64(), rand.Uint64()}
	}
	return c
}

// A Resampler bootstraps a statistic of one observed sample. It owns
// a copy of the sample and a seedable random source; it has no other
// state, so distinct Resamplers never interfere.
type Resampler struct {
	xs   []float64
	stat Statistic
	seed [2]uint64
	rng  *rand.Rand
}

// New constructs a Resampler over the observations xs. A zero-value
// stat selects Mean. It fails with ErrInvalidArgument if xs is empty
// or contains non-finite values, and with ErrInsufficientData if xs
// is smaller than the statistic's minimum size.
func New(xs []float64, stat Statistic, opts ...Option) (*Resampler, error) {
	if stat.Func == nil {
		stat = Mean
	}
	s, err := sample.New(xs)
	if err != nil {
		return nil, err
	}
	if s.Len() < stat.Min {
		return nil, fmt.Errorf("%w: %s needs at least %d observations, have %d", ErrInsufficientData, stat.Name, stat.Min, s.Len())
	}
	c := makeConfig(opts)
	return &Resampler{
		xs:   s.Values(),
		stat: stat,
		seed: c.seed,
		rng:  rand.New(rand.NewPCG(c.seed[0], c.seed[1])),
	}, nil
}

// Statistic returns the statistic this resampler applies to each
// replicate.
func (r *Resampler) Statistic() Statistic {
	return r.stat
}

// Resample returns a fresh replicate of the sample: a collection of
// the same length whose entries are drawn independently and
// uniformly, with replacement, from the observed sample. Its only
// side effect is consuming randomness.
func (r *Resampler) Resample() []float64 {
	out := make([]float64, len(r.xs))
	resampleInto(r.rng, r.xs, out)
	return out
}

func resampleInto(rng *rand.Rand, src, dst []float64) {
	for i := range dst {
		dst[i] = src[rng.IntN(len(src))]
	}
}

func (r *Resampler) newStep() func(*rand.Rand) float64 {
	buf := make([]float64, len(r.xs))
	return func(rng *rand.Rand) float64 {
		resampleInto(rng, r.xs, buf)
		return r.stat.Func(buf)
	}
}

// Run performs k independent replicate-and-statistic steps and
// returns the resulting sampling distribution. The distribution
// holds exactly k values in iteration order. It fails with
// ErrInvalidArgument if k <= 0.
func (r *Resampler) Run(k int) (*Distribution, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: iteration count %d", ErrInvalidArgument, k)
	}
	return newDistribution(runSeq(k, r.rng, r.newStep())), nil
}

// RunParallel is Run with the iteration loop split across workers.
// Each contiguous block of iterations draws from its own random
// stream derived from the resampler's seed and the block index, so
// replicates are uncorrelated across workers and the result is
// reproducible for a fixed seed and worker count. workers <= 0
// selects GOMAXPROCS.
func (r *Resampler) RunParallel(k, workers int) (*Distribution, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: iteration count %d", ErrInvalidArgument, k)
	}
	vals, err := runPar(k, workers, r.seed, r.newStep)
	if err != nil {
		return nil, err
	}
	return newDistribution(vals), nil
}

// A TwoSample bootstraps a comparative statistic of two independent
// samples. Each replicate pair preserves each group's own length.
type TwoSample struct {
	a, b []float64
	stat PairStatistic
	seed [2]uint64
	rng  *rand.Rand
}

// NewTwoSample constructs a TwoSample over the two groups. The
// groups may have different lengths. A zero-value stat selects
// MeanDiff. Validation matches New, applied to each group.
func NewTwoSample(a, b []float64, stat PairStatistic, opts ...Option) (*TwoSample, error) {
	if stat.Func == nil {
		stat = MeanDiff
	}
	sa, err := sample.New(a)
	if err != nil {
		return nil, fmt.Errorf("group a: %w", err)
	}
	sb, err := sample.New(b)
	if err != nil {
		return nil, fmt.Errorf("group b: %w", err)
	}
	if sa.Len() < stat.Min || sb.Len() < stat.Min {
		return nil, fmt.Errorf("%w: %s needs at least %d observations per group, have %d and %d", ErrInsufficientData, stat.Name, stat.Min, sa.Len(), sb.Len())
	}
	c := makeConfig(opts)
	return &TwoSample{
		a:    sa.Values(),
		b:    sb.Values(),
		stat: stat,
		seed: c.seed,
		rng:  rand.New(rand.NewPCG(c.seed[0], c.seed[1])),
	}, nil
}

// Statistic returns the comparative statistic this resampler applies
// to each replicate pair.
func (t *TwoSample) Statistic() PairStatistic {
	return t.stat
}

// Resample returns a fresh replicate of each group, drawn
// independently and preserving each group's own length.
func (t *TwoSample) Resample() (a, b []float64) {
	a = make([]float64, len(t.a))
	b = make([]float64, len(t.b))
	resampleInto(t.rng, t.a, a)
	resampleInto(t.rng, t.b, b)
	return a, b
}

func (t *TwoSample) newStep() func(*rand.Rand) float64 {
	bufA := make([]float64, len(t.a))
	bufB := make([]float64, len(t.b))
	return func(rng *rand.Rand) float64 {
		resampleInto(rng, t.a, bufA)
		resampleInto(rng, t.b, bufB)
		return t.stat.Func(bufA, bufB)
	}
}

// Run performs k independent replicate-and-statistic steps on the
// pair of groups. The contract matches Resampler.Run.
func (t *TwoSample) Run(k int) (*Distribution, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: iteration count %d", ErrInvalidArgument, k)
	}
	return newDistribution(runSeq(k, t.rng, t.newStep())), nil
}

// RunParallel is Run with the iteration loop split across workers.
// The contract matches Resampler.RunParallel.
func (t *TwoSample) RunParallel(k, workers int) (*Distribution, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: iteration count %d", ErrInvalidArgument, k)
	}
	vals, err := runPar(k, workers, t.seed, t.newStep)
	if err != nil {
		return nil, err
	}
	return newDistribution(vals), nil
}

func runSeq(k int, rng *rand.Rand, step func(*rand.Rand) float64) []float64 {
	vals := make([]float64, k)
	for i := range vals {
		vals[i] = step(rng)
	}
	return vals
}

func runPar(k, workers int, seed [2]uint64, newStep func() func(*rand.Rand) float64) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > k {
		workers = k
	}
	vals := make([]float64, k)
	chunk := (k + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, k)
		if lo >= hi {
			break
		}
		// Streams are partitioned by the PCG stream word, offset
		// by 1 so no block shares the sequential stream.
		rng := rand.New(rand.NewPCG(seed[0], seed[1]+uint64(w)+1))
		step := newStep()
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				vals[i] = step(rng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vals, nil
}
