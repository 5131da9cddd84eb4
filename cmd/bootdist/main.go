// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bootdist estimates the sampling distribution of a statistic
// by bootstrap resampling and prints its standard error and
// percentile confidence interval, plus a sketch of the distribution's
// density.
//
// With no inputs or with "-", it reads observations from stdin. With
// one input it bootstraps a single-sample statistic:
//
//	mean     arithmetic mean (default)
//	median   median
//	stddev   sample standard deviation
//
// With two inputs it bootstraps a two-group statistic of the first
// group against the second:
//
//	meandiff     difference of means (default)
//	cohend       Cohen's d
//	overlap      misclassification rate at the two-group threshold
//	superiority  probability that a group-one observation exceeds
//	             a group-two observation
//
// Inputs hold whitespace-separated numbers; blank lines and lines
// starting with "#" are ignored.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/boot/effectsize"
	"github.com/statkit/boot/internal/numio"
	"github.com/statkit/boot/resample"
	"github.com/statkit/boot/sample"
)

var oneStats = map[string]resample.Statistic{
	"mean":   resample.Mean,
	"median": resample.Median,
	"stddev": resample.StdDev,
}

var twoStats = map[string]resample.PairStatistic{
	"meandiff":    resample.MeanDiff,
	"cohend":      effectsize.CohenDStat,
	"overlap":     effectsize.OverlapStat,
	"superiority": effectsize.SuperiorityStat,
}

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [input [input2]]

bootdist estimates the sampling distribution of a statistic by
bootstrap resampling and prints its standard error and percentile
confidence interval. With no inputs or with "-", it reads
observations from stdin; with one input it bootstraps a single-sample
statistic (mean, median, stddev); with two inputs it bootstraps a
two-group statistic (meandiff, cohend, overlap, superiority) of the
first group against the second.

`, os.Args[0])
		flag.PrintDefaults()
	}
	iters := flag.Int("n", 1001, "number of bootstrap `iterations`")
	statName := flag.String("stat", "", "`statistic` to bootstrap (default mean, or meandiff for two groups)")
	seed := flag.Uint64("seed", 0, "random `seed` for reproducible runs (0 means nondeterministic)")
	ciBounds := flag.String("ci", "5,95", "confidence interval `percentiles`, comma-separated")
	workers := flag.Int("workers", 1, "parallel `workers` for the iteration loop (0 means GOMAXPROCS)")
	demo := flag.Bool("demo", false, "ignore inputs and bootstrap two synthetic gaussian groups")
	flag.Parse()

	lo, hi, err := parseCI(*ciBounds)
	if err != nil {
		log.Fatal(err)
	}
	var opts []resample.Option
	if *seed != 0 {
		opts = append(opts, resample.WithSeed(*seed, 0))
	}

	args := flag.Args()
	switch {
	case *demo:
		a, b := demoGroups(*seed)
		runTwo(a, b, *statName, *iters, *workers, lo, hi, opts)
	case len(args) <= 1:
		xs, err := numio.ReadAll(args)
		if err != nil {
			log.Fatal(err)
		}
		runOne(xs, *statName, *iters, *workers, lo, hi, opts)
	case len(args) == 2:
		a, err := numio.ReadAll(args[:1])
		if err != nil {
			log.Fatal(err)
		}
		b, err := numio.ReadAll(args[1:])
		if err != nil {
			log.Fatal(err)
		}
		runTwo(a, b, *statName, *iters, *workers, lo, hi, opts)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runOne(xs []float64, statName string, iters, workers int, lo, hi float64, opts []resample.Option) {
	if statName == "" {
		statName = "mean"
	}
	st, ok := oneStats[statName]
	if !ok {
		log.Fatalf("unknown statistic %q for one group", statName)
	}
	r, err := resample.New(xs, st, opts...)
	if err != nil {
		log.Fatal(err)
	}
	printGroup("sample", xs)
	d, err := run(r.Run, r.RunParallel, iters, workers)
	if err != nil {
		log.Fatal(err)
	}
	printDist(st.Name, d, lo, hi)
}

func runTwo(a, b []float64, statName string, iters, workers int, lo, hi float64, opts []resample.Option) {
	if statName == "" {
		statName = "meandiff"
	}
	st, ok := twoStats[statName]
	if !ok {
		log.Fatalf("unknown statistic %q for two groups", statName)
	}
	t, err := resample.NewTwoSample(a, b, st, opts...)
	if err != nil {
		log.Fatal(err)
	}
	printGroup("group a", a)
	printGroup("group b", b)
	d, err := run(t.Run, t.RunParallel, iters, workers)
	if err != nil {
		log.Fatal(err)
	}
	printDist(st.Name, d, lo, hi)
}

func run(seq func(int) (*resample.Distribution, error), par func(int, int) (*resample.Distribution, error), iters, workers int) (*resample.Distribution, error) {
	if workers == 1 {
		return seq(iters)
	}
	return par(iters, workers)
}

func printGroup(name string, xs []float64) {
	s, err := sample.New(xs)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	fmt.Printf("%s: n %d  mean %.6g", name, s.Len(), s.Mean())
	if sd, err := s.StdDev(); err == nil {
		fmt.Printf("  std dev %.6g", sd)
	}
	fmt.Println()
}

func printDist(statName string, d *resample.Distribution, lo, hi float64) {
	low, high, err := d.CI(lo, hi)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: center %.6g  stderr %.6g  ci%.0f [%.6g, %.6g]  (%d iterations)\n",
		statName, d.Center, d.StdErr(), 100*(hi-lo), low, high, len(d.Values))
	fmt.Println()
	fprintKDE(os.Stdout, d.Values)
}

// fprintKDE prints a kernel density sketch of xs, one row per
// evaluation point.
func fprintKDE(w io.Writer, xs []float64) {
	const (
		rows  = 20
		width = 50
	)
	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	samp.Sort()
	min, max := samp.Xs[0], samp.Xs[len(samp.Xs)-1]
	if min == max {
		return
	}
	pad := (max - min) / 10
	min, max = min-pad, max+pad

	kde := &stats.KDE{Sample: samp}
	pdf := make([]float64, rows)
	peak := 0.0
	for i := range pdf {
		x := min + (max-min)*float64(i)/float64(rows-1)
		pdf[i] = kde.PDF(x)
		if pdf[i] > peak {
			peak = pdf[i]
		}
	}
	if peak == 0 {
		return
	}
	for i, p := range pdf {
		x := min + (max-min)*float64(i)/float64(rows-1)
		fmt.Fprintf(w, "%12.5g %s\n", x, strings.Repeat("*", int(p/peak*width+0.5)))
	}
}

// parseCI parses "5,95"-style percentile bounds into ranks in [0, 1].
func parseCI(s string) (lo, hi float64, err error) {
	loStr, hiStr, ok := strings.Cut(s, ",")
	if ok {
		lo, err = strconv.ParseFloat(strings.TrimSpace(loStr), 64)
		if err == nil {
			hi, err = strconv.ParseFloat(strings.TrimSpace(hiStr), 64)
		}
	}
	if !ok || err != nil || lo < 0 || hi > 100 || lo > hi {
		return 0, 0, fmt.Errorf("invalid -ci bounds %q", s)
	}
	return lo / 100, hi / 100, nil
}

// demoGroups generates two gaussian groups resembling adult heights
// in cm, the classic effect-size example.
func demoGroups(seed uint64) (a, b []float64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	distA := distuv.Normal{Mu: 178, Sigma: 7.7, Src: rand.NewPCG(seed, 1)}
	distB := distuv.Normal{Mu: 163, Sigma: 7.3, Src: rand.NewPCG(seed, 2)}
	a = make([]float64, 1000)
	b = make([]float64, 1000)
	for i := range a {
		a[i] = distA.Rand()
	}
	for i := range b {
		b[i] = distB.Rand()
	}
	return a, b
}
