// Public domain.

// Package stats summarizes flattened catalog values.
package stats

import (
	"math"
	"sort"

	xrand "golang.org/x/exp/rand"
)

// Summary describes the finite values of a sample.
type Summary struct {
	N      int
	NaN    int // count of values excluded as not finite
	Mean   float64
	Median float64
	Std    float64 // population standard deviation
	Min    float64
	Max    float64
}

// Summarize computes a Summary of x.  Statistics of an empty sample
// (no finite values) are NaN.
func Summarize(x []float64) Summary {
	f := Finite(x)
	s := Summary{N: len(f), NaN: len(x) - len(f)}
	if len(f) == 0 {
		nan := math.NaN()
		s.Mean, s.Median, s.Std, s.Min, s.Max = nan, nan, nan, nan, nan
		return s
	}
	sort.Float64s(f)
	var sum float64
	for _, v := range f {
		sum += v
	}
	s.Mean = sum / float64(len(f))
	var ss float64
	for _, v := range f {
		d := v - s.Mean
		ss += d * d
	}
	s.Std = math.Sqrt(ss / float64(len(f)))
	s.Median = Quantile(f, .5)
	s.Min = f[0]
	s.Max = f[len(f)-1]
	return s
}

// Finite returns a new slice holding the finite values of x.
func Finite(x []float64) []float64 {
	f := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			f = append(f, v)
		}
	}
	return f
}

// Quantile returns the q quantile of sorted values, interpolating linearly
// between closest ranks.  Sorted must be non-empty and in increasing order.
// Q is clamped to [0, 1].
func Quantile(sorted []float64, q float64) float64 {
	q = math.Max(0, math.Min(1, q))
	h := q * float64(len(sorted)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Median returns the median of the finite values of x, or NaN if there
// are none.
func Median(x []float64) float64 {
	f := Finite(x)
	if len(f) == 0 {
		return math.NaN()
	}
	sort.Float64s(f)
	return Quantile(f, .5)
}

// NewRand returns a random source for Bootstrap.  Seed 0 selects a
// repeatable default.
func NewRand(seed uint64) *xrand.Rand {
	rnd := xrand.New(&xrand.PCGSource{})
	if seed == 0 {
		seed = 3
	}
	rnd.Seed(seed)
	return rnd
}

// Interval is a two sided confidence interval.
type Interval struct {
	Lo    float64
	Hi    float64
	Level float64
}

// ValidLevel reports whether level is a usable confidence level, strictly
// between 0 and 1.
func ValidLevel(level float64) bool {
	return level > 0 && level < 1
}

// BootstrapMedian estimates a confidence interval of the median of x by
// resampling the finite values of x with replacement n times.  Level is
// the two sided confidence level, for example .68.
//
// The interval is NaN when x has no finite values, n < 1, or level is
// not in (0, 1).
func BootstrapMedian(x []float64, n int, level float64, rnd *xrand.Rand) Interval {
	f := Finite(x)
	iv := Interval{Lo: math.NaN(), Hi: math.NaN(), Level: level}
	if len(f) == 0 || n < 1 || !ValidLevel(level) {
		return iv
	}
	meds := make([]float64, n)
	re := make([]float64, len(f))
	for i := range meds {
		for j := range re {
			re[j] = f[rnd.Intn(len(f))]
		}
		sort.Float64s(re)
		meds[i] = Quantile(re, .5)
	}
	sort.Float64s(meds)
	tail := (1 - level) / 2
	iv.Lo = Quantile(meds, tail)
	iv.Hi = Quantile(meds, 1-tail)
	return iv
}
