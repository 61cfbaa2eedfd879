// SPDX-License-Identifier: MIT

// Package stairs: value distribution of a step function.
//
// Construction (empirical CDF of a step function):
//   - Stage 1: clip to the window and collect bounded, defined spans.
//   - Stage 2: group total duration by distinct level; sort levels ascending.
//   - Stage 3: convert cumulative duration to cumulative percentage.
//   - Stage 4: lay out a function over [0, 100] stepping to each level at its
//     cumulative-percentage breakpoint (PercentileStairs), or over the value
//     axis stepping by each level's share (ECDFStairs).
//
// Unbounded spans (before the first / after the last breakpoint) carry no
// finite duration and never contribute.

package stairs

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

const (
	opPercentile = "Percentile"
	opECDF       = "ECDF"
	opMode       = "Mode"
	opVar        = "Var"
)

// distribution is the duration-weighted set of distinct levels.
type distribution struct {
	levels  []float64 // ascending
	weights []float64 // total duration per level
	total   float64
}

// durations builds the distribution of s over [lower, upper).
func (s *Stairs) durations(lower, upper float64) (distribution, error) {
	c, err := s.Clip(lower, upper)
	if err != nil {
		return distribution{}, err
	}
	ps, vs := c.points, c.cumulative()

	byLevel := make(map[float64]float64)
	for i := 0; i+1 < len(ps); i++ {
		if isNaN(vs[i]) {
			continue
		}
		if w := ps[i+1] - ps[i]; w > 0 {
			byLevel[vs[i]] += w
		}
	}
	if len(byLevel) == 0 {
		return distribution{}, errors.WithStack(ErrEmptyDistribution)
	}

	d := distribution{levels: make([]float64, 0, len(byLevel))}
	for v := range byLevel {
		d.levels = append(d.levels, v)
	}
	sort.Float64s(d.levels)
	d.weights = make([]float64, len(d.levels))
	for i, v := range d.levels {
		d.weights[i] = byLevel[v]
		d.total += d.weights[i]
	}

	return d, nil
}

// PercentileStairs returns the percentile function of s over [lower, upper):
// a left-closed function on [0, 100) whose value at q is the q-th
// duration-weighted percentile. It is NaN outside [0, 100).
func (s *Stairs) PercentileStairs(lower, upper float64) (*Stairs, error) {
	d, err := s.durations(lower, upper)
	if err != nil {
		return nil, stairsErrorf(opPercentile, err)
	}

	k := len(d.levels)
	ps := make([]float64, 0, k+1)
	vs := make([]float64, 0, k+1)
	ps = append(ps, 0)
	vs = append(vs, d.levels[0])
	cum := 0.0
	for i := 1; i < k; i++ {
		cum += d.weights[i-1]
		ps = append(ps, cum/d.total*100)
		vs = append(vs, d.levels[i])
	}
	ps = append(ps, 100)
	vs = append(vs, math.NaN())

	return FromValues(math.NaN(), ps, vs, WithClosed(Left), WithConfig(s.cfg), WithLogger(s.logger))
}

// Percentile returns the q-th percentile (0 ≤ q ≤ 100) of s over [lower, upper).
// q = 100 returns the largest level.
func (s *Stairs) Percentile(q, lower, upper float64) (float64, error) {
	if isNaN(q) || q < 0 || q > 100 {
		return math.NaN(), stairsErrorf(opPercentile, errors.Wrapf(ErrInvalidPercentile, "%v", q))
	}
	p, err := s.PercentileStairs(lower, upper)
	if err != nil {
		return math.NaN(), err
	}
	if q == 100 {
		return p.Limit(100, SideLeft), nil
	}

	return p.Limit(q, SideRight), nil
}

// Median is the 50th percentile.
func (s *Stairs) Median(lower, upper float64) (float64, error) {
	return s.Percentile(50, lower, upper)
}

// ECDFStairs returns the empirical CDF of s's levels over [lower, upper):
// F(v) is the share of duration spent at levels ≤ v (right limit).
func (s *Stairs) ECDFStairs(lower, upper float64) (*Stairs, error) {
	d, err := s.durations(lower, upper)
	if err != nil {
		return nil, stairsErrorf(opECDF, err)
	}
	shares := make([]float64, len(d.weights))
	for i, w := range d.weights {
		shares[i] = w / d.total
	}

	return FromDeltas(0, d.levels, shares, WithClosed(Left), WithLogger(s.logger))
}

// ECDF returns F(x) for the empirical CDF over [lower, upper).
func (s *Stairs) ECDF(x, lower, upper float64) (float64, error) {
	f, err := s.ECDFStairs(lower, upper)
	if err != nil {
		return math.NaN(), err
	}

	return f.Limit(x, SideRight), nil
}

// Mode returns the level held for the longest total duration over
// [lower, upper); ties go to the smallest level.
func (s *Stairs) Mode(lower, upper float64) (float64, error) {
	d, err := s.durations(lower, upper)
	if err != nil {
		return math.NaN(), stairsErrorf(opMode, err)
	}
	best := 0
	for i, w := range d.weights {
		if w > d.weights[best] {
			best = i
		}
	}

	return d.levels[best], nil
}

// Var returns the duration-weighted variance over [lower, upper), computed
// as ∫₀¹⁰⁰ (P(q) − mean)² dq / 100 over the percentile function P.
func (s *Stairs) Var(lower, upper float64) (float64, error) {
	p, err := s.PercentileStairs(lower, upper)
	if err != nil {
		return math.NaN(), stairsErrorf(opVar, err)
	}
	mean, err := s.MeanOver(lower, upper)
	if err != nil {
		return math.NaN(), stairsErrorf(opVar, err)
	}
	sq := p.Map(func(v float64) float64 {
		dv := v - mean

		return dv * dv
	})
	// the window is exactly 100 wide, so the mean over it is integral / 100
	v, err := sq.MeanOver(0, 100)
	if err != nil {
		return math.NaN(), stairsErrorf(opVar, err)
	}

	return v, nil
}

// Std returns the square root of Var.
func (s *Stairs) Std(lower, upper float64) (float64, error) {
	v, err := s.Var(lower, upper)
	if err != nil {
		return math.NaN(), err
	}

	return math.Sqrt(v), nil
}

// MinOver returns the smallest defined level over [lower, upper), including
// the unbounded leading/trailing levels when the window is unbounded there.
func (s *Stairs) MinOver(lower, upper float64) (float64, error) {
	return s.extremum(lower, upper, func(a, b float64) bool { return a < b })
}

// MaxOver returns the largest defined level over [lower, upper).
func (s *Stairs) MaxOver(lower, upper float64) (float64, error) {
	return s.extremum(lower, upper, func(a, b float64) bool { return a > b })
}

func (s *Stairs) extremum(lower, upper float64, better func(a, b float64) bool) (float64, error) {
	c, err := s.Clip(lower, upper)
	if err != nil {
		return math.NaN(), stairsErrorf("extremum", err)
	}
	out := math.NaN()
	consider := func(v float64) {
		if !isNaN(v) && (isNaN(out) || better(v, out)) {
			out = v
		}
	}
	consider(c.initial)
	for _, v := range c.cumulative() {
		consider(v)
	}

	return out, nil
}
