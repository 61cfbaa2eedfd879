// SPDX-License-Identifier: MIT

// Package stairs: integral and mean.
//
// Definition:
//   - After clipping to [lower, upper), integral = Σ width_i × level_i over
//     the spans between consecutive breakpoints whose level is defined
//     (NaN spans are skipped); mean = integral / Σ width_i.
//   - Fewer than two breakpoints after clipping yields (0, NaN).
//
// Overflow:
//   - value × duration products over decades of hourly datetimes can
//     exceed float64. An infinite integral built from finite levels is
//     reported as ErrIntegralOverflow; the mean is still computed from
//     widths normalized by the total width first, so it stays finite.

package stairs

import (
	"math"

	"github.com/cockroachdb/errors"
)

const opIntegralAndMean = "IntegralAndMean"

// IntegralAndMean returns the integral and mean of s over [lower, upper).
// Whole-domain results are cached until the next mutation.
//
// Errors:
//   - ErrInvalidBounds for a bad window.
//   - ErrIntegralOverflow (mean still valid).
func (s *Stairs) IntegralAndMean(lower, upper float64) (float64, float64, error) {
	whole := math.IsInf(lower, -1) && math.IsInf(upper, 1)
	if whole && s.cache != nil {
		return s.cache.integral, s.cache.mean, s.cache.err
	}

	c, err := s.Clip(lower, upper)
	if err != nil {
		return 0, math.NaN(), stairsErrorf(opIntegralAndMean, err)
	}
	integral, mean, err := spanIntegral(c.points, c.cumulative())
	if err != nil {
		err = stairsErrorf(opIntegralAndMean, err)
	}
	if whole {
		s.cache = &integralMean{integral: integral, mean: mean, err: err}
	}

	return integral, mean, err
}

// spanIntegral integrates the levels between consecutive breakpoints.
func spanIntegral(ps, vs []float64) (float64, float64, error) {
	if len(ps) < 2 {
		return 0, math.NaN(), nil
	}

	// Stage 1: total defined width and raw area.
	var width, area float64
	finite := true
	for i := 0; i+1 < len(ps); i++ {
		h := vs[i]
		if isNaN(h) {
			continue
		}
		w := ps[i+1] - ps[i]
		width += w
		area += w * h
		if math.IsInf(h, 0) {
			finite = false
		}
	}
	if width == 0 {
		return 0, math.NaN(), nil
	}

	// Stage 2: a non-finite area from finite levels is an overflow; recover
	// the mean from normalized widths.
	if math.IsInf(area, 0) && finite {
		mean := 0.0
		for i := 0; i+1 < len(ps); i++ {
			if h := vs[i]; !isNaN(h) {
				mean += (ps[i+1] - ps[i]) / width * h
			}
		}

		return area, mean, errors.WithStack(ErrIntegralOverflow)
	}

	return area, area / width, nil
}

// Integral returns the integral of s over the whole domain.
func (s *Stairs) Integral() (float64, error) {
	integral, _, err := s.IntegralAndMean(negInf, posInf)

	return integral, err
}

// Mean returns the mean of s over the whole domain. The overflow condition
// of the integral does not affect the mean.
func (s *Stairs) Mean() float64 {
	_, mean, _ := s.IntegralAndMean(negInf, posInf)

	return mean
}

// IntegralOver is Integral restricted to [lower, upper).
func (s *Stairs) IntegralOver(lower, upper float64) (float64, error) {
	integral, _, err := s.IntegralAndMean(lower, upper)

	return integral, err
}

// MeanOver is Mean restricted to [lower, upper).
func (s *Stairs) MeanOver(lower, upper float64) (float64, error) {
	_, mean, err := s.IntegralAndMean(lower, upper)
	if errors.Is(err, ErrIntegralOverflow) {
		return mean, nil
	}

	return mean, err
}
