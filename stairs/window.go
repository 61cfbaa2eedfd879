package stairs

import (
	"math"

	"github.com/cockroachdb/errors"
)

const opSampleWindow = "SampleWindow"

// AggFunc reduces s over the window [lower, upper]. lowerHow and upperHow
// pick the one-sided limit taken at each end; integral-based aggregates
// ignore them.
type AggFunc func(s *Stairs, lower, upper float64, lowerHow, upperHow Side) (float64, error)

// SampleWindow evaluates agg over [x+leftDelta, x+rightDelta] for every x.
// NaN focal points yield NaN.
//
// Errors: ErrInvalidWindow unless leftDelta ≤ 0 ≤ rightDelta and
// rightDelta > leftDelta.
func (s *Stairs) SampleWindow(xs []float64, agg AggFunc, leftDelta, rightDelta float64, lowerHow, upperHow Side) ([]float64, error) {
	if agg == nil {
		return nil, stairsErrorf(opSampleWindow, errors.Wrap(ErrInvalidWindow, "nil aggregate"))
	}
	if isNaN(leftDelta) || isNaN(rightDelta) || leftDelta > 0 || rightDelta < 0 || !(rightDelta > leftDelta) {
		return nil, stairsErrorf(opSampleWindow,
			errors.Wrapf(ErrInvalidWindow, "left=%v right=%v", leftDelta, rightDelta))
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		if isNaN(x) {
			out[i] = x

			continue
		}
		v, err := agg(s, x+leftDelta, x+rightDelta, lowerHow, upperHow)
		if err != nil {
			return nil, stairsErrorf(opSampleWindow, errors.Wrapf(err, "x=%v", x))
		}
		out[i] = v
	}

	return out, nil
}

// emptyAsNaN turns an empty window distribution into a NaN result.
func emptyAsNaN(v float64, err error) (float64, error) {
	if errors.Is(err, ErrEmptyDistribution) {
		return math.NaN(), nil
	}

	return v, err
}

// AggMean is the mean over the window.
func AggMean(s *Stairs, lower, upper float64, _, _ Side) (float64, error) {
	return s.MeanOver(lower, upper)
}

// AggIntegral is the integral over the window.
func AggIntegral(s *Stairs, lower, upper float64, _, _ Side) (float64, error) {
	return s.IntegralOver(lower, upper)
}

// AggMedian is the duration-weighted median over the window.
func AggMedian(s *Stairs, lower, upper float64, _, _ Side) (float64, error) {
	return emptyAsNaN(s.Median(lower, upper))
}

// AggMode is the longest-held level over the window.
func AggMode(s *Stairs, lower, upper float64, _, _ Side) (float64, error) {
	return emptyAsNaN(s.Mode(lower, upper))
}

// AggVar is the variance over the window.
func AggVar(s *Stairs, lower, upper float64, _, _ Side) (float64, error) {
	return emptyAsNaN(s.Var(lower, upper))
}

// AggStd is the standard deviation over the window.
func AggStd(s *Stairs, lower, upper float64, _, _ Side) (float64, error) {
	return emptyAsNaN(s.Std(lower, upper))
}

// AggMin is the smallest level attained in the window: the limit at lower
// per lowerHow, every level starting strictly inside, and the level at
// upper when upperHow is SideRight.
func AggMin(s *Stairs, lower, upper float64, lowerHow, upperHow Side) (float64, error) {
	return s.windowExtremum(lower, upper, lowerHow, upperHow, func(a, b float64) bool { return a < b })
}

// AggMax is AggMin for the largest level.
func AggMax(s *Stairs, lower, upper float64, lowerHow, upperHow Side) (float64, error) {
	return s.windowExtremum(lower, upper, lowerHow, upperHow, func(a, b float64) bool { return a > b })
}

func (s *Stairs) windowExtremum(lower, upper float64, lowerHow, upperHow Side, better func(a, b float64) bool) (float64, error) {
	if err := validateBounds(lower, upper); err != nil {
		return math.NaN(), err
	}
	out := math.NaN()
	consider := func(v float64) {
		if !isNaN(v) && (isNaN(out) || better(v, out)) {
			out = v
		}
	}

	consider(s.Limit(lower, lowerHow))
	vs := s.cumulative()
	for i := s.countBefore(lower, SideRight); i < len(s.points) && s.points[i] < upper; i++ {
		consider(vs[i])
	}
	if upperHow == SideRight {
		consider(s.Limit(upper, SideRight))
	}

	return out, nil
}
