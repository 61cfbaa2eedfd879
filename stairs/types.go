// SPDX-License-Identifier: MIT

// Package stairs: the Stairs type and its constructors.
//
// Representation:
//   - initial: value on (-∞, points[0]] (or everywhere when there are no points).
//   - points:  strictly increasing breakpoints, never shared between instances.
//   - deltas / values: the two views, aligned with points; which one is
//     authoritative is tracked by view (see views.go).
//
// Invariants (restored by reduce after every combining operation):
//   - no duplicate breakpoints;
//   - no breakpoint whose value equals the preceding value (NaN == NaN).

package stairs

import (
	"sort"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/staircase/domain"
)

// Stairs is a step function. The zero value is not usable; build with New.
type Stairs struct {
	initial float64
	points  []float64
	deltas  []float64
	values  []float64
	view    viewState

	closed Closed
	cfg    domain.Config
	logger l.Wrapper

	// whole-domain integral and mean, nil until first requested
	cache *integralMean
}

// integralMean memoizes IntegralAndMean over (-∞, +∞).
type integralMean struct {
	integral float64
	mean     float64
	err      error
}

// New returns a constant function (DefaultInitialValue unless overridden).
// Complexity: O(1).
func New(opts ...Option) *Stairs {
	o := gatherOptions(opts...)

	return &Stairs{
		initial: o.initial,
		view:    deltasFresh,
		closed:  o.closed,
		cfg:     o.cfg,
		logger:  o.logger,
	}
}

// FromValues builds a function from its value view: the function equals
// initial up to points[0] and values[i] on the interval starting at
// points[i]. Points need not be sorted; duplicates keep the last value.
// Redundant breakpoints are removed.
func FromValues(initial float64, points, values []float64, opts ...Option) (*Stairs, error) {
	if len(points) != len(values) {
		return nil, stairsErrorf("FromValues", ErrLengthMismatch)
	}
	opts = append(opts, WithInitialValue(initial))
	s := New(opts...)
	ps, vs := sortPairs(points, values, false)
	s.setValues(ps, vs)
	s.reduce()

	return s, nil
}

// FromDeltas builds a function from its delta view: the function equals
// initial up to points[0] and changes by deltas[i] at points[i]. Points
// need not be sorted; duplicates are summed.
func FromDeltas(initial float64, points, deltas []float64, opts ...Option) (*Stairs, error) {
	if len(points) != len(deltas) {
		return nil, stairsErrorf("FromDeltas", ErrLengthMismatch)
	}
	opts = append(opts, WithInitialValue(initial))
	s := New(opts...)
	ps, ds := sortPairs(points, deltas, true)
	s.setDeltas(ps, ds)
	s.reduce()

	return s, nil
}

// sortPairs returns fresh sorted copies of (ks, vs), collapsing equal keys
// by summing (sum=true) or keeping the last occurrence.
func sortPairs(ks, vs []float64, sum bool) ([]float64, []float64) {
	idx := make([]int, len(ks))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return ks[idx[a]] < ks[idx[b]] })

	outK := make([]float64, 0, len(ks))
	outV := make([]float64, 0, len(ks))
	for _, i := range idx {
		n := len(outK)
		if n > 0 && outK[n-1] == ks[i] {
			if sum {
				outV[n-1] += vs[i]
			} else {
				outV[n-1] = vs[i]
			}

			continue
		}
		outK = append(outK, ks[i])
		outV = append(outV, vs[i])
	}

	return outK, outV
}

// derive returns an empty function carrying s's closedness, domain config
// and logger; used by every operation that returns a fresh instance.
func (s *Stairs) derive(initial float64) *Stairs {
	return &Stairs{
		initial: initial,
		view:    deltasFresh,
		closed:  s.closed,
		cfg:     s.cfg,
		logger:  s.logger,
	}
}

// InitialValue returns the value on (-∞, first breakpoint].
func (s *Stairs) InitialValue() float64 { return s.initial }

// Closed returns the closedness.
func (s *Stairs) Closed() Closed { return s.closed }

// Config returns the domain configuration.
func (s *Stairs) Config() domain.Config { return s.cfg }

// NumberOfSteps returns the number of breakpoints.
func (s *Stairs) NumberOfSteps() int { return len(s.points) }

// IsConstant reports whether s has no breakpoints.
func (s *Stairs) IsConstant() bool { return len(s.points) == 0 }

// StepPoints returns a copy of the breakpoints.
func (s *Stairs) StepPoints() []float64 { return cloneFloats(s.points) }

// StepChanges returns a copy of the delta view, aligned with StepPoints.
func (s *Stairs) StepChanges() []float64 { return cloneFloats(s.deltaView()) }

// StepValues returns a copy of the value view, aligned with StepPoints.
func (s *Stairs) StepValues() []float64 { return cloneFloats(s.cumulative()) }

// Copy returns a deep copy of the breakpoint map and view state; the
// cached aggregate is not carried.
func (s *Stairs) Copy() *Stairs {
	c := s.derive(s.initial)
	c.points = cloneFloats(s.points)
	c.deltas = cloneFloats(s.deltas)
	c.values = cloneFloats(s.values)
	c.view = s.view

	return c
}

// CopyKeepCache is Copy that also carries the cached integral and mean.
func (s *Stairs) CopyKeepCache() *Stairs {
	c := s.Copy()
	if s.cache != nil {
		cached := *s.cache
		c.cache = &cached
	}

	return c
}

// Identical reports structural equality: same closedness, initial value,
// breakpoints and values (NaN equal to NaN).
func (s *Stairs) Identical(other *Stairs) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.closed != other.closed || !sameValue(s.initial, other.initial) {
		return false
	}
	if len(s.points) != len(other.points) {
		return false
	}
	a, b := s.cumulative(), other.cumulative()
	for i := range s.points {
		if s.points[i] != other.points[i] || !sameValue(a[i], b[i]) {
			return false
		}
	}

	return true
}

func cloneFloats(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
