// SPDX-License-Identifier: MIT

// Package stairs: layering / construction engine.
//
// Purpose:
//   - Add a value over [start, end) (or (start, end] when right-closed) in place.
//   - Scalar form edits the delta view with one binary search per endpoint.
//   - Vector form groups every endpoint contribution by breakpoint and merges
//     the grouped deltas in a single pass; results are identical to applying
//     the scalar form interval by interval.
//
// Conventions:
//   - NaN or -Inf start means -∞: the value folds into the initial value.
//   - NaN or +Inf end means +∞: no closing delta.
//   - NaN value means 1.
//   - start == end is a no-op.

package stairs

import (
	"math"
	"sort"
)

const opLayerMany = "LayerMany"

// normalizeInterval applies the layering conventions to one interval.
// ok=false means the interval contributes nothing.
func normalizeInterval(start, end, value float64) (float64, float64, float64, bool) {
	if isNaN(start) {
		start = negInf
	}
	if isNaN(end) {
		end = posInf
	}
	if isNaN(value) {
		value = 1
	}
	if start == end || value == 0 || math.IsInf(start, 1) || math.IsInf(end, -1) {
		return 0, 0, 0, false
	}

	return start, end, value, true
}

// Layer adds value to the function over [start, end) and returns s for
// chaining. It mutates s and invalidates the value view. An infinite value
// makes the span infinite and leaves the levels outside it unchanged.
//
// Complexity: O(n) worst case for slice insertion, O(log n) search.
func (s *Stairs) Layer(start, end, value float64) *Stairs {
	start, end, value, ok := normalizeInterval(start, end, value)
	if !ok {
		return s
	}

	// NaN and infinite spans cannot survive a round trip through deltas;
	// edit levels instead.
	if s.hasNonFinite() || math.IsInf(value, 0) {
		s.layerValues(start, end, value)

		return s
	}

	s.deltaView()
	ps, ds := s.points, s.deltas
	if math.IsInf(start, -1) {
		s.initial += value
	} else {
		ps, ds = addDeltaAt(ps, ds, start, value)
	}
	if !math.IsInf(end, 1) {
		ps, ds = addDeltaAt(ps, ds, end, -value)
	}
	s.setDeltas(ps, ds)

	return s
}

// addDeltaAt merges d into the delta at x, dropping the key when the net
// change becomes exactly zero.
func addDeltaAt(ps, ds []float64, x, d float64) ([]float64, []float64) {
	i := sort.SearchFloat64s(ps, x)
	if i < len(ps) && ps[i] == x {
		ds[i] += d
		if ds[i] == 0 {
			ps = append(ps[:i], ps[i+1:]...)
			ds = append(ds[:i], ds[i+1:]...)
		}

		return ps, ds
	}
	ps = append(ps, 0)
	ds = append(ds, 0)
	copy(ps[i+1:], ps[i:])
	copy(ds[i+1:], ds[i:])
	ps[i], ds[i] = x, d

	return ps, ds
}

// layerValues is Layer on the value view; NaN levels stay NaN.
func (s *Stairs) layerValues(start, end, value float64) {
	ps, vs := s.points, s.cumulative()
	if !math.IsInf(start, -1) {
		ps, vs = s.ensureBreak(ps, vs, start)
	}
	if !math.IsInf(end, 1) {
		ps, vs = s.ensureBreak(ps, vs, end)
	}
	if math.IsInf(start, -1) {
		s.initial += value
	}
	for i, p := range ps {
		if p >= start && p < end {
			vs[i] += value
		}
	}
	s.setValues(ps, vs)
	s.reduce()
}

// ensureBreak inserts x into the value view (carrying the level in force at x).
func (s *Stairs) ensureBreak(ps, vs []float64, x float64) ([]float64, []float64) {
	i := sort.SearchFloat64s(ps, x)
	if i < len(ps) && ps[i] == x {
		return ps, vs
	}
	level := s.initial
	if i > 0 {
		level = vs[i-1]
	}
	ps = append(ps, 0)
	vs = append(vs, 0)
	copy(ps[i+1:], ps[i:])
	copy(vs[i+1:], vs[i:])
	ps[i], vs[i] = x, level

	return ps, vs
}

// LayerMany is the vectorized Layer: starts, ends and values are parallel
// slices (values may be nil, meaning all ones). Contributions are grouped
// by breakpoint and summed in one pass before merging into s.
//
// Errors: ErrLengthMismatch when lengths differ.
// Complexity: O(k log k + n) for k intervals and n existing breakpoints.
func (s *Stairs) LayerMany(starts, ends, values []float64) (*Stairs, error) {
	if len(starts) != len(ends) || (values != nil && len(values) != len(starts)) {
		return s, stairsErrorf(opLayerMany, ErrLengthMismatch)
	}

	// infinite deltas cannot be summed; fall back to level edits
	if values != nil && hasInf(values) {
		for i := range starts {
			s.Layer(starts[i], ends[i], values[i])
		}

		return s, nil
	}

	// Stage 1 (Prepare): flatten endpoints into (point, delta) pairs.
	keys := make([]float64, 0, 2*len(starts))
	incs := make([]float64, 0, 2*len(starts))
	initInc := 0.0
	for i := range starts {
		v := 1.0
		if values != nil {
			v = values[i]
		}
		start, end, value, ok := normalizeInterval(starts[i], ends[i], v)
		if !ok {
			continue
		}
		if math.IsInf(start, -1) {
			initInc += value
		} else {
			keys = append(keys, start)
			incs = append(incs, value)
		}
		if !math.IsInf(end, 1) {
			keys = append(keys, end)
			incs = append(incs, -value)
		}
	}

	// Stage 2 (Group): sum contributions per breakpoint.
	gk, gd := sortPairs(keys, incs, true)

	// Stage 3 (Merge): fold the grouped deltas into s.
	if s.hasNonFinite() {
		inc := s.derive(initInc)
		inc.setDeltas(gk, gd)
		sum, err := combine(s, inc, OpAdd)
		if err != nil {
			return s, stairsErrorf(opLayerMany, err)
		}
		s.initial = sum.initial
		s.setValues(sum.points, sum.cumulative())

		return s, nil
	}

	ps, ds := mergeDeltas(s.points, s.deltaView(), gk, gd)
	s.initial += initInc
	s.setDeltas(ps, ds)
	s.reduce()

	return s, nil
}

func hasInf(xs []float64) bool {
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return true
		}
	}

	return false
}

// mergeDeltas merges two sorted delta views, summing equal keys.
func mergeDeltas(ap, ad, bp, bd []float64) ([]float64, []float64) {
	ps := make([]float64, 0, len(ap)+len(bp))
	ds := make([]float64, 0, len(ap)+len(bp))
	i, j := 0, 0
	for i < len(ap) || j < len(bp) {
		switch {
		case j >= len(bp) || (i < len(ap) && ap[i] < bp[j]):
			ps, ds = append(ps, ap[i]), append(ds, ad[i])
			i++
		case i >= len(ap) || bp[j] < ap[i]:
			ps, ds = append(ps, bp[j]), append(ds, bd[j])
			j++
		default:
			ps, ds = append(ps, ap[i]), append(ds, ad[i]+bd[j])
			i++
			j++
		}
	}

	return ps, ds
}
