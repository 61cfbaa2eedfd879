package stairs

import "sort"

// Limit evaluates the one-sided limit of s at x.
//
//   - SideRight: the value on [x, …).
//   - SideLeft:  the value on the interval immediately preceding x.
//
// NaN x yields NaN. Complexity: O(log n).
func (s *Stairs) Limit(x float64, side Side) float64 {
	if isNaN(x) {
		return x
	}
	vs := s.cumulative()
	i := s.countBefore(x, side)
	if i == 0 {
		return s.initial
	}

	return vs[i-1]
}

// countBefore returns how many breakpoints are in force at x for side:
// points ≤ x for SideRight, points < x for SideLeft.
func (s *Stairs) countBefore(x float64, side Side) int {
	if side == SideLeft {
		return sort.SearchFloat64s(s.points, x)
	}

	return sort.Search(len(s.points), func(i int) bool { return s.points[i] > x })
}

// Sample evaluates s at x using the side implied by its closedness: the
// right limit for left-closed functions, the left limit for right-closed ones.
func (s *Stairs) Sample(x float64) float64 {
	return s.Limit(x, s.closed.sampleSide())
}

// LimitMany is Limit applied element-wise. Sorted xs are answered with a
// single merge pass; unsorted xs fall back to one binary search each.
// Complexity: O(n + m) sorted, O(m log n) otherwise.
func (s *Stairs) LimitMany(xs []float64, side Side) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	vs := s.cumulative()

	if !sort.Float64sAreSorted(xs) {
		for k, x := range xs {
			out[k] = s.Limit(x, side)
		}

		return out
	}

	i := 0
	for k, x := range xs {
		if isNaN(x) {
			out[k] = x

			continue
		}
		if side == SideLeft {
			for i < len(s.points) && s.points[i] < x {
				i++
			}
		} else {
			for i < len(s.points) && s.points[i] <= x {
				i++
			}
		}
		if i == 0 {
			out[k] = s.initial
		} else {
			out[k] = vs[i-1]
		}
	}

	return out
}

// SampleMany is Sample applied element-wise.
func (s *Stairs) SampleMany(xs []float64) []float64 {
	return s.LimitMany(xs, s.closed.sampleSide())
}
