// SPDX-License-Identifier: MIT

// Package stairs: lazy dual-view state machine.
//
// States:
//   - deltasFresh: deltas authoritative, values stale.
//   - valuesFresh: values authoritative, deltas stale.
//   - bothFresh:   both views valid.
//
// Transitions:
//   - setDeltas / setValues (every mutator) → single-fresh state, cache dropped.
//   - deltaView / cumulative (accessors)    → bothFresh, the missing view computed once.
//
// A view derived from NaN or infinite values cannot be inverted (NaN and
// ±Inf deltas lose the level they bridge), so mutators that must keep such
// spans intact work on the value view; see hasNonFinite.

package stairs

type viewState uint8

const (
	deltasFresh viewState = iota + 1
	valuesFresh
	bothFresh
)

// setDeltas installs points/deltas as the authoritative view.
func (s *Stairs) setDeltas(points, deltas []float64) {
	s.points, s.deltas, s.values = points, deltas, nil
	s.view = deltasFresh
	s.cache = nil
}

// setValues installs points/values as the authoritative view.
func (s *Stairs) setValues(points, values []float64) {
	s.points, s.values, s.deltas = points, values, nil
	s.view = valuesFresh
	s.cache = nil
}

// cumulative returns the memoized value view (prefix sum of deltas).
func (s *Stairs) cumulative() []float64 {
	if s.view == deltasFresh {
		vs := make([]float64, len(s.points))
		acc := s.initial
		for i, d := range s.deltas {
			acc += d
			vs[i] = acc
		}
		s.values = vs
		s.view = bothFresh
	}

	return s.values
}

// deltaView returns the memoized delta view (successive differences).
func (s *Stairs) deltaView() []float64 {
	if s.view == valuesFresh {
		ds := make([]float64, len(s.points))
		prev := s.initial
		for i, v := range s.values {
			ds[i] = v - prev
			prev = v
		}
		s.deltas = ds
		s.view = bothFresh
	}

	return s.deltas
}

// hasNonFinite reports whether s takes a NaN or infinite value anywhere.
func (s *Stairs) hasNonFinite() bool {
	if !isFinite(s.initial) {
		return true
	}
	for _, v := range s.cumulative() {
		if !isFinite(v) {
			return true
		}
	}

	return false
}

// last returns the value after the final breakpoint.
func (s *Stairs) last() float64 {
	if len(s.points) == 0 {
		return s.initial
	}
	vs := s.cumulative()

	return vs[len(vs)-1]
}

// reduce removes redundant step points: breakpoints whose value equals the
// preceding level. Works on whichever view is authoritative.
func (s *Stairs) reduce() {
	if s.view == deltasFresh && !s.nanDeltas() {
		w := 0
		for i, d := range s.deltas {
			if d == 0 {
				continue
			}
			s.points[w], s.deltas[w] = s.points[i], d
			w++
		}
		if w != len(s.points) {
			s.setDeltas(s.points[:w], s.deltas[:w])
		}

		return
	}

	vs := s.cumulative()
	prev := s.initial
	w := 0
	for i, v := range vs {
		if sameValue(v, prev) {
			continue
		}
		s.points[w], vs[w] = s.points[i], v
		prev = v
		w++
	}
	if w != len(s.points) {
		s.setValues(s.points[:w], vs[:w])
	}
}

// nanDeltas reports whether the delta view cannot be summed safely.
func (s *Stairs) nanDeltas() bool {
	if isNaN(s.initial) {
		return true
	}
	for _, d := range s.deltas {
		if isNaN(d) {
			return true
		}
	}

	return false
}
