package stairs

import "github.com/cockroachdb/errors"

// Map returns the function x ↦ fn(s(x)). fn sees each distinct level once,
// including the initial value.
func (s *Stairs) Map(fn func(float64) float64) *Stairs {
	out := s.derive(fn(s.initial))
	vs := s.cumulative()
	nv := make([]float64, len(vs))
	for i, v := range vs {
		nv[i] = fn(v)
	}
	out.setValues(cloneFloats(s.points), nv)
	out.reduce()

	return out
}

// Negate returns −s.
func (s *Stairs) Negate() *Stairs {
	return s.Map(func(v float64) float64 { return -v })
}

// IsNA returns the indicator of s being NaN (1 where NaN, 0 elsewhere).
func (s *Stairs) IsNA() *Stairs {
	return s.Map(func(v float64) float64 { return boolFloat(isNaN(v)) })
}

// NotNA returns the indicator of s being defined.
func (s *Stairs) NotNA() *Stairs {
	return s.Map(func(v float64) float64 { return boolFloat(!isNaN(v)) })
}

// MakeBoolean maps every non-zero level to 1; zero stays 0 and NaN stays NaN.
func (s *Stairs) MakeBoolean() *Stairs {
	return s.Map(func(v float64) float64 {
		if isNaN(v) {
			return v
		}

		return boolFloat(v != 0)
	})
}

// Invert is logical negation: 1 where s is zero, 0 where non-zero, NaN kept.
func (s *Stairs) Invert() *Stairs {
	return s.Map(func(v float64) float64 {
		if isNaN(v) {
			return v
		}

		return boolFloat(v == 0)
	})
}

// Shift returns the function x ↦ s(x − delta): every breakpoint moves by delta.
//
// Errors: ErrInvalidBounds for a NaN or infinite delta.
func (s *Stairs) Shift(delta float64) (*Stairs, error) {
	if !isFinite(delta) {
		return nil, stairsErrorf("Shift", errors.Wrapf(ErrInvalidBounds, "delta=%v", delta))
	}
	out := s.Copy()
	for i := range out.points {
		out.points[i] += delta
	}

	return out, nil
}

// Diff returns s − s.Shift(delta).
func (s *Stairs) Diff(delta float64) (*Stairs, error) {
	shifted, err := s.Shift(delta)
	if err != nil {
		return nil, stairsErrorf("Diff", err)
	}
	out, err := combine(s, shifted, OpSub)
	if err != nil {
		return nil, stairsErrorf("Diff", err)
	}

	return out, nil
}
