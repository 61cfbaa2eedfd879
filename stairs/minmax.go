package stairs

// MinPair returns the pointwise minimum of s and other.
//
// It is built from the value view of d = s − other: clamping d to be ≤ 0 at
// every breakpoint and adding other back yields min(s, other) without a
// per-point comparison scan.
func (s *Stairs) MinPair(other any) (*Stairs, error) {
	return s.clampPair(other, true, "MinPair")
}

// MaxPair returns the pointwise maximum of s and other (clamp d ≥ 0).
func (s *Stairs) MaxPair(other any) (*Stairs, error) {
	return s.clampPair(other, false, "MaxPair")
}

func (s *Stairs) clampPair(other any, lower bool, op string) (*Stairs, error) {
	b, err := promote(other, s)
	if err != nil {
		return nil, stairsErrorf(op, err)
	}
	d, err := combine(s, b, OpSub)
	if err != nil {
		return nil, stairsErrorf(op, err)
	}

	clamp := func(v float64) float64 {
		// min: >0 → 0, max: <0 → 0; NaN falls through both tests.
		if (lower && v > 0) || (!lower && v < 0) {
			return 0
		}

		return v
	}
	vs := cloneFloats(d.cumulative())
	for i := range vs {
		vs[i] = clamp(vs[i])
	}
	d.initial = clamp(d.initial)
	d.setValues(cloneFloats(d.points), vs)
	d.reduce()

	out, err := combine(d, b, OpAdd)
	if err != nil {
		return nil, stairsErrorf(op, err)
	}

	return out, nil
}
