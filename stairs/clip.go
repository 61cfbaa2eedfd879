// SPDX-License-Identifier: MIT

// Package stairs: clipping, masking and NaN filling.
//
// Purpose:
//   - Clip restricts a function to a window, undefined (NaN) elsewhere; it is
//     the building block of every windowed statistic.
//   - Mask / Where turn an indicator into a NaN/0 mask and add it to the
//     function through the binary-combine engine, so NaN propagates by
//     ordinary arithmetic.
//   - FillNA replaces NaN spans with a scalar, a propagated neighbour or
//     another function.

package stairs

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/staircase/domain"
)

const (
	opClip          = "Clip"
	opMask          = "Mask"
	opWhere         = "Where"
	opFillNAWith    = "FillNAWith"
	opFillNAMethod  = "FillNAMethod"
	opMaskInterval  = "MaskInterval"
	opWhereInterval = "WhereInterval"
)

// validateBounds rejects NaN, reversed and empty windows.
func validateBounds(lower, upper float64) error {
	if _, _, ok := domain.Bounds(lower, upper); !ok {
		return errors.Wrapf(ErrInvalidBounds, "lower=%v upper=%v", lower, upper)
	}

	return nil
}

// Clip returns a copy of s that equals s on [lower, upper) (or (lower, upper]
// when right-closed) and NaN outside. ±Inf bounds leave that side untouched.
//
// Implementation:
//   - Stage 1: validate the window.
//   - Stage 2: the level just right of lower becomes a breakpoint at lower.
//   - Stage 3: keep the breakpoints strictly inside the window.
//   - Stage 4: cap at upper with a NaN breakpoint, then reduce.
//
// Complexity: O(n).
func (s *Stairs) Clip(lower, upper float64) (*Stairs, error) {
	if err := validateBounds(lower, upper); err != nil {
		return nil, stairsErrorf(opClip, err)
	}
	hasLower, hasUpper := !math.IsInf(lower, -1), !math.IsInf(upper, 1)
	if !hasLower && !hasUpper {
		return s.Copy(), nil
	}

	vs := s.cumulative()
	out := s.derive(s.initial)
	ps := make([]float64, 0, len(s.points)+2)
	nv := make([]float64, 0, len(s.points)+2)
	if hasLower {
		out.initial = math.NaN()
		ps = append(ps, lower)
		nv = append(nv, s.Limit(lower, SideRight))
	}
	for i, p := range s.points {
		if (hasLower && p <= lower) || (hasUpper && p >= upper) {
			continue
		}
		ps = append(ps, p)
		nv = append(nv, vs[i])
	}
	if hasUpper {
		ps = append(ps, upper)
		nv = append(nv, math.NaN())
	}
	out.setValues(ps, nv)
	out.reduce()

	return out, nil
}

// nanWhere builds the additive mask: NaN where hit(level) is true, 0 elsewhere.
func nanWhere(ind *Stairs, hit func(float64) bool) *Stairs {
	return ind.Map(func(v float64) float64 {
		if hit(v) {
			return math.NaN()
		}

		return 0
	})
}

func truthy(v float64) bool { return !isNaN(v) && v != 0 }

// Mask returns s with NaN wherever other is non-zero. NaN in other does not
// mask.
func (s *Stairs) Mask(other *Stairs) (*Stairs, error) {
	if other == nil {
		return nil, stairsErrorf(opMask, ErrNilStairs)
	}
	out, err := combine(s, nanWhere(other, truthy), OpAdd)
	if err != nil {
		return nil, stairsErrorf(opMask, err)
	}

	return out, nil
}

// Where returns s with NaN wherever other is zero or NaN: the complement of Mask.
func (s *Stairs) Where(other *Stairs) (*Stairs, error) {
	if other == nil {
		return nil, stairsErrorf(opWhere, ErrNilStairs)
	}
	out, err := combine(s, nanWhere(other, func(v float64) bool { return !truthy(v) }), OpAdd)
	if err != nil {
		return nil, stairsErrorf(opWhere, err)
	}

	return out, nil
}

// indicator returns 1 on [start, end) and 0 elsewhere, shaped like s.
func (s *Stairs) indicator(start, end float64) *Stairs {
	return s.derive(0).Layer(start, end, 1)
}

// MaskInterval is Mask with the indicator of [start, end).
func (s *Stairs) MaskInterval(start, end float64) (*Stairs, error) {
	if err := validateBounds(start, end); err != nil {
		return nil, stairsErrorf(opMaskInterval, err)
	}

	return s.Mask(s.indicator(start, end))
}

// WhereInterval is Where with the indicator of [start, end).
func (s *Stairs) WhereInterval(start, end float64) (*Stairs, error) {
	if err := validateBounds(start, end); err != nil {
		return nil, stairsErrorf(opWhereInterval, err)
	}

	return s.Where(s.indicator(start, end))
}

// FillNA replaces every NaN level with value.
func (s *Stairs) FillNA(value float64) *Stairs {
	return s.Map(func(v float64) float64 {
		if isNaN(v) {
			return value
		}

		return v
	})
}

// FillNAWith replaces NaN levels with other's value at the same points.
// Closedness must match when both have breakpoints.
func (s *Stairs) FillNAWith(other *Stairs) (*Stairs, error) {
	if other == nil {
		return nil, stairsErrorf(opFillNAWith, ErrNilStairs)
	}
	out, err := combine(s, other, opFill)
	if err != nil {
		return nil, stairsErrorf(opFillNAWith, err)
	}

	return out, nil
}

// Fill names a NaN propagation method.
type Fill uint8

const (
	// FillForward carries the last defined level over NaN spans ("ffill", "pad").
	FillForward Fill = iota + 1
	// FillBackward pulls the next defined level back over NaN spans ("bfill", "backfill").
	FillBackward
)

// ParseFill maps a method name to Fill.
func ParseFill(s string) (Fill, error) {
	switch strings.ToLower(s) {
	case "ffill", "pad", "forward":
		return FillForward, nil
	case "bfill", "backfill", "backward":
		return FillBackward, nil
	}

	return 0, errors.Wrapf(ErrInvalidFill, "%q", s)
}

// FillNAMethod propagates defined levels over NaN spans. Leading NaN stays
// NaN under FillForward, trailing NaN under FillBackward.
func (s *Stairs) FillNAMethod(method Fill) (*Stairs, error) {
	vs := cloneFloats(s.cumulative())
	init := s.initial
	switch method {
	case FillForward:
		prev := init
		for i, v := range vs {
			if isNaN(v) {
				vs[i] = prev
			} else {
				prev = v
			}
		}
	case FillBackward:
		next := math.NaN()
		for i := len(vs) - 1; i >= 0; i-- {
			if isNaN(vs[i]) {
				vs[i] = next
			} else {
				next = vs[i]
			}
		}
		if isNaN(init) {
			init = next
		}
	default:
		return nil, stairsErrorf(opFillNAMethod, errors.Wrapf(ErrInvalidFill, "%d", method))
	}

	out := s.derive(init)
	out.setValues(cloneFloats(s.points), vs)
	out.reduce()

	return out, nil
}
