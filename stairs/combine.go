// SPDX-License-Identifier: MIT

// Package stairs: binary-combine engine.
//
// Algorithm:
//   - Stage 1: promote scalars to constant functions; validate closedness and
//     structural division by zero.
//   - Stage 2: merge both breakpoint sets into their sorted union.
//   - Stage 3: forward-fill each value view onto the union (a level carries
//     over until that operand's next breakpoint).
//   - Stage 4: evaluate the operator pointwise (Op.eval masks NaN for
//     relational and logical operators).
//   - Stage 5: remove redundant step points.
//
// Complexity: O(n + m) for operands with n and m breakpoints.

package stairs

import "github.com/cockroachdb/errors"

// Combine applies op pointwise to s and other. other may be a *Stairs or a
// numeric scalar (promoted to a constant function).
//
// Errors:
//   - ErrInvalidOperand for non-numeric, non-Stairs operands.
//   - ErrClosedMismatch when both sides have breakpoints and differ in closedness.
//   - ErrZeroDivision when dividing by a constant-zero function.
func (s *Stairs) Combine(other any, op Op) (*Stairs, error) {
	b, err := promote(other, s)
	if err != nil {
		return nil, stairsErrorf(op.String(), err)
	}
	out, err := combine(s, b, op)
	if err != nil {
		return nil, stairsErrorf(op.String(), err)
	}

	return out, nil
}

// checkClosed enforces matching closedness between two non-constant functions.
func checkClosed(a, b *Stairs) error {
	if a.IsConstant() || b.IsConstant() || a.closed == b.closed {
		return nil
	}

	return errors.Wrapf(ErrClosedMismatch, "%s vs %s", a.closed, b.closed)
}

func combine(a, b *Stairs, op Op) (*Stairs, error) {
	// Stage 1 (Validate).
	if op == OpDiv && b.IsConstant() && b.initial == 0 {
		return nil, errors.WithStack(ErrZeroDivision)
	}
	if err := checkClosed(a, b); err != nil {
		return nil, err
	}
	meta := a
	if a.IsConstant() && !b.IsConstant() {
		meta = b
	}
	out := meta.derive(op.eval(a.initial, b.initial))
	if a.IsConstant() && b.IsConstant() {
		return out, nil
	}

	// Stage 2-4 (Execute): single merge over both sorted breakpoint sets.
	ap, av := a.points, a.cumulative()
	bp, bv := b.points, b.cumulative()
	ps := make([]float64, 0, len(ap)+len(bp))
	vs := make([]float64, 0, len(ap)+len(bp))
	la, lb := a.initial, b.initial
	i, j := 0, 0
	for i < len(ap) || j < len(bp) {
		var x float64
		switch {
		case j >= len(bp) || (i < len(ap) && ap[i] < bp[j]):
			x, la = ap[i], av[i]
			i++
		case i >= len(ap) || bp[j] < ap[i]:
			x, lb = bp[j], bv[j]
			j++
		default:
			x, la, lb = ap[i], av[i], bv[j]
			i++
			j++
		}
		ps = append(ps, x)
		vs = append(vs, op.eval(la, lb))
	}

	// Stage 5 (Finalize).
	out.setValues(ps, vs)
	out.reduce()

	return out, nil
}

// Add returns s + other.
func (s *Stairs) Add(other any) (*Stairs, error) { return s.Combine(other, OpAdd) }

// Sub returns s − other.
func (s *Stairs) Sub(other any) (*Stairs, error) { return s.Combine(other, OpSub) }

// Mul returns s × other.
func (s *Stairs) Mul(other any) (*Stairs, error) { return s.Combine(other, OpMul) }

// Div returns s ÷ other; NaN where other is zero, ErrZeroDivision when other
// is zero everywhere.
func (s *Stairs) Div(other any) (*Stairs, error) { return s.Combine(other, OpDiv) }

// Lt returns the indicator of s < other (NaN where either side is NaN).
func (s *Stairs) Lt(other any) (*Stairs, error) { return s.Combine(other, OpLt) }

// Gt returns the indicator of s > other.
func (s *Stairs) Gt(other any) (*Stairs, error) { return s.Combine(other, OpGt) }

// Le returns the indicator of s ≤ other.
func (s *Stairs) Le(other any) (*Stairs, error) { return s.Combine(other, OpLe) }

// Ge returns the indicator of s ≥ other.
func (s *Stairs) Ge(other any) (*Stairs, error) { return s.Combine(other, OpGe) }

// Eq returns the indicator of s = other.
func (s *Stairs) Eq(other any) (*Stairs, error) { return s.Combine(other, OpEq) }

// Ne returns the indicator of s ≠ other.
func (s *Stairs) Ne(other any) (*Stairs, error) { return s.Combine(other, OpNe) }

// And returns the indicator of s ≠ 0 ∧ other ≠ 0.
func (s *Stairs) And(other any) (*Stairs, error) { return s.Combine(other, OpAnd) }

// Or returns the indicator of s ≠ 0 ∨ other ≠ 0.
func (s *Stairs) Or(other any) (*Stairs, error) { return s.Combine(other, OpOr) }

// Xor returns the indicator of exactly one of s, other being non-zero.
func (s *Stairs) Xor(other any) (*Stairs, error) { return s.Combine(other, OpXor) }
