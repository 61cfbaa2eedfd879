// SPDX-License-Identifier: MIT
// Package stairs: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with an
// operation tag); tests match them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package stairs

import "github.com/cockroachdb/errors"

var (
	// ErrClosedMismatch is returned when two non-constant functions with
	// different closedness are combined.
	ErrClosedMismatch = errors.New("stairs: closed values differ")

	// ErrZeroDivision is returned when dividing by a structurally zero function.
	ErrZeroDivision = errors.New("stairs: division by zero function")

	// ErrInvalidBounds indicates a reversed, empty or NaN (lower, upper) window.
	ErrInvalidBounds = errors.New("stairs: invalid bounds")

	// ErrInvalidWindow indicates window deltas violating left ≤ 0 ≤ right, right > left.
	ErrInvalidWindow = errors.New("stairs: invalid aggregation window")

	// ErrIntegralOverflow indicates the integral overflowed float64 range.
	// The mean returned alongside it is still valid.
	ErrIntegralOverflow = errors.New("stairs: integral overflow")

	// ErrInvalidOperand indicates a binary operand that is neither *Stairs nor a scalar.
	ErrInvalidOperand = errors.New("stairs: invalid operand")

	// ErrLengthMismatch indicates vectorized inputs of unequal length.
	ErrLengthMismatch = errors.New("stairs: length mismatch")

	// ErrInvalidClosed indicates an unknown closedness name.
	ErrInvalidClosed = errors.New("stairs: invalid closed value")

	// ErrInvalidSide indicates an unknown limit side name.
	ErrInvalidSide = errors.New("stairs: invalid side")

	// ErrInvalidStat indicates an unknown histogram or slice statistic.
	ErrInvalidStat = errors.New("stairs: invalid statistic")

	// ErrInvalidBins indicates fewer than two or non-increasing bin edges.
	ErrInvalidBins = errors.New("stairs: invalid bins")

	// ErrInvalidFill indicates an unknown fillna method.
	ErrInvalidFill = errors.New("stairs: invalid fill method")

	// ErrInvalidClip indicates an unknown lag clip policy.
	ErrInvalidClip = errors.New("stairs: invalid clip policy")

	// ErrInvalidPercentile indicates a percentile outside [0, 100].
	ErrInvalidPercentile = errors.New("stairs: percentile out of range")

	// ErrEmptyDistribution indicates no finite, non-NaN span to build a distribution from.
	ErrEmptyDistribution = errors.New("stairs: empty distribution")

	// ErrMissingColumn indicates a column name absent from a Table.
	ErrMissingColumn = errors.New("stairs: missing column")

	// ErrInvalidCell indicates a table cell that cannot be coerced.
	ErrInvalidCell = errors.New("stairs: invalid cell")

	// ErrNilStairs indicates a nil *Stairs receiver or argument.
	ErrNilStairs = errors.New("stairs: nil stairs")
)

// stairsErrorf tags err with the failing operation.
func stairsErrorf(op string, err error) error {
	return errors.Wrapf(err, "%s", op)
}
