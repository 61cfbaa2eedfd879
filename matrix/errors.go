// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public indexers return these sentinels (wrapped with the method and the
// offending coordinates); callers match them with errors.Is.

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownLabel indicates a label that does not name a row/column.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrDuplicateLabel indicates two rows/columns sharing a label.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// denseErrorf attaches the method and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}
