// SPDX-License-Identifier: MIT
// Package collection: sentinel error set.

package collection

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyCollection indicates an operation over zero functions.
	ErrEmptyCollection = errors.New("collection: empty collection")

	// ErrNilReducer indicates a nil reducer passed to Aggregate.
	ErrNilReducer = errors.New("collection: nil reducer")
)

func collectionErrorf(op string, err error) error {
	return errors.Wrapf(err, "%s", op)
}
