package domain

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedValue indicates a value that cannot be encoded as a domain coordinate.
	ErrUnsupportedValue = errors.New("domain: unsupported value")

	// ErrNaNPoint indicates NaN was supplied where an ordered point is required.
	ErrNaNPoint = errors.New("domain: NaN is not an ordered point")
)
