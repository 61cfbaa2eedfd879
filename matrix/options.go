// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Defaults:
//   - NaN and ±Inf are accepted: an undefined correlation is a legitimate cell.
//   - Symmetry checks use DefaultEpsilon.

package matrix

const (
	// DefaultEpsilon is the absolute tolerance used by IsSymmetric.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf leaves non-finite values accepted by Set.
	DefaultValidateNaNInf = false
)

const panicEpsilonNegative = "matrix: WithEpsilon: eps must be >= 0"

// Option mutates construction options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// WithEpsilon sets the symmetry tolerance. Panics on negative or NaN eps.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic(panicEpsilonNegative)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes Set reject NaN and ±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
