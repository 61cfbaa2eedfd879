// SPDX-License-Identifier: MIT

// Package stairs: functional configuration for construction.
// This file defines:
//   - Closed / Side enums and their parsers,
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper that enforces invariants.
//
// Design goals:
//   - No global state: date usage and timezone travel inside Options.
//   - Panic only on nonsensical option values (programmer error).

package stairs

import (
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/staircase/domain"
)

// Closed selects which end of each constant interval is included.
type Closed uint8

const (
	// Left means intervals are [a, b).
	Left Closed = iota
	// Right means intervals are (a, b].
	Right
)

// String implements fmt.Stringer.
func (c Closed) String() string {
	if c == Right {
		return "right"
	}

	return "left"
}

// ParseClosed maps "left"/"right" to Closed.
func ParseClosed(s string) (Closed, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}

	return Left, errors.Wrapf(ErrInvalidClosed, "%q", s)
}

// Side selects which one-sided limit is taken at a point.
type Side uint8

const (
	// SideRight returns the value on [x, …): the limit approaching x from above.
	SideRight Side = iota
	// SideLeft returns the value on the interval immediately preceding x.
	SideLeft
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}

	return "right"
}

// ParseSide maps "left"/"right" to Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "right":
		return SideRight, nil
	case "left":
		return SideLeft, nil
	}

	return SideRight, errors.Wrapf(ErrInvalidSide, "%q", s)
}

// sampleSide is the side Sample uses: the side whose interval contains x.
func (c Closed) sampleSide() Side {
	if c == Right {
		return SideLeft
	}

	return SideRight
}

// ---------- Defaults ----------

const (
	// DefaultClosed is the closedness of new functions.
	DefaultClosed = Left

	// DefaultInitialValue is the value on (-∞, first breakpoint] of new functions.
	DefaultInitialValue = 0.0
)

const (
	panicClosedInvalid  = "stairs: WithClosed: closed must be Left or Right"
	panicLoggerNil      = "stairs: WithLogger: logger must not be nil"
	panicLocationNilUse = "stairs: WithDates: location must not be nil"
)

// Option mutates construction options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	closed  Closed
	initial float64
	cfg     domain.Config
	logger  l.Wrapper
}

// WithClosed sets the closedness. Panics on values other than Left/Right.
func WithClosed(c Closed) Option {
	if c != Left && c != Right {
		panic(panicClosedInvalid)
	}

	return func(o *Options) { o.closed = c }
}

// WithInitialValue sets the value on (-∞, first breakpoint]. NaN is allowed.
func WithInitialValue(v float64) Option {
	return func(o *Options) { o.initial = v }
}

// WithDates marks the domain as datetimes in loc.
func WithDates(loc *time.Location) Option {
	if loc == nil {
		panic(panicLocationNilUse)
	}

	return func(o *Options) { o.cfg = domain.DateConfig(loc) }
}

// WithConfig sets the domain configuration wholesale.
func WithConfig(cfg domain.Config) Option {
	return func(o *Options) { o.cfg = cfg }
}

// WithLogger injects the logger used for non-fatal warnings.
func WithLogger(logger l.Wrapper) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		closed:  DefaultClosed,
		initial: DefaultInitialValue,
		cfg:     domain.DefaultConfig(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = l.NewNopLoggerWrapper()
	}

	return o
}

// isNaN is a local shorthand used across the hot loops.
func isNaN(v float64) bool { return v != v }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !isNaN(v) && !math.IsInf(v, 0) }

// sameValue compares two levels treating NaN as equal to NaN.
func sameValue(a, b float64) bool {
	return a == b || (isNaN(a) && isNaN(b))
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
