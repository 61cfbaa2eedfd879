package domain

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// Epoch is the instant mapped to coordinate 0 when UseDates is on.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ToHours converts t into hours since Epoch.
func ToHours(t time.Time) float64 {
	// Sub saturates at ±292 years; keep nanosecond precision inside that
	// range and fall back to Unix seconds outside it.
	d := t.Sub(Epoch)
	if d == math.MaxInt64 || d == math.MinInt64 {
		return float64(t.Unix()-Epoch.Unix()) / 3600
	}

	return d.Hours()
}

// FromHours converts hours since Epoch into a time.Time in loc (UTC if nil).
func FromHours(h float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	sec, frac := math.Modf(h * 3600)

	return time.Unix(Epoch.Unix()+int64(sec), int64(frac*1e9)).In(loc)
}

// Config describes how raw domain values are interpreted. It is passed
// explicitly to constructors; nothing in this module reads a global default.
type Config struct {
	// UseDates marks the domain as datetimes encoded via ToHours.
	UseDates bool
	// Location is the timezone restored on Decode; nil means UTC.
	Location *time.Location
}

// DefaultConfig returns a numeric (non-date) configuration.
func DefaultConfig() Config { return Config{} }

// DateConfig returns a datetime configuration in loc.
func DateConfig(loc *time.Location) Config {
	if loc == nil {
		loc = time.UTC
	}

	return Config{UseDates: true, Location: loc}
}

// Loc returns the effective location.
func (c Config) Loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}

	return c.Location
}

// Encode converts a loosely typed domain value into a float64 coordinate.
//
//   - nil                  → NaN (caller decides whether it means -∞ or +∞)
//   - time.Time/*time.Time → ToHours
//   - time.Duration        → hours
//   - string               → datetime when UseDates, number otherwise
//   - anything else        → cast.ToFloat64E
func (c Config) Encode(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case Point:
		return x.Float(), nil
	case time.Time:
		return ToHours(x), nil
	case *time.Time:
		if x == nil {
			return math.NaN(), nil
		}

		return ToHours(*x), nil
	case time.Duration:
		return x.Hours(), nil
	case string:
		if c.UseDates {
			t, err := cast.ToTimeInDefaultLocationE(x, c.Loc())
			if err != nil {
				return 0, errors.Wrapf(ErrUnsupportedValue, "encode %q: %v", x, err)
			}

			return ToHours(t), nil
		}
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedValue, "encode %v (%T)", v, v)
	}

	return f, nil
}

// Decode converts a coordinate back into the caller-facing value: a
// time.Time when UseDates (finite points only), the float otherwise.
func (c Config) Decode(h float64) any {
	if !c.UseDates || math.IsNaN(h) || math.IsInf(h, 0) {
		return h
	}

	return FromHours(h, c.Loc())
}
