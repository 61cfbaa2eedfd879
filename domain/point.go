package domain

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Kind tags the three variants of a Point.
type Kind uint8

const (
	// Finite carries an ordinary float64 coordinate.
	Finite Kind = iota
	// NegInfinity sorts before every other point.
	NegInfinity
	// PosInfinity sorts after every other point.
	PosInfinity
)

// rank orders the kinds along the extended real line.
func (k Kind) rank() int {
	switch k {
	case NegInfinity:
		return -1
	case PosInfinity:
		return 1
	default:
		return 0
	}
}

// String returns a short name for k.
func (k Kind) String() string {
	switch k {
	case NegInfinity:
		return "-inf"
	case PosInfinity:
		return "+inf"
	default:
		return "finite"
	}
}

// Point is an element of the extended real line used as a domain coordinate.
// The zero value is Finite(0).
type Point struct {
	kind Kind
	v    float64
}

// NegInf returns the -∞ sentinel.
func NegInf() Point { return Point{kind: NegInfinity} }

// PosInf returns the +∞ sentinel.
func PosInf() Point { return Point{kind: PosInfinity} }

// At returns Finite(v). Infinite v is folded into the matching sentinel.
func At(v float64) Point { return FromFloat(v) }

// FromFloat converts a float64 into a Point, mapping ±Inf to the sentinels.
// NaN is kept as a Finite point with a NaN payload; use Parse when NaN must
// be rejected.
func FromFloat(v float64) Point {
	switch {
	case math.IsInf(v, -1):
		return NegInf()
	case math.IsInf(v, 1):
		return PosInf()
	default:
		return Point{kind: Finite, v: v}
	}
}

// Parse is FromFloat with NaN rejected.
func Parse(v float64) (Point, error) {
	if math.IsNaN(v) {
		return Point{}, errors.WithStack(ErrNaNPoint)
	}

	return FromFloat(v), nil
}

// Kind reports which variant p is.
func (p Point) Kind() Kind { return p.kind }

// IsFinite reports whether p is neither sentinel.
func (p Point) IsFinite() bool { return p.kind == Finite }

// Float lowers p into float64; the sentinels become ±Inf.
func (p Point) Float() float64 {
	switch p.kind {
	case NegInfinity:
		return math.Inf(-1)
	case PosInfinity:
		return math.Inf(1)
	default:
		return p.v
	}
}

// Compare returns -1, 0 or +1 as p sorts before, equal to, or after o.
// Sentinels compare equal to themselves.
func (p Point) Compare(o Point) int {
	if p.kind != o.kind {
		if p.kind.rank() < o.kind.rank() {
			return -1
		}

		return 1
	}
	if p.kind != Finite {
		return 0
	}
	switch {
	case p.v < o.v:
		return -1
	case p.v > o.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts strictly before o.
func (p Point) Less(o Point) bool { return p.Compare(o) < 0 }

// Add shifts a finite point by delta; sentinels absorb any finite shift.
func (p Point) Add(delta float64) Point {
	if p.kind != Finite {
		return p
	}

	return FromFloat(p.v + delta)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.kind != Finite {
		return p.kind.String()
	}

	return strconv.FormatFloat(p.v, 'g', -1, 64)
}

// MarshalYAML encodes p as a YAML float (.inf / -.inf for the sentinels).
func (p Point) MarshalYAML() (interface{}, error) {
	return p.Float(), nil
}

// UnmarshalYAML decodes a YAML float into p.
func (p *Point) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var f float64
	if err := unmarshal(&f); err != nil {
		return err
	}
	*p = FromFloat(f)

	return nil
}

// Bounds validates that lower sorts strictly before upper and returns both
// as Points.
func Bounds(lower, upper float64) (Point, Point, bool) {
	lo, hi := FromFloat(lower), FromFloat(upper)
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return lo, hi, false
	}

	return lo, hi, lo.Less(hi)
}
