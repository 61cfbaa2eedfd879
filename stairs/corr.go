// SPDX-License-Identifier: MIT

// Package stairs: covariance and correlation between two step functions.
//
// Algorithm:
//   - Stage 1: apply the lag. Under ClipPre the lagged operand is restricted
//     to the window before it is shifted; under ClipPost only afterwards.
//   - Stage 2: clip both operands to the window; unbounded sides are bounded
//     by the outermost breakpoint of either operand.
//   - Stage 3: mask each operand with the other's NaN spans so both describe
//     the same sub-domain.
//   - Stage 4: cov = mean(a·b) − mean(a)·mean(b); corr = cov / (σa·σb).

package stairs

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	opCov  = "Cov"
	opCorr = "Corr"
)

// ClipPolicy decides when the window is applied relative to the lag shift.
type ClipPolicy uint8

const (
	// ClipPre restricts the lagged operand to the window before shifting.
	ClipPre ClipPolicy = iota
	// ClipPost restricts both operands to the window after shifting.
	ClipPost
)

// String implements fmt.Stringer.
func (c ClipPolicy) String() string {
	if c == ClipPost {
		return "post"
	}

	return "pre"
}

// ParseClipPolicy maps "pre"/"post" to ClipPolicy.
func ParseClipPolicy(s string) (ClipPolicy, error) {
	switch strings.ToLower(s) {
	case "pre":
		return ClipPre, nil
	case "post":
		return ClipPost, nil
	}

	return ClipPre, errors.Wrapf(ErrInvalidClip, "%q", s)
}

// CorrOptions configures Cov and Corr.
type CorrOptions struct {
	Lower float64    // window start, -Inf for unbounded
	Upper float64    // window end, +Inf for unbounded
	Lag   float64    // other is evaluated at x + Lag
	Clip  ClipPolicy // window/lag ordering
}

// DefaultCorrOptions is the unbounded, unlagged configuration.
func DefaultCorrOptions() CorrOptions {
	return CorrOptions{Lower: negInf, Upper: posInf, Clip: ClipPre}
}

// aligned returns the masked, clipped operand pair.
func (s *Stairs) aligned(other *Stairs, o CorrOptions) (*Stairs, *Stairs, error) {
	if other == nil {
		return nil, nil, errors.WithStack(ErrNilStairs)
	}
	if o.Clip != ClipPre && o.Clip != ClipPost {
		return nil, nil, errors.Wrapf(ErrInvalidClip, "%d", o.Clip)
	}
	if isNaN(o.Lag) || math.IsInf(o.Lag, 0) {
		return nil, nil, errors.Wrapf(ErrInvalidBounds, "lag=%v", o.Lag)
	}

	b := other
	if o.Lag != 0 {
		var err error
		if o.Clip == ClipPre {
			if b, err = b.Clip(o.Lower, o.Upper); err != nil {
				return nil, nil, err
			}
		}
		if b, err = b.Shift(-o.Lag); err != nil {
			return nil, nil, err
		}
	}

	lower, upper := commonWindow(o.Lower, o.Upper, s, b)
	a, err := s.Clip(lower, upper)
	if err != nil {
		return nil, nil, err
	}
	if b, err = b.Clip(lower, upper); err != nil {
		return nil, nil, err
	}

	am, err := a.Mask(b.IsNA())
	if err != nil {
		return nil, nil, err
	}
	bm, err := b.Mask(a.IsNA())
	if err != nil {
		return nil, nil, err
	}

	return am, bm, nil
}

// commonWindow bounds the unbounded sides of [lower, upper) by the outermost
// breakpoints of a and b, so every mean is taken over the same span.
func commonWindow(lower, upper float64, a, b *Stairs) (float64, float64) {
	lo, hi := posInf, negInf
	for _, f := range [...]*Stairs{a, b} {
		if n := len(f.points); n > 0 {
			lo = math.Min(lo, f.points[0])
			hi = math.Max(hi, f.points[n-1])
		}
	}
	if !(lo < hi) {
		return lower, upper
	}
	if math.IsInf(lower, -1) && lo < upper {
		lower = lo
	}
	if math.IsInf(upper, 1) && hi > lower {
		upper = hi
	}

	return lower, upper
}

// Cov returns the covariance of s and other under o.
func (s *Stairs) Cov(other *Stairs, o CorrOptions) (float64, error) {
	a, b, err := s.aligned(other, o)
	if err != nil {
		return math.NaN(), stairsErrorf(opCov, err)
	}
	cov, err := covariance(a, b)
	if err != nil {
		return math.NaN(), stairsErrorf(opCov, err)
	}

	return cov, nil
}

// Corr returns the Pearson correlation of s and other under o. It is NaN,
// not an error, when either side has no variance.
func (s *Stairs) Corr(other *Stairs, o CorrOptions) (float64, error) {
	a, b, err := s.aligned(other, o)
	if err != nil {
		return math.NaN(), stairsErrorf(opCorr, err)
	}
	cov, err := covariance(a, b)
	if err != nil {
		return math.NaN(), stairsErrorf(opCorr, err)
	}
	sa, err := spread(a)
	if err != nil {
		return math.NaN(), stairsErrorf(opCorr, err)
	}
	sb, err := spread(b)
	if err != nil {
		return math.NaN(), stairsErrorf(opCorr, err)
	}
	if isNaN(sa) || isNaN(sb) || sa == 0 || sb == 0 {
		return math.NaN(), nil
	}

	return cov / (sa * sb), nil
}

// spread is the standard deviation of f over its bounded spans, NaN when
// there are none (a constant function).
func spread(f *Stairs) (float64, error) {
	sd, err := f.Std(negInf, posInf)
	if errors.Is(err, ErrEmptyDistribution) {
		return math.NaN(), nil
	}

	return sd, err
}

func covariance(a, b *Stairs) (float64, error) {
	ab, err := combine(a, b, OpMul)
	if err != nil {
		return math.NaN(), err
	}

	return ab.Mean() - a.Mean()*b.Mean(), nil
}
