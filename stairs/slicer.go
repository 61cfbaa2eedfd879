// SPDX-License-Identifier: MIT

// Package stairs: slicing a step function into sub-intervals.
//
// A Slicer partitions the domain into windows and clips s to each one on
// first access; clipped pieces are memoized for the Slicer's lifetime.
// Every per-slice statistic is computed on the memoized pieces.

package stairs

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/patrickmn/go-cache"
)

const (
	opSlice    = "Slice"
	opResample = "Resample"
	opAgg      = "Agg"
)

// Position locates a slice's reduced value when resampling.
type Position uint8

const (
	// PositionLeft places the value at the slice's lower bound.
	PositionLeft Position = iota
	// PositionRight places the value at the slice's upper bound.
	PositionRight
	// PositionMid places the value halfway between the bounds.
	PositionMid
)

// Slicer is a lazily clipped partition of a step function.
type Slicer struct {
	s      *Stairs
	lowers []float64
	uppers []float64
	memo   *cache.Cache
}

// Slice partitions s at cuts: slice i is [cuts[i], cuts[i+1]).
//
// Errors: ErrInvalidBounds for fewer than two cuts, NaN cuts or cuts that are
// not strictly increasing.
func (s *Stairs) Slice(cuts []float64) (*Slicer, error) {
	if len(cuts) < 2 {
		return nil, stairsErrorf(opSlice, errors.Wrapf(ErrInvalidBounds, "%d cuts", len(cuts)))
	}
	for i := 1; i < len(cuts); i++ {
		if err := validateBounds(cuts[i-1], cuts[i]); err != nil {
			return nil, stairsErrorf(opSlice, err)
		}
	}

	return s.newSlicer(cuts[:len(cuts)-1], cuts[1:]), nil
}

// SliceIntervals slices s into arbitrary (possibly overlapping or gapped)
// intervals.
func (s *Stairs) SliceIntervals(ivs []Interval) (*Slicer, error) {
	if len(ivs) == 0 {
		return nil, stairsErrorf(opSlice, errors.Wrap(ErrInvalidBounds, "no intervals"))
	}
	lowers := make([]float64, len(ivs))
	uppers := make([]float64, len(ivs))
	for i, iv := range ivs {
		lowers[i], uppers[i] = iv.Start.Float(), iv.End.Float()
		if err := validateBounds(lowers[i], uppers[i]); err != nil {
			return nil, stairsErrorf(opSlice, errors.Wrapf(err, "interval %d", i))
		}
	}

	return s.newSlicer(lowers, uppers), nil
}

func (s *Stairs) newSlicer(lowers, uppers []float64) *Slicer {
	return &Slicer{
		s:      s.Copy(),
		lowers: cloneFloats(lowers),
		uppers: cloneFloats(uppers),
		memo:   cache.New(cache.NoExpiration, 0),
	}
}

// Len returns the number of slices.
func (sl *Slicer) Len() int { return len(sl.lowers) }

// Bounds returns the window of slice i.
func (sl *Slicer) Bounds(i int) (float64, float64) { return sl.lowers[i], sl.uppers[i] }

// piece returns the memoized clip for slice i.
func (sl *Slicer) piece(i int) (*Stairs, error) {
	if i < 0 || i >= len(sl.lowers) {
		return nil, errors.Wrapf(ErrInvalidBounds, "slice %d of %d", i, len(sl.lowers))
	}
	key := strconv.Itoa(i)
	if v, ok := sl.memo.Get(key); ok {
		c, _ := v.(*Stairs)

		return c, nil
	}
	c, err := sl.s.Clip(sl.lowers[i], sl.uppers[i])
	if err != nil {
		return nil, err
	}
	sl.memo.Set(key, c, cache.NoExpiration)

	return c, nil
}

// At returns a copy of slice i: s restricted to its window, NaN elsewhere.
func (sl *Slicer) At(i int) (*Stairs, error) {
	c, err := sl.piece(i)
	if err != nil {
		return nil, stairsErrorf(opSlice, err)
	}

	return c.CopyKeepCache(), nil
}

// Apply reduces every slice with fn.
func (sl *Slicer) Apply(fn func(piece *Stairs) (float64, error)) ([]float64, error) {
	out := make([]float64, sl.Len())
	for i := range out {
		c, err := sl.piece(i)
		if err != nil {
			return nil, stairsErrorf(opSlice, err)
		}
		if out[i], err = fn(c); err != nil {
			return nil, stairsErrorf(opSlice, errors.Wrapf(err, "slice %d", i))
		}
	}

	return out, nil
}

// applyAgg runs a windowed aggregate over each slice's own window.
func (sl *Slicer) applyAgg(agg AggFunc) ([]float64, error) {
	out := make([]float64, sl.Len())
	for i := range out {
		c, err := sl.piece(i)
		if err != nil {
			return nil, stairsErrorf(opSlice, err)
		}
		if out[i], err = agg(c, sl.lowers[i], sl.uppers[i], SideRight, SideLeft); err != nil {
			return nil, stairsErrorf(opSlice, errors.Wrapf(err, "slice %d", i))
		}
	}

	return out, nil
}

// Mean returns the mean of each slice.
func (sl *Slicer) Mean() ([]float64, error) { return sl.applyAgg(AggMean) }

// Integral returns the integral of each slice.
func (sl *Slicer) Integral() ([]float64, error) { return sl.applyAgg(AggIntegral) }

// Min returns the minimum of each slice.
func (sl *Slicer) Min() ([]float64, error) { return sl.applyAgg(AggMin) }

// Max returns the maximum of each slice.
func (sl *Slicer) Max() ([]float64, error) { return sl.applyAgg(AggMax) }

// Mode returns the mode of each slice.
func (sl *Slicer) Mode() ([]float64, error) { return sl.applyAgg(AggMode) }

// Median returns the median of each slice.
func (sl *Slicer) Median() ([]float64, error) { return sl.applyAgg(AggMedian) }

// sliceAggs are the statistics available to Agg by name.
var sliceAggs = map[string]AggFunc{
	"mean":     AggMean,
	"integral": AggIntegral,
	"min":      AggMin,
	"max":      AggMax,
	"mode":     AggMode,
	"median":   AggMedian,
	"var":      AggVar,
	"std":      AggStd,
}

// Agg computes several named statistics per slice; the result is keyed by
// statistic name.
func (sl *Slicer) Agg(names ...string) (map[string][]float64, error) {
	out := make(map[string][]float64, len(names))
	for _, name := range names {
		agg, ok := sliceAggs[name]
		if !ok {
			return nil, stairsErrorf(opAgg, errors.Wrapf(ErrInvalidStat, "%q", name))
		}
		vs, err := sl.applyAgg(agg)
		if err != nil {
			return nil, err
		}
		out[name] = vs
	}

	return out, nil
}

// Hist returns the histogram of each slice.
func (sl *Slicer) Hist(bins []float64, closed Closed, stat Stat) ([][]Bin, error) {
	out := make([][]Bin, sl.Len())
	for i := range out {
		c, err := sl.piece(i)
		if err != nil {
			return nil, stairsErrorf(opSlice, err)
		}
		if out[i], err = c.Hist(negInf, posInf, bins, closed, stat); err != nil {
			return nil, stairsErrorf(opSlice, errors.Wrapf(err, "slice %d", i))
		}
	}

	return out, nil
}

// Resample reduces each slice with agg and builds a step function that takes
// slice i's value from its position onward. The result is NaN before the
// first position. Slice bounds must be finite.
func (sl *Slicer) Resample(agg AggFunc, pos Position) (*Stairs, error) {
	vals, err := sl.applyAgg(agg)
	if err != nil {
		return nil, stairsErrorf(opResample, err)
	}
	ps := make([]float64, sl.Len())
	for i := range ps {
		lo, hi := sl.lowers[i], sl.uppers[i]
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return nil, stairsErrorf(opResample, errors.Wrapf(ErrInvalidBounds, "slice %d is unbounded", i))
		}
		switch pos {
		case PositionLeft:
			ps[i] = lo
		case PositionRight:
			ps[i] = hi
		case PositionMid:
			ps[i] = lo + (hi-lo)/2
		default:
			return nil, stairsErrorf(opResample, errors.Wrapf(ErrInvalidBounds, "position %d", pos))
		}
	}

	return FromValues(math.NaN(), ps, vals,
		WithClosed(sl.s.closed), WithConfig(sl.s.cfg), WithLogger(sl.s.logger))
}
