// SPDX-License-Identifier: MIT

// Package collection: row-wise reduction across many step functions.
//
// Contract:
//   - Every member is sampled on the union of all breakpoints plus -∞
//     (the initial level), using the right limit so each sample is the
//     level of the interval that starts at that breakpoint.
//   - The reducer collapses one row (one sample per member) to a level.
//   - The result is rebuilt from the reduced value view and reduced.
//
// Complexity: O(F·U) for F members and U union breakpoints.

package collection

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/staircase/stairs"
)

const (
	opAggregate = "Aggregate"
	opSample    = "Sample"
)

// Reducer collapses one sample per member into a single level.
type Reducer func(row []float64) float64

// validate rejects empty collections, nil members and mixed closedness.
// Constant members never conflict. It returns the closedness of the result.
func validate(fs []*stairs.Stairs) (stairs.Closed, error) {
	if len(fs) == 0 {
		return 0, ErrEmptyCollection
	}
	closed, fixed := fs[0].Closed(), false
	for i, f := range fs {
		if f == nil {
			return 0, errors.Wrapf(stairs.ErrNilStairs, "member %d", i)
		}
		if f.IsConstant() {
			continue
		}
		if !fixed {
			closed, fixed = f.Closed(), true

			continue
		}
		if f.Closed() != closed {
			return 0, errors.Wrapf(stairs.ErrClosedMismatch, "member %d is %s, want %s", i, f.Closed(), closed)
		}
	}

	return closed, nil
}

// unionPoints returns the sorted, de-duplicated breakpoints of all members.
func unionPoints(fs []*stairs.Stairs) []float64 {
	seen := make(map[float64]struct{})
	var out []float64
	for _, f := range fs {
		for _, p := range f.StepPoints() {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	sort.Float64s(out)

	return out
}

// Sample evaluates every member at points with the given limit side.
// Row i of the result holds member i's samples.
func Sample(fs []*stairs.Stairs, points []float64, side stairs.Side) ([][]float64, error) {
	if len(fs) == 0 {
		return nil, collectionErrorf(opSample, ErrEmptyCollection)
	}
	out := make([][]float64, len(fs))
	for i, f := range fs {
		if f == nil {
			return nil, collectionErrorf(opSample, errors.Wrapf(stairs.ErrNilStairs, "member %d", i))
		}
		out[i] = f.LimitMany(points, side)
	}

	return out, nil
}

// Aggregate reduces the collection point-wise with reducer.
func Aggregate(fs []*stairs.Stairs, reducer Reducer) (*stairs.Stairs, error) {
	if reducer == nil {
		return nil, collectionErrorf(opAggregate, ErrNilReducer)
	}
	closed, err := validate(fs)
	if err != nil {
		return nil, collectionErrorf(opAggregate, err)
	}

	points := unionPoints(fs)
	samples, err := Sample(fs, points, stairs.SideRight)
	if err != nil {
		return nil, collectionErrorf(opAggregate, err)
	}

	row := make([]float64, len(fs))
	for i, f := range fs {
		row[i] = f.InitialValue()
	}
	initial := reducer(row)

	values := make([]float64, len(points))
	for k := range points {
		for i := range fs {
			row[i] = samples[i][k]
		}
		values[k] = reducer(row)
	}

	return stairs.FromValues(initial, points, values,
		stairs.WithClosed(closed), stairs.WithConfig(fs[0].Config()))
}

func hasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// MeanReducer averages a row; any NaN member yields NaN.
func MeanReducer(row []float64) float64 { return stats.Mean(row) }

// SumReducer totals a row; any NaN member yields NaN.
func SumReducer(row []float64) float64 { return vec.Sum(row) }

// MedianReducer returns the midpoint median of a row.
func MedianReducer(row []float64) float64 {
	if hasNaN(row) {
		return math.NaN()
	}

	return stats.Sample{Xs: row}.Quantile(0.5)
}

// MinReducer returns the smallest level of a row.
func MinReducer(row []float64) float64 {
	if hasNaN(row) {
		return math.NaN()
	}
	lo, _ := stats.Bounds(row)

	return lo
}

// MaxReducer returns the largest level of a row.
func MaxReducer(row []float64) float64 {
	if hasNaN(row) {
		return math.NaN()
	}
	_, hi := stats.Bounds(row)

	return hi
}

// Mean is the point-wise mean of the collection.
func Mean(fs []*stairs.Stairs) (*stairs.Stairs, error) { return Aggregate(fs, MeanReducer) }

// Median is the point-wise median of the collection.
func Median(fs []*stairs.Stairs) (*stairs.Stairs, error) { return Aggregate(fs, MedianReducer) }

// Min is the point-wise minimum of the collection.
func Min(fs []*stairs.Stairs) (*stairs.Stairs, error) { return Aggregate(fs, MinReducer) }

// Max is the point-wise maximum of the collection.
func Max(fs []*stairs.Stairs) (*stairs.Stairs, error) { return Aggregate(fs, MaxReducer) }

// Sum is the point-wise sum of the collection.
func Sum(fs []*stairs.Stairs) (*stairs.Stairs, error) { return Aggregate(fs, SumReducer) }

// FromMap flattens a keyed collection into parallel label and member
// slices ordered by key.
func FromMap(m map[string]*stairs.Stairs) ([]string, []*stairs.Stairs) {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	fs := make([]*stairs.Stairs, len(labels))
	for i, k := range labels {
		fs[i] = m[k]
	}

	return labels, fs
}
