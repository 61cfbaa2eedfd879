package stairs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staircase/stairs"
)

// TestLimit_AtBreakpoints verifies right limit = left limit + delta at every breakpoint.
func TestLimit_AtBreakpoints(t *testing.T) {
	f := scenario()
	ps, ds := f.StepPoints(), f.StepChanges()
	for i, p := range ps {
		left := f.Limit(p, stairs.SideLeft)
		right := f.Limit(p, stairs.SideRight)
		assert.Equal(t, left+ds[i], right, "breakpoint %v", p)
	}
	assert.True(t, math.IsNaN(f.Limit(math.NaN(), stairs.SideRight)))
}

// TestLimitMany_SortedAndUnsorted checks both evaluation strategies agree.
func TestLimitMany_SortedAndUnsorted(t *testing.T) {
	f := scenario()
	sorted := []float64{-10, -4, 0, 1, 3, 5.5, 6, 10, 12}
	shuffled := []float64{6, -4, 12, 0, 10, 1, -10, 5.5, 3}

	for _, side := range []stairs.Side{stairs.SideLeft, stairs.SideRight} {
		got := f.LimitMany(sorted, side)
		for i, x := range sorted {
			assert.Equal(t, f.Limit(x, side), got[i], "sorted x=%v side=%s", x, side)
		}
		got = f.LimitMany(shuffled, side)
		for i, x := range shuffled {
			assert.Equal(t, f.Limit(x, side), got[i], "shuffled x=%v side=%s", x, side)
		}
	}
	assert.Equal(t, []float64{0.25, 2.75}, f.SampleMany([]float64{1, 3}))
}

// TestClip verifies NaN outside the window and the reconstructed boundary.
func TestClip(t *testing.T) {
	f := scenario()
	c, err := f.Clip(2, 7)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 3, 5, 6, 7}, c.StepPoints())
	assert.True(t, math.IsNaN(c.InitialValue()))
	assert.True(t, math.IsNaN(c.Sample(1)))
	assert.Equal(t, 0.25, c.Sample(2))
	assert.Equal(t, -0.5, c.Sample(6.5))
	assert.True(t, math.IsNaN(c.Sample(7)))

	integral, err := c.Integral()
	require.NoError(t, err)
	assert.Equal(t, 7.25, integral)

	over, err := f.IntegralOver(2, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.25, over)

	whole, err := f.Clip(math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	assert.True(t, whole.Identical(f))

	for _, bad := range [][2]float64{{3, 3}, {5, 3}, {math.NaN(), 1}} {
		_, err = f.Clip(bad[0], bad[1])
		assert.ErrorIs(t, err, stairs.ErrInvalidBounds, "window %v", bad)
	}
}

// TestMaskAndFill covers masking an interval and filling it back.
func TestMaskAndFill(t *testing.T) {
	f := scenario()
	m, err := f.MaskInterval(2, 4)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(m.Sample(2)))
	assert.True(t, math.IsNaN(m.Sample(3)))
	assert.Equal(t, 2.75, m.Sample(4))
	assert.Equal(t, -1.75, m.Sample(0))

	filled := m.FillNA(100)
	assert.Equal(t, 100.0, filled.Sample(3))
	assert.Equal(t, -1.75, filled.Sample(0))
	assert.Equal(t, 2.75, filled.Sample(4))

	back, err := m.FillNAWith(f)
	require.NoError(t, err)
	assert.True(t, back.Identical(f))
}

// TestWhere keeps values only where the indicator holds.
func TestWhere(t *testing.T) {
	f := scenario()
	w, err := f.WhereInterval(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.75, w.Sample(3))
	assert.True(t, math.IsNaN(w.Sample(0)))
	assert.True(t, math.IsNaN(w.Sample(4)))

	// NaN in the mask does not mask
	c, err := f.Clip(2, 7)
	require.NoError(t, err)
	never, err := c.Gt(100)
	require.NoError(t, err)
	m, err := f.Mask(never)
	require.NoError(t, err)
	assert.True(t, m.Identical(f))

	_, err = f.Mask(nil)
	assert.ErrorIs(t, err, stairs.ErrNilStairs)
}

// TestFillNAMethod checks forward and backward propagation.
func TestFillNAMethod(t *testing.T) {
	c, err := scenario().Clip(2, 7)
	require.NoError(t, err)

	ff, err := c.FillNAMethod(stairs.FillForward)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(ff.Sample(0)), "leading NaN has nothing to carry")
	assert.Equal(t, -0.5, ff.Sample(8))

	bf, err := c.FillNAMethod(stairs.FillBackward)
	require.NoError(t, err)
	assert.Equal(t, 0.25, bf.Sample(0))
	assert.True(t, math.IsNaN(bf.Sample(8)), "trailing NaN has nothing to pull back")

	m, err := stairs.ParseFill("pad")
	require.NoError(t, err)
	assert.Equal(t, stairs.FillForward, m)
	_, err = stairs.ParseFill("nearest")
	assert.ErrorIs(t, err, stairs.ErrInvalidFill)
	_, err = c.FillNAMethod(stairs.Fill(0))
	assert.ErrorIs(t, err, stairs.ErrInvalidFill)
}

// TestSampleWindow covers windowed aggregation and its preconditions.
func TestSampleWindow(t *testing.T) {
	f := scenario()

	means, err := f.SampleWindow([]float64{2, 4, 5, math.NaN()}, stairs.AggMean, -1, 1, stairs.SideRight, stairs.SideLeft)
	require.NoError(t, err)
	assert.Equal(t, 0.25, means[0])
	assert.Equal(t, 2.75, means[1])
	assert.Equal(t, 2.375, means[2])
	assert.True(t, math.IsNaN(means[3]))

	hi, err := f.SampleWindow([]float64{5}, stairs.AggMax, -1, 1, stairs.SideRight, stairs.SideLeft)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.75}, hi)

	lo, err := f.SampleWindow([]float64{5}, stairs.AggMin, -1, 1, stairs.SideRight, stairs.SideLeft)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, lo)

	lo, err = f.SampleWindow([]float64{5}, stairs.AggMin, -1, 1, stairs.SideRight, stairs.SideRight)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5}, lo, "upper SideRight includes the level at the window end")

	for _, w := range [][2]float64{{1, 2}, {-2, -1}, {0, 0}, {math.NaN(), 1}} {
		_, err = f.SampleWindow([]float64{0}, stairs.AggMean, w[0], w[1], stairs.SideRight, stairs.SideLeft)
		assert.ErrorIs(t, err, stairs.ErrInvalidWindow, "window %v", w)
	}
}

// TestSlicer covers lazy slicing, per-slice statistics and resampling.
func TestSlicer(t *testing.T) {
	f := scenario()
	sl, err := f.Slice([]float64{-4, 1, 5, 10})
	require.NoError(t, err)
	require.Equal(t, 3, sl.Len())

	means, err := sl.Mean()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.75, 1.5, 0}, means)

	maxes, err := sl.Max()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.75, 2.75, 2}, maxes)

	mins, err := sl.Min()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.75, 0.25, -0.5}, mins)

	integrals, err := sl.Integral()
	require.NoError(t, err)
	assert.Equal(t, []float64{-8.75, 6, 0}, integrals)

	modes, err := sl.Mode()
	require.NoError(t, err)
	assert.Equal(t, 0.25, modes[1], "ties go to the smaller level")

	medians, err := sl.Median()
	require.NoError(t, err)
	assert.Equal(t, 2.75, medians[1])

	piece, err := sl.At(1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(piece.Sample(0)))
	assert.Equal(t, 0.25, piece.Sample(1))
	piece.Layer(1, 2, 100)
	again, err := sl.At(1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, again.Sample(1), "memoized slices are not exposed for mutation")

	_, err = sl.At(3)
	assert.ErrorIs(t, err, stairs.ErrInvalidBounds)

	agg, err := sl.Agg("mean", "max")
	require.NoError(t, err)
	assert.Equal(t, means, agg["mean"])
	assert.Equal(t, maxes, agg["max"])
	_, err = sl.Agg("kurtosis")
	assert.ErrorIs(t, err, stairs.ErrInvalidStat)

	counts, err := sl.Apply(func(p *stairs.Stairs) (float64, error) { return float64(p.NumberOfSteps()), nil })
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 3}, counts)

	r, err := sl.Resample(stairs.AggMean, stairs.PositionLeft)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.Sample(-5)))
	assert.Equal(t, -1.75, r.Sample(-4))
	assert.Equal(t, 1.5, r.Sample(1))
	assert.Equal(t, 0.0, r.Sample(5))

	mid, err := sl.Resample(stairs.AggMean, stairs.PositionMid)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 3, 7.5}, mid.StepPoints())

	_, err = f.Slice([]float64{1})
	assert.ErrorIs(t, err, stairs.ErrInvalidBounds)
	_, err = f.Slice([]float64{1, 1, 2})
	assert.ErrorIs(t, err, stairs.ErrInvalidBounds)
}
