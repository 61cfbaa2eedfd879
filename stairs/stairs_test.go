package stairs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staircase/stairs"
)

// scenario builds the reference function used throughout the tests:
//
//	(-∞,-4): 0  [-4,1): -1.75  [1,3): 0.25  [3,5): 2.75  [5,6): 2  [6,10): -0.5  [10,∞): 0
func scenario() *stairs.Stairs {
	return stairs.New().
		Layer(1, 10, 2).
		Layer(-4, 5, -1.75).
		Layer(3, 5, 2.5).
		Layer(6, 7, -2.5).
		Layer(7, 10, -2.5)
}

// TestScenario_StepChangesAndIntegral checks the reference breakpoints and integral.
func TestScenario_StepChangesAndIntegral(t *testing.T) {
	f := scenario()

	assert.Equal(t, []float64{-4, 1, 3, 5, 6, 10}, f.StepPoints())
	assert.Equal(t, []float64{-1.75, 2, 2.5, -0.75, -2.5, 0.5}, f.StepChanges())
	assert.Equal(t, []float64{-1.75, 0.25, 2.75, 2, -0.5, 0}, f.StepValues())
	assert.Equal(t, 6, f.NumberOfSteps())

	integral, err := f.Integral()
	require.NoError(t, err)
	assert.Equal(t, -2.75, integral)
	assert.InDelta(t, -2.75/14, f.Mean(), 1e-12)
}

// TestLayer_ScalarMatchesVector verifies that scalar and vector layering agree.
func TestLayer_ScalarMatchesVector(t *testing.T) {
	starts := []float64{1, 4, 7, 2, math.NaN()}
	ends := []float64{3, 6, 9, 8, 0}
	values := []float64{2, -1, 5, 0.5, 3}

	scalar := stairs.New()
	for i := range starts {
		scalar.Layer(starts[i], ends[i], values[i])
	}
	vector, err := stairs.New().LayerMany(starts, ends, values)
	require.NoError(t, err)

	assert.True(t, scalar.Identical(vector), "scalar:\n%s\nvector:\n%s", scalar, vector)
}

// TestLayer_AdjacentEqualValues verifies redundant midpoints are removed.
func TestLayer_AdjacentEqualValues(t *testing.T) {
	f := stairs.New().Layer(1, 3, 2).Layer(3, 5, 2)
	assert.Equal(t, []float64{1, 5}, f.StepPoints())

	v, err := stairs.New().LayerMany([]float64{1, 3}, []float64{3, 5}, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5}, v.StepPoints())
}

// TestLayer_Conventions covers unbounded ends, NaN values and no-ops.
func TestLayer_Conventions(t *testing.T) {
	f := stairs.New().Layer(math.NaN(), 2, 3)
	assert.Equal(t, 3.0, f.InitialValue(), "-∞ start folds into the initial value")
	assert.Equal(t, []float64{2}, f.StepPoints())

	g := stairs.New().Layer(2, math.Inf(1), math.NaN())
	assert.Equal(t, 1.0, g.Sample(100), "NaN value means 1")
	assert.Equal(t, []float64{2}, g.StepPoints())

	h := stairs.New().Layer(4, 4, 7)
	assert.True(t, h.IsConstant(), "start == end is a no-op")
}

// TestLayerMany_LengthMismatch ensures unequal vectors are rejected.
func TestLayerMany_LengthMismatch(t *testing.T) {
	_, err := stairs.New().LayerMany([]float64{1, 2}, []float64{3}, nil)
	assert.ErrorIs(t, err, stairs.ErrLengthMismatch)
}

// TestLayer_OverNaN keeps undefined spans undefined.
func TestLayer_OverNaN(t *testing.T) {
	c, err := scenario().Clip(2, 7)
	require.NoError(t, err)

	scalar := c.Copy().Layer(0, 3, 1)
	assert.True(t, math.IsNaN(scalar.Sample(1)))
	assert.Equal(t, 1.25, scalar.Sample(2.5))
	assert.Equal(t, 2.75, scalar.Sample(3))

	vector, err := c.Copy().LayerMany([]float64{0}, []float64{3}, []float64{1})
	require.NoError(t, err)
	assert.True(t, scalar.Identical(vector))
}

// TestLayer_InfiniteValue checks that an infinite layer stays inside its
// interval, for later finite layers and for the vector form.
func TestLayer_InfiniteValue(t *testing.T) {
	inf := math.Inf(1)

	f := stairs.New().Layer(0, 1, inf)
	assert.Equal(t, 0.0, f.Sample(-1))
	assert.Equal(t, inf, f.Sample(0.5))
	assert.Equal(t, 0.0, f.Sample(2))

	f.Layer(0.5, 3, 1)
	assert.Equal(t, inf, f.Sample(0.75))
	assert.Equal(t, 1.0, f.Sample(2))
	assert.Equal(t, 0.0, f.Sample(4))

	g, err := stairs.New().LayerMany([]float64{0, 0.5}, []float64{1, 3}, []float64{inf, 1})
	require.NoError(t, err)
	assert.True(t, f.Identical(g))

	neg := stairs.New().Layer(2, 3, math.Inf(-1))
	assert.Equal(t, math.Inf(-1), neg.Sample(2.5))
	assert.Equal(t, 0.0, neg.Sample(3))
}

// TestConstructors_FromValuesFromDeltas checks both views round trip.
func TestConstructors_FromValuesFromDeltas(t *testing.T) {
	f := scenario()

	d, err := stairs.FromDeltas(0, f.StepPoints(), f.StepChanges())
	require.NoError(t, err)
	assert.True(t, f.Identical(d))

	v, err := stairs.FromValues(0, f.StepPoints(), f.StepValues())
	require.NoError(t, err)
	assert.True(t, f.Identical(v))

	unsorted, err := stairs.FromValues(0, []float64{3, 1, 2}, []float64{5, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, unsorted.StepPoints())
	assert.Equal(t, []float64{2, 5}, unsorted.StepValues())

	_, err = stairs.FromValues(0, []float64{1}, nil)
	assert.ErrorIs(t, err, stairs.ErrLengthMismatch)
}

// TestCopy_Independent verifies copies never share breakpoints.
func TestCopy_Independent(t *testing.T) {
	f := scenario()
	c := f.Copy()
	c.Layer(0, 1, 100)

	assert.Equal(t, []float64{-4, 1, 3, 5, 6, 10}, f.StepPoints())
	assert.False(t, f.Identical(c))
}

// TestCache_InvalidatedOnMutation verifies the integral follows mutations.
func TestCache_InvalidatedOnMutation(t *testing.T) {
	f := scenario()
	before, err := f.Integral()
	require.NoError(t, err)

	kept := f.CopyKeepCache()
	f.Layer(0, 2, 1)
	after, err := f.Integral()
	require.NoError(t, err)
	assert.Equal(t, before+2, after)

	k, err := kept.Integral()
	require.NoError(t, err)
	assert.Equal(t, before, k)
}

// TestOptions covers closedness, dates and option panics.
func TestOptions(t *testing.T) {
	r := stairs.New(stairs.WithClosed(stairs.Right)).Layer(1, 3, 1)
	assert.Equal(t, stairs.Right, r.Closed())
	assert.Equal(t, 0.0, r.Sample(1), "right-closed intervals exclude their start")
	assert.Equal(t, 1.0, r.Sample(3), "right-closed intervals include their end")

	c, err := stairs.ParseClosed("RIGHT")
	require.NoError(t, err)
	assert.Equal(t, stairs.Right, c)
	_, err = stairs.ParseClosed("both")
	assert.ErrorIs(t, err, stairs.ErrInvalidClosed)

	_, err = stairs.ParseSide("middle")
	assert.ErrorIs(t, err, stairs.ErrInvalidSide)

	assert.Panics(t, func() { stairs.WithClosed(stairs.Closed(9)) })
	assert.Panics(t, func() { stairs.WithLogger(nil) })
	assert.Panics(t, func() { stairs.WithDates(nil) })

	assert.Equal(t, 5.0, stairs.New(stairs.WithInitialValue(5)).Sample(0))
}
