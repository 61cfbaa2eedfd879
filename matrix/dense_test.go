package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staircase/matrix"
)

// TestNewDense_InvalidDimensions verifies non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
	_, err := matrix.NewLabeled(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSet covers in-range access and out-of-range errors.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Nil(t, m.Labels())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	// NaN is a valid cell by default
	require.NoError(t, m.Set(0, 0, math.NaN()))

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	assert.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestDense_Labels covers label addressing and duplicate detection.
func TestDense_Labels(t *testing.T) {
	m, err := matrix.NewLabeled([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, m.SetLabel("a", "b", 0.5))

	v, err := m.AtLabel("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = m.AtLabel("a", "z")
	assert.ErrorIs(t, err, matrix.ErrUnknownLabel)
	assert.ErrorIs(t, m.SetLabel("z", "a", 1), matrix.ErrUnknownLabel)

	_, err = matrix.NewLabeled([]string{"a", "a"})
	assert.ErrorIs(t, err, matrix.ErrDuplicateLabel)

	labels := m.Labels()
	labels[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Labels())
}

// TestDense_CloneAndSymmetry checks deep copies and the symmetry predicate.
func TestDense_CloneAndSymmetry(t *testing.T) {
	m, err := matrix.NewLabeled([]string{"x", "y"})
	require.NoError(t, err)
	require.NoError(t, m.SetLabel("x", "y", 0.25))
	require.NoError(t, m.SetLabel("y", "x", 0.25+1e-15))
	assert.True(t, m.IsSymmetric())

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 1))
	assert.False(t, c.IsSymmetric())
	assert.True(t, m.IsSymmetric(), "clone writes do not leak")
	v, err := c.AtLabel("y", "x")
	require.NoError(t, err)
	assert.Equal(t, 0.25+1e-15, v)

	strict, err := matrix.NewDense(2, 2, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.NoError(t, strict.Set(0, 1, 1e-15))
	assert.False(t, strict.IsSymmetric())

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.False(t, rect.IsSymmetric())

	nan, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, nan.Set(0, 1, math.NaN()))
	assert.False(t, nan.IsSymmetric())
	require.NoError(t, nan.Set(1, 0, math.NaN()))
	assert.True(t, nan.IsSymmetric())

	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
}

// TestDense_String renders labeled rows.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewLabeled([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 0, -0.5))
	assert.Equal(t, "a [1, 0]\nb [-0.5, 0]\n", m.String())
}
