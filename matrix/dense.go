// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Square labeled matrices address cells by label as well as index.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); AtLabel: O(1) map lookup; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxLabel = "Label"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a row-major matrix.
type Dense struct {
	r, c   int
	data   []float64 // len == r*c, offset = i*c + j
	labels []string  // nil, or one label per row (== per column)
	index  map[string]int
	opts   Options
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors: ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", rows, cols)
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
		opts: gatherOptions(opts...),
	}, nil
}

// NewLabeled creates a square zero matrix whose rows and columns are both
// named by labels.
//
// Errors: ErrInvalidDimensions for no labels, ErrDuplicateLabel for repeats.
func NewLabeled(labels []string, opts ...Option) (*Dense, error) {
	n := len(labels)
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	m.labels = append([]string(nil), labels...)
	m.index = make(map[string]int, n)
	for i, l := range labels {
		if _, dup := m.index[l]; dup {
			return nil, errors.Wrapf(ErrDuplicateLabel, "%q", l)
		}
		m.index[l] = i
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Labels returns a copy of the labels (nil for an unlabeled matrix).
func (m *Dense) Labels() []string {
	if m.labels == nil {
		return nil
	}

	return append([]string(nil), m.labels...)
}

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the cell (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v into (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// labelIndex resolves a label to its row/column index.
func (m *Dense) labelIndex(l string) (int, error) {
	i, ok := m.index[l]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "Dense.%s(%q)", ctxLabel, l)
	}

	return i, nil
}

// AtLabel returns the cell at (row label, column label).
func (m *Dense) AtLabel(row, col string) (float64, error) {
	i, err := m.labelIndex(row)
	if err != nil {
		return 0, err
	}
	j, err := m.labelIndex(col)
	if err != nil {
		return 0, err
	}

	return m.At(i, j)
}

// SetLabel writes v at (row label, column label).
func (m *Dense) SetLabel(row, col string, v float64) error {
	i, err := m.labelIndex(row)
	if err != nil {
		return err
	}
	j, err := m.labelIndex(col)
	if err != nil {
		return err
	}

	return m.Set(i, j, v)
}

// Clone returns a deep copy, labels included.
func (m *Dense) Clone() *Dense {
	cp := &Dense{
		r:      m.r,
		c:      m.c,
		data:   append([]float64(nil), m.data...),
		labels: m.Labels(),
		opts:   m.opts,
	}
	if m.index != nil {
		cp.index = make(map[string]int, len(m.index))
		for k, v := range m.index {
			cp.index[k] = v
		}
	}

	return cp
}

// IsSymmetric reports whether m is square and m[i][j] ≈ m[j][i] within the
// configured epsilon. NaN cells match NaN cells.
func (m *Dense) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			a, b := m.data[i*m.c+j], m.data[j*m.c+i]
			if math.IsNaN(a) || math.IsNaN(b) {
				if math.IsNaN(a) != math.IsNaN(b) {
					return false
				}

				continue
			}
			if math.Abs(a-b) > m.opts.eps {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, prefixed by its label when set.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		if m.labels != nil {
			b.WriteString(m.labels[i])
			b.WriteString(" ")
		}
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', 6, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
