package stairs

import (
	"github.com/cockroachdb/errors"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/staircase/domain"
)

const (
	opFromFrame    = "FromFrame"
	opLayerColumns = "LayerColumns"
)

// Table is a column-addressable source of interval rows.
type Table interface {
	Len() int
	Column(name string) ([]any, bool)
}

// Columns is a Table stored column-wise.
type Columns map[string][]any

// Len returns the length of the longest column.
func (c Columns) Len() int {
	n := 0
	for _, col := range c {
		if len(col) > n {
			n = len(col)
		}
	}

	return n
}

// Column implements Table.
func (c Columns) Column(name string) ([]any, bool) {
	col, ok := c[name]

	return col, ok
}

// Records is a Table stored row-wise; a key missing from a row reads as nil.
type Records []map[string]any

// Len implements Table.
func (r Records) Len() int { return len(r) }

// Column implements Table. The column exists when at least one row has it.
func (r Records) Column(name string) ([]any, bool) {
	col := make([]any, len(r))
	found := false
	for i, row := range r {
		if v, ok := row[name]; ok {
			col[i] = v
			found = true
		}
	}

	return col, found
}

// FromFrame builds a function by layering every row of t. An empty column
// name means the column is absent: starts default to -∞, ends to +∞ and
// values to 1. nil cells follow the same defaults.
//
// Errors:
//   - ErrMissingColumn for a named column t does not have.
//   - ErrLengthMismatch when columns differ in length.
//   - ErrInvalidCell for cells the domain configuration cannot encode.
func FromFrame(t Table, startCol, endCol, valueCol string, opts ...Option) (*Stairs, error) {
	s := New(opts...)
	n := t.Len()
	cols := make([][]any, 3)
	for k, name := range [...]string{startCol, endCol, valueCol} {
		if name == "" {
			cols[k] = make([]any, n)

			continue
		}
		col, ok := t.Column(name)
		if !ok {
			return nil, stairsErrorf(opFromFrame, errors.Wrapf(ErrMissingColumn, "%q", name))
		}
		cols[k] = col
	}
	if err := s.layerCells(cols[0], cols[1], cols[2]); err != nil {
		return nil, stairsErrorf(opFromFrame, err)
	}

	return s, nil
}

// LayerColumns is LayerMany over loosely typed cells, encoded through the
// domain configuration. values may be nil (all ones). String endpoints on a
// numeric domain are logged as a warning and parsed as numbers.
func (s *Stairs) LayerColumns(starts, ends, values []any) (*Stairs, error) {
	if !s.cfg.UseDates {
		if i, ok := firstString(starts, ends); ok {
			s.logger.WithFields(l.StringField(l.ClsKey, "stairs"), l.IntField("row", i)).
				Warn("string interval endpoints on a numeric domain; use WithDates for datetimes")
		}
	}
	if values == nil {
		values = make([]any, len(starts))
	}
	if err := s.layerCells(starts, ends, values); err != nil {
		return s, stairsErrorf(opLayerColumns, err)
	}

	return s, nil
}

func firstString(cols ...[]any) (int, bool) {
	for _, col := range cols {
		for i, v := range col {
			if _, ok := v.(string); ok {
				return i, true
			}
		}
	}

	return 0, false
}

// layerCells encodes three parallel cell columns and layers them in one pass.
func (s *Stairs) layerCells(starts, ends, values []any) error {
	if len(starts) != len(ends) || len(starts) != len(values) {
		return errors.Wrapf(ErrLengthMismatch, "starts=%d ends=%d values=%d", len(starts), len(ends), len(values))
	}
	fs := make([]float64, len(starts))
	fe := make([]float64, len(starts))
	fv := make([]float64, len(starts))
	numeric := domain.DefaultConfig()
	for i := range starts {
		var err error
		if fs[i], err = s.cfg.Encode(starts[i]); err != nil {
			return errors.Wrapf(ErrInvalidCell, "start row %d: %v", i, err)
		}
		if fe[i], err = s.cfg.Encode(ends[i]); err != nil {
			return errors.Wrapf(ErrInvalidCell, "end row %d: %v", i, err)
		}
		// values are plain numbers even on a datetime domain
		if fv[i], err = numeric.Encode(values[i]); err != nil {
			return errors.Wrapf(ErrInvalidCell, "value row %d: %v", i, err)
		}
	}
	_, err := s.LayerMany(fs, fe, fv)

	return err
}
