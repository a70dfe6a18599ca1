package tables

import (
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
ErrDimension is returned when row counts, column lengths or a target
vector disagree with each other.
*/
var ErrDimension = xerrors.New("tables: dimension mismatch")

/*
Table is an n rows x p named columns matrix of float64 values.
Columns are identified by name since the active column set of a
consumer may change while the table does not.
*/
type Table struct {
	names []string
	cols  [][]float64
	index map[string]int
}

/*
New creates a table from column names and column-major data.
All columns must have the same length and names must be unique.
*/
func New(names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, xerrors.Errorf("tables: %d names for %d columns: %w", len(names), len(cols), ErrDimension)
	}
	index := map[string]int{}
	for i, c := range cols {
		if len(c) != len(cols[0]) {
			return nil, xerrors.Errorf("tables: column `%v` has length %d, want %d: %w", names[i], len(c), len(cols[0]), ErrDimension)
		}
		if _, ok := index[names[i]]; ok {
			return nil, xerrors.Errorf("tables: duplicated column `%v`", names[i])
		}
		index[names[i]] = i
	}
	return &Table{names: names, cols: cols, index: index}, nil
}

/*
Len returns the number of rows.
*/
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

/*
Width returns the number of columns.
*/
func (t *Table) Width() int { return len(t.cols) }

/*
Names returns the column names in construction order.
*/
func (t *Table) Names() []string {
	r := make([]string, len(t.names))
	copy(r, t.names)
	return r
}

/*
Col returns the values of the named column. The slice is shared
with the table and must not be mutated.
*/
func (t *Table) Col(name string) []float64 {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.cols[i]
}

/*
Has reports whether the table contains the named column.
*/
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

/*
Matrix copies rows [from,to) of the given columns into a dense matrix,
one matrix column per name.
*/
func (t *Table) Matrix(names []string, from, to int) (*mat.Dense, error) {
	m := mat.NewDense(to-from, len(names), nil)
	for j, name := range names {
		c := t.Col(name)
		if c == nil {
			return nil, xerrors.Errorf("tables: unknown column `%v`", name)
		}
		for i := from; i < to; i++ {
			m.Set(i-from, j, c[i])
		}
	}
	return m, nil
}
