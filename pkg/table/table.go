// Package table provides an in-memory row/column structure, a delimited
// flat-file serializer for it, and basic column summaries and transforms.
package table

import "fmt"

// Table is an ordered set of named columns with rows addressed by index.
// Every row has exactly len(Columns) cells. Cells are strings; SQL NULL and
// missing values are represented as the empty string.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Shape returns the number of rows and columns.
func (t *Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Columns)
}

// AppendRow adds a row, rejecting rows whose width differs from the header.
func (t *Table) AppendRow(row []string) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Column returns the values of the named column, ordered by row index.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no such column: %s", name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

func (t *Table) columnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}
