package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loansFixture(t *testing.T) *Table {
	t.Helper()
	tbl := New("id", "amount")
	require.NoError(t, tbl.AppendRow([]string{"1", "10.5"}))
	require.NoError(t, tbl.AppendRow([]string{"2", "20"}))
	return tbl
}

func TestAppendRow(t *testing.T) {
	tbl := New("id", "amount")
	require.NoError(t, tbl.AppendRow([]string{"1", "10.5"}))
	assert.Equal(t, 1, tbl.NumRows())

	err := tbl.AppendRow([]string{"2"})
	assert.Error(t, err)
	assert.Equal(t, 1, tbl.NumRows())
}

func TestShape(t *testing.T) {
	tbl := loansFixture(t)
	rows, cols := tbl.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}

func TestColumn(t *testing.T) {
	tbl := loansFixture(t)

	values, err := tbl.Column("amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.5", "20"}, values)

	_, err = tbl.Column("missing")
	assert.Error(t, err)
}
