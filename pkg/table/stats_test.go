package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericFixture(t *testing.T) *Table {
	t.Helper()
	tbl := New("id", "amount")
	for _, row := range [][]string{
		{"1", "1"},
		{"2", "2"},
		{"3", "3"},
		{"4", "4"},
		{"5", "5"},
	} {
		require.NoError(t, tbl.AppendRow(row))
	}
	return tbl
}

func TestNullCount(t *testing.T) {
	tbl := New("id", "amount")
	require.NoError(t, tbl.AppendRow([]string{"1", "10.5"}))
	require.NoError(t, tbl.AppendRow([]string{"2", ""}))
	require.NoError(t, tbl.AppendRow([]string{"3", ""}))

	nulls, err := tbl.NullCount("amount")
	require.NoError(t, err)
	assert.Equal(t, 2, nulls)

	nulls, err = tbl.NullCount("id")
	require.NoError(t, err)
	assert.Equal(t, 0, nulls)

	_, err = tbl.NullCount("missing")
	assert.Error(t, err)
}

func TestDistinctCount(t *testing.T) {
	tbl := New("grade")
	for _, v := range []string{"A", "B", "A", "", "C", "B"} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	distinct, err := tbl.DistinctCount("grade")
	require.NoError(t, err)
	assert.Equal(t, 3, distinct)
}

func TestDescribe(t *testing.T) {
	stats, err := Describe(numericFixture(t), "amount")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Count)
	assert.InDelta(t, 3.0, stats.Mean, 1e-9)
	assert.InDelta(t, 1.5811388300841898, stats.Std, 1e-9)
	assert.InDelta(t, 1.0, stats.Min, 1e-9)
	assert.InDelta(t, 2.0, stats.Q1, 1e-9)
	assert.InDelta(t, 3.0, stats.Median, 1e-9)
	assert.InDelta(t, 4.0, stats.Q3, 1e-9)
	assert.InDelta(t, 5.0, stats.Max, 1e-9)
}

func TestDescribeSkipsEmptyCells(t *testing.T) {
	tbl := New("amount")
	for _, v := range []string{"10.5", "", "20"} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	stats, err := Describe(tbl, "amount")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 15.25, stats.Mean, 1e-9)
	assert.InDelta(t, 15.25, stats.Median, 1e-9)
}

func TestDescribeNonNumericColumn(t *testing.T) {
	tbl := New("grade")
	require.NoError(t, tbl.AppendRow([]string{"A"}))

	_, err := Describe(tbl, "grade")
	assert.Error(t, err)
}

func TestDescribeEmptyColumn(t *testing.T) {
	tbl := New("amount")
	require.NoError(t, tbl.AppendRow([]string{""}))

	_, err := Describe(tbl, "amount")
	assert.Error(t, err)
}
