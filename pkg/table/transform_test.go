package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillNAMedian(t *testing.T) {
	tbl := New("amount")
	for _, v := range []string{"1", "", "3"} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	require.NoError(t, FillNA(tbl, "amount", FillMedian))

	values, err := tbl.Column("amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestFillNAMean(t *testing.T) {
	tbl := New("amount")
	for _, v := range []string{"10", "", "20"} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	require.NoError(t, FillNA(tbl, "amount", FillMean))

	values, err := tbl.Column("amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "15", "20"}, values)
}

func TestFillNAMode(t *testing.T) {
	tbl := New("grade")
	for _, v := range []string{"A", "B", "", "B"} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	require.NoError(t, FillNA(tbl, "grade", FillMode))

	values, err := tbl.Column("grade")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "B", "B"}, values)
}

func TestFillNAUnknownStrategy(t *testing.T) {
	tbl := New("amount")
	require.NoError(t, tbl.AppendRow([]string{"1"}))

	assert.Error(t, FillNA(tbl, "amount", "magic"))
	assert.Error(t, FillNA(tbl, "missing", FillMedian))
}

func TestDropOutliers(t *testing.T) {
	tbl := New("id", "amount")
	for _, row := range [][]string{
		{"1", "10"},
		{"2", "11"},
		{"3", "12"},
		{"4", "13"},
		{"5", "100"},
	} {
		require.NoError(t, tbl.AppendRow(row))
	}

	dropped, err := DropOutliers(tbl, "amount", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 4, tbl.NumRows())

	ids, err := tbl.Column("id")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestDropOutliersConstantColumn(t *testing.T) {
	tbl := New("amount")
	for i := 0; i < 3; i++ {
		require.NoError(t, tbl.AppendRow([]string{"7"}))
	}

	dropped, err := DropOutliers(tbl, "amount", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 3, tbl.NumRows())
}

func TestDropOutliersKeepsEmptyCells(t *testing.T) {
	tbl := New("amount")
	for _, v := range []string{"10", "11", "12", "13", "100", ""} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	dropped, err := DropOutliers(tbl, "amount", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 5, tbl.NumRows())
}
