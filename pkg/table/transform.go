package table

import (
	"fmt"
	"math"
	"strconv"
)

// Fill strategies accepted by FillNA.
const (
	FillMean   = "mean"
	FillMedian = "median"
	FillMode   = "mode"
)

// FillNA replaces empty cells in the named column. Mean and median require
// the column's non-empty cells to be numeric; mode works on any column.
func FillNA(t *Table, name, strategy string) error {
	idx := t.columnIndex(name)
	if idx < 0 {
		return fmt.Errorf("no such column: %s", name)
	}

	var fill string
	switch strategy {
	case FillMean:
		stats, err := Describe(t, name)
		if err != nil {
			return err
		}
		fill = strconv.FormatFloat(stats.Mean, 'f', -1, 64)
	case FillMedian:
		stats, err := Describe(t, name)
		if err != nil {
			return err
		}
		fill = strconv.FormatFloat(stats.Median, 'f', -1, 64)
	case FillMode:
		mode, ok := mostFrequent(t, idx)
		if !ok {
			return fmt.Errorf("column %s has no values to impute from", name)
		}
		fill = mode
	default:
		return fmt.Errorf("unknown fill strategy: %s", strategy)
	}

	for _, row := range t.Rows {
		if row[idx] == "" {
			row[idx] = fill
		}
	}
	return nil
}

// DropOutliers removes rows whose z-score in the named column exceeds
// threshold in magnitude. Rows with an empty cell in the column are kept.
// Returns the number of rows dropped.
func DropOutliers(t *Table, name string, threshold float64) (int, error) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return 0, fmt.Errorf("no such column: %s", name)
	}
	stats, err := Describe(t, name)
	if err != nil {
		return 0, err
	}
	if stats.Std == 0 {
		return 0, nil
	}

	var kept [][]string
	dropped := 0
	for _, row := range t.Rows {
		if cell := row[idx]; cell != "" {
			// Cells were validated as numeric by Describe above.
			f, _ := strconv.ParseFloat(cell, 64)
			if math.Abs((f-stats.Mean)/stats.Std) > threshold {
				dropped++
				continue
			}
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return dropped, nil
}

// mostFrequent returns the most common non-empty value in a column, ties
// broken by first occurrence.
func mostFrequent(t *Table, idx int) (string, bool) {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, row := range t.Rows {
		v := row[idx]
		if v == "" {
			continue
		}
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount > 0
}
