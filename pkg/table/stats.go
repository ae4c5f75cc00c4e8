package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Stats summarises the numeric cells of a single column.
type Stats struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// NullCount returns the number of empty cells in the named column.
func (t *Table) NullCount(name string) (int, error) {
	values, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range values {
		if v == "" {
			count++
		}
	}
	return count, nil
}

// DistinctCount returns the number of distinct non-empty values in the
// named column.
func (t *Table) DistinctCount(name string) (int, error) {
	values, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{})
	for _, v := range values {
		if v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen), nil
}

// Describe computes summary statistics for a column whose cells are numeric
// or empty. Empty cells are skipped; the standard deviation is the sample
// standard deviation.
func Describe(t *Table, name string) (Stats, error) {
	nums, err := t.numericColumn(name)
	if err != nil {
		return Stats{}, err
	}

	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	var sum float64
	for _, f := range nums {
		sum += f
	}
	mean := sum / float64(len(nums))

	var sq float64
	for _, f := range nums {
		sq += (f - mean) * (f - mean)
	}
	std := 0.0
	if len(nums) > 1 {
		std = math.Sqrt(sq / float64(len(nums)-1))
	}

	return Stats{
		Count:  len(nums),
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// numericColumn parses the non-empty cells of a column as float64. It fails
// on the first non-numeric cell and when the column holds no numeric cells
// at all.
func (t *Table) numericColumn(name string) ([]float64, error) {
	values, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	var nums []float64
	for _, v := range values {
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: non-numeric value %q", name, v)
		}
		nums = append(nums, f)
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("column %s has no numeric values", name)
	}
	return nums, nil
}

// quantile interpolates linearly between closest ranks on sorted input.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
