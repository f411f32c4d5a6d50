package hmm

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Table maps an outer key to inner keys with natural-log probabilities.
// Tables are read-only once built.
type Table map[string]map[string]float64

// NewTableFromCounts normalizes raw counts per outer key and converts them to
// log-probabilities. Counts must be positive and finite.
func NewTableFromCounts(counts map[string]map[string]float64) (Table, error) {
	for outer, row := range counts {
		for inner, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
				return nil, fmt.Errorf("%w: count %q->%q is %v", ErrInvalidTable, outer, inner, c)
			}
		}
	}
	return normalize(counts), nil
}

// NewTableFromLogProbs copies already normalized log-probabilities, as read
// back from storage.
func NewTableFromLogProbs(logProbs map[string]map[string]float64) (Table, error) {
	t := make(Table, len(logProbs))
	for outer, row := range logProbs {
		copied := make(map[string]float64, len(row))
		for inner, lp := range row {
			if math.IsNaN(lp) || math.IsInf(lp, 1) || lp > 0 {
				return nil, fmt.Errorf("%w: log-probability %q->%q is %v", ErrInvalidTable, outer, inner, lp)
			}
			copied[inner] = lp
		}
		t[outer] = copied
	}
	return t, nil
}

// normalize runs once over fully accumulated counts.
func normalize(counts map[string]map[string]float64) Table {
	t := make(Table, len(counts))
	for outer, row := range counts {
		if len(row) == 0 {
			continue
		}
		total := floats.Sum(maps.Values(row))
		logRow := make(map[string]float64, len(row))
		for inner, c := range row {
			logRow[inner] = math.Log(c / total)
		}
		t[outer] = logRow
	}
	return t
}

// Keys returns the outer keys in lexicographic order.
func (t Table) Keys() []string {
	keys := maps.Keys(t)
	slices.Sort(keys)
	return keys
}

// Row returns the inner keys of outer in lexicographic order.
func (t Table) Row(outer string) ([]string, bool) {
	row, ok := t[outer]
	if !ok {
		return nil, false
	}
	keys := maps.Keys(row)
	slices.Sort(keys)
	return keys, true
}

// Lookup returns the log-probability stored for (outer, inner).
func (t Table) Lookup(outer, inner string) (float64, bool) {
	lp, ok := t[outer][inner]
	return lp, ok
}

// Len returns the number of (outer, inner) entries.
func (t Table) Len() int {
	n := 0
	for _, row := range t {
		n += len(row)
	}
	return n
}

func increment(counts map[string]map[string]float64, outer, inner string) {
	row, ok := counts[outer]
	if !ok {
		row = make(map[string]float64)
		counts[outer] = row
	}
	row[inner]++
}
