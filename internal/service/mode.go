package service

import "slices"

// Count is one entry of a value-count table.
type Count[T comparable] struct {
	Value T
	N     int
}

// Mode returns the most frequent value. When several values share the
// highest count, the one seen first in values wins.
// ok is false for empty input.
func Mode[T comparable](values []T) (mode T, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}

// ValueCounts tallies values and returns them by descending count, keeping
// first-occurrence order among equal counts.
func ValueCounts[T comparable](values []T) []Count[T] {
	index := make(map[T]int)
	var counts []Count[T]
	for _, v := range values {
		if i, seen := index[v]; seen {
			counts[i].N++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, N: 1})
	}

	slices.SortStableFunc(counts, func(a, b Count[T]) int {
		return b.N - a.N
	})
	return counts
}
