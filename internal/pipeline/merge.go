package pipeline

import "sort"

// Merge copies the pairs into an owned slice and sorts it by state
// text, ascending. The sort is stable, so runs over identically ordered
// input produce identical output even when state names repeat.
func Merge(pairs []Pair) []Pair {
	merged := make([]Pair, len(pairs))
	copy(merged, pairs)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].State.Original < merged[j].State.Original
	})

	return merged
}
