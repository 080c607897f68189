// Package gridsearch provides the one binary-search shape the
// cross-section core repeats at three call sites: the nuclide energy
// grid (spec §4.2), the S(alpha,beta) inelastic/elastic grids (§4.3), and
// the URR cumulative-probability rows and energy rows (§4.4).
package gridsearch

import "golang.org/x/exp/constraints"

// LowerBound returns the smallest 1-based index i in table such that
// table[i] > x, or len(table)+1 if no such index exists. table must be
// sorted ascending. This is the "smallest index with table[i] > r"
// contract spec §4.4 calls for the URR cumulative-probability search, and
// is behavior-equivalent to the reference linear scan (spec §9).
func LowerBound[T constraints.Ordered](table []T, x T) int {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if table[mid] > x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo + 1
}

// BracketAscending finds the 1-based index i such that table[i] <= x <
// table[i+1], clamping to the terminal intervals exactly as spec §4.2
// describes for the nuclide energy grid: x below table[1] clamps to i=1,
// x at or above the last point clamps to i=len(table)-1.
func BracketAscending[T constraints.Ordered](table []T, x T) int {
	n := len(table)
	if n < 2 {
		return 1
	}
	if x < table[0] {
		return 1
	}
	if x >= table[n-1] {
		return n - 1
	}
	// Smallest 1-based i with table[i] > x, shifted down by one gives the
	// bracketing lower index.
	i := LowerBound(table, x) - 1
	if i < 1 {
		i = 1
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// BracketWindow restricts BracketAscending's search to the 1-based
// inclusive [low, high] sub-range of table, then binary-searches within
// it and returns the index in table's own (not the sub-range's)
// coordinates, per spec §4.2's grid_index window lookup.
func BracketWindow[T constraints.Ordered](table []T, low, high int, x T) int {
	if low < 1 {
		low = 1
	}
	if high > len(table) {
		high = len(table)
	}
	if high < low {
		high = low
	}
	sub := table[low-1 : high]
	i := BracketAscending(sub, x)
	return i + low - 1
}
