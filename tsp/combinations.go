// Package tsp - segment-recombination catalogs.
//
// Cutting a closed tour at k edges yields k contiguous segments. A
// canonical combination is a 2k-length index sequence over the segment
// bounds describing one way to splice the segments back into a cycle:
// the start of each original segment carries an odd bound index, its end
// an even one, segment 0 is pinned in place (C[0]==0, C[2k-1]==2k-1) to
// quotient out rotations, and an even→odd pair inside C means the segment
// between those bounds is traversed reversed.
//
//	 seg0     seg1     seg2    seg0
//	  ,0>--<1,,2>--<3,,4>--<5,
//
// For k=2 the two combinations are:
//
//	,0>--<1,,2>--<3,   (identity)
//	,0>--<2,,1>--<3,   (segment 1 reversed — the classical 2-opt move)
//
// The normalized catalog holds every canonical recombination, identity
// first; the pure catalog drops every entry that leaves any of the k cut
// edges unchanged, so an Incremental stage never redoes a lower stage's
// moves. Both catalogs are computed at most once per k for the whole
// process and shared by all solver instances through memo.Cache; the
// construction cost is 2^(k-1)·(k-1)! entries and is the expensive
// precomputation the cache exists to amortize.
//
// Contracts:
//   - Catalog slices are immutable shared data; callers must not mutate.
//   - combinations(k)[0] is always the identity (0,1,…,2k-1).
package tsp

import (
	"context"

	"github.com/katalvlaran/kopt/memo"
)

// Process-wide catalogs: first-use initialization, live until process end.
var (
	normalizedCatalog *memo.Cache[int, [][]int]
	pureCatalog       *memo.Cache[int, [][]int]
)

func init() {
	var err error
	normalizedCatalog, err = memo.New(computeCombinations)
	if err != nil {
		panic(err)
	}
	pureCatalog, err = memo.New(computePureCombinations)
	if err != nil {
		panic(err)
	}
}

// combinations returns the normalized catalog for k, computing and caching
// it on first use. The returned slice is shared; do not mutate.
func combinations(k int) ([][]int, error) {
	return normalizedCatalog.Get(context.Background(), k)
}

// pureCombinations returns the pure catalog for k: the identity first,
// then every normalized combination that changes all k cut edges.
func pureCombinations(k int) ([][]int, error) {
	return pureCatalog.Get(context.Background(), k)
}

// computeCombinations builds the normalized catalog for k.
//
// Construction: start from the single partial combination [0]. For each of
// the k-1 free segments, extend every partial combination with every odd
// bound not yet present, once forward (v, v+1) and once reversed (v+1, v).
// Finally append the closing bound 2k-1 to every combination.
//
// The result is self-checked against the expected cardinality
// 2^(k-1)·(k-1)! and entry length 2k.
//
// Errors: ErrBadK for k<2, ErrCombinationInvariant on self-check failure.
//
// Complexity: O(k · 2^(k-1) · (k-1)!) time and space.
func computeCombinations(k int) ([][]int, error) {
	if k < minK {
		return nil, ErrBadK
	}

	k2 := 2 * k
	partials := [][]int{{0}}

	var (
		segment  int
		v        int
		base     []int
		extended [][]int
	)
	for segment = 1; segment < k; segment++ { // segment 0 is fixed
		// forward plus reversed per remaining segment
		extended = make([][]int, 0, len(partials)*2*(k-segment))

		for _, base = range partials {
			for v = 1; v < k2-1; v += 2 { // bounds 0 and 2k-1 are implicit
				if containsInt(base, v) {
					continue
				}
				// Segment (v, v+1) is free: attach it forward and reversed.
				extended = append(extended, appendToCopy(base, v, v+1))
				extended = append(extended, appendToCopy(base, v+1, v))
			}
		}
		partials = extended
	}

	// Close every combination with the last bound 2k-1.
	var i int
	for i = 0; i < len(partials); i++ {
		partials[i] = appendToCopy(partials[i], k2-1)
	}

	// Self-check: cardinality and entry length.
	if len(partials) != expectedCombinationCount(k) {
		return nil, ErrCombinationInvariant
	}
	for i = 0; i < len(partials); i++ {
		if len(partials[i]) != k2 {
			return nil, ErrCombinationInvariant
		}
	}

	return partials, nil
}

// computePureCombinations filters the normalized catalog down to pure
// moves, keeping the identity at position 0.
func computePureCombinations(k int) ([][]int, error) {
	all, err := combinations(k)
	if err != nil {
		return nil, err
	}

	pure := make([][]int, 0, len(all))
	pure = append(pure, all[0]) // identity stays first

	var i int
	for i = 1; i < len(all); i++ {
		if isPureMove(all[i]) {
			pure = append(pure, all[i])
		}
	}

	return pure, nil
}

// isPureMove reports whether the combination changes all k cut edges.
// Adjacent bounds in a new-edge pair mean that edge is re-created as it
// was, reducing the effective k by at least one.
func isPureMove(combination []int) bool {
	var (
		edge int
		diff int
	)
	for edge = 0; edge*2 < len(combination); edge++ {
		diff = combination[2*edge+1] - combination[2*edge]
		if diff == 1 || diff == -1 {
			return false
		}
	}

	return true
}

// expectedCombinationCount returns ∏_{i=1..k-1} 2(k-i) = 2^(k-1)·(k-1)!.
func expectedCombinationCount(k int) int {
	count := 1
	var i int
	for i = 1; i < k; i++ {
		count *= 2 * (k - i)
	}

	return count
}

// containsInt reports whether arr contains value.
func containsInt(arr []int, value int) bool {
	var i int
	for i = 0; i < len(arr); i++ {
		if arr[i] == value {
			return true
		}
	}

	return false
}

// appendToCopy returns a fresh slice of arr with values appended.
func appendToCopy(arr []int, values ...int) []int {
	out := make([]int, len(arr), len(arr)+len(values))
	copy(out, arr)

	return append(out, values...)
}
