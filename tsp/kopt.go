// Package tsp - generic k-opt local search.
//
// The improvement loop breaks the closed tour into k segments by cutting
// it at k edges, then evaluates every canonical recombination of the
// segments (reordering and reversal included) against the original cost,
// and applies the best strictly-improving move until a local optimum is
// reached.
//
// Index conventions inside one candidate:
//   - tourEdgeIndices (I) names the k cut positions; edge j breaks
//     (tour[I[j]], tour[I[j]+1]). Vectors are enumerated lexicographically
//     starting at (0,1,…,k-1) and ending with I[k-1] = n-1, which cuts the
//     closing edge (tour[n-1], tour[n]); every k-subset of the n tour
//     edges is visited exactly once.
//   - bound2vertex (B) maps each of the 2k segment bounds to its tour
//     vertex: B[2j] = tour[I[j]], B[2j+1] = tour[I[j]+1].
//   - A combination C from the catalog is costed in O(k): new edge i
//     connects B[C[2i]] to B[C[2i+1]].
//   - Move application translates bound b to tour position
//     I[b>>1] + (b&1); the bit trick works because canonical bounds pair
//     up as (2j, 2j+1) per original segment.
//
// Each applied move strictly decreases the tour cost by more than the
// improvement threshold and the cost is bounded below by zero, so the
// loop terminates.
package tsp

import "github.com/katalvlaran/kopt/graph"

// KOpt is the k-opt heuristic. Construct with NewKOpt; one instance is
// single-threaded, distinct instances may run concurrently and share the
// process-wide recombination catalogs.
type KOpt struct {
	k    int
	k2   int
	opts Options

	// combinations is the shared catalog for k: identity first, then
	// every non-trivial recombination (pure subset only for Incremental
	// stages). Immutable.
	combinations [][]int
}

var _ TourSolver = (*KOpt)(nil)

// NewKOpt creates a k-opt solver. The per-k recombination catalog is
// obtained from the process-wide cache; the first construction for a
// given k pays the enumeration cost, every later one reuses it.
//
// Errors: ErrBadK, ErrBadPasses, ErrBadMinCostImprovement,
// ErrCombinationInvariant.
func NewKOpt(k int, opts ...Option) (*KOpt, error) {
	if k < minK {
		return nil, ErrBadK
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	combs, err := combinations(k)
	if err != nil {
		return nil, err
	}

	return &KOpt{k: k, k2: 2 * k, opts: o, combinations: combs}, nil
}

// newStageKOpt creates the pure-catalog k-opt used as an Incremental
// stage. Only the improve loop of the result is used; the passes and
// initializer carried over from o are never read.
func newStageKOpt(k int, o Options) (*KOpt, error) {
	combs, err := pureCombinations(k)
	if err != nil {
		return nil, err
	}

	return &KOpt{k: k, k2: 2 * k, opts: o, combinations: combs}, nil
}

// GetTour validates g, runs the configured number of independent
// initializations, improves each and returns the best tour found.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrTooFewVertices,
// ErrIncompleteGraph, ErrBadWeight, ErrNotHamiltonian.
func (a *KOpt) GetTour(g *graph.Graph) (*graph.Path, error) {
	return solveTour(g, a.k, a.opts, a)
}

// ImproveTour improves an existing Hamiltonian cycle of g once and
// returns the resulting tour.
func (a *KOpt) ImproveTour(g *graph.Graph, initial *graph.Path) (*graph.Path, error) {
	return improvePath(g, initial, a.k, a.opts.MinCostImprovement, a)
}

// improve runs best-improvement k-opt on tour to a local optimum.
//
// Complexity: one scan is O(C(n,k) · |catalog| · k); each applied move
// costs O(n). Memory: two tour buffers plus O(k) scratch.
func (a *KOpt) improve(st *tourState, tour []int) []int {
	var (
		k  = a.k
		k2 = a.k2
		n  = st.n

		baseCombination = a.combinations[0]
		recombinations  = a.combinations[1:]

		// Indices of the edges about to break in the tour.
		tourEdgeIndices = make([]int, k)
		// The tourEdgeIndices of the best move.
		bestIndices = make([]int, k)
		// Vertex of each segment bound under the current indices.
		bound2vertex = make([]int, k2)

		newTour = make([]int, n+1)

		minChange       float64
		bestCombination []int
		combination     []int
		baseCost        float64
		cost            float64
		change          float64
		i               int
	)
	for {
		minChange = -st.minCost
		bestCombination = nil

		for initializeIndices(tourEdgeIndices); incrementIndices(tourEdgeIndices, n); {
			// B[2j] = end of segment j, B[2j+1] = start of segment j+1.
			for i = 0; i < k; i++ {
				bound2vertex[2*i] = tour[tourEdgeIndices[i]]
				bound2vertex[2*i+1] = tour[tourEdgeIndices[i]+1]
			}

			baseCost = combinationCost(st, baseCombination, bound2vertex)

			for _, combination = range recombinations {
				cost = combinationCost(st, combination, bound2vertex)
				change = cost - baseCost
				if change < minChange { // improvement found -> save it
					minChange = change
					bestCombination = combination
					copy(bestIndices, tourEdgeIndices)
				}
			}
		}

		if bestCombination == nil {
			return tour // no improvement found -> local optimum
		}

		// Translate canonical bounds to tour positions; reuse the bound
		// scratch, it is recomputed on the next scan anyway.
		boundaries := bound2vertex
		for i = 0; i < k2; i++ {
			boundaries[i] = bestIndices[bestCombination[i]>>1] + (bestCombination[i] & 1)
		}

		applyMove(boundaries, tour, newTour)
		tour, newTour = newTour, tour // swap buffers
	}
}

// initializeIndices resets indices to (0,1,…,k-2,k-2): one below the first
// vector, so the single pre-step increment of the loop lands on
// (0,1,…,k-1) first.
func initializeIndices(indices []int) {
	var i int
	for i = 0; i < len(indices); i++ {
		indices[i] = i
	}
	indices[len(indices)-1]-- // compensate first forward
}

// incrementIndices advances indices to the next strictly increasing
// k-subset of {0..n-1} in lexicographic order and reports whether one
// exists.
func incrementIndices(indices []int, n int) bool {
	k := len(indices)

	// Fast path for the highest index.
	indices[k-1]++
	if indices[k-1] < n {
		return true
	}

	var (
		i     int
		j     int
		limit int
	)
	for i, limit = k-2, n-1; i >= 0; i, limit = i-1, limit-1 {
		indices[i]++
		if indices[i] < limit {
			for j = i + 1; j < k; j++ { // restart all higher indices
				indices[j] = indices[j-1] + 1
			}

			return true
		}
	}

	return false
}

// combinationCost sums the k new edges the combination would create,
// looking each up through the segment-bound vertex map.
//
// Complexity: O(k).
func combinationCost(st *tourState, combination, bound2vertex []int) float64 {
	var (
		cost float64
		i    int
	)
	for i = 0; i < len(combination); i += 2 {
		cost += st.dist[bound2vertex[combination[i]]][bound2vertex[combination[i+1]]]
	}

	return cost
}

// applyMove writes the recombined tour into newTour. boundaries holds the
// 2k tour positions of the segment bounds in splice order: position 0's
// prefix up to boundaries[0] comes first, then each (boundaries[i],
// boundaries[i+1]) pair for odd i is one segment — forward when the pair
// ascends, reversed when it descends — and the tail of the source tour
// closes the cycle (it ends with the closing vertex, so
// newTour[n] == newTour[0] holds by construction).
func applyMove(boundaries, tour, newTour []int) {
	at := copySegment(tour, 0, boundaries[0], newTour, 0)

	var i int
	for i = 1; i < len(boundaries)-1; i += 2 {
		at = copySegment(tour, boundaries[i], boundaries[i+1], newTour, at)
	}

	// The remaining tail starts exactly at the write position.
	copySegment(tour, at, len(tour)-1, newTour, at)
}

// copySegment copies source[start..end] (inclusive) into target beginning
// at targetIndex, reversing when start > end, and returns the index of the
// first element after the copied segment in the target.
func copySegment(source []int, start, end int, target []int, targetIndex int) int {
	if start < end {
		copy(target[targetIndex:], source[start:end+1])

		return targetIndex + end - start + 1
	}

	var i int
	for i = start; end <= i; i-- { // copy segment in reversed order
		target[targetIndex] = source[i]
		targetIndex++
	}

	return targetIndex
}
