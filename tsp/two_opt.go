// Package tsp - classical 2-opt local search.
//
// TwoOpt repeatedly scans all pairs (i, j) with 0 ≤ i < j ≤ n-1, evaluates
// the move that reverses the segment tour[i+1..j], and applies the best
// strictly-improving move until none exists. This is exactly the k=2
// specialization of KOpt (the only non-identity recombination of two
// segments reverses one of them); it is kept as its own type because the
// O(1) delta makes it the cheapest stage of Incremental and a common
// preconditioner.
//
// Complexity: one scan is O(n²) delta checks; each applied move costs
// O(n) for the reversal. Memory: O(1) beyond the tour buffer.
package tsp

import "github.com/katalvlaran/kopt/graph"

// TwoOpt is the classical 2-opt heuristic. Construct with NewTwoOpt; one
// instance is single-threaded, distinct instances may run concurrently.
type TwoOpt struct {
	opts Options
}

var _ TourSolver = (*TwoOpt)(nil)

// NewTwoOpt creates a 2-opt solver.
//
// Errors: ErrBadPasses, ErrBadMinCostImprovement.
func NewTwoOpt(opts ...Option) (*TwoOpt, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &TwoOpt{opts: o}, nil
}

// GetTour validates g, runs the configured number of independent
// initializations, improves each and returns the best tour found.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrTooFewVertices,
// ErrIncompleteGraph, ErrBadWeight, ErrNotHamiltonian.
func (t *TwoOpt) GetTour(g *graph.Graph) (*graph.Path, error) {
	return solveTour(g, minK, t.opts, t)
}

// ImproveTour improves an existing Hamiltonian cycle of g once and
// returns the resulting tour.
func (t *TwoOpt) ImproveTour(g *graph.Graph, initial *graph.Path) (*graph.Path, error) {
	return improvePath(g, initial, minK, t.opts.MinCostImprovement, t)
}

// improve runs best-improvement 2-opt on tour to a local optimum.
//
// The scan order (lexicographic over (i, j)) and the strict acceptance
// rule delta < -minCost are shared with KOpt's edge-cut enumeration, so
// both solvers pick the same move under ties.
func (t *TwoOpt) improve(st *tourState, tour []int) []int {
	var (
		n    = st.n
		dist = st.dist

		minChange  float64
		mini, minj int
		i, j       int
		a, b, c, d int     // tour vertices around the two cut edges
		change     float64 // candidate delta (negative is good)
		lo, hi     int     // reversal cursors
	)
	for {
		minChange = -st.minCost
		mini, minj = -1, -1

		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				a = tour[i]
				b = tour[i+1]
				c = tour[j]
				d = tour[j+1]

				// Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
				change = dist[a][c] + dist[b][d] - dist[a][b] - dist[c][d]
				if change < minChange {
					minChange = change
					mini = i
					minj = j
				}
			}
		}

		if mini == -1 {
			return tour // local optimum
		}

		// Apply by in-place reversal of tour[mini+1..minj].
		for lo, hi = mini+1, minj; lo < hi; lo, hi = lo+1, hi-1 {
			tour[lo], tour[hi] = tour[hi], tour[lo]
		}
	}
}
