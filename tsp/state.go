// Package tsp - per-solve shared state.
//
// A tourState is built once per GetTour/ImproveTour call and passed to each
// improver as a borrowed reference; the Incremental driver hands the same
// state to every stage. The distance matrix is written here and read-only
// afterwards, which is what makes the improvement loops allocation- and
// lock-free.
package tsp

import (
	"math"

	"github.com/katalvlaran/kopt/graph"
	"github.com/katalvlaran/kopt/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// tourState carries everything an improvement pass needs: the instance
// size, the dense distance matrix (as row slices for hot-loop indexing),
// and the strict improvement threshold.
type tourState struct {
	n       int         // number of vertices
	dist    [][]float64 // dist[u][v], rows borrowed from the backing Dense
	minCost float64     // strict improvement threshold
}

// newTourState validates g for the symmetric TSP and materializes the
// distance matrix.
//
// Contracts:
//   - g non-nil and undirected.
//   - At least minVertices vertices.
//   - Complete: every unordered pair has an edge with a finite,
//     non-negative weight.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrTooFewVertices,
// ErrIncompleteGraph, ErrBadWeight.
//
// Complexity: O(n²) time and space.
func newTourState(g *graph.Graph, minVertices int, minCost float64) (*tourState, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, nil, ErrDirectedGraph
	}

	ids := g.Vertices()
	n := len(ids)
	if n < minVertices {
		return nil, nil, ErrTooFewVertices
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, ErrTooFewVertices
	}

	var (
		i, j int
		w    float64
		ok   bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, ok = g.Weight(ids[i], ids[j])
			if !ok {
				return nil, nil, ErrIncompleteGraph
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, nil, ErrBadWeight
			}
			// Symmetric fill; Set cannot fail inside the validated shape.
			_ = d.Set(i, j, w)
			_ = d.Set(j, i, w)
		}
	}

	// Borrow the backing rows for index-arithmetic-free hot loops.
	rows := make([][]float64, n)
	for i = 0; i < n; i++ {
		rows[i] = d.Row(i)
	}

	return &tourState{n: n, dist: rows, minCost: minCost}, ids, nil
}

// tourCost sums the edge weights along a closed index tour.
//
// Complexity: O(n).
func (st *tourState) tourCost(tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += st.dist[tour[i]][tour[i+1]]
	}

	return sum
}
