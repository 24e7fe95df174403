// Package tsp - common driver shared by the local-search solvers.
//
// Every solver follows the same life cycle: validate the graph and build
// the borrowed tourState, obtain one or more initial tours, hand each to
// the solver's improve loop, and return the cheapest result as a
// graph.Path. The improve loops themselves never allocate state, never
// block and never fail; all failure modes are caught up front.
package tsp

import (
	"math"

	"github.com/katalvlaran/kopt/graph"
)

// improver is one improvement strategy operating on a borrowed tourState.
// improve takes ownership of tour (and may return a different buffer) and
// runs to a local optimum of its neighborhood.
type improver interface {
	improve(st *tourState, tour []int) []int
}

// solveTour runs passes independent initializations of g, improves each
// with imp, and returns the best resulting tour.
func solveTour(g *graph.Graph, minVertices int, o Options, imp improver) (*graph.Path, error) {
	st, ids, err := newTourState(g, minVertices, o.MinCostImprovement)
	if err != nil {
		return nil, err
	}

	var (
		best     []int
		bestCost = math.Inf(1)
		pass     int
		initial  *graph.Path
		tour     []int
		cost     float64
	)
	for pass = 0; pass < o.Passes; pass++ {
		initial, err = o.Initializer.GetTour(g)
		if err != nil {
			return nil, err
		}
		tour, err = pathToTour(initial, ids)
		if err != nil {
			return nil, err
		}

		tour = imp.improve(st, tour)

		cost = st.tourCost(tour)
		if cost < bestCost {
			bestCost = cost
			best = tour
		}
	}

	return tourToPath(g, best, ids)
}

// improvePath improves a caller-supplied Hamiltonian cycle of g once.
func improvePath(g *graph.Graph, initial *graph.Path, minVertices int, minCost float64, imp improver) (*graph.Path, error) {
	st, ids, err := newTourState(g, minVertices, minCost)
	if err != nil {
		return nil, err
	}

	tour, err := pathToTour(initial, ids)
	if err != nil {
		return nil, err
	}

	tour = imp.improve(st, tour)

	return tourToPath(g, tour, ids)
}
