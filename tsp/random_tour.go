// Package tsp - uniform random tour initializer.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/kopt/graph"
)

// RandomTour produces a uniformly random Hamiltonian cycle of the input
// graph via a Fisher–Yates permutation of the stable vertex order.
//
// Not goroutine-safe: the RNG stream advances per call.
type RandomTour struct {
	rng *rand.Rand
}

var _ TourSolver = (*RandomTour)(nil)

// NewRandomTour creates the initializer. A nil rng selects the fixed
// default deterministic stream (seed-0 policy).
func NewRandomTour(rng *rand.Rand) *RandomTour {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return &RandomTour{rng: rng}
}

// GetTour returns a uniformly random closed tour over all vertices of g.
//
// Errors: ErrNilGraph, ErrTooFewVertices.
//
// Complexity: O(n) beyond the graph's vertex enumeration.
func (r *RandomTour) GetTour(g *graph.Graph) (*graph.Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	n := len(ids)
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	perm := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	shuffleIntsInPlace(perm, r.rng)

	vertices := make([]string, n+1)
	for i = 0; i < n; i++ {
		vertices[i] = ids[perm[i]]
	}
	vertices[n] = vertices[0]

	p, err := graph.NewPath(g, vertices)
	if err != nil {
		return nil, mapPathError(err)
	}
	p.Weight = round1e9(p.Weight)

	return p, nil
}

// mapPathError converts graph path-construction failures into the solver's
// input sentinels: a missing edge on a cycle over all vertices means the
// graph is not complete.
func mapPathError(err error) error {
	if err == nil {
		return nil
	}

	return ErrIncompleteGraph
}
