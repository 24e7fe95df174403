// Package tsp - nearest-neighbor tour initializer.
//
// The heuristic grows a tour greedily: starting from a chosen vertex it
// repeatedly travels to the nearest vertex not yet visited. Ties are
// broken toward the lowest vertex in the graph's stable iteration order,
// which makes the construction fully deterministic for a fixed start.
//
// Start selection modes (first match wins):
//   - NNFrom(id): every GetTour call starts at the given vertex; the exact
//     vertex identity is kept in the returned path.
//   - NNFromAny(ids...): successive GetTour calls consume the pool
//     round-robin, one start per call.
//   - otherwise: a random start per call from the configured RNG.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/kopt/graph"
)

// NearestNeighbor is the greedy nearest-neighbor construction heuristic.
//
// Not goroutine-safe: the round-robin cursor and the RNG advance per call.
type NearestNeighbor struct {
	start  string   // fixed start; "" when unset
	starts []string // round-robin pool; nil when unset
	next   int      // round-robin cursor
	rng    *rand.Rand
}

var _ TourSolver = (*NearestNeighbor)(nil)

// NNOption configures a NearestNeighbor initializer.
type NNOption func(*NearestNeighbor)

// NNFrom fixes the first vertex of every constructed tour.
func NNFrom(id string) NNOption {
	return func(nn *NearestNeighbor) {
		nn.start = id
	}
}

// NNFromAny supplies a pool of start vertices consumed round-robin across
// successive GetTour calls. An empty pool leaves the mode unset.
func NNFromAny(ids ...string) NNOption {
	return func(nn *NearestNeighbor) {
		if len(ids) == 0 {
			return
		}
		nn.starts = append([]string(nil), ids...)
	}
}

// NNSeed seeds the RNG used for random start selection; seed 0 selects
// the fixed default stream.
func NNSeed(seed int64) NNOption {
	return func(nn *NearestNeighbor) {
		nn.rng = rngFromSeed(seed)
	}
}

// NNRand sets an explicit RNG for random start selection.
func NNRand(rng *rand.Rand) NNOption {
	return func(nn *NearestNeighbor) {
		nn.rng = rng
	}
}

// NewNearestNeighbor creates the initializer; with no options every call
// starts at a random vertex of the default deterministic stream.
func NewNearestNeighbor(opts ...NNOption) *NearestNeighbor {
	nn := &NearestNeighbor{}

	var i int
	for i = 0; i < len(opts); i++ {
		opts[i](nn)
	}
	if nn.rng == nil {
		nn.rng = rngFromSeed(0)
	}

	return nn
}

// GetTour builds a greedy nearest-neighbor tour of g.
//
// Errors: ErrNilGraph, ErrTooFewVertices, ErrVertexNotFound (unknown
// configured start), ErrIncompleteGraph (no edge toward any unvisited
// vertex).
//
// Complexity: O(n²) time, O(n) space.
func (nn *NearestNeighbor) GetTour(g *graph.Graph) (*graph.Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	n := len(ids)
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	startIdx, err := nn.pickStart(ids)
	if err != nil {
		return nil, err
	}

	var (
		visited = make([]bool, n)
		order   = make([]int, 0, n+1)
		cur     = startIdx
		step    int
		cand    int
		best    int
		bestW   float64
		w       float64
		ok      bool
	)
	visited[cur] = true
	order = append(order, cur)

	for step = 1; step < n; step++ {
		best = -1

		// Lowest-index tie-break: strict < keeps the first minimum seen
		// in the stable iteration order.
		for cand = 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			w, ok = g.Weight(ids[cur], ids[cand])
			if !ok {
				continue
			}
			if best == -1 || w < bestW {
				best = cand
				bestW = w
			}
		}
		if best == -1 {
			return nil, ErrIncompleteGraph
		}

		visited[best] = true
		order = append(order, best)
		cur = best
	}
	order = append(order, startIdx) // close the cycle

	vertices := make([]string, len(order))
	var i int
	for i = 0; i < len(order); i++ {
		vertices[i] = ids[order[i]]
	}

	p, err := graph.NewPath(g, vertices)
	if err != nil {
		return nil, mapPathError(err)
	}
	p.Weight = round1e9(p.Weight)

	return p, nil
}

// pickStart resolves the start vertex index per the configured mode.
func (nn *NearestNeighbor) pickStart(ids []string) (int, error) {
	switch {
	case nn.start != "":
		return indexOfID(ids, nn.start)
	case len(nn.starts) > 0:
		id := nn.starts[nn.next%len(nn.starts)]
		nn.next++

		return indexOfID(ids, id)
	default:
		return nn.rng.Intn(len(ids)), nil
	}
}

// indexOfID locates id in the stable vertex order.
func indexOfID(ids []string, id string) (int, error) {
	var i int
	for i = 0; i < len(ids); i++ {
		if ids[i] == id {
			return i, nil
		}
	}

	return 0, ErrVertexNotFound
}
