// Package tsp - tour structure utilities.
//
// These helpers operate purely on index sequences and the ID↔index
// mapping; they do not touch distance matrices.
package tsp

import "github.com/katalvlaran/kopt/graph"

// ValidateTour enforces Hamiltonian-cycle invariants on an index tour:
// len(tour) == n+1, tour[0] == tour[n], and positions 0..n-1 form a
// permutation of {0..n-1}. Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 1 || len(tour) != n+1 {
		return ErrNotHamiltonian
	}
	if tour[0] != tour[n] {
		return ErrNotHamiltonian
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrNotHamiltonian
		}
		if seen[v] {
			return ErrNotHamiltonian
		}
		seen[v] = true
	}

	return nil
}

// pathToTour converts a graph.Path into a closed index tour over the
// stable vertex order ids. The path must be a Hamiltonian cycle of the
// graph the ids were taken from.
//
// Errors: ErrNotHamiltonian.
//
// Complexity: O(n) time, O(n) space.
func pathToTour(p *graph.Path, ids []string) ([]int, error) {
	if p == nil {
		return nil, ErrNotHamiltonian
	}
	n := len(ids)
	if len(p.Vertices) != n+1 {
		return nil, ErrNotHamiltonian
	}

	index := make(map[string]int, n)
	var i int
	for i = 0; i < n; i++ {
		index[ids[i]] = i
	}

	tour := make([]int, n+1)
	var (
		v  int
		ok bool
	)
	for i = 0; i < n+1; i++ {
		v, ok = index[p.Vertices[i]]
		if !ok {
			return nil, ErrNotHamiltonian
		}
		tour[i] = v
	}
	if err := ValidateTour(tour, n); err != nil {
		return nil, err
	}

	return tour, nil
}

// tourToPath converts a closed index tour back into a graph.Path through g,
// stabilizing the summed weight to 1e-9.
//
// Complexity: O(n).
func tourToPath(g *graph.Graph, tour []int, ids []string) (*graph.Path, error) {
	vertices := make([]string, len(tour))
	var i int
	for i = 0; i < len(tour); i++ {
		vertices[i] = ids[tour[i]]
	}

	p, err := graph.NewPath(g, vertices)
	if err != nil {
		return nil, err
	}
	p.Weight = round1e9(p.Weight)

	return p, nil
}
