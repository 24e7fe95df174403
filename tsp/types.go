// Package tsp - shared types, options and sentinel errors.
package tsp

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/kopt/graph"
)

// DefaultMinCostImprovement is the positive threshold below which a cost
// delta is ignored, preventing oscillation under floating-point noise.
const DefaultMinCostImprovement = 1e-8

// minK is the smallest neighborhood size any k-opt solver accepts.
const minK = 2

// Sentinel errors returned by the tsp package.
var (
	// ErrBadK indicates that k is smaller than two.
	ErrBadK = errors.New("tsp: k must be at least two")

	// ErrBadPasses indicates a non-positive number of passes.
	ErrBadPasses = errors.New("tsp: passes must be at least one")

	// ErrBadMinCostImprovement indicates a negative improvement threshold.
	ErrBadMinCostImprovement = errors.New("tsp: minimum cost improvement must be non-negative")

	// ErrNilGraph indicates that a nil graph was passed to a solver.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrDirectedGraph indicates that the input graph stores directed edges;
	// the solvers handle the symmetric TSP only.
	ErrDirectedGraph = errors.New("tsp: graph must be undirected")

	// ErrTooFewVertices indicates that the graph has fewer than k vertices.
	ErrTooFewVertices = errors.New("tsp: graph has fewer vertices than k")

	// ErrIncompleteGraph indicates that some vertex pair has no edge.
	ErrIncompleteGraph = errors.New("tsp: graph is not complete")

	// ErrBadWeight indicates a NaN, infinite or negative edge weight.
	ErrBadWeight = errors.New("tsp: edge weight must be finite and non-negative")

	// ErrNotHamiltonian indicates that a tour is not a Hamiltonian cycle of
	// the input graph (wrong length, not closed, or not a permutation).
	ErrNotHamiltonian = errors.New("tsp: tour is not a Hamiltonian cycle of the graph")

	// ErrVertexNotFound indicates that a referenced start vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("tsp: start vertex not found in graph")

	// ErrCombinationInvariant indicates that the segment-recombination
	// catalog failed its construction self-check.
	ErrCombinationInvariant = errors.New("tsp: segment combination self-check failed")
)

// TourSolver produces a Hamiltonian cycle of a graph. It is implemented by
// every solver and initializer in this package; callers may supply their
// own implementation as an initializer for KOpt or Incremental.
type TourSolver interface {
	// GetTour returns a closed Hamiltonian cycle of g.
	GetTour(g *graph.Graph) (*graph.Path, error)
}

// Options configures the local-search solvers.
//
//	Passes             – how many independent initializations GetTour improves.
//	Initializer        – produces the initial tour of each pass; defaults
//	                     to RandomTour over the solver's RNG.
//	Seed               – RNG seed; 0 selects the fixed default stream.
//	Rand               – explicit RNG; overrides Seed when non-nil.
//	MinCostImprovement – strict improvement threshold per applied move.
type Options struct {
	Passes             int
	Initializer        TourSolver
	Seed               int64
	Rand               *rand.Rand
	MinCostImprovement float64
}

// Option is a functional option for solver construction.
type Option func(*Options)

// DefaultOptions returns the solver defaults: one pass, random-tour
// initialization from the default deterministic stream, and
// DefaultMinCostImprovement.
func DefaultOptions() Options {
	return Options{
		Passes:             1,
		MinCostImprovement: DefaultMinCostImprovement,
	}
}

// WithPasses sets how many initial tours GetTour checks.
func WithPasses(passes int) Option {
	return func(o *Options) {
		o.Passes = passes
	}
}

// WithInitializer sets the algorithm used to generate initial tours.
func WithInitializer(init TourSolver) Option {
	return func(o *Options) {
		o.Initializer = init
	}
}

// WithSeed sets the seed of the solver's random number generator.
// Seed 0 selects the fixed default stream (deterministic builds).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand sets an explicit random number generator; it takes precedence
// over WithSeed. The generator must not be shared across goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// WithMinCostImprovement sets the minimum cost improvement per applied move.
func WithMinCostImprovement(improvement float64) Option {
	return func(o *Options) {
		o.MinCostImprovement = improvement
	}
}

// resolveOptions applies opts over the defaults, validates them, and
// materializes the RNG and default initializer.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()

	var i int
	for i = 0; i < len(opts); i++ {
		opts[i](&o)
	}

	if o.Passes < 1 {
		return Options{}, ErrBadPasses
	}
	if o.MinCostImprovement < 0 {
		return Options{}, ErrBadMinCostImprovement
	}
	if o.Rand == nil {
		o.Rand = rngFromSeed(o.Seed)
	}
	if o.Initializer == nil {
		o.Initializer = NewRandomTour(o.Rand)
	}

	return o, nil
}
