// Package tsp - incremental 2..k-opt driver.
//
// Incremental runs the stages 2-opt, 3-opt, …, k-opt in sequence on the
// same tour, all stages borrowing one shared tourState per call. The
// higher stages use the pure catalogs: every move they evaluate changes
// all of its cut edges, so stage k never redoes work a lower stage has
// already exhausted. For greater k this is far cheaper than running the
// full normalized k-opt neighborhood from a cold start.
package tsp

import "github.com/katalvlaran/kopt/graph"

// Incremental chains 2-opt and pure 3..k-opt stages. Construct with
// NewIncremental; one instance is single-threaded.
type Incremental struct {
	k    int
	opts Options

	stages []improver
}

var _ TourSolver = (*Incremental)(nil)

// NewIncremental creates the incremental driver for the given maximum k.
//
// Errors: ErrBadK, ErrBadPasses, ErrBadMinCostImprovement,
// ErrCombinationInvariant.
func NewIncremental(k int, opts ...Option) (*Incremental, error) {
	if k < minK {
		return nil, ErrBadK
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// Stage 2 is the classical 2-opt; for two segments the only pure move
	// is the reversal, so the dedicated solver is the cheaper equivalent.
	stages := make([]improver, 0, k-1)
	stages = append(stages, &TwoOpt{opts: o})

	var (
		j     int
		stage *KOpt
	)
	for j = 3; j <= k; j++ {
		stage, err = newStageKOpt(j, o)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return &Incremental{k: k, opts: o, stages: stages}, nil
}

// GetTour validates g, runs the configured number of independent
// initializations, improves each through all stages and returns the best
// tour found.
func (inc *Incremental) GetTour(g *graph.Graph) (*graph.Path, error) {
	return solveTour(g, inc.k, inc.opts, inc)
}

// ImproveTour runs all stages once over an existing Hamiltonian cycle of g.
func (inc *Incremental) ImproveTour(g *graph.Graph, initial *graph.Path) (*graph.Path, error) {
	return improvePath(g, initial, inc.k, inc.opts.MinCostImprovement, inc)
}

// improve hands the tour through the stages in ascending k order; every
// stage reads the same borrowed state.
func (inc *Incremental) improve(st *tourState, tour []int) []int {
	var i int
	for i = 0; i < len(inc.stages); i++ {
		tour = inc.stages[i].improve(st, tour)
	}

	return tour
}
