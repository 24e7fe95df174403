// Package tsp implements k-opt local search for the symmetric Traveling
// Salesperson Problem on complete weighted graphs.
//
// Solvers:
//
//   - TwoOpt: the classical 2-opt neighborhood (best-improvement).
//   - KOpt: the generic k-edge neighborhood. The tour is split into k
//     segments at k cut edges and the segments are recombined in every
//     possible way, including reordering and per-segment reversal. The
//     enumeration of recombinations is precomputed once per k for the
//     whole process and shared across solver instances through a
//     concurrent computation cache.
//   - Incremental: runs 2-opt, 3-opt, …, k-opt in sequence, using only
//     "pure" k-opt moves for the higher stages so that each stage does not
//     redo the previous stage's work.
//
// Initializers (any TourSolver can serve as one):
//
//   - NearestNeighbor: greedy construction from a fixed start, a pool of
//     starts consumed round-robin, or a random start.
//   - RandomTour: a uniformly random Hamiltonian cycle.
//
// Runtime behavior of KOpt is O(n^k) per scan, so for high values of k
// the runtime is substantial even on small instances. Memory is O(n^2).
// It is highly recommended to precondition the initial tour, e.g. with
// NearestNeighbor, and to consider Incremental for greater k.
//
// Design:
//   - Deterministic: seed-routed randomness only; same seed ⇒ same tour.
//   - Strict sentinel errors (types.go); no logging, no panics on user input.
//   - One solver instance is single-threaded; distinct instances may run
//     concurrently and share the process-wide recombination catalogs.
package tsp
