// Package kopt is an in-memory toolkit for k-opt local search on the
// symmetric Traveling Salesperson Problem.
//
// 🚀 What is kopt?
//
//	A small, thread-aware library that brings together:
//		• Core primitives: complete weighted graphs and closed tours
//		• A dense distance-matrix representation tuned for hot loops
//		• A concurrent computation cache with at-most-one compute per key
//		• Local search: classical 2-opt, generic k-opt, incremental 2..k-opt
//		• Initializers: nearest-neighbor and uniform random tours
//
// ✨ Why choose kopt?
//
//   - Deterministic – same seed ⇒ identical tours across platforms
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, one test-only dependency
//   - Amortized setup – segment-recombination catalogs are computed once
//     per k for the whole process and shared by every solver instance
//
// Everything is organized under four subpackages:
//
//	graph/  — complete weighted graph, closed paths, stable vertex order
//	matrix/ — dense row-major distance matrices
//	memo/   — keyed concurrent computation cache
//	tsp/    — the solvers: TwoOpt, KOpt, Incremental + initializers
//
// Quick ASCII example:
//
//	    A───B          a closed tour A→B→D→C→A is a cycle over the
//	    │ ╳ │          complete graph on four vertices; 2-opt removes
//	    C───D          the ╳ crossing, k-opt generalizes to k edges.
//
// Dive into the per-package docs for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/kopt
package kopt
