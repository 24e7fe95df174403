// Package matrix provides the dense distance-matrix primitive consumed by
// the TSP solvers.
//
// Dense is a row-major float64 matrix with bounds-checked accessors. The
// solvers build one n×n Dense per solve call, write it once and read it in
// tight loops; nothing here is goroutine-safe and nothing here validates
// TSP semantics (symmetry, completeness) — that is the caller's concern.
//
// Complexity: At/Set O(1); NewDense/Clone O(r·c).
package matrix
