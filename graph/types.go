package graph

import "errors"

// Sentinel errors returned by the graph package.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	// The diagonal weight w(v,v) is fixed to zero and cannot be set.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrVertexNotFound indicates that a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrPathTooShort indicates that a vertex sequence cannot form a closed path.
	ErrPathTooShort = errors.New("graph: path needs at least two vertices")

	// ErrPathNotClosed indicates that the first and last vertex of a closed
	// path differ.
	ErrPathNotClosed = errors.New("graph: path is not closed")

	// ErrPathEdgeMissing indicates that two consecutive path vertices have no
	// connecting edge in the graph.
	ErrPathEdgeMissing = errors.New("graph: path uses a missing edge")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes the graph store directed edges. Solvers in this module
// reject directed graphs; the option exists so callers can express inputs
// that must be rejected.
func WithDirected() GraphOption {
	return func(g *Graph) {
		g.directed = true
	}
}
