// Package tsp_test provides lightweight helpers shared across the
// *_test.go files in this package: complete-graph builders over 2-D
// points, index↔ID conversions and Hamiltonian-cycle assertions.
package tsp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/kopt/graph"
)

// vertexID formats point index i as a zero-padded ID so that the graph's
// lexicographic vertex order equals the numeric point order.
func vertexID(i int) string {
	return fmt.Sprintf("%02d", i)
}

// euclidGraph builds the complete graph over the given 2-D points with
// Euclidean edge weights. Vertex i is named vertexID(i).
func euclidGraph(t *testing.T, pts [][2]float64) *graph.Graph {
	t.Helper()

	g := graph.New()
	var (
		i, j   int
		dx, dy float64
	)
	for i = 0; i < len(pts); i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			t.Fatalf("AddVertex(%d): %v", i, err)
		}
	}
	for i = 0; i < len(pts); i++ {
		for j = i + 1; j < len(pts); j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			if err := g.AddEdge(vertexID(i), vertexID(j), math.Sqrt(dx*dx+dy*dy)); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", i, j, err)
			}
		}
	}

	return g
}

// unitGraph builds the complete graph on n vertices with all weights 1.
func unitGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()

	g := graph.New()
	var i, j int
	for i = 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			t.Fatalf("AddVertex(%d): %v", i, err)
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := g.AddEdge(vertexID(i), vertexID(j), 1); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", i, j, err)
			}
		}
	}

	return g
}

// indexTour converts a closed path back to point indices via vertexID.
func indexTour(t *testing.T, p *graph.Path) []int {
	t.Helper()

	out := make([]int, len(p.Vertices))
	var (
		i int
		v int
	)
	for i = 0; i < len(p.Vertices); i++ {
		if _, err := fmt.Sscanf(p.Vertices[i], "%d", &v); err != nil {
			t.Fatalf("vertex ID %q is not an index: %v", p.Vertices[i], err)
		}
		out[i] = v
	}

	return out
}

// pathFromIndices builds a closed path through g from open point indices.
func pathFromIndices(t *testing.T, g *graph.Graph, open []int) *graph.Path {
	t.Helper()

	vertices := make([]string, 0, len(open)+1)
	var i int
	for i = 0; i < len(open); i++ {
		vertices = append(vertices, vertexID(open[i]))
	}
	vertices = append(vertices, vertexID(open[0]))

	p, err := graph.NewPath(g, vertices)
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}

	return p
}

// mustBeHamiltonian asserts that p is a closed Hamiltonian cycle over all
// n vertices of its graph.
func mustBeHamiltonian(t *testing.T, p *graph.Path, n int) {
	t.Helper()

	if p == nil {
		t.Fatalf("nil path")
	}
	if len(p.Vertices) != n+1 {
		t.Fatalf("tour length %d, want %d", len(p.Vertices), n+1)
	}
	if p.Vertices[0] != p.Vertices[n] {
		t.Fatalf("tour not closed: %q != %q", p.Vertices[0], p.Vertices[n])
	}
	seen := make(map[string]bool, n)
	var i int
	for i = 0; i < n; i++ {
		if seen[p.Vertices[i]] {
			t.Fatalf("vertex %q repeated in tour", p.Vertices[i])
		}
		seen[p.Vertices[i]] = true
	}
}

// equalInts reports element-wise equality of two int slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
