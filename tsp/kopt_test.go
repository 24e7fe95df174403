// Package tsp_test exercises the k-opt solver end to end: the 4-city
// optimum, the 20-point fixture for every k up to 6, and the cost and
// cycle invariants every improvement must preserve.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kopt/graph"
	"github.com/katalvlaran/kopt/tsp"
)

// fourCity builds the A,B,C,D instance with optimum A-B-C-D-A = 97.
func fourCity(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 20}, {"A", "C", 42}, {"A", "D", 35},
		{"B", "C", 30}, {"B", "D", 34}, {"C", "D", 12},
	}
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e.u, e.v, err)
		}
	}

	return g
}

func TestKOpt_FourCityOptimum(t *testing.T) {
	g := fourCity(t)

	var seed int64
	for seed = 1; seed <= 5; seed++ { // several random starts
		solver, err := tsp.NewKOpt(2, tsp.WithSeed(seed))
		if err != nil {
			t.Fatalf("NewKOpt: %v", err)
		}
		p, err := solver.GetTour(g)
		if err != nil {
			t.Fatalf("GetTour: %v", err)
		}
		mustBeHamiltonian(t, p, 4)
		if math.Abs(p.Weight-97) > 1e-9 {
			t.Fatalf("seed %d: tour weight %.6f, want 97", seed, p.Weight)
		}
	}
}

// fixture20 is the 20-location instance whose improvement results are
// unambiguous for a fixed initial tour: all pairwise distances differ.
var fixture20 = [][2]float64{
	{468, 781}, {241, 284}, {774, 636}, {74, 416}, {227, 816},
	{267, 489}, {302, 365}, {919, 686}, {935, 135}, {515, 544},
	{733, 495}, {376, 326}, {534, 971}, {562, 403}, {410, 281},
	{638, 950}, {470, 344}, {488, 822}, {436, 99}, {946, 648},
}

// initial20 is the nearest-neighbor preconditioned starting tour.
var initial20 = []int{13, 16, 14, 11, 6, 1, 5, 3, 4, 0, 17, 12, 15, 2, 10, 9, 7, 19, 8, 18}

// expected20 holds, per k, the unambiguous improvement result and its
// rounded total length.
var expected20 = map[int]struct {
	tour   []int
	weight float64
}{
	2: {[]int{13, 16, 18, 14, 11, 6, 1, 3, 5, 4, 0, 17, 12, 15, 9, 10, 2, 7, 19, 8}, 4048.7},
	3: {[]int{13, 9, 0, 17, 15, 12, 4, 5, 3, 1, 6, 11, 16, 14, 18, 8, 19, 7, 2, 10}, 3937.7},
	4: {[]int{13, 9, 10, 2, 19, 7, 15, 12, 17, 0, 4, 5, 3, 1, 6, 11, 16, 14, 18, 8}, 3934.5},
	5: {[]int{13, 16, 18, 14, 11, 6, 1, 3, 5, 4, 0, 17, 12, 15, 2, 7, 19, 8, 10, 9}, 3921.9},
	6: {[]int{13, 9, 4, 0, 17, 12, 15, 7, 19, 2, 10, 8, 18, 1, 3, 5, 6, 11, 14, 16}, 3913.7},
}

func testImprove20(t *testing.T, k int) {
	t.Helper()

	g := euclidGraph(t, fixture20)
	initial := pathFromIndices(t, g, initial20)

	solver, err := tsp.NewKOpt(k)
	if err != nil {
		t.Fatalf("NewKOpt(%d): %v", k, err)
	}
	p, err := solver.ImproveTour(g, initial)
	if err != nil {
		t.Fatalf("ImproveTour: %v", err)
	}
	mustBeHamiltonian(t, p, len(fixture20))

	if p.Weight > initial.Weight {
		t.Fatalf("k=%d: improvement increased cost: %.3f > %.3f", k, p.Weight, initial.Weight)
	}

	want := expected20[k]
	if math.Abs(p.Weight-want.weight) > 0.05 {
		t.Fatalf("k=%d: tour weight %.3f, want %.1f", k, p.Weight, want.weight)
	}

	got := indexTour(t, p)
	wantClosed := append(append([]int{}, want.tour...), want.tour[0])
	if !equalInts(got, wantClosed) {
		t.Fatalf("k=%d: unexpected tour\n got:  %v\n want: %v", k, got, wantClosed)
	}
}

func TestKOpt_Improve20_K2(t *testing.T) { testImprove20(t, 2) }
func TestKOpt_Improve20_K3(t *testing.T) { testImprove20(t, 3) }
func TestKOpt_Improve20_K4(t *testing.T) { testImprove20(t, 4) }

func TestKOpt_Improve20_K5(t *testing.T) {
	if testing.Short() {
		t.Skip("k=5 scan is expensive; skipped in -short mode")
	}
	testImprove20(t, 5)
}

func TestKOpt_Improve20_K6(t *testing.T) {
	if testing.Short() {
		t.Skip("k=6 scan is expensive; skipped in -short mode")
	}
	testImprove20(t, 6)
}

func TestKOpt_ResultsDistinctPerK(t *testing.T) {
	// The fixture guarantees each k reaches a different local optimum;
	// the rounded weights are pairwise distinct.
	seen := make(map[float64]int)
	for k, want := range expected20 {
		rounded := math.Round(want.weight*10) / 10
		if prev, ok := seen[rounded]; ok {
			t.Fatalf("k=%d and k=%d share rounded weight %.1f", k, prev, rounded)
		}
		seen[rounded] = k
	}
}

func TestKOpt_ImproveNeverIncreasesCost(t *testing.T) {
	g := euclidGraph(t, fixture20[:12])

	var seed int64
	for seed = 1; seed <= 3; seed++ {
		solver, err := tsp.NewKOpt(3, tsp.WithSeed(seed))
		if err != nil {
			t.Fatalf("NewKOpt: %v", err)
		}
		initSolver := tsp.NewNearestNeighbor(tsp.NNSeed(seed))
		initial, err := initSolver.GetTour(g)
		if err != nil {
			t.Fatalf("initial GetTour: %v", err)
		}
		p, err := solver.ImproveTour(g, initial)
		if err != nil {
			t.Fatalf("ImproveTour: %v", err)
		}
		mustBeHamiltonian(t, p, 12)
		if p.Weight > initial.Weight+1e-9 {
			t.Fatalf("seed %d: cost increased: %.3f > %.3f", seed, p.Weight, initial.Weight)
		}
	}
}

func TestKOpt_EquivalentToTwoOptForK2(t *testing.T) {
	// The k=2 specialization must reproduce classical 2-opt exactly:
	// same scan order, same tie-breaks, same local optimum.
	pointSets := [][][2]float64{
		fixture20,
		fixture20[:10],
		fixture20[3:17],
	}
	for setIdx, pts := range pointSets {
		g := euclidGraph(t, pts)

		nn := tsp.NewNearestNeighbor(tsp.NNFrom(vertexID(0)))
		initial, err := nn.GetTour(g)
		if err != nil {
			t.Fatalf("set %d: NN GetTour: %v", setIdx, err)
		}

		twoOpt, err := tsp.NewTwoOpt()
		if err != nil {
			t.Fatalf("NewTwoOpt: %v", err)
		}
		kOpt, err := tsp.NewKOpt(2)
		if err != nil {
			t.Fatalf("NewKOpt: %v", err)
		}

		a, err := twoOpt.ImproveTour(g, initial)
		if err != nil {
			t.Fatalf("set %d: TwoOpt.ImproveTour: %v", setIdx, err)
		}
		b, err := kOpt.ImproveTour(g, initial)
		if err != nil {
			t.Fatalf("set %d: KOpt.ImproveTour: %v", setIdx, err)
		}

		if !equalInts(indexTour(t, a), indexTour(t, b)) {
			t.Fatalf("set %d: 2-opt and 2-opt-as-k-opt disagree\n two-opt: %v\n k-opt:   %v",
				setIdx, a.Vertices, b.Vertices)
		}
		if math.Abs(a.Weight-b.Weight) > 1e-9 {
			t.Fatalf("set %d: weights disagree: %.9f vs %.9f", setIdx, a.Weight, b.Weight)
		}
	}
}
