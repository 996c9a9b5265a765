// Package core_test exercises the Graph API surface this module relies
// on: construction flags, vertex/edge lifecycle with their sentinel
// errors, deterministic sorted iteration, neighborhood queries, and
// basic concurrent safety.
package core_test

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/apfabric/apmap/core"
)

func TestGraphOptions(t *testing.T) {
	g := core.NewGraph()
	if g.Directed() || g.Weighted() || g.Looped() || g.Multigraph() || g.MixedEdges() {
		t.Fatalf("zero-option graph must disable every mode flag")
	}

	g = core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	if !g.Directed() || !g.Weighted() || !g.Looped() || !g.Multigraph() {
		t.Fatalf("option flags not applied")
	}
}

func TestVertexLifecycle(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("B"); err != nil {
		t.Fatalf("AddVertex(B): %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("empty ID: want ErrEmptyVertexID, got %v", err)
	}
	if !g.HasVertex("A") || g.HasVertex("Z") {
		t.Fatalf("HasVertex misreports membership")
	}
	if got := g.Vertices(); !sort.StringsAreSorted(got) {
		t.Fatalf("Vertices not sorted: %v", got)
	}
	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount: want 2, got %d", g.VertexCount())
	}

	if err := g.RemoveVertex("B"); err != nil {
		t.Fatalf("RemoveVertex(B): %v", err)
	}
	if g.HasVertex("B") {
		t.Fatalf("B still present after removal")
	}
	if err := g.RemoveVertex("B"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("double removal: want ErrVertexNotFound, got %v", err)
	}
}

func TestAddEdgeConstraints(t *testing.T) {
	g := core.NewGraph() // undirected, unweighted, no loops, no multi
	if _, err := g.AddEdge("A", "B", 3); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("weight on unweighted graph: want ErrBadWeight, got %v", err)
	}
	if _, err := g.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("self-loop: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge(A,B): %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("parallel edge: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0, core.WithEdgeDirected(true)); !errors.Is(err, core.ErrMixedEdgesNotAllowed) {
		t.Fatalf("per-edge override without mixed mode: want ErrMixedEdgesNotAllowed, got %v", err)
	}

	// Endpoints are created on demand.
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Fatalf("AddEdge must auto-create endpoints")
	}
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge("A", "B", 0)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge("A", "B") {
		t.Fatalf("HasEdge(A,B): want true")
	}
	if err := g.RemoveEdge(eid); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge("A", "B") {
		t.Fatalf("edge still present after removal")
	}
	if err := g.RemoveEdge(eid); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Fatalf("double removal: want ErrEdgeNotFound, got %v", err)
	}
}

func TestEdgesSortedAndCounted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, pair := range [][2]string{{"C", "A"}, {"A", "B"}, {"B", "C"}} {
		if _, err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			t.Fatalf("AddEdge(%v): %v", pair, err)
		}
	}
	edges := g.Edges()
	if len(edges) != 3 || g.EdgeCount() != 3 {
		t.Fatalf("edge count: want 3, got %d/%d", len(edges), g.EdgeCount())
	}
	for i := 1; i < len(edges); i++ {
		if edges[i-1].ID >= edges[i].ID {
			t.Fatalf("Edges not sorted by ID: %s before %s", edges[i-1].ID, edges[i].ID)
		}
	}
}

func TestNeighborsAndNeighborIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, to := range []string{"C", "B", "D"} {
		if _, err := g.AddEdge("A", to, 0); err != nil {
			t.Fatalf("AddEdge(A,%s): %v", to, err)
		}
	}
	if _, err := g.AddEdge("B", "A", 0); err != nil {
		t.Fatalf("AddEdge(B,A): %v", err)
	}

	ids, err := g.NeighborIDs("A")
	if err != nil {
		t.Fatalf("NeighborIDs(A): %v", err)
	}
	want := []string{"B", "C", "D"}
	if len(ids) != len(want) {
		t.Fatalf("NeighborIDs(A): want %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("NeighborIDs(A): want %v, got %v", want, ids)
		}
	}

	// Directed: out-edges only.
	edges, err := g.Neighbors("A")
	if err != nil {
		t.Fatalf("Neighbors(A): %v", err)
	}
	for _, e := range edges {
		if e.From != "A" {
			t.Fatalf("directed Neighbors must only include out-edges, got %s->%s", e.From, e.To)
		}
	}

	if _, err := g.Neighbors("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Neighbors(Z): want ErrVertexNotFound, got %v", err)
	}
}

func TestMixedEdgesDirectedOverride(t *testing.T) {
	g := core.NewGraph(core.WithMixedEdges())
	if _, err := g.AddEdge("A", "B", 0, core.WithEdgeDirected(true)); err != nil {
		t.Fatalf("mixed AddEdge: %v", err)
	}
	edges := g.Edges()
	if len(edges) != 1 || !edges[0].Directed {
		t.Fatalf("per-edge override lost: %+v", edges)
	}
}

func TestStatsSnapshot(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	s := g.Stats()
	if !s.DirectedDefault || s.VertexCount != 3 || s.EdgeCount != 2 || s.DirectedEdgeCount != 2 {
		t.Fatalf("Stats: unexpected snapshot %+v", s)
	}
}

func TestDegree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "B", 0)
	in, out, _, err := g.Degree("B")
	if err != nil {
		t.Fatalf("Degree(B): %v", err)
	}
	if in != 2 || out != 0 {
		t.Fatalf("Degree(B): want in=2 out=0, got in=%d out=%d", in, out)
	}
}

func TestFilterEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 5)
	g.FilterEdges(func(e *core.Edge) bool { return e.Weight > 2 })
	if g.EdgeCount() != 1 || !g.HasEdge("B", "C") {
		t.Fatalf("FilterEdges: want only B->C to survive, got %d edges", g.EdgeCount())
	}
}

func TestVerticesMapIsACopy(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	m := g.VerticesMap()
	delete(m, "A")
	if !g.HasVertex("A") {
		t.Fatalf("mutating VerticesMap must not affect the graph")
	}
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := g.AddEdge("A", "B", 0); err != nil {
					t.Errorf("concurrent AddEdge: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if g.EdgeCount() != 400 {
		t.Fatalf("EdgeCount after concurrent adds: want 400, got %d", g.EdgeCount())
	}
}
