package algorithms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/apfabric/apmap/algorithms"
	"github.com/apfabric/apmap/core"
)

// chain builds the undirected path A—B—C.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}} {
		if _, err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", pair[0], pair[1], err)
		}
	}
	return g
}

func orderIDs(order []*core.Vertex) string {
	var s string
	for _, v := range order {
		s += v.ID
	}
	return s
}

func TestBFSVisitsInLayerOrder(t *testing.T) {
	g := chain(t)
	res, err := algorithms.BFS(g, "A", nil)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if got := orderIDs(res.Order); got != "ABC" {
		t.Fatalf("Order: want ABC, got %s", got)
	}
	if res.Depth["C"] != 2 {
		t.Fatalf("Depth[C]: want 2, got %d", res.Depth["C"])
	}
	if res.Parent["C"] != "B" || res.Parent["B"] != "A" {
		t.Fatalf("Parent chain wrong: %v", res.Parent)
	}
}

func TestBFSMissingStartVertex(t *testing.T) {
	g := chain(t)
	_, err := algorithms.BFS(g, "Z", nil)
	if !errors.Is(err, algorithms.ErrVertexNotFound) {
		t.Fatalf("want ErrVertexNotFound, got %v", err)
	}
}

func TestBFSOnVisitAbort(t *testing.T) {
	g := chain(t)
	boom := errors.New("stop here")
	res, err := algorithms.BFS(g, "A", &algorithms.BFSOptions{
		OnVisit: func(v *core.Vertex, depth int) error {
			if v.ID == "B" {
				return boom
			}
			return nil
		},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped OnVisit error, got %v", err)
	}
	if got := orderIDs(res.Order); got != "AB" {
		t.Fatalf("Order after abort: want AB, got %s", got)
	}
}

func TestBFSCancellation(t *testing.T) {
	g := chain(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := algorithms.BFS(g, "A", &algorithms.BFSOptions{Ctx: ctx})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestBFSHooksFire(t *testing.T) {
	g := chain(t)
	var enq, deq int
	_, err := algorithms.BFS(g, "A", &algorithms.BFSOptions{
		OnEnqueue: func(v *core.Vertex, depth int) { enq++ },
		OnDequeue: func(v *core.Vertex, depth int) { deq++ },
	})
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if enq != 3 || deq != 3 {
		t.Fatalf("hook counts: want 3/3, got %d/%d", enq, deq)
	}
}
