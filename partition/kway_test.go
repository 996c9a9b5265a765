// Package partition contains unit tests for KWay and the cost-driven planner.
package partition

import (
	"testing"

	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
)

// chainUndirected builds an n-vertex undirected path 0-1-2-...-n-1.
func chainUndirected(n int) *graphstore.Undirected {
	g := graphstore.NewGraph(n, n-1)
	k := 0
	for i := 0; i < n; i++ {
		g.XAdj[i] = k
		if i < n-1 {
			g.Adjncy[k] = i + 1
			k++
		}
	}
	g.XAdj[n] = k

	var u graphstore.Undirected
	graphstore.BuildUndirected(g, &u)
	return &u
}

func TestKWayRespectsCaps(t *testing.T) {
	u := chainUndirected(10)
	tpwgts := SetPartSizeTarget(2, 5)
	where, outcome := KWay(u, 2, tpwgts, fabric.TileSize)
	if outcome != OutcomeValid {
		t.Fatalf("outcome: want valid, got %d", outcome)
	}
	size := map[int]int{}
	for _, p := range where {
		size[p]++
	}
	// SetPartSizeTarget(2, 5) weights parts 256:5, so the caps on 10
	// vertices are [10, 1].
	if size[0] > 10 || size[1] > 1 {
		t.Fatalf("partition sizes exceed caps: %v", size)
	}
	if len(size) > 2 {
		t.Fatalf("expected at most 2 distinct parts, got %v", size)
	}
}

func TestKWayHeadTooBig(t *testing.T) {
	u := chainUndirected(20)
	tpwgts := SetPartSizeTarget(1, 20)
	_, outcome := KWay(u, 1, tpwgts, 5)
	if outcome != OutcomeHeadTooBig {
		t.Fatalf("outcome: want OutcomeHeadTooBig, got %d", outcome)
	}
}

func TestCalcBoundaryOverheadZeroWhenNoTraffic(t *testing.T) {
	cfg := fabric.DefaultConfig()
	nin := []int{0, 0}
	nout := []int{0, 0}
	if got := CalcBoundaryOverhead(nin, nout, 2, cfg); got != 0 {
		t.Fatalf("CalcBoundaryOverhead: want 0, got %d", got)
	}
}

func TestCalcBoundaryOverheadPositive(t *testing.T) {
	cfg := fabric.NewConfig(fabric.WithGlobalNum(4), fabric.WithG4(false))
	// M = 8; nin[0]=50 needs ceil(50/8)=7 in-groups; nout[0]=1.
	nin := []int{50}
	nout := []int{1}
	got := CalcBoundaryOverhead(nin, nout, 1, cfg)
	if got != 6 {
		t.Fatalf("CalcBoundaryOverhead: want 6, got %d", got)
	}
}

func TestChoiceStack(t *testing.T) {
	var s ChoiceStack
	s.Push(Choice{NPart: 2, TailSize: 100})
	s.Push(Choice{NPart: 3, TailSize: 200})
	c, ok := s.Pop()
	if !ok || c.NPart != 3 {
		t.Fatalf("Pop: want NPart=3, got %+v ok=%v", c, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Len after pop: want 1, got %d", s.Len())
	}
}
