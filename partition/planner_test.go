// Package partition contains unit tests for Plan.
package partition

import (
	"testing"

	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
)

func bigChain(n int) (*graphstore.Graph, *graphstore.Undirected) {
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
	return g, &u
}

func TestPlanSplitsOversizedGraph(t *testing.T) {
	n := fabric.TileSize*2 + 50
	g, u := bigChain(n)
	cfg := fabric.DefaultConfig()

	res := Plan(u, g, fabric.TileSize, cfg, true)
	if !res.OK {
		t.Fatalf("Plan: expected success for a %d-state chain", n)
	}
	if g.NPart < 3 {
		t.Fatalf("NPart: want >= 3 for %d states over TileSize=%d, got %d", n, fabric.TileSize, g.NPart)
	}
	size := make([]int, g.NPart)
	for _, p := range g.Where {
		size[p]++
	}
	for i, s := range size {
		if s > fabric.TileSize {
			t.Fatalf("part %d size %d exceeds TileSize %d", i, s, fabric.TileSize)
		}
	}
}

func TestPlanModeAFindsNoWorseCostThanModeB(t *testing.T) {
	n := fabric.TileSize + 30
	cfg := fabric.DefaultConfig()

	gA, uA := bigChain(n)
	resA := Plan(uA, gA, fabric.TileSize, cfg, false)

	gB, uB := bigChain(n)
	resB := Plan(uB, gB, fabric.TileSize, cfg, true)

	if !resA.OK || !resB.OK {
		t.Fatalf("both modes expected to succeed: A=%v B=%v", resA.OK, resB.OK)
	}
	if resA.Cost > resB.Cost {
		t.Fatalf("Mode A cost %d should never exceed Mode B cost %d", resA.Cost, resB.Cost)
	}
}
