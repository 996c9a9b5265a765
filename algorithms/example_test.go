package algorithms_test

import (
	"fmt"

	"github.com/apfabric/apmap/algorithms"
	"github.com/apfabric/apmap/core"
)

// buildSimpleChain constructs an undirected, unweighted path graph:
//
//	A — B — C
func buildSimpleChain() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	return g
}

// buildMediumDiamond constructs an undirected, unweighted "diamond"
// shaped graph:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func buildMediumDiamond() *core.Graph {
	g := core.NewGraph()
	for _, e := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_, _ = g.AddEdge(e.U, e.V, 0)
	}
	return g
}

// ExampleBFS shows a breadth-first search on a simple path graph:
// vertices come out level by level, A then B then C.
func ExampleBFS() {
	g := buildSimpleChain()
	result, _ := algorithms.BFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABC
}

// ExampleBFS_diamond shows BFS on a 6-node "diamond" graph: the layers
// A, then B and C, then D, then E and F, each layer in lexicographic
// neighbor order.
func ExampleBFS_diamond() {
	g := buildMediumDiamond()
	result, _ := algorithms.BFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABCDEF
}

// ExampleDFS shows depth-first search on a simple path graph: a single
// branch visited to its end.
func ExampleDFS() {
	g := buildSimpleChain()
	result, _ := algorithms.DFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABC
}

// ExampleDFS_diamond shows DFS on the "diamond" graph: the B branch is
// explored all the way down (B, D, then D's remaining neighbors C, E,
// F) before control returns to A.
func ExampleDFS_diamond() {
	g := buildMediumDiamond()
	result, _ := algorithms.DFS(g, "A", nil)
	for _, v := range result.Order {
		fmt.Print(v.ID)
	}
	// Output: ABDCEF
}
