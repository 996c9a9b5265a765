// SPDX-License-Identifier: MIT
// Package: apfabric/graphstore
//
// graph.go - Graph: the directed automaton plus its partitioning state.
//
// Contract:
//   - NewGraph(nvtxs, nedges) allocates XAdj (len nvtxs+1) and Adjncy
//     (len nedges) plus parallel per-vertex metadata; all partitioning
//     fields (Where/Pos/Ext/NPart/Cost) start zeroed/nil and are filled
//     by the partitioner and resolver, not by Graph itself.
//   - CSR invariant: XAdj[i] <= XAdj[i+1], Adjncy[XAdj[i]:XAdj[i+1]]
//     lists the directed out-neighbors of vertex i.
package graphstore

import "github.com/apfabric/apmap/dlist"

// PatternWords is the number of 32-bit words used to encode a state's
// accepted symbol set (a dense bitmap over the 256-symbol alphabet).
const PatternWords = 8

// Graph is the directed automaton currently being mapped, together with
// the per-vertex metadata and partitioning results the mapper attaches
// to it as it progresses.
type Graph struct {
	// NVtxs is the number of states (vertices).
	NVtxs int

	// XAdj/Adjncy form the directed CSR adjacency: out-neighbors of
	// vertex i are Adjncy[XAdj[i]:XAdj[i+1]].
	XAdj   []int
	Adjncy []int

	// Name holds each state's symbolic label.
	Name []string

	// Start/Report flag start and reporting (accepting) states.
	Start  []bool
	Report []bool

	// Pattern holds each state's accepted-symbol bitmap.
	Pattern [][PatternWords]uint32

	// NPart is the number of partitions the graph is currently divided
	// into (k-way partitioner output, later inflated by the resolver's
	// InsertDuplicate calls).
	NPart int

	// Where[v] is the partition index assigned to vertex v.
	Where []int

	// Pos[v] is v's slot position within its destination tile, assigned
	// by the tile materializer.
	Pos []int

	// Ext[v] is the ordered, deduplicated set of partition indices that
	// v's out-edges reach outside its own partition (nil until a vertex
	// has at least one external edge).
	Ext []*dlist.List

	// Cost is the total tile consumption implied by the current
	// partition, including resolver-inserted duplicates: NPart plus the
	// boundary overhead term.
	Cost int
}

// NewGraph allocates a Graph sized for nvtxs vertices and nedges directed
// edges. XAdj/Adjncy are left for the caller to populate before any
// partitioning or boundary-counting pass runs.
func NewGraph(nvtxs, nedges int) *Graph {
	return &Graph{
		NVtxs:   nvtxs,
		XAdj:    make([]int, nvtxs+1),
		Adjncy:  make([]int, nedges),
		Name:    make([]string, nvtxs),
		Start:   make([]bool, nvtxs),
		Report:  make([]bool, nvtxs),
		Pattern: make([][PatternWords]uint32, nvtxs),
		Where:   make([]int, nvtxs),
		Pos:     make([]int, nvtxs),
		Ext:     make([]*dlist.List, nvtxs),
	}
}

// Reset reinitializes g in place for a new automaton of the given size,
// reusing backing arrays when their capacity already suffices, so a
// batch run allocates one buffer pair instead of one per automaton.
func (g *Graph) Reset(nvtxs, nedges int) {
	g.NVtxs = nvtxs
	g.XAdj = resizeInts(g.XAdj, nvtxs+1)
	g.Adjncy = resizeInts(g.Adjncy, nedges)
	g.Name = resizeStrings(g.Name, nvtxs)
	g.Start = resizeBools(g.Start, nvtxs)
	g.Report = resizeBools(g.Report, nvtxs)
	g.Pattern = resizePatterns(g.Pattern, nvtxs)
	g.Where = resizeInts(g.Where, nvtxs)
	g.Pos = resizeInts(g.Pos, nvtxs)
	g.Ext = resizeLists(g.Ext, nvtxs)
	g.NPart = 0
	g.Cost = 0
	for i := range g.Ext {
		g.Ext[i] = nil
	}
}

func resizeInts(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int, n)
}

func resizeBools(s []bool, n int) []bool {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]bool, n)
}

func resizeStrings(s []string, n int) []string {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]string, n)
}

func resizePatterns(s [][PatternWords]uint32, n int) [][PatternWords]uint32 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([][PatternWords]uint32, n)
}

func resizeLists(s []*dlist.List, n int) []*dlist.List {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]*dlist.List, n)
}

// NEdges returns the number of directed edges currently stored.
func (g *Graph) NEdges() int {
	if g.NVtxs == 0 {
		return 0
	}
	return g.XAdj[g.NVtxs]
}

// Out returns the out-neighbor slice of vertex v.
func (g *Graph) Out(v int) []int {
	return g.Adjncy[g.XAdj[v]:g.XAdj[v+1]]
}
