// SPDX-License-Identifier: MIT
// Package: apfabric/graphstore
//
// ingest.go - FromCore: adapt a core.Graph fixture into a CSR Graph.
//
// Contract:
//   - Vertex IDs are assigned dense indices 0..n-1 in core.Graph.Vertices()
//     order (which core guarantees is sorted, hence deterministic).
//   - An edge is emitted as a single directed arc From->To when it is
//     effectively directed (global Directed() or, under mixed mode, its
//     own Directed flag); otherwise it is emitted both ways, matching
//     how core itself mirrors undirected edges in its adjacency lists.
//   - Self-loops and duplicate arcs are preserved verbatim; graphstore's
//     CSR makes no uniqueness claim over Adjncy (BuildUndirected is the
//     layer responsible for deduplicating reverse pairs).
//
// This is the builder/test-fixture path: builder.BuildGraph constructs a
// core.Graph topology (ring, chain, random-sparse, ...) to stand in for
// an automaton's transition structure, and FromCore turns it into the
// CSR Graph the partitioner and chip packages operate on.
package graphstore

import "github.com/apfabric/apmap/core"

// FromCore builds a new Graph from g. Vertex names are copied into
// Name[]; Start/Report/Pattern are left at their zero values since
// core.Graph carries no STE semantics of its own — callers that need
// start/report/pattern data should set it via SetSTE after ingest.
func FromCore(g *core.Graph) *Graph {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	nvtxs := len(ids)
	directed := g.Directed()

	type arc struct{ from, to int }
	arcs := make([]arc, 0, g.EdgeCount()*2)
	for _, e := range g.Edges() {
		from, to := index[e.From], index[e.To]
		eDirected := directed
		if e.Directed {
			eDirected = true
		}
		arcs = append(arcs, arc{from, to})
		if !eDirected && from != to {
			arcs = append(arcs, arc{to, from})
		}
	}

	out := NewGraph(nvtxs, len(arcs))
	counts := make([]int, nvtxs)
	for _, a := range arcs {
		counts[a.from]++
	}
	offset := 0
	for v := 0; v < nvtxs; v++ {
		out.XAdj[v] = offset
		offset += counts[v]
	}
	out.XAdj[nvtxs] = offset

	cursor := append([]int(nil), out.XAdj[:nvtxs]...)
	for _, a := range arcs {
		out.Adjncy[cursor[a.from]] = a.to
		cursor[a.from]++
	}

	for i, id := range ids {
		out.Name[i] = id
	}
	return out
}

// SetSTE assigns the start/report/pattern metadata for vertex v.
func (g *Graph) SetSTE(v int, start, report bool, pattern [PatternWords]uint32) {
	g.Start[v] = start
	g.Report[v] = report
	g.Pattern[v] = pattern
}
