// SPDX-License-Identifier: MIT
// Package: apfabric/graphstore
//
// boundary.go - boundary counting and partition-insertion bookkeeping.
//
// Contract:
//   - CountBoundary walks g's directed adjacency under the current
//     g.Where assignment, filling Ext[v] with the distinct partitions
//     v's out-edges reach outside its own, and returns per-partition
//     nin (distinct incoming boundary edges) / nout (vertices with a
//     non-empty Ext) counts sized g.NPart.
//   - InsertDuplicate renumbers every partition index greater than pos
//     upward by num in both g.Where and every g.Ext[v], then grows
//     g.NPart by num. Callers use this to make room for resolver-
//     inserted tile replicas without recomputing the partition.
package graphstore

import "github.com/apfabric/apmap/dlist"

// CountBoundary recomputes Ext for every vertex and returns the
// per-partition nin/nout histograms implied by the current Where
// assignment. nin[p] counts distinct (source-vertex, p) boundary pairs
// reaching partition p from outside; nout[p] counts vertices of
// partition p that have at least one external destination.
func (g *Graph) CountBoundary() (nin, nout []int) {
	nin = make([]int, g.NPart)
	nout = make([]int, g.NPart)

	for v := 0; v < g.NVtxs; v++ {
		own := g.Where[v]
		if g.Ext[v] != nil {
			g.Ext[v].Empty()
		}

		for _, to := range g.Out(v) {
			toPart := g.Where[to]
			if toPart == own {
				continue
			}
			if g.Ext[v] == nil {
				g.Ext[v] = dlist.New(fabricExtHint)
			}
			if g.Ext[v].AddNew(toPart) {
				nin[toPart]++
			}
		}
		if g.Ext[v] != nil && g.Ext[v].Len() > 0 {
			nout[own]++
		}
	}
	return nin, nout
}

// fabricExtHint is a small capacity hint for newly created Ext lists; a
// state rarely fans out to more than a handful of distinct partitions.
const fabricExtHint = 8

// InsertDuplicate shifts every partition index greater than pos upward
// by num, in both Where and every vertex's Ext set, then grows NPart by
// num. It is the bookkeeping half of tile-replica insertion: the caller
// is responsible for actually creating the num new tile slots.
func (g *Graph) InsertDuplicate(pos, num int) {
	for v := 0; v < g.NVtxs; v++ {
		if g.Where[v] > pos {
			g.Where[v] += num
		}
		if g.Ext[v] != nil {
			vals := g.Ext[v].Values()
			for i, p := range vals {
				if p > pos {
					vals[i] = p + num
				}
			}
		}
	}
	g.NPart += num
}
