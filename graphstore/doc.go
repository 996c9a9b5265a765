// SPDX-License-Identifier: MIT
// Package: apfabric/graphstore
//
// Package graphstore holds the single automaton currently being mapped:
// its CSR adjacency, per-state STE metadata (name/start/report/pattern),
// the partitioner's output (npart, where, pos), the per-state external
// destination-partition sets (ext), and the scratch arrays used to build
// an undirected companion graph from the directed input.
//
// Graph is a flat, reusable value rather
// than a generic in-memory graph.Graph (see core.Graph, which graphstore
// ingests via FromCore for the opposite direction — turning a builder-
// generated topology into a CSR Graph for mapping). Adjacency here is
// stored CSR-style (xadj/adjncy) rather than as adjacency maps, because
// the partitioner, boundary counter and tile materializer all walk
// per-vertex neighbor ranges on the hot path and a map indirection would
// cost real time at the scale this module targets (graphs up to TileNum
// * TileSize states).
//
// Configuration:
//
//	NewGraph(nvtxs, nedges) allocates the CSR backing arrays and the
//	parallel metadata slices; Reset reuses them for the next automaton in
//	a batch without reallocating.
package graphstore
