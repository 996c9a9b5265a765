// Package apmap places and routes batches of finite-automaton
// descriptions onto a fixed tile fabric, through a partition, resolve,
// route and materialize pipeline built as a set of focused packages.
//
// Layout:
//
//	fabric/     — hardware geometry constants and the run Config
//	graphstore/ — the CSR automaton graph and its undirected companion
//	partition/  — k-way size-constrained partitioning (cost-driven search)
//	resolver/   — boundary-overflow duplicate-tile synthesis
//	tile/       — one tile's STE slots and local switch
//	xswitch/    — the chip's global 1-way and optional 4-way switches
//	chip/       — per-chip mapping: MapGraphToChip and its pipeline
//	engine/     — the batch placement loop across both chips
//	apformat/   — descriptor/graph file parsing and fixture writing
//	report/     — map_result rendering and the tiles-in-total statistic
//	cmd/apmap/  — the cobra CLI: map (default) and gen subcommands
//
// builder/, core/, algorithms/, dlist/ and bitgrid/ are the supporting
// graph-construction and container packages the pipeline above is
// built from.
package apmap
