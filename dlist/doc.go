// SPDX-License-Identifier: MIT
// Package: apfabric/dlist
//
// Package dlist provides List, an ordered, growable list of ints used
// throughout the mapper for small per-vertex and per-tile bookkeeping:
// a vertex's set of destination partitions (ext[v]), a tile's outgoing
// boundary states (out), a tile's ghost replicas, and similar fixed-shape
// but dynamically-sized collections.
//
// List intentionally mirrors a hand-rolled growable C array rather than
// a plain []int: callers rely on AddNew's dedup-on-insert semantics,
// Pop's stack discipline, and SwapByPosValue's in-place positional swap,
// all of which are reused verbatim by graphstore, tile and resolver.
//
// Determinism:
//   - Insertion order is preserved; AddNew never reorders existing
//     elements, Change mutates in place, Pop removes only the tail.
package dlist
