// SPDX-License-Identifier: MIT
// Package: apfabric/engine
//
// Package engine is the one collaborator above chip.Chip's per-chip
// coordinator: it loads a batch of descriptor files, sorts their
// automata into the fixed placement order, drives each automaton
// through chip 0 then chip 1, and packs smaller automata into leftover
// tile capacity before closing a tile. It owns
// nothing partition.Plan, resolver.ResolveConstraint or chip.Chip
// don't already own; it is pure orchestration and bookkeeping.
package engine
