// SPDX-License-Identifier: MIT
// Package: apfabric/engine
//
// batch.go - loading and sorting a batch of descriptor files.
//
// Every descriptor file's automata are concatenated into one list,
// then sorted descending by (nstate, nedge) before the placement loop
// runs, so the largest, hardest-to-place automata are attempted first
// while the fabric is emptiest.
package engine

import (
	"fmt"
	"sort"

	"github.com/apfabric/apmap/apformat"
)

// entry is one automaton's descriptor-file metadata plus the mapping
// loop's bookkeeping for it.
type entry struct {
	apformat.Automaton

	// descriptor is the path to the descriptor file this entry came
	// from, used only for "<path> cannot be mapped" diagnostics.
	descriptor string

	// mapped is set once the automaton has been placed on some chip.
	mapped bool
}

// loadBatch reads every descriptor file in paths and returns their
// automata concatenated into one list, sorted descending by
// (NState, NEdge).
func loadBatch(paths []string) ([]*entry, error) {
	var entries []*entry
	for _, path := range paths {
		autos, err := apformat.ReadMapFile(path)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		for _, a := range autos {
			entries = append(entries, &entry{Automaton: a, descriptor: path})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].NState != entries[j].NState {
			return entries[i].NState > entries[j].NState
		}
		return entries[i].NEdge > entries[j].NEdge
	})
	return entries, nil
}

// bestFit returns the index of the largest unmapped entry whose NState
// does not exceed capacity, or -1 if none fits. Because entries is kept
// in descending (NState, NEdge) order, this is the first unmapped entry
// scanning from the front whose NState fits.
func bestFit(entries []*entry, capacity int) int {
	best := -1
	for i, e := range entries {
		if e.mapped || e.NState > capacity {
			continue
		}
		if best == -1 || e.NState > entries[best].NState {
			best = i
		}
	}
	return best
}
