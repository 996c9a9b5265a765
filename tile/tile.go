// SPDX-License-Identifier: MIT
// Package: apfabric/tile
//
// tile.go - Tile: the placement unit and its local switch.
//
// Contract:
//   - State[s] is the global vertex index occupying slot s, or -1 if
//     empty. StatePreserved (TileSize) is a reserved marker value; no
//     code in this module writes it into State.
//   - The local switch is CSR over TileSize+MaxIn source rows (states
//     0..TileSize-1 plus MaxIn global/g4 input rows) by TileSize
//     destination columns (slot positions). XAdj has TileSize+MaxIn+1
//     entries; Adjncy holds destination slot indices.
//   - Global[k] records which of this tile's states occupy its two
//     outgoing source-channel rows on 1-way switch k (by vertex index,
//     not slot); -1 free, -2 preserved-busy from a previous automaton.
//     G4 is the analogous 8-row set for the optional 4-way switch, nil
//     when disabled. Out lists this tile's boundary states, the
//     vertices those channels carry.
//   - Duplicated is the origin tile index when this tile is a resolver-
//     created replica, else -1.
package tile

import (
	"github.com/apfabric/apmap/dlist"
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
)

// StatePreserved is a reserved State marker for a slot holding a state
// carried over from a previous automaton's mapping. Nothing in this
// module sets it; a reused head tile's states keep their vertex indices.
const StatePreserved = fabric.TileSize

// Tile is one tile's STE slots and local switch.
type Tile struct {
	NState int
	State  [fabric.TileSize]int

	SName   [fabric.TileSize]string
	Start   [fabric.TileSize]bool
	Report  [fabric.TileSize]bool
	Pattern [fabric.TileSize][graphstore.PatternWords]uint32

	XAdj   []int // len TileSize+MaxIn+1
	Adjncy []int

	Out *dlist.List

	Global [][2]int // source-channel rows, len cfg.GlobalNum
	G4     []int    // source-channel rows, len 8 if g4 enabled, else nil

	Ghost      *dlist.List
	Duplicated int
}

// New allocates a Tile sized for cfg's fabric configuration and resets
// it to the empty state.
func New(cfg fabric.Config) *Tile {
	t := &Tile{
		XAdj:   make([]int, fabric.TileSize+cfg.MaxIn()+1),
		Out:    dlist.New(cfg.MaxOut()),
		Global: make([][2]int, cfg.GlobalNum()),
	}
	if cfg.G4Enabled() {
		t.G4 = make([]int, fabric.G4Channels)
	}
	t.Reset()
	return t
}

// Reset clears t to the empty-tile state, releasing its local CSR.
func (t *Tile) Reset() {
	for i := range t.State {
		t.State[i] = -1
		t.SName[i] = ""
	}
	t.NState = 0
	for i := range t.XAdj {
		t.XAdj[i] = 0
	}
	t.Adjncy = nil
	t.Out.Empty()

	for i := range t.Start {
		t.Start[i] = false
		t.Report[i] = false
	}
	for i := range t.Global {
		t.Global[i][0] = -1
		t.Global[i][1] = -1
	}
	for i := range t.G4 {
		t.G4[i] = -1
	}
	if t.Ghost != nil {
		t.Ghost.Empty()
	}
	t.Duplicated = -1
}

// MoveStateFields copies slot metadata (name/start/report/pattern) from
// index `from` to index `to`; the source slot is left unchanged. The
// materializer does not call it.
func (t *Tile) MoveStateFields(from, to int) {
	t.SName[to] = t.SName[from]
	t.Start[to] = t.Start[from]
	t.Report[to] = t.Report[from]
	t.Pattern[to] = t.Pattern[from]
}

// SwapByPosValue swaps value into pos within t.State, returning value's
// original index, or -1 if it is not present.
func (t *Tile) SwapByPosValue(value, pos int) int {
	return dlist.SwapByPosValue(t.State[:], value, pos)
}
