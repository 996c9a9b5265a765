// SPDX-License-Identifier: MIT
// Package: apfabric/chip
//
// materialize.go - tile materialization: STE placement plus the local
// switch's CSR construction.
//
// Contract:
//   - Each partition's member vertices fill State/SName/Start/Report/
//     Pattern slots starting at the tile's current occupancy (0 for a
//     freshly opened tile, or the previous automaton's state count when
//     reusing a partially-filled head tile), in ascending vertex-index
//     order. A reused head tile's already-placed slots, and the local
//     switch rows already recorded for them, are preserved rather than
//     erased: the existing CSR is decoded back into the connectivity
//     grid before the new vertices and edges are added to it.
//   - The local switch's source rows are, in order: one row per local
//     slot (intra-tile routing), then MaxIn channel rows (one per
//     1-way-switch channel, then one per g4 channel if enabled) that
//     carry traffic arriving from another tile's global-switch
//     assignment. A channel row's destinations are whichever local
//     slots the channel's source vertex fans out to within this tile.
//   - bitgrid.Grid captures the row/destination connectivity before
//     flattening it to CSR, giving Get/Set-based construction instead
//     of manual offset bookkeeping.
package chip

import (
	"github.com/apfabric/apmap/bitgrid"
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
	"github.com/apfabric/apmap/tile"
)

// materializeTile fills chip.Tiles[headtile+part] with partition part's
// member states and local switch CSR, given graph's current Where
// assignment and the chip's already-committed global switch state. Any
// state already held by the tile (a reused, partially-filled head tile
// carried over from an earlier automaton) is preserved; new vertices
// are appended after it.
func (c *Chip) materializeTile(graph *graphstore.Graph, headtile, part int) {
	t := c.Tiles[headtile+part]
	base := t.NState

	maxIn := c.Cfg.MaxIn()
	rows := fabric.TileSize + maxIn
	grid := bitgrid.NewGrid(rows, fabric.TileSize)
	decodeCSR(t, grid, base, maxIn)

	slot := make([]int, graph.NVtxs)
	for i := range slot {
		slot[i] = -1
	}

	idx := base
	for v := 0; v < graph.NVtxs; v++ {
		if graph.Where[v] != part {
			continue
		}
		t.State[idx] = v
		t.SName[idx] = graph.Name[v]
		t.Start[idx] = graph.Start[v]
		t.Report[idx] = graph.Report[v]
		t.Pattern[idx] = graph.Pattern[v]
		graph.Pos[v] = idx
		slot[v] = idx
		idx++
		if graph.Ext[v] != nil && graph.Ext[v].Len() > 0 {
			t.Out.AddNew(v)
		}
	}
	t.NState = idx

	// Local-to-local rows: a local state's in-partition out-edges route
	// directly to the destination's slot.
	for v := 0; v < graph.NVtxs; v++ {
		s := slot[v]
		if s < 0 {
			continue
		}
		for _, w := range graph.Out(v) {
			if ws := slot[w]; ws >= 0 {
				grid.Set(s, ws, true)
			}
		}
	}

	// Channel rows: one per 1-way-switch channel, then g4 channels, each
	// fed by whatever external vertex the chip's switch allocation
	// assigned to this tile's position in that channel.
	row := fabric.TileSize
	destTile := headtile + part
	for _, g := range c.Globals {
		for ch := 0; ch < 2; ch++ {
			sv := g.Src[destTile][ch]
			if sv >= 0 {
				fanIntoTile(grid, row, sv, graph, slot)
			}
			row++
		}
	}
	if c.G4 != nil {
		for ch := 0; ch < fabric.G4Channels; ch++ {
			sv := c.G4.Src[destTile][ch]
			if sv >= 0 {
				fanIntoTile(grid, row, sv, graph, slot)
			}
			row++
		}
	}

	buildCSR(t, grid, idx, maxIn)
}

// decodeCSR reconstructs grid's connectivity from t's existing local
// switch CSR, for the nstate already-placed local rows plus every
// channel row. A freshly opened tile (nstate == 0, empty XAdj) decodes
// to nothing, so this is a harmless no-op in the common case; it only
// does real work when t is a reused, partially-filled head tile whose
// prior automaton's local edges and channel assignments must survive
// the new automaton's materialization.
func decodeCSR(t *tile.Tile, grid *bitgrid.Grid, nstate, maxIn int) {
	if len(t.XAdj) == 0 {
		return
	}
	decodeRow := func(row int) {
		if row+1 >= len(t.XAdj) {
			return
		}
		for _, col := range t.Adjncy[t.XAdj[row]:t.XAdj[row+1]] {
			grid.Set(row, col, true)
		}
	}
	for s := 0; s < nstate; s++ {
		decodeRow(s)
	}
	for r := fabric.TileSize; r < fabric.TileSize+maxIn; r++ {
		decodeRow(r)
	}
}

// fanIntoTile marks row's destinations as every local slot that source
// vertex sv connects to within this tile.
func fanIntoTile(grid *bitgrid.Grid, row, sv int, graph *graphstore.Graph, slot []int) {
	for _, w := range graph.Out(sv) {
		if ws := slot[w]; ws >= 0 {
			grid.Set(row, ws, true)
		}
	}
}

// buildCSR flattens grid's first (nstate + maxIn) rows into t.XAdj/
// t.Adjncy, skipping unused local-state rows beyond nstate.
func buildCSR(t *tile.Tile, grid *bitgrid.Grid, nstate, maxIn int) {
	t.XAdj = t.XAdj[:0]
	var adj []int
	offset := 0

	emitRow := func(row int) {
		t.XAdj = append(t.XAdj, offset)
		for _, col := range grid.RowTrue(row) {
			adj = append(adj, col)
			offset++
		}
	}

	for s := 0; s < nstate; s++ {
		emitRow(s)
	}
	for s := nstate; s < fabric.TileSize; s++ {
		t.XAdj = append(t.XAdj, offset)
	}
	for r := fabric.TileSize; r < fabric.TileSize+maxIn; r++ {
		emitRow(r)
	}
	t.XAdj = append(t.XAdj, offset)
	t.Adjncy = adj
}
