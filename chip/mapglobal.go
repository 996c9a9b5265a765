// SPDX-License-Identifier: MIT
// Package: apfabric/chip
//
// mapglobal.go - MapGlobal: global-switch channel allocation.
//
// Contract:
//   - For every vertex with at least one external destination partition
//     (graph.Ext[v] non-empty), MapGlobal routes v into ALL of its
//     destination tiles through a single switch, chosen first-fit
//     across the chip's 1-way switches, then the optional 4-way switch.
//     A state occupies one physical source channel, so its whole
//     destination list commits atomically to one switch or not at all
//     (xswitch.MapStateToGlobal/MapStateToG4).
//   - A 1-way switch is only a candidate while the source tile still
//     has one of its two channel rows free on that switch; the row
//     taken is recorded in the source tile's Global[k] (G4 likewise),
//     which is what identifies the state's physical channel when the
//     tile is emitted.
//   - Returns false the moment a vertex cannot be routed. The caller is
//     responsible for rolling back: restore the switch snapshot and
//     clear the source-channel recordings made during the attempt
//     (resetSourceChannels).
package chip

import (
	"github.com/apfabric/apmap/graphstore"
	"github.com/apfabric/apmap/xswitch"
)

// MapGlobal routes every boundary vertex of graph into the switch
// channels of the tiles starting at headtile (headtile+p holds
// partition p). It returns false on the first unroutable vertex.
func (c *Chip) MapGlobal(graph *graphstore.Graph, headtile int) bool {
	var dests []int
	for v := 0; v < graph.NVtxs; v++ {
		if graph.Ext[v] == nil || graph.Ext[v].Len() == 0 {
			continue
		}
		dests = dests[:0]
		for _, destPart := range graph.Ext[v].Values() {
			dests = append(dests, headtile+destPart)
		}
		if !c.routeState(headtile+graph.Where[v], dests, v) {
			return false
		}
	}
	return true
}

// routeState places state v, resident on tile src, onto one switch that
// can carry it to every tile in dests, recording the source channel row
// it occupies on its own tile.
func (c *Chip) routeState(src int, dests []int, v int) bool {
	t := c.Tiles[src]
	for k, g := range c.Globals {
		row := freeChannelRow(t.Global[k][:])
		if row < 0 {
			continue
		}
		if xswitch.MapStateToGlobal(g, dests, v) {
			t.Global[k][row] = v
			return true
		}
	}
	if c.G4 != nil {
		row := freeChannelRow(t.G4)
		if row >= 0 && xswitch.MapStateToG4(c.G4, dests, v) {
			t.G4[row] = v
			return true
		}
	}
	return false
}

// freeChannelRow returns the first unoccupied row (-1 entries only;
// preserved-busy -2 rows stay taken), or -1 when the channel set is
// exhausted.
func freeChannelRow(rows []int) int {
	for i, r := range rows {
		if r == -1 {
			return i
		}
	}
	return -1
}

// resetSourceChannels clears the source-channel recordings a failed
// allocation attempt left on tiles [from, to): entries holding a
// current-attempt state (>= 0) revert to free, preserved-busy entries
// stay.
func (c *Chip) resetSourceChannels(from, to int) {
	for i := from; i < to && i < len(c.Tiles); i++ {
		t := c.Tiles[i]
		for k := range t.Global {
			for r := 0; r < 2; r++ {
				if t.Global[k][r] >= 0 {
					t.Global[k][r] = -1
				}
			}
		}
		for r := range t.G4 {
			if t.G4[r] >= 0 {
				t.G4[r] = -1
			}
		}
	}
}
