// SPDX-License-Identifier: MIT
// Package: apfabric/chip
//
// chip.go - Chip: the fixed tile array and global switches of one chip.
//
// Contract:
//   - Tiles has exactly fabric.TileNum entries, allocated once and
//     reused (Reset) across an entire batch run.
//   - CurTile is the index of the tile currently being filled; Remain is
//     its spare STE capacity. Remain == fabric.TileSize means CurTile is
//     still unoccupied. Closing a tile advances CurTile and resets
//     Remain; CurTile == fabric.TileNum means the chip is spent.
package chip

import (
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/tile"
	"github.com/apfabric/apmap/xswitch"
)

// Chip is one chip's full mapping state.
type Chip struct {
	Cfg     fabric.Config
	Tiles   []*tile.Tile
	Globals []*xswitch.Global
	G4      *xswitch.G4

	CurTile int
	Remain  int
}

// New allocates a Chip sized for cfg's fabric configuration, with every
// tile and switch in its empty state.
func New(cfg fabric.Config) *Chip {
	c := &Chip{
		Cfg:     cfg,
		Tiles:   make([]*tile.Tile, fabric.TileNum),
		Globals: make([]*xswitch.Global, cfg.GlobalNum()),
		Remain:  fabric.TileSize,
	}
	for i := range c.Tiles {
		c.Tiles[i] = tile.New(cfg)
	}
	for i := range c.Globals {
		c.Globals[i] = xswitch.NewGlobal()
	}
	if cfg.G4Enabled() {
		c.G4 = xswitch.NewG4()
	}
	return c
}

// Full reports whether the chip has no tile left to fill.
func (c *Chip) Full() bool { return c.CurTile >= fabric.TileNum }

// Fits reports whether a graph of nvtxs states could possibly be placed
// on c, independent of whether partitioning and routing will actually
// succeed. This lets a caller distinguish "this chip has no room at
// all for this automaton" (try the next chip) from "there was room but
// the attempt failed" (an allocation failure, which is fatal for this
// automaton rather than a reason to move to the next chip).
func (c *Chip) Fits(nvtxs int) bool {
	if c.Full() {
		return false
	}
	if nvtxs <= fabric.TileSize {
		if nvtxs <= c.Remain {
			return true
		}
		return c.CurTile+1 < fabric.TileNum
	}
	return nvtxs <= fabric.TileSize*(fabric.TileNum-c.CurTile-1)+c.Remain
}

// snapshot captures the switch state ahead of a tentative mapping
// attempt, so a failed attempt can be rolled back without having
// mutated anything the caller can observe.
type snapshot struct {
	globals []*xswitch.Global
	g4      *xswitch.G4
}

func (c *Chip) snapshot() snapshot {
	s := snapshot{globals: make([]*xswitch.Global, len(c.Globals))}
	for i, g := range c.Globals {
		s.globals[i] = g.Clone()
	}
	if c.G4 != nil {
		s.g4 = c.G4.Clone()
	}
	return s
}

func (c *Chip) restore(s snapshot) {
	for i, g := range s.globals {
		xswitch.CopyGlobal(c.Globals[i], g)
	}
	if c.G4 != nil && s.g4 != nil {
		xswitch.CopyG4(c.G4, s.g4)
	}
}

// preserveBusy retags every switch channel already committed to a
// previous automaton as busy-but-not-reusable — both the destination
// entries held by the global switches and the source-channel rows
// recorded on the occupied tiles — so the next automaton's allocator
// accounts for their occupancy without mistaking the stale vertex ids
// for its own.
func (c *Chip) preserveBusy() {
	for _, g := range c.Globals {
		g.PreserveBusy()
	}
	if c.G4 != nil {
		c.G4.PreserveBusy()
	}
	for i := 0; i <= c.CurTile && i < len(c.Tiles); i++ {
		t := c.Tiles[i]
		for k := range t.Global {
			for r := 0; r < 2; r++ {
				if t.Global[k][r] >= 0 {
					t.Global[k][r] = xswitch.Preserved
				}
			}
		}
		for r := range t.G4 {
			if t.G4[r] >= 0 {
				t.G4[r] = xswitch.Preserved
			}
		}
	}
}
