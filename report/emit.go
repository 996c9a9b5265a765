// SPDX-License-Identifier: MIT
// Package: apfabric/report
//
// emit.go - EmitChip: the map_result text format.
//
// One block per chip: a header, every 1-way switch's channel table,
// the optional 4-way switch's table, then every occupied tile's local
// switch rows and slot contents.
package report

import (
	"fmt"
	"io"

	"github.com/apfabric/apmap/chip"
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/tile"
	"github.com/apfabric/apmap/xswitch"
)

// location is the (tile, slot) address of a mapped state.
type location struct {
	tile int
	slot int
}

// stateLocations indexes every state currently held by one of c's
// occupied tiles, for resolving a global-switch channel's occupant
// back to its origin address.
func stateLocations(c *chip.Chip) map[int]location {
	loc := make(map[int]location)
	last := c.CurTile
	if c.Remain < fabric.TileSize && last < len(c.Tiles) {
		last++
	}
	for ti := 0; ti < last; ti++ {
		t := c.Tiles[ti]
		for s := 0; s < t.NState; s++ {
			loc[t.State[s]] = location{tile: ti, slot: s}
		}
	}
	return loc
}

// EmitChip writes chip index idx's full report block: the chip header,
// its global switches, its optional 4-way switch, and every tile it
// has opened (including the currently-open tile when it holds any
// state).
func EmitChip(w io.Writer, idx int, c *chip.Chip) error {
	if _, err := fmt.Fprintf(w, "**************\n*** Chip %d ***\n**************\n", idx); err != nil {
		return err
	}

	loc := stateLocations(c)
	if ChipUsed(c) {
		for k, g := range c.Globals {
			if err := emitGlobal(w, k, g, loc); err != nil {
				return err
			}
		}
		if c.G4 != nil {
			if err := emitG4(w, c.G4, loc); err != nil {
				return err
			}
		}
	}

	for i := 0; i < c.CurTile; i++ {
		if err := emitTileHeader(w, i, c.Tiles[i], c.Cfg); err != nil {
			return err
		}
	}
	if c.Remain < fabric.TileSize {
		if err := emitTileHeader(w, c.CurTile, c.Tiles[c.CurTile], c.Cfg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func emitTileHeader(w io.Writer, idx int, t *tile.Tile, cfg fabric.Config) error {
	if _, err := fmt.Fprintf(w, "\n--- Tile %d ---\n", idx); err != nil {
		return err
	}
	return emitTile(w, t, cfg)
}

func emitGlobal(w io.Writer, k int, g *xswitch.Global, loc map[int]location) error {
	if _, err := fmt.Fprintf(w, "\n--- Global Switch %d ---\n", k); err != nil {
		return err
	}
	for dest := 0; dest < fabric.TileNum; dest++ {
		for sub := 0; sub < 2; sub++ {
			if _, err := fmt.Fprintf(w, "%d[%d]:", dest, sub); err != nil {
				return err
			}
			if v := g.Src[dest][sub]; v >= 0 {
				if l, ok := loc[v]; ok {
					if _, err := fmt.Fprintf(w, " %d[%d]", l.tile, l.slot); err != nil {
						return err
					}
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func emitG4(w io.Writer, g4 *xswitch.G4, loc map[int]location) error {
	if _, err := fmt.Fprint(w, "\n--- Global-4 Switch ---\n"); err != nil {
		return err
	}
	for dest := 0; dest < fabric.TileNum; dest++ {
		for sub := 0; sub < fabric.G4Channels; sub++ {
			if _, err := fmt.Fprintf(w, "%d[%d]:", dest, sub); err != nil {
				return err
			}
			if v := g4.Src[dest][sub]; v >= 0 {
				if l, ok := loc[v]; ok {
					if _, err := fmt.Fprintf(w, " %d[%d]", l.tile, l.slot); err != nil {
						return err
					}
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func emitTile(w io.Writer, t *tile.Tile, cfg fabric.Config) error {
	globalNum := cfg.GlobalNum()
	for k := 0; k < globalNum; k++ {
		for sub := 0; sub < 2; sub++ {
			row := fabric.TileSize + k*2 + sub
			if _, err := fmt.Fprintf(w, "%d[%d]: ", k, sub); err != nil {
				return err
			}
			if err := emitRow(w, t, row); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	if t.G4 != nil {
		for ch := 0; ch < fabric.G4Channels; ch++ {
			row := fabric.TileSize + globalNum*2 + ch
			if _, err := fmt.Fprintf(w, "G4[%d]: ", ch); err != nil {
				return err
			}
			if err := emitRow(w, t, row); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	for s := 0; s < fabric.TileSize; s++ {
		if _, err := fmt.Fprintf(w, "%d: ", s); err != nil {
			return err
		}
		if t.State[s] != -1 {
			if _, err := fmt.Fprintf(w, "%s %s %s ", t.SName[s], boolFlag(t.Start[s]), boolFlag(t.Report[s])); err != nil {
				return err
			}
			for _, word := range t.Pattern[s] {
				if _, err := fmt.Fprintf(w, "%08X ", word); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprint(w, "->"); err != nil {
				return err
			}
			if err := emitRow(w, t, s); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// emitRow writes " <dst>" for every destination in the local switch's
// row, without a trailing newline.
func emitRow(w io.Writer, t *tile.Tile, row int) error {
	for _, dst := range t.Adjncy[t.XAdj[row]:t.XAdj[row+1]] {
		if _, err := fmt.Fprintf(w, " %d", dst); err != nil {
			return err
		}
	}
	return nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
