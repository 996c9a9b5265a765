// SPDX-License-Identifier: MIT
// Package: apfabric/report
//
// stats.go - the "tiles in total" utilization statistic.
package report

import (
	"github.com/apfabric/apmap/chip"
	"github.com/apfabric/apmap/fabric"
)

// TilesInTotal sums, across chips, each chip's closed-tile count plus
// the fractional occupancy of its currently open tile. A chip whose
// open tile is still entirely free (Remain == TileSize) contributes
// only its closed-tile count.
func TilesInTotal(chips []*chip.Chip) float64 {
	var total float64
	for _, c := range chips {
		if c.Remain == fabric.TileSize {
			total += float64(c.CurTile)
			continue
		}
		total += float64(c.CurTile) + 1 - float64(c.Remain)/float64(fabric.TileSize)
	}
	return total
}

// ChipUsed reports whether c holds any mapped state at all, the test
// deciding whether a chip's block is written to the map file.
func ChipUsed(c *chip.Chip) bool {
	return c.CurTile > 0 || c.Remain < fabric.TileSize
}
