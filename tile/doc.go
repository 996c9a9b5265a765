// SPDX-License-Identifier: MIT
// Package: apfabric/tile
//
// Package tile defines Tile, the AP fabric's unit of placement: up to
// fabric.TileSize STE slots plus a local switch routing matrix sized
// (TileSize+MaxIn) source rows by TileSize destination columns.
//
// Tile is deliberately a flat, reusable value (State/SName/Start/Report/
// Pattern arrays sized TileSize, a CSR local switch) rather than a
// generic graph: the chip package indexes a fixed TileNum-length array
// of these and mutates them in place across a whole mapping run, so
// per-tile allocation churn would show up directly in batch throughput.
package tile
