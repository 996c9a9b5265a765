// SPDX-License-Identifier: MIT
// Package: apfabric/bitgrid
//
// Package bitgrid provides Grid, a dense row-major boolean connectivity
// matrix sized (rows x cols). The tile materializer decodes a tile's
// existing local switch CSR into a Grid, sets the new connectivity on it,
// and flattens it back into the tile's sparse CSR representation. The
// materializer does not move rows or columns; SwapRows/SwapCols are not
// called by it.
//
// Grid is deliberately a flat []bool rather than [][]bool: connectivity
// matrices here are small (at most (TileSize+MaxIn) x TileSize) and a
// single backing slice keeps SwapRows/SwapCols to a single bounded loop
// each, with no per-row allocation.
//
// This package is adapted from a generic dense-matrix design (indexed
// row-major storage, dimension-checked accessors, bulk row/column
// operations) to the narrower, boolean-only connectivity use the tile
// materializer needs; it carries no linear-algebra operations because
// nothing in this module's domain calls for them.
package bitgrid
