// SPDX-License-Identifier: MIT
// Package: apfabric/chip
//
// Package chip is the per-chip mapping coordinator: it owns a fixed
// TileNum-length tile array and the chip's global switches, and drives
// the transactional sequence partition.Plan -> resolver.ResolveConstraint
// -> global-switch allocation -> tile materialization. Tiles are only
// written once allocation has succeeded, so a failed attempt rolls back
// by restoring the switch snapshot and retrying an alternative
// partition shape.
//
// This is where tile.Tile and xswitch.Global/G4 meet: xswitch stays
// tile-agnostic so it can be tested and reused independently, and chip
// is the one package that needs both simultaneously (MapGlobal walks
// every tile's boundary states while committing them to switch
// channels).
package chip
