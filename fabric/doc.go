// SPDX-License-Identifier: MIT
// Package: apfabric/fabric
//
// Package fabric defines the physical constants of the Automata Processor
// fabric (tiles, channels, STEs) and the Config value that parameterizes a
// mapping run.
//
// The constants mirror the fixed hardware geometry of the device: a chip
// carries TileNum tiles of TileSize STEs each, wired to GlobalNum 1-way
// global switches (plus one optional 4-way switch) of MaxOut/MaxIn channel
// capacity apiece. None of these numbers are tunable per-run except
// GlobalNum, which selects between the 4-channel and 8-channel switch
// fabrics a real device ships with; Config captures that single axis of
// variation plus the tile-closure threshold used by the packing engine.
//
// Configuration Options (FabricOption):
//
//	- WithGlobalNum(n)   Sets the global switch count (4 or 8).
//	- WithThreshold(t)   Sets the remaining-capacity floor below which a tile is closed.
//	- WithG4(enabled)    Enables/disables the optional 4-way switch.
//
// Values are resolved into an immutable Config via NewConfig(opts...); the
// zero-value DefaultConfig() reproduces the 8-switch reference device.
package fabric
