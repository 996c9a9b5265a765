// SPDX-License-Identifier: MIT
// Package: apfabric/xswitch
//
// Package xswitch implements the AP fabric's global interconnect: the
// 1-way switches (two output channels each) and the optional 4-way
// switch (eight output channels). Both are pure state containers plus
// conflict-check-then-commit allocation primitives; neither type knows
// about tile.Tile, so this package stays a leaf dependency of chip
// rather than importing it back.
package xswitch
