// SPDX-License-Identifier: MIT
// Package: apfabric/report
//
// Package report renders a mapped chip's switch and tile configuration
// as the textual map_result format, and computes the "tiles in total"
// utilization statistic printed to stdout once a batch finishes.
//
// Global-switch rows are addressed by destination channel (tile, sub),
// matching how xswitch.Global/G4 store assignments; the listed entry on
// each row is the origin tile and intra-tile slot of the routed state,
// resolved once per chip from every occupied tile's State array rather
// than from per-tile source-port bookkeeping, so the report needs only
// the destination-keyed switch data and the tiles' slot contents.
package report
