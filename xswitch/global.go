// SPDX-License-Identifier: MIT
// Package: apfabric/xswitch
//
// global.go - the 1-way and 4-way global switches.
//
// Contract:
//   - Src[dest] holds the up-to-N states currently routed to
//     destination tile `dest` through this switch instance; -1 marks an
//     unused channel, -2 marks a channel preserved-busy from the
//     previous automaton's mapping (not reusable this round, but not
//     available for a new state either).
//   - MapStateToGlobal/MapStateToG4 route a state to its WHOLE
//     destination list atomically: the switch is usable only when every
//     destination still has a free channel, and the state is then
//     committed to all destinations at once. A state is never split
//     across switches — it occupies one physical source channel, so all
//     of its traffic must ride the same switch.
package xswitch

import "github.com/apfabric/apmap/fabric"

// Preserved marks a channel as still occupied by the previous
// automaton's mapping.
const Preserved = -2

// Global is one 1-way global switch: two output channels per
// destination tile.
type Global struct {
	Src [][2]int // len fabric.TileNum
}

// NewGlobal allocates an empty 1-way switch.
func NewGlobal() *Global {
	g := &Global{Src: make([][2]int, fabric.TileNum)}
	g.Reset()
	return g
}

// Reset clears every channel to unused.
func (g *Global) Reset() {
	for i := range g.Src {
		g.Src[i][0] = -1
		g.Src[i][1] = -1
	}
}

// MapStateToGlobal routes state to every destination tile in dests
// through g. The conflict check requires the second channel to still be
// free at every destination; only then is state committed, into each
// destination's first free channel. On conflict g is left unmodified
// and the caller tries the next switch.
func MapStateToGlobal(g *Global, dests []int, state int) bool {
	for _, d := range dests {
		if g.Src[d][1] != -1 {
			return false
		}
	}
	for _, d := range dests {
		if g.Src[d][0] == -1 {
			g.Src[d][0] = state
		} else {
			g.Src[d][1] = state
		}
	}
	return true
}

// CopyGlobal overwrites dst's contents with src's, for snapshot/rollback
// around a tentative mapping attempt.
func CopyGlobal(dst, src *Global) {
	copy(dst.Src, src.Src)
}

// Clone returns an independent copy of g.
func (g *Global) Clone() *Global {
	c := &Global{Src: make([][2]int, len(g.Src))}
	CopyGlobal(c, g)
	return c
}

// PreserveBusy retags every occupied channel as Preserved, used when a
// tile already holds states from a previous mapping that must not be
// reused as free capacity this round.
func (g *Global) PreserveBusy() {
	for i := range g.Src {
		for c := 0; c < 2; c++ {
			if g.Src[i][c] >= 0 {
				g.Src[i][c] = Preserved
			}
		}
	}
}
