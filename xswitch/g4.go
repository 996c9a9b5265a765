// SPDX-License-Identifier: MIT
// Package: apfabric/xswitch
//
// g4.go - the optional 4-way global switch: eight output channels per
// destination tile, otherwise identical contract to Global.
package xswitch

import "github.com/apfabric/apmap/fabric"

// G4 is the optional 4-way global switch.
type G4 struct {
	Src [][fabric.G4Channels]int // len fabric.TileNum
}

// NewG4 allocates an empty 4-way switch.
func NewG4() *G4 {
	g := &G4{Src: make([][fabric.G4Channels]int, fabric.TileNum)}
	g.Reset()
	return g
}

// Reset clears every channel to unused.
func (g *G4) Reset() {
	for i := range g.Src {
		for c := 0; c < fabric.G4Channels; c++ {
			g.Src[i][c] = -1
		}
	}
}

// MapStateToG4 routes state to every destination tile in dests through
// g. Same atomic conflict-check-then-commit contract as
// MapStateToGlobal: usable only when the last of the eight channels is
// still free at every destination, then committed into each
// destination's first free channel.
func MapStateToG4(g *G4, dests []int, state int) bool {
	for _, d := range dests {
		if g.Src[d][fabric.G4Channels-1] != -1 {
			return false
		}
	}
	for _, d := range dests {
		for c := 0; c < fabric.G4Channels; c++ {
			if g.Src[d][c] == -1 {
				g.Src[d][c] = state
				break
			}
		}
	}
	return true
}

// CopyG4 overwrites dst's contents with src's.
func CopyG4(dst, src *G4) {
	copy(dst.Src, src.Src)
}

// Clone returns an independent copy of g.
func (g *G4) Clone() *G4 {
	c := &G4{Src: make([][fabric.G4Channels]int, len(g.Src))}
	CopyG4(c, g)
	return c
}

// PreserveBusy retags every occupied channel as Preserved.
func (g *G4) PreserveBusy() {
	for i := range g.Src {
		for c := 0; c < fabric.G4Channels; c++ {
			if g.Src[i][c] >= 0 {
				g.Src[i][c] = Preserved
			}
		}
	}
}
