// SPDX-License-Identifier: MIT
// Package: apfabric/resolver
//
// resolver.go - ResolveConstraint: duplicate-tile synthesis.
//
// Contract:
//   - A partition p is over-constrained when its boundary traffic
//     exceeds cfg.MaxIn()/cfg.MaxOut(). ResolveConstraint splits such a
//     partition's vertices across additional "duplicate" partitions
//     until every partition's boundary traffic fits in one tile.
//   - Splitting uses graphstore.InsertDuplicate to keep g.Where/g.Ext
//     consistent, then deals the partition's vertices round-robin over
//     the new groups, boundary (non-empty Ext) vertices first, so the
//     outgoing states spread evenly across the replicas instead of
//     following whatever clustering their raw indices happen to have.
//   - A split partition is re-checked before the scan advances: the
//     boundary counts are recomputed and p is split again while its
//     traffic still overflows and splitting keeps making progress.
//     Incoming overflow concentrated on a single vertex cannot be
//     reduced by moving vertices; the progress check detects that and
//     moves on, leaving the routing attempt to fail and retry an
//     alternative partition shape.
package resolver

import (
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
)

// ResolveConstraint mutates g so that no partition's boundary traffic
// exceeds cfg's per-tile channel capacity, inserting duplicate
// partitions as needed. It returns, in creation order, the origin
// partition each newly created partition was split from.
func ResolveConstraint(g *graphstore.Graph, cfg fabric.Config) []int {
	var origins []int

	maxIn, maxOut := cfg.MaxIn(), cfg.MaxOut()
	p := 0
	lastNeed := 0
	for p < g.NPart {
		nin, nout := g.CountBoundary()
		need := ceilDiv(nin[p], maxIn)
		if o := ceilDiv(nout[p], maxOut); o > need {
			need = o
		}
		if need <= 1 {
			p++
			lastNeed = 0
			continue
		}
		if lastNeed > 0 && need >= lastNeed {
			// The previous split did not reduce p's traffic (fan-in
			// pinned to one vertex); further splitting cannot help.
			p++
			lastNeed = 0
			continue
		}
		lastNeed = need

		nadd := need - 1
		members := partitionMembers(g, p)
		g.InsertDuplicate(p, nadd)
		redistribute(g, p, members, nadd)

		for i := 0; i < nadd; i++ {
			origins = append(origins, p)
		}
		// p is deliberately not advanced: the shrunken p (and, as the
		// scan continues, each replica) gets a fresh boundary count
		// before it is accepted.
	}
	return origins
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// partitionMembers returns the vertex indices currently assigned to
// partition p, in ascending order.
func partitionMembers(g *graphstore.Graph, p int) []int {
	var members []int
	for v := 0; v < g.NVtxs; v++ {
		if g.Where[v] == p {
			members = append(members, v)
		}
	}
	return members
}

// redistribute deals members round-robin across partition p and the
// nadd new partitions p+1..p+nadd, boundary vertices first. Round-robin
// keeps the group sizes within one of each other while splitting the
// boundary set as evenly as the vertex count allows.
func redistribute(g *graphstore.Graph, p int, members []int, nadd int) {
	groups := nadd + 1
	boundary := make([]int, 0, len(members))
	interior := make([]int, 0, len(members))
	for _, v := range members {
		if g.Ext[v] != nil && g.Ext[v].Len() > 0 {
			boundary = append(boundary, v)
		} else {
			interior = append(interior, v)
		}
	}

	i := 0
	deal := func(v int) {
		g.Where[v] = p + i%groups
		i++
	}
	for _, v := range boundary {
		deal(v)
	}
	for _, v := range interior {
		deal(v)
	}
}
