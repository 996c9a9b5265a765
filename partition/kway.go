// SPDX-License-Identifier: MIT
// Package: apfabric/partition
//
// kway.go - KWay: deterministic size-constrained k-way partitioning.
//
// Contract:
//   - KWay(u, npart, tpwgts, headsize) returns a `where[v]` array of
//     length u.NVtxs with values in [0, npart), plus an outcome code:
//     -1 if the first (head) part exceeds headsize, 0 if any part
//     exceeds fabric.TileSize, 1 if the partition is valid.
//   - tpwgts[i] is the target fraction of nvtxs assigned to part i;
//     SetPartSizeTarget/SetPartSize produce slices summing to 1.0. A
//     tpwgts whose length is not npart (Replan passes nil for a
//     full-size tail) splits nvtxs evenly across the parts.
//   - Determinism: for a fixed u/npart/tpwgts/headsize, the returned
//     `where` is always identical (matching prior mapping-error path's
//     "re-invoke once to restore partition arrays" requirement).
//
// Algorithm:
//  1. Coarsen: one pass over vertices in ascending ID order unions each
//     unmatched vertex with its first unmatched neighbor (ascending
//     adjacency order) in a disjoint-set-union structure.
//  2. Assign: process DSU groups in descending size order (ties by root
//     ID) and fill parts in index order, moving to the next part when a
//     group would overflow the current part's cap; the last part takes
//     whatever remains without a cap check.
//  3. Refine: a single bounded pass moves boundary vertices into a
//     neighboring part when doing so strictly reduces the vertex's
//     local cut contribution and neither part's cap is violated.
package partition

import (
	"sort"

	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
)

// Outcome codes returned by KWay.
const (
	OutcomeHeadTooBig = -1
	OutcomeOverflow   = 0
	OutcomeValid      = 1
)

// dsu is a minimal union-find structure used to order the coarsening
// pass deterministically.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	return true
}

// KWay partitions u into npart parts, aiming for the size distribution
// given by tpwgts, and returns the assignment plus an outcome code.
// headsize bounds part 0 specifically (the partially-filled current
// tile's remaining capacity).
func KWay(u *graphstore.Undirected, npart int, tpwgts []float64, headsize int) (where []int, outcome int) {
	nvtxs := u.NVtxs
	where = make([]int, nvtxs)
	if nvtxs == 0 || npart <= 0 {
		return where, OutcomeValid
	}

	caps := targetCaps(nvtxs, npart, tpwgts, headsize)

	groups := coarsen(u)
	assignGroups(u, groups, where, caps)
	refine(u, where, caps)

	return where, classify(where, npart, headsize)
}

// targetCaps converts proportional target weights into integer vertex
// caps per part, clamping part 0 to headsize when tpwgts implies a
// larger head fraction than the head tile can hold.
func targetCaps(nvtxs, npart int, tpwgts []float64, headsize int) []int {
	caps := make([]int, npart)
	if len(tpwgts) != npart {
		base := nvtxs / npart
		rem := nvtxs % npart
		for i := 0; i < npart; i++ {
			caps[i] = base
			if i < rem {
				caps[i]++
			}
		}
	} else {
		assigned := 0
		for i := 0; i < npart; i++ {
			caps[i] = int(tpwgts[i]*float64(nvtxs) + 0.5)
			if caps[i] < 1 {
				caps[i] = 1
			}
			assigned += caps[i]
		}
		// Absorb rounding drift into the last part.
		caps[npart-1] += nvtxs - assigned
		if caps[npart-1] < 1 {
			caps[npart-1] = 1
		}
	}
	if caps[0] > headsize && headsize > 0 {
		diff := caps[0] - headsize
		caps[0] = headsize
		caps[npart-1] += diff
	}
	return caps
}

// coarsen groups vertices into DSU components via a single deterministic
// heavy-edge-like matching pass: each unmatched vertex merges with its
// first unmatched neighbor (ascending adjacency order), which tends to
// fuse tightly-connected chains before groups are assigned to parts.
func coarsen(u *graphstore.Undirected) *dsu {
	d := newDSU(u.NVtxs)
	matched := make([]bool, u.NVtxs)
	for v := 0; v < u.NVtxs; v++ {
		if matched[v] {
			continue
		}
		for _, w := range u.Out(v) {
			if w != v && !matched[w] {
				d.union(v, w)
				matched[v] = true
				matched[w] = true
				break
			}
		}
	}
	return d
}

// assignGroups assigns every DSU group to a part, largest groups first,
// filling parts in index order; the last part absorbs any overflow.
func assignGroups(u *graphstore.Undirected, d *dsu, where []int, caps []int) {
	nvtxs := u.NVtxs
	for i := range where {
		where[i] = -1
	}

	groupOf := make(map[int][]int)
	for v := 0; v < nvtxs; v++ {
		root := d.find(v)
		groupOf[root] = append(groupOf[root], v)
	}
	roots := make([]int, 0, len(groupOf))
	for r := range groupOf {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool {
		if len(groupOf[roots[i]]) != len(groupOf[roots[j]]) {
			return len(groupOf[roots[i]]) > len(groupOf[roots[j]])
		}
		return roots[i] < roots[j]
	})

	size := make([]int, len(caps))
	part := 0
	for _, r := range roots {
		members := groupOf[r]
		// Advance to the next part with room if the current one is full.
		for part < len(caps)-1 && size[part]+len(members) > caps[part] {
			part++
		}
		for _, v := range members {
			where[v] = part
		}
		size[part] += len(members)
	}

	// Any vertex left unassigned (degenerate graphs) lands in the final
	// part.
	for v := 0; v < nvtxs; v++ {
		if where[v] == -1 {
			where[v] = len(caps) - 1
		}
	}
}

// refine performs one bounded local pass: a boundary vertex moves into
// a neighboring part if that strictly reduces its cut-edge count and
// the target part still has room. Candidate parts are scanned in
// ascending index order so equal-gain ties always resolve the same
// way, keeping the whole pass deterministic.
func refine(u *graphstore.Undirected, where []int, caps []int) {
	size := make([]int, len(caps))
	for _, p := range where {
		size[p]++
	}

	count := make([]int, len(caps))
	for v := 0; v < u.NVtxs; v++ {
		for _, w := range u.Out(v) {
			count[where[w]]++
		}
		own := where[v]
		best, bestCount := own, count[own]
		for p := 0; p < len(caps); p++ {
			if count[p] > bestCount && size[p] < caps[p] {
				best, bestCount = p, count[p]
			}
		}
		if best != own {
			size[own]--
			size[best]++
			where[v] = best
		}
		for _, w := range u.Out(v) {
			count[where[w]] = 0
		}
	}
}

// classify derives the outcome code from a finished assignment.
func classify(where []int, npart, headsize int) int {
	size := make([]int, npart)
	for _, p := range where {
		size[p]++
	}
	if size[0] > headsize {
		return OutcomeHeadTooBig
	}
	max := 0
	for _, s := range size {
		if s > max {
			max = s
		}
	}
	if max > fabric.TileSize {
		return OutcomeOverflow
	}
	return OutcomeValid
}
