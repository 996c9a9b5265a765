// SPDX-License-Identifier: MIT
// Package: apfabric/chip
//
// mapgraph.go - MapGraphToChip: the top-level per-automaton mapping
// entry point, dispatching to a direct single-tile placement or the
// full partition/resolve/route/materialize pipeline.
//
// Contract:
//   - A graph no larger than one tile is placed directly, reusing the
//     current tile's spare capacity when it fits (graph.NVtxs <=
//     c.Remain) and advancing to a fresh tile otherwise.
//   - A larger graph is partitioned (partition.Plan), its boundary
//     traffic resolved (resolver.ResolveConstraint), routed through the
//     global switches (MapGlobal) and materialized tile by tile. A
//     switch-routing failure rolls back the switch state; the first
//     such failure with a partially filled head tile closes that tile
//     and re-plans once against a fresh one, after which the remaining
//     choices recorded by Plan are retried in turn. Exhausting every
//     choice fails the whole mapping attempt for this automaton.
//   - Known simplification: resolver.ResolveConstraint mutates graph in
//     place and is not rolled back on a subsequent MapGlobal failure.
//     This is safe because every retry path rewrites graph.Where/NPart
//     wholesale (partition.Plan or partition.Replan runs before the
//     next attempt) and CountBoundary rebuilds every Ext set from the
//     fresh assignment.
package chip

import (
	"github.com/apfabric/apmap/dlist"
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
	"github.com/apfabric/apmap/partition"
	"github.com/apfabric/apmap/resolver"
)

// MapGraphToChip maps graph onto the chip, returning false if the chip
// has no room left for it in any shape.
//
// preserveBusy runs unconditionally before dispatch, not only ahead of
// a large-graph attempt: a freshly started automaton's vertex indices
// start at 0 again, so any switch channel still holding a valid id from
// a previous automaton must be retagged before this automaton's
// materializer or allocator can observe it, whether this automaton
// itself is large enough to call MapGlobal or not.
func (c *Chip) MapGraphToChip(graph *graphstore.Graph, noOpt bool) bool {
	if c.Full() {
		return false
	}
	c.preserveBusy()
	if graph.NVtxs <= fabric.TileSize {
		return c.mapSmallGraph(graph)
	}
	return c.mapLargeGraph(graph, noOpt)
}

// mapSmallGraph places a graph that fits in a single tile, packing it
// into the current tile's spare capacity when it fits and advancing to
// a fresh tile otherwise.
func (c *Chip) mapSmallGraph(graph *graphstore.Graph) bool {
	graph.NPart = 1
	for v := range graph.Where {
		graph.Where[v] = 0
	}

	if graph.NVtxs > c.Remain {
		if c.CurTile+1 >= fabric.TileNum {
			return false
		}
		c.CurTile++
		c.Remain = fabric.TileSize
	}

	c.materializeTile(graph, c.CurTile, 0)
	c.Remain = fabric.TileSize - c.Tiles[c.CurTile].NState
	return true
}

// mapLargeGraph runs the full partition/resolve/route/materialize
// pipeline. A first failure with a partially filled head tile closes
// that tile and re-plans once against a fresh one; after that, the
// alternative partition shapes recorded by Plan are retried in turn.
func (c *Chip) mapLargeGraph(graph *graphstore.Graph, noOpt bool) bool {
	headtile := c.CurTile
	headsize := c.Remain

	var u graphstore.Undirected
	graphstore.BuildUndirected(graph, &u)

	result := partition.Plan(&u, graph, headsize, c.Cfg, noOpt)
	if result.OK && c.attemptMapLargeGraph(graph, headtile) {
		return true
	}

	if headsize < fabric.TileSize && headtile+1 < fabric.TileNum {
		headtile++
		result = partition.Plan(&u, graph, fabric.TileSize, c.Cfg, noOpt)
		if result.OK && c.attemptMapLargeGraph(graph, headtile) {
			return true
		}
	}

	for {
		choice, ok := result.Choices.Pop()
		if !ok {
			return false
		}
		partition.Replan(&u, graph, choice, c.Cfg)
		if c.attemptMapLargeGraph(graph, headtile) {
			return true
		}
	}
}

// attemptMapLargeGraph tries one partition shape already written into
// graph.Where/NPart: resolve boundary overflow, route through the
// switches, and materialize on success; roll back switch state on
// failure.
func (c *Chip) attemptMapLargeGraph(graph *graphstore.Graph, headtile int) bool {
	snap := c.snapshot()

	origins := resolver.ResolveConstraint(graph, c.Cfg)
	if headtile+graph.NPart > fabric.TileNum {
		c.restore(snap)
		return false
	}

	if !c.MapGlobal(graph, headtile) {
		c.restore(snap)
		c.resetSourceChannels(headtile, headtile+graph.NPart)
		return false
	}

	for p := 0; p < graph.NPart; p++ {
		c.materializeTile(graph, headtile, p)
	}
	tagDuplicates(c, headtile, origins)
	c.CurTile = headtile + graph.NPart - 1
	c.Remain = fabric.TileSize - c.Tiles[c.CurTile].NState
	return true
}

// tagDuplicates marks each resolver-created partition's tile with the
// origin tile it was split from, and records every replica in the
// origin tile's ghost list. origins holds, for each newly created
// partition in creation order, its origin partition index; consecutive
// equal values name one contiguous run of replicas inserted right after
// their origin (see resolver.ResolveConstraint).
func tagDuplicates(c *Chip, headtile int, origins []int) {
	i := 0
	for i < len(origins) {
		origin := origins[i]
		j := i
		for j < len(origins) && origins[j] == origin {
			j++
		}
		ot := c.Tiles[headtile+origin]
		if ot.Ghost == nil {
			ot.Ghost = dlist.New(j - i)
		}
		for n := 1; n <= j-i; n++ {
			c.Tiles[headtile+origin+n].Duplicated = headtile + origin
			ot.Ghost.AddNew(headtile + origin + n)
		}
		i = j
	}
}
