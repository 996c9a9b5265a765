// SPDX-License-Identifier: MIT
// Package: apfabric/partition
//
// planner.go - Plan: the cost-driven (npart, tailsize) search.
//
// Contract:
//   - SetPartSizeTarget/SetPartSize compute tpwgts with a single "tail"
//     part sized minsize/tailsize and every other part at
//     fabric.TileSize (or headsize for part 0 in SetPartSize's
//     two-boundary case).
//   - CalcBoundaryOverhead implements the cost function's boundary term:
//     sum over parts of ceil(nin/M)*ceil(nout/M) - 1, M = cfg.SwitchCapacity().
//   - Plan walks npart upward from a minimum, pushing each npart that
//     strictly lowers the cost, then walks the tailsize grid for the best
//     npart and pushes the first tailsize whose cost does not exceed the
//     minimum; the Choice stack lets MapLargeGraph-equivalent
//     retries (see chip.MapGraphToChip) pop an alternative shape
//     without restarting the search. Mode B (noOpt) returns the first
//     valid partition without searching for a cheaper one.
package partition

import (
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/graphstore"
)

// Choice is a retry candidate recorded by Plan: a (npart, tailsize) pair
// that produced a valid, though possibly not globally cheapest,
// partition.
type Choice struct {
	NPart    int
	TailSize int
}

// ChoiceStack is a LIFO of Choice values used to retry alternative
// partition shapes after a routing failure.
type ChoiceStack struct {
	items []Choice
}

// Push appends c to the top of the stack.
func (s *ChoiceStack) Push(c Choice) { s.items = append(s.items, c) }

// Pop removes and returns the top choice; ok is false when empty.
func (s *ChoiceStack) Pop() (c Choice, ok bool) {
	n := len(s.items)
	if n == 0 {
		return Choice{}, false
	}
	c = s.items[n-1]
	s.items = s.items[:n-1]
	return c, true
}

// Len reports the number of pending choices.
func (s *ChoiceStack) Len() int { return len(s.items) }

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// SetPartSizeTarget returns tpwgts for npart parts where part npart-1
// targets minsize vertices and every other part targets fabric.TileSize.
func SetPartSizeTarget(npart, minsize int) []float64 {
	total := (npart-1)*fabric.TileSize + minsize
	w := make([]float64, npart)
	if total <= 0 {
		return w
	}
	normal := float64(fabric.TileSize) / float64(total)
	for i := 0; i < npart-1; i++ {
		w[i] = normal
	}
	w[npart-1] = float64(minsize) / float64(total)
	return w
}

// SetPartSize returns tpwgts for npart parts with distinct head and tail
// sizes and fabric.TileSize interior parts.
func SetPartSize(npart, headsize, tailsize int) []float64 {
	total := (npart-2)*fabric.TileSize + headsize + tailsize
	w := make([]float64, npart)
	if total <= 0 {
		return w
	}
	w[0] = float64(headsize) / float64(total)
	for i := 1; i < npart-1; i++ {
		w[i] = float64(fabric.TileSize) / float64(total)
	}
	w[npart-1] = float64(tailsize) / float64(total)
	return w
}

// CalcBoundaryOverhead computes the boundary_overhead term of the cost
// function from per-part nin/nout histograms.
func CalcBoundaryOverhead(nin, nout []int, npart int, cfg fabric.Config) int {
	m := cfg.SwitchCapacity()
	overhead := 0
	for i := 0; i < npart; i++ {
		in := ceilDiv(nin[i], m)
		if in < 1 {
			in = 1
		}
		out := ceilDiv(nout[i], m)
		if out < 1 {
			out = 1
		}
		overhead += in*out - 1
	}
	return overhead
}

// Result is the outcome of a Plan invocation.
type Result struct {
	OK      bool
	NPart   int
	Cost    int
	Choices ChoiceStack
}

// Plan searches for a cost-minimizing (npart, tailsize) shape for graph,
// given the current tile's remaining capacity (headsize) and the fabric
// configuration, writing the winning assignment into graph.Where/NPart.
// noOpt selects Mode B (first valid partition, no search).
func Plan(u *graphstore.Undirected, graph *graphstore.Graph, headsize int, cfg fabric.Config, noOpt bool) Result {
	nvtxs := u.NVtxs
	var result Result

	// The first candidate part count: the head part absorbs headsize
	// vertices, every further TileSize-sized slab needs a part of its
	// own, plus one for the remainder.
	npart := (nvtxs-headsize+fabric.TileSize-1)/fabric.TileSize + 1

	where, outcome := KWay(u, npart, SetPartSizeTarget(npart, fabric.TileSize), fabric.TileSize)
	for outcome != OutcomeValid {
		npart++
		where, outcome = KWay(u, npart, SetPartSizeTarget(npart, fabric.TileSize), fabric.TileSize)
	}

	applyWhere(graph, u, where, npart)
	nin, nout := graph.CountBoundary()
	initCost := CalcBoundaryOverhead(nin, nout, npart, cfg)
	minCost := npart + initCost
	minPart := npart
	result.Choices.Push(Choice{NPart: npart, TailSize: fabric.TileSize})

	if !noOpt {
		for i := 0; i < initCost; i++ {
			npart++
			where, outcome = KWay(u, npart, SetPartSizeTarget(npart, fabric.TileSize), fabric.TileSize)
			if outcome != OutcomeValid {
				continue
			}
			applyWhere(graph, u, where, npart)
			nin, nout = graph.CountBoundary()
			cost := CalcBoundaryOverhead(nin, nout, npart, cfg) + npart
			if cost < minCost {
				minCost = cost
				minPart = npart
				result.Choices.Push(Choice{NPart: minPart, TailSize: fabric.TileSize})
			}
		}
	}

	tailsize := nvtxs - (minPart-1)*fabric.TileSize
	if tailsize <= 0 {
		tailsize = minPart / 2
	}
	minTail := fabric.TileSize

	if !noOpt {
		for tailsize < fabric.TileSize {
			where, outcome = KWay(u, minPart, SetPartSizeTarget(minPart, tailsize), fabric.TileSize)
			if outcome == OutcomeValid {
				applyWhere(graph, u, where, minPart)
				nin, nout = graph.CountBoundary()
				cost := CalcBoundaryOverhead(nin, nout, minPart, cfg) + minPart
				if cost <= minCost {
					minCost = cost
					minTail = tailsize
					result.Choices.Push(Choice{NPart: minPart, TailSize: tailsize})
					break
				}
			}
			tailsize += minPart
		}
	}

	if headsize >= fabric.TileSize {
		c, ok := result.Choices.Pop()
		if !ok {
			c = Choice{NPart: minPart, TailSize: minTail}
		}
		where, _ = KWay(u, c.NPart, SetPartSizeTarget(c.NPart, c.TailSize), fabric.TileSize)
		applyWhere(graph, u, where, c.NPart)
		nin, nout = graph.CountBoundary()
		graph.Cost = CalcBoundaryOverhead(nin, nout, c.NPart, cfg) + c.NPart
		result.OK = true
		result.NPart = c.NPart
		result.Cost = graph.Cost
		return result
	}

	if minCost < minPart {
		tailsize = fabric.TileSize - headsize
	} else {
		tailsize = minTail - headsize
		if tailsize <= 0 {
			tailsize += fabric.TileSize
		} else {
			minPart++
		}
	}

	valid := false
	var use bool
	for !valid {
		tailsize += minPart
		if tailsize >= fabric.TileSize {
			c, ok := result.Choices.Pop()
			if !ok {
				c = Choice{NPart: minPart, TailSize: minTail}
			}
			graph.Cost = minCost
			where, _ = KWay(u, c.NPart, SetPartSizeTarget(c.NPart, tailsize), headsize)
			applyWhere(graph, u, where, c.NPart)
			use = false
			break
		}

		where, outcome = KWay(u, minPart, SetPartSize(minPart, headsize, tailsize), headsize)
		if outcome == OutcomeHeadTooBig {
			headsize -= minPart
			continue
		}
		valid = outcome == OutcomeValid
		if valid {
			applyWhere(graph, u, where, minPart)
		}
	}

	if valid {
		use = true
		nin, nout = graph.CountBoundary()
		graph.Cost = CalcBoundaryOverhead(nin, nout, minPart, cfg) + minPart
	}

	result.OK = use
	result.NPart = graph.NPart
	result.Cost = graph.Cost
	return result
}

// Replan applies a previously recorded Choice (popped by the caller from
// the choice stack returned by Plan), recomputing cost from a fresh
// boundary count.
func Replan(u *graphstore.Undirected, graph *graphstore.Graph, c Choice, cfg fabric.Config) {
	var tpwgts []float64
	if c.TailSize < fabric.TileSize {
		tpwgts = SetPartSizeTarget(c.NPart, c.TailSize)
	}
	where, _ := KWay(u, c.NPart, tpwgts, fabric.TileSize)
	applyWhere(graph, u, where, c.NPart)
	nin, nout := graph.CountBoundary()
	graph.Cost = CalcBoundaryOverhead(nin, nout, c.NPart, cfg) + graph.NPart
}

func applyWhere(graph *graphstore.Graph, u *graphstore.Undirected, where []int, npart int) {
	u.NPart = npart
	graph.NPart = npart
	copy(graph.Where, where)
}
