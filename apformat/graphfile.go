// SPDX-License-Identifier: MIT
// Package: apfabric/apformat
//
// graphfile.go - ReadGraphFile: the per-automaton graph file reader.
//
// One line per state ("name start report p7 p6 p5 p4 p3 p2 p1 p0
// [succ...]"), successors given as 1-based state indices, with a hard
// check that the total successor count matches the nedge the
// descriptor file declared for this graph.
package apformat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apfabric/apmap/graphstore"
)

// ReadGraphFile parses the graph file at path, which must describe
// exactly auto.NState states and auto.NEdge total successors, and
// returns it as a graphstore.Graph.
func ReadGraphFile(path string, auto Automaton) (*graphstore.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	g := graphstore.NewGraph(auto.NState, auto.NEdge)
	k := 0
	for v := 0; v < auto.NState; v++ {
		line, err := nextDataLine(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: state %d: %v", ErrPrematureEOF, path, v, err)
		}
		fields := strings.Fields(line)
		if len(fields) < 11 {
			return nil, fmt.Errorf("%w: %s: state %d: %q", ErrMalformedStateLine, path, v, line)
		}
		name := fields[0]
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: state %d start flag %q: %v", ErrMalformedStateLine, path, v, fields[1], err)
		}
		report, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: state %d report flag %q: %v", ErrMalformedStateLine, path, v, fields[2], err)
		}

		var pattern [graphstore.PatternWords]uint32
		for j := 0; j < graphstore.PatternWords; j++ {
			word, err := strconv.ParseUint(fields[3+j], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: state %d pattern word %d %q: %v", ErrMalformedStateLine, path, v, j, fields[3+j], err)
			}
			pattern[j] = uint32(word)
		}

		g.Name[v] = name
		g.Start[v] = start != 0
		g.Report[v] = report != 0
		g.Pattern[v] = pattern
		g.XAdj[v] = k

		for _, s := range fields[11:] {
			succ, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: state %d successor %q: %v", ErrMalformedStateLine, path, v, s, err)
			}
			if succ < 1 || succ > auto.NState {
				return nil, fmt.Errorf("%w: %s: state %d successor %d (nstate %d)", ErrSuccessorOutOfRange, path, v, succ, auto.NState)
			}
			if k >= auto.NEdge {
				return nil, fmt.Errorf("%w: %s: more than the declared %d edges", ErrEdgeCountMismatch, path, auto.NEdge)
			}
			g.Adjncy[k] = succ - 1
			k++
		}
	}
	g.XAdj[auto.NState] = k
	if k != auto.NEdge {
		return nil, fmt.Errorf("%w: %s: declared %d edges, found %d", ErrEdgeCountMismatch, path, auto.NEdge, k)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}
	return g, nil
}
