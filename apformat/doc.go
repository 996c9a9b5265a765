// SPDX-License-Identifier: MIT
// Package: apfabric/apformat
//
// Package apformat reads the two on-disk text formats the mapper
// consumes: the descriptor file naming a batch of automata to place,
// and the per-automaton graph file describing their states and
// transitions.
//
// A descriptor file is a sequence of lines, blank lines and lines
// beginning with "%" ignored as comments. The first data line holds a
// single integer N, the automaton count. The following N lines each
// hold "nstate nedge path", naming a graph file and the vertex/edge
// counts it is expected to contain.
//
// A graph file holds one line per state: a symbolic name, a start flag
// (0/1), a report (accepting) flag (0/1), eight hexadecimal 32-bit
// pattern words, and then that state's successor indices (1-based).
// The total successor count across all lines must equal the nedge
// declared for that graph in the descriptor file; ReadGraphFile treats
// any mismatch as ErrEdgeCountMismatch rather than silently truncating
// or padding the adjacency list.
package apformat
