// SPDX-License-Identifier: MIT
// Package: apfabric/apformat
//
// writer.go - WriteMapFile/WriteGraphFile: the inverse of ReadMapFile/
// ReadGraphFile, used by the fixture generator to emit descriptor and
// graph files in the same format the readers consume.
package apformat

import (
	"bufio"
	"fmt"
	"os"

	"github.com/apfabric/apmap/graphstore"
)

// WriteMapFile writes a descriptor file at path listing autos in order,
// one "nstate nedge path" line per entry, preceded by the count header.
func WriteMapFile(path string, autos []Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(autos))
	for _, a := range autos {
		fmt.Fprintf(w, "%d %d %s\n", a.NState, a.NEdge, a.Path)
	}
	return w.Flush()
}

// WriteGraphFile writes g to path in the per-state line format
// ReadGraphFile parses: "name start report p7..p0 [succ...]", successor
// indices emitted 1-based.
func WriteGraphFile(path string, g *graphstore.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for v := 0; v < g.NVtxs; v++ {
		fmt.Fprintf(w, "%s %s %s", g.Name[v], boolDigit(g.Start[v]), boolDigit(g.Report[v]))
		for _, word := range g.Pattern[v] {
			fmt.Fprintf(w, " %08X", word)
		}
		for _, succ := range g.Out(v) {
			fmt.Fprintf(w, " %d", succ+1)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
