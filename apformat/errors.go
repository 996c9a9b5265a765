// SPDX-License-Identifier: MIT
// Package: apfabric/apformat
//
// errors.go - sentinel errors for the apformat package.
package apformat

import "errors"

// ErrCannotOpen indicates a descriptor or graph file could not be opened.
var ErrCannotOpen = errors.New("apformat: cannot open file")

// ErrPrematureEOF indicates a file ended before the declared amount of
// data (automaton count, state count) had been read.
var ErrPrematureEOF = errors.New("apformat: premature end of file")

// ErrMalformedHeader indicates the descriptor file's automaton-count
// header, or an automaton's "nstate nedge path" line, did not parse.
var ErrMalformedHeader = errors.New("apformat: malformed header line")

// ErrMalformedStateLine indicates a graph file's per-state line did not
// contain a name, start/report flags and eight hex pattern words.
var ErrMalformedStateLine = errors.New("apformat: malformed state line")

// ErrSuccessorOutOfRange indicates a successor index fell outside
// [1, nstate].
var ErrSuccessorOutOfRange = errors.New("apformat: successor index out of range")

// ErrEdgeCountMismatch indicates the graph file's total successor count
// did not match the nedge declared for it in the descriptor file.
var ErrEdgeCountMismatch = errors.New("apformat: edge count does not match declared nedge")
