// SPDX-License-Identifier: MIT
// Package: apfabric/engine
//
// errors.go - sentinel errors for the engine package.
package engine

import "errors"

// ErrCannotMap indicates an automaton exhausted every chip and every
// partition retry without finding a valid placement.
var ErrCannotMap = errors.New("engine: automaton cannot be mapped")

// ErrChipsFull indicates every chip rejected an automaton for lack of
// capacity, independent of any partitioning/routing attempt.
var ErrChipsFull = errors.New("engine: no chip has room for automaton")
