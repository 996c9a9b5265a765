// SPDX-License-Identifier: MIT
// Package: apfabric/graphstore
//
// errors.go - sentinel errors for the graphstore package.
package graphstore

import "errors"

// ErrEmptyGraph indicates an operation requiring at least one vertex was
// invoked on a zero-vertex Graph.
var ErrEmptyGraph = errors.New("graphstore: graph has no vertices")
