// Package algorithms implements classic graph traversals on core.Graph.
//
// It provides free-function implementations of:
//
//   - BFS (Breadth-First Search)
//   - DFS (Depth-First Search)
//
// All functions accept *core.Graph and return simple Go types (slices,
// maps). Hookable options (BFSOptions, DFSOptions) let you inject
// custom logic during traversal.
package algorithms
