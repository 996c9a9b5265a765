// Package builder provides “functional‐options”‐style building blocks
// for constructing deterministic core.Graph fixtures: the ring, chain
// and random-sparse topologies the mapper's fixture generator emits.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme and weight function.
//   - Topology constructors (see api.go):
//     – Cycle(n):          simple cycle C_n.
//     – Path(n):           simple path P_n.
//     – RandomSparse(n,p): Erdős–Rényi-like sparse graph.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//
// Guarantees:
//
//   - Deterministic output: the same options, seed and constructor order
//     always produce an identical graph.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping the package sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - Documented algorithmic complexity (O(n), O(n²), …) per constructor.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
