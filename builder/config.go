// SPDX-License-Identifier: MIT
// Package: apfabric/builder
//
// config.go — the builderConfig type and its default resolution.
//
// builderConfig centralizes every knob consumed by the impl_*.go
// constructors: RNG source, ID scheme, and edge weight policy.
// Functional options in options.go mutate a builderConfig in place;
// newBuilderConfig resolves the final value passed by value into each
// Constructor.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.

package builder

import (
	"math/rand"
)

// builderConfig holds the configurable parameters for graph builders.
// It is resolved once per BuildGraph call and passed by value into each
// Constructor, keeping it immutable from the constructor's point of
// view.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. Later options override
// earlier ones.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,             // no RNG → deterministic ID and weight functions
		idFn:     DefaultIDFn,     // decimal IDs "0","1",…
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
