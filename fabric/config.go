// SPDX-License-Identifier: MIT
// Package: apfabric/fabric
//
// config.go - fabric constants and the Config value object.
//
// Contract:
//   - Hardware geometry (TileNum, TileSize, ChipNum) is fixed and exported
//     as untyped constants; it is never part of Config because no real
//     device varies it per run.
//   - GlobalNum, G4Enabled and Threshold are the only axes a run can select,
//     covering the 4- vs 8-switch fabric divergence and the optional
//     4-way switch of the reference device.
//   - NewConfig resolves FabricOption values into an immutable Config;
//     DefaultConfig reproduces the GLOBAL_NUM=8 reference fabric.
//
// Determinism:
//   - MaxOut/MaxIn are derived deterministically from GlobalNum.
package fabric

import "fmt"

// Fixed hardware geometry. These never vary per run.
const (
	// TileNum is the number of tiles on a single chip.
	TileNum = 128

	// TileSize is the number of STEs (state slots) in a tile.
	TileSize = 256

	// ChipNum is the number of chips in the system.
	ChipNum = 2

	// G4Channels is the channel count of the optional 4-way global switch.
	G4Channels = 8
)

// Selectable axes, with the reference device's defaults.
const (
	// DefaultGlobalNum is the 1-way global switch count of the reference
	// fabric; the 4-switch variant is still observed in deployed
	// devices and selectable via WithGlobalNum.
	DefaultGlobalNum = 8

	// DefaultThreshold is the remaining tile capacity below which the
	// current tile is closed; at or above it the engine tries to pack a
	// smaller automaton into the leftover slots.
	DefaultThreshold = 25
)

// Config parameterizes a single mapping run.
type Config struct {
	// globalNum is the number of 1-way global switches per chip (4 or 8).
	globalNum int

	// g4Enabled toggles the optional 4-way global switch.
	g4Enabled bool

	// threshold is the remaining-capacity floor that triggers tile closure
	// and small-automaton packing.
	threshold int
}

// GlobalNum returns the configured 1-way global switch count.
func (c Config) GlobalNum() int { return c.globalNum }

// G4Enabled reports whether the optional 4-way global switch is active.
func (c Config) G4Enabled() bool { return c.g4Enabled }

// Threshold returns the tile-closure capacity floor.
func (c Config) Threshold() int { return c.threshold }

// MaxOut returns the per-tile outgoing channel capacity: GlobalNum*2+8,
// i.e. two rows per 1-way switch plus the reserved overflow margin used
// by the reference device regardless of g4 activation.
func (c Config) MaxOut() int { return c.globalNum*2 + 8 }

// MaxIn returns the per-tile incoming channel capacity. By construction
// this equals MaxOut; the two are kept as distinct accessors because the
// resolver and the switch allocator reason about them independently.
func (c Config) MaxIn() int { return c.globalNum*2 + 8 }

// SwitchCapacity returns the total channel count M used by the cost
// function's boundary_overhead term: GlobalNum*2, plus G4Channels when
// the 4-way switch is enabled.
func (c Config) SwitchCapacity() int {
	m := c.globalNum * 2
	if c.g4Enabled {
		m += G4Channels
	}
	return m
}

// FabricOption configures a Config under construction. Invalid values
// passed to a FabricOption panic at option-construction time, matching
// the fail-fast convention used across this module's option types; see
// builder.BuilderOption for the same discipline.
type FabricOption func(*Config)

// WithGlobalNum sets the 1-way global switch count. Only 4 and 8 are
// physically meaningful; other values panic immediately.
func WithGlobalNum(n int) FabricOption {
	if n != 4 && n != 8 {
		panic(fmt.Sprintf("fabric: WithGlobalNum(%d): must be 4 or 8", n))
	}
	return func(c *Config) { c.globalNum = n }
}

// WithG4 enables or disables the optional 4-way global switch.
func WithG4(enabled bool) FabricOption {
	return func(c *Config) { c.g4Enabled = enabled }
}

// WithThreshold sets the tile-closure capacity floor. Negative thresholds
// are meaningless (every tile would already satisfy remain < threshold)
// and panic immediately.
func WithThreshold(t int) FabricOption {
	if t < 0 {
		panic(fmt.Sprintf("fabric: WithThreshold(%d): must be >= 0", t))
	}
	return func(c *Config) { c.threshold = t }
}

// With returns a copy of c with opts applied on top of its current
// values, letting a caller layer CLI overrides over a file/env-derived
// Config without re-resolving the reference defaults underneath it.
func (c Config) With(opts ...FabricOption) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewConfig resolves opts against the reference defaults and returns the
// immutable Config.
func NewConfig(opts ...FabricOption) Config {
	c := Config{
		globalNum: DefaultGlobalNum,
		g4Enabled: true,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DefaultConfig returns the reference device's configuration: GlobalNum=8,
// g4 enabled, Threshold=25.
func DefaultConfig() Config {
	return NewConfig()
}
