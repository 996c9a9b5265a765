// SPDX-License-Identifier: MIT
// Package: apfabric/engine
//
// run.go - Engine: the batch placement loop across both chips.
//
// For each automaton in descending (nstate, nedge) order, try chip 0
// then chip 1; on success, pack smaller automata into the open tile's
// leftover capacity, closing it once that capacity drops below the
// configured threshold; on failure of every chip, abort the whole run.
package engine

import (
	"fmt"

	"github.com/apfabric/apmap/apformat"
	"github.com/apfabric/apmap/chip"
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/internal/applog"
	"github.com/apfabric/apmap/report"
	"github.com/sirupsen/logrus"
)

// Engine drives a batch of descriptor files through fabric.ChipNum
// chips to completion or the first unrecoverable failure.
type Engine struct {
	Cfg    fabric.Config
	NoOpt  bool
	Logger *logrus.Logger
}

// New returns an Engine configured with cfg. A nil logger is replaced
// by applog.New's default stdout logger.
func New(cfg fabric.Config, noOpt bool, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = applog.New()
	}
	return &Engine{Cfg: cfg, NoOpt: noOpt, Logger: logger}
}

// Result is the outcome of a successful batch run: every chip's final
// mapping state plus the derived utilization statistic.
type Result struct {
	Chips        []*chip.Chip
	TilesInTotal float64
}

// Run loads every descriptor file in paths, maps their automata across
// fabric.ChipNum chips, and returns the final chip states. It returns
// the first error encountered (malformed input, chip-full exhaustion,
// or an unresolvable allocation failure), matching the reference
// mapper's fail-fast batch semantics.
func (e *Engine) Run(paths []string) (*Result, error) {
	entries, err := loadBatch(paths)
	if err != nil {
		return nil, err
	}

	chips := make([]*chip.Chip, fabric.ChipNum)
	for i := range chips {
		chips[i] = chip.New(e.Cfg)
	}

	for i, ent := range entries {
		if ent.mapped {
			continue
		}
		if err := e.place(chips, entries, i); err != nil {
			return nil, err
		}
	}

	return &Result{Chips: chips, TilesInTotal: report.TilesInTotal(chips)}, nil
}

// place maps entries[idx] onto the first chip with room for it,
// trying every chip in order before giving up.
func (e *Engine) place(chips []*chip.Chip, entries []*entry, idx int) error {
	ent := entries[idx]

	fitsAny := false
	for _, c := range chips {
		if c.Fits(ent.NState) {
			fitsAny = true
			break
		}
	}
	if !fitsAny {
		return fmt.Errorf("%w: %s (listed in %s)", ErrChipsFull, ent.Path, ent.descriptor)
	}

	graph, err := apformat.ReadGraphFile(ent.Path, ent.Automaton)
	if err != nil {
		return err
	}

	for ci, c := range chips {
		if !c.Fits(graph.NVtxs) {
			continue
		}
		if !c.MapGraphToChip(graph, e.NoOpt) {
			continue
		}
		ent.mapped = true
		e.Logger.WithFields(applog.Fields{
			"automaton": ent.Path,
			"chip":      ci,
			"nstate":    graph.NVtxs,
			"tiles":     c.CurTile,
		}).Debug("automaton mapped")
		return e.pack(c, entries)
	}
	return fmt.Errorf("%w: %s cannot be mapped", ErrCannotMap, ent.Path)
}

// pack implements the commit-time packing step: while c's leftover
// capacity is at or above the configured threshold, find the largest
// unmapped automaton that fits and place it too; once the leftover
// capacity drops below threshold, close the tile instead of continuing
// to probe it.
func (e *Engine) pack(c *chip.Chip, entries []*entry) error {
	for {
		if c.Remain < e.Cfg.Threshold() {
			c.CurTile++
			c.Remain = fabric.TileSize
			return nil
		}

		j := bestFit(entries, c.Remain)
		if j < 0 {
			return nil
		}

		ent := entries[j]
		graph, err := apformat.ReadGraphFile(ent.Path, ent.Automaton)
		if err != nil {
			return err
		}
		if !c.MapGraphToChip(graph, e.NoOpt) {
			return nil
		}
		ent.mapped = true
		e.Logger.WithFields(applog.Fields{
			"automaton": ent.Path,
			"nstate":    graph.NVtxs,
			"remain":    c.Remain,
		}).Debug("packed automaton into leftover tile capacity")
	}
}
