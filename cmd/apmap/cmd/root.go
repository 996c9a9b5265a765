// SPDX-License-Identifier: MIT
// Package cmd implements the apmap command-line tool: the batch
// entry point of the mapper, built on cobra/viper.
package cmd

import (
	"fmt"
	"os"

	"github.com/apfabric/apmap/engine"
	"github.com/apfabric/apmap/fabric"
	"github.com/apfabric/apmap/internal/applog"
	"github.com/apfabric/apmap/report"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	noG4       bool
	noOpt      bool
	configPath string

	logger = applog.New()
)

// exitFatal is the status reported on any fatal error; success is 0.
const exitFatal = -2

var rootCmd = &cobra.Command{
	Use:   "apmap map_file1 [map_file2] ...",
	Short: "Place and route automata batches onto the tile fabric",
	Long: `apmap reads one or more descriptor files, maps every automaton they
list onto the chips of the tile fabric, and writes the resulting
placement to map_result in the current directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMap(args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noG4, "no-g4", false, "disable the 4-way global switch")
	rootCmd.PersistentFlags().BoolVar(&noOpt, "no-opt", false, "disable cost-driven partition search")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional apmap config file")
	rootCmd.AddCommand(genCmd)
}

// Execute runs the root command and terminates the process with 0 on
// success or exitFatal on any fatal error.
func Execute() {
	applog.SetVerbose(logger, verbose)
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("apmap: fatal")
		os.Exit(exitFatal)
	}
}

func runMap(paths []string) error {
	applog.SetVerbose(logger, verbose)

	cfg, err := fabric.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if noG4 {
		cfg = cfg.With(fabric.WithG4(false))
	}

	e := engine.New(cfg, noOpt, logger)
	result, err := e.Run(paths)
	if err != nil {
		return err
	}

	out, err := os.Create("map_result")
	if err != nil {
		return fmt.Errorf("apmap: creating map_result: %w", err)
	}
	defer out.Close()

	for i, c := range result.Chips {
		if !report.ChipUsed(c) {
			continue
		}
		if err := report.EmitChip(out, i, c); err != nil {
			return fmt.Errorf("apmap: writing map_result: %w", err)
		}
	}

	fmt.Printf("%.1f tiles in total\n", result.TilesInTotal)
	return nil
}
