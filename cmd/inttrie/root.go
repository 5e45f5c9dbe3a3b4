// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options shared by all commands
type options struct {
	logLevel string
	seed     uint64
	workers  int
	dump     bool

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "inttrie",
		Short: "Load, verify and profile persistent int32 tries",
		Long: `inttrie drives the persistent int32 radix trie with random or
sequential workloads, checks the structural invariants of the results
and reports the node statistics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 42, "Seed for the random workloads")
	rootCmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "Parallel workers for the checksum, 0 is GOMAXPROCS")
	rootCmd.PersistentFlags().BoolVar(&opts.dump, "dump", false, "Dump the node structure of the result")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))

	return rootCmd
}

// newLogger returns a console logger at the given level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if w == nil {
		w = os.Stderr
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}
