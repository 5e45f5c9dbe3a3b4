// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/gaissmai/inttrie"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	size          int
	snapshotEvery int
}

func newBuildCmd(opts *options) *cobra.Command {
	bo := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Bulk load consecutive indexes with the Builder",
		Long: `The build command appends the values 0..size-1 with the Builder,
optionally taking intermediate snapshots, and checks the invariants
of the final trie.

Example:
  inttrie build --size 1000000
  inttrie build --size 100 --snapshot-every 10 --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts, bo)
		},
	}

	cmd.Flags().IntVar(&bo.size, "size", 1_000_000, "Number of values to add")
	cmd.Flags().IntVar(&bo.snapshotEvery, "snapshot-every", 0, "Build a snapshot every N values, 0 disables snapshots")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *options, bo *buildOptions) error {
	log := opts.log
	start := time.Now()

	var b inttrie.Builder[int64]
	snapshots := 0

	for i := range bo.size {
		b.Add(int64(i))

		if bo.snapshotEvery > 0 && (i+1)%bo.snapshotEvery == 0 {
			snap := b.Build()
			snapshots++
			log.Debug().Int("len", snap.Len()).Msg("snapshot")
		}
	}

	trie := b.Build()

	log.Info().
		Int("len", trie.Len()).
		Int("snapshots", snapshots).
		Dur("elapsed", time.Since(start)).
		Msg("build done")

	return report(cmd, opts, trie)
}
