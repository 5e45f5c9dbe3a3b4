// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/gaissmai/inttrie"
	"github.com/spf13/cobra"
)

type runOptions struct {
	size        int
	deleteEvery int
	checkEvery  int
}

func newRunCmd(opts *options) *cobra.Command {
	ro := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a random assign/delete workload",
		Long: `The run command applies a random mix of assigns and deletes to
an empty trie, keeping every version persistent, and checks the
invariants of the result.

Example:
  inttrie run --size 100000
  inttrie run --size 1000 --delete-every 2 --check-every 1 --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, opts, ro)
		},
	}

	cmd.Flags().IntVar(&ro.size, "size", 100_000, "Number of operations")
	cmd.Flags().IntVar(&ro.deleteEvery, "delete-every", 4, "Delete one out of N operations, 0 disables deletes")
	cmd.Flags().IntVar(&ro.checkEvery, "check-every", 0, "Check the invariants every N operations, 0 only at the end")

	return cmd
}

func runRun(cmd *cobra.Command, opts *options, ro *runOptions) error {
	log := opts.log
	w := newWorkload(opts.seed)

	log.Debug().Int("size", ro.size).Uint64("seed", opts.seed).Msg("start random workload")

	start := time.Now()

	var trie *inttrie.Trie[int64]
	assigns, deletes := 0, 0

	for i := range ro.size {
		idx := w.randomIndex()

		if w.randomDelete(ro.deleteEvery) {
			// delete an existing index if any
			if first, _, ok := trie.Min(); ok && i%2 == 0 {
				idx = first
			}
			trie = trie.Delete(idx)
			deletes++
		} else {
			trie = trie.Assign(idx, int64(i))
			assigns++
		}

		if ro.checkEvery > 0 && i%ro.checkEvery == 0 {
			if err := trie.CheckInvariants(); err != nil {
				return fmt.Errorf("after operation %d: %w", i, err)
			}
			log.Trace().Int("op", i).Int("len", trie.Len()).Msg("invariants ok")
		}
	}

	elapsed := time.Since(start)

	log.Info().
		Int("assigns", assigns).
		Int("deletes", deletes).
		Int("len", trie.Len()).
		Dur("elapsed", elapsed).
		Msg("workload done")

	return report(cmd, opts, trie)
}
