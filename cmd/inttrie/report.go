// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/gaissmai/inttrie"
	"github.com/spf13/cobra"
)

// report checks the invariants of trie and prints the statistics,
// the parallel checksum and, if requested, the node dump.
func report(cmd *cobra.Command, opts *options, trie *inttrie.Trie[int64]) error {
	log := opts.log
	out := cmd.OutOrStdout()

	if err := trie.CheckInvariants(); err != nil {
		log.Error().Err(err).Msg("invariants violated")
		return err
	}
	log.Debug().Msg("invariants ok")

	sum, err := checksum(cmd.Context(), trie, opts.workers)
	if err != nil {
		return err
	}

	s := trie.Stats()
	fmt.Fprintf(out, "size:     %d\n", s.Size)
	fmt.Fprintf(out, "nodes:    %d\n", s.Nodes())
	fmt.Fprintf(out, "singles:  %d\n", s.Singles)
	fmt.Fprintf(out, "multis:   %d\n", s.Multis)
	fmt.Fprintf(out, "depth:    %d\n", s.Depth)
	fmt.Fprintf(out, "checksum: %016x\n", sum)

	if lo, _, ok := trie.Min(); ok {
		hi, _, _ := trie.Max()
		fmt.Fprintf(out, "range:    [%d, %d]\n", lo, hi)
	}

	if opts.dump {
		return trie.Dump(out)
	}
	return nil
}
