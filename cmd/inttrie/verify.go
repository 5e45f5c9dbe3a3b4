// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gaissmai/inttrie"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <entries.json>",
		Short: "Load a JSON entry list and check the trie",
		Long: `The verify command loads a JSON list of entries with int64 values,

  [{"index": -1, "value": 7}, {"index": 42, "value": 3}]

builds the trie, checks the invariants and reports the statistics.
Use - to read from stdin.

Example:
  inttrie verify entries.json --dump`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, args[0])
		},
	}

	return cmd
}

func runVerify(cmd *cobra.Command, opts *options, path string) error {
	log := opts.log

	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	trie := new(inttrie.Trie[int64])
	if err := json.Unmarshal(data, trie); err != nil {
		return fmt.Errorf("failed to decode entries: %w", err)
	}

	log.Info().Str("file", path).Int("len", trie.Len()).Msg("entries loaded")

	return report(cmd, opts, trie)
}
