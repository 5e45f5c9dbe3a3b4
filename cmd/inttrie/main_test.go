// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaissmai/inttrie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "small workload",
			args:        []string{"run", "--size", "1000", "--check-every", "10"},
			wantContain: []string{"size:", "checksum:", "range:"},
		},
		{
			name:        "no deletes with dump",
			args:        []string{"run", "--size", "50", "--delete-every", "0", "--dump"},
			wantContain: []string{"### size(", "[MULTI]", "[LEAF]"},
		},
		{
			name:    "invalid log level",
			args:    []string{"run", "--log-level", "loud"},
			wantErr: true,
		},
		{
			name:    "unexpected argument",
			args:    []string{"run", "foo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	out1, _, err := execute(t, "", "run", "--size", "2000", "--seed", "7", "--workers", "1")
	require.NoError(t, err)

	out2, _, err := execute(t, "", "run", "--size", "2000", "--seed", "7", "--workers", "8")
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "", "build", "--size", "1025", "--snapshot-every", "100", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, out, "size:     1025\n")
	assert.Contains(t, out, "range:    [0, 1024]\n")
	assert.Contains(t, stderr, "snapshot")
	assert.Contains(t, stderr, "build done")
}

func TestVerifyCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"index":33,"value":1},{"index":0,"value":2},{"index":97,"value":3},{"index":65,"value":4}]`), 0o600))

	out, _, err := execute(t, "", "verify", path, "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "size:     4\n")
	assert.Contains(t, out, "[MULTI] shift(5) slots(#4): [0 1 2 3]\n")

	// stdin
	out, _, err = execute(t, `[{"index":-1,"value":1}]`, "verify", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "range:    [-1, -1]\n")

	// broken input
	_, _, err = execute(t, `{"index":-1}`, "verify", "-")
	assert.Error(t, err)

	_, _, err = execute(t, "", "verify", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	w := newWorkload(42)

	var trie *inttrie.Trie[int64]
	for i := range 5_000 {
		trie = trie.Assign(w.randomIndex(), int64(i))
	}

	// sequential polynomial hash
	var want uint64
	for idx, val := range trie.All() {
		want = want*31 + (uint64(uint32(idx)) ^ uint64(val))
	}

	for _, workers := range []int{1, 2, 5} {
		got, err := checksum(context.Background(), trie, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers %d", workers)
	}
}

func TestPow31(t *testing.T) {
	t.Parallel()

	want := uint64(1)
	for n := range uint64(100) {
		assert.Equal(t, want, pow31(n), "n %d", n)
		want *= 31
	}
}
