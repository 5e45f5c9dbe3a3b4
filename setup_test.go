// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 1_000
	}
	return 10_000
}

// randomIndex returns indexes of all magnitudes, clustered and sparse.
func randomIndex(prng *rand.Rand) int32 {
	//nolint:gosec
	idx := int32(prng.Uint32() >> prng.IntN(32))
	if prng.IntN(2) == 0 {
		return -idx
	}
	return idx
}

// fromMap returns a trie with all entries of m, assigned in random order.
func fromMap[V any](t *testing.T, prng *rand.Rand, m map[int32]V) *Trie[V] {
	t.Helper()

	keys := slices.Collect(maps.Keys(m))
	prng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	var trie *Trie[V]
	for _, idx := range keys {
		trie = trie.Assign(idx, m[idx])
	}
	require.NoError(t, trie.CheckInvariants())

	return trie
}

// requireSameEntries compares the trie with the reference map, in order.
func requireSameEntries[V any](t *testing.T, m map[int32]V, trie *Trie[V]) {
	t.Helper()

	require.Equal(t, len(m), trie.Len())

	wantKeys := slices.Sorted(maps.Keys(m))
	require.Equal(t, wantKeys, slices.Collect(trie.Keys()))

	for _, idx := range wantKeys {
		got, ok := trie.Get(idx)
		require.True(t, ok, "Get(%d)", idx)
		require.Equal(t, m[idx], got, "Get(%d)", idx)
	}
}
