// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderEmpty(t *testing.T) {
	t.Parallel()

	var b Builder[int]
	trie := b.Build()

	assert.Zero(t, b.Len())
	assert.Zero(t, trie.Len())
	assert.NoError(t, trie.CheckInvariants())
	assert.True(t, trie.Equal(nil))
}

// After every Add the snapshot must be equal to the trie
// built by assignment, the shape is canonical.
func TestBuilderEqualsAssign(t *testing.T) {
	t.Parallel()

	n := workLoadN()

	var b Builder[int]
	var want *Trie[int]

	for i := range n {
		b.Add(i * 3)
		want = want.Assign(int32(i), i*3)

		got := b.Build()
		require.NoError(t, got.CheckInvariants(), "after Add #%d", i)
		require.Equal(t, i+1, got.Len())
		require.True(t, want.Equal(got), "after Add #%d", i)
	}

	assert.Equal(t, n, b.Len())
}

// Interesting sizes around the level boundaries.
func TestBuilderLevelBoundaries(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 2, 31, 32, 33, 63, 64, 65, 1023, 1024, 1025, 1056, 32*1024 + 1}

	for _, n := range sizes {
		var b Builder[int32]
		var want *Trie[int32]

		for i := range n {
			b.Add(int32(i))
			want = want.Assign(int32(i), int32(i))
		}

		got := b.Build()
		require.NoError(t, got.CheckInvariants(), "size %d", n)
		require.True(t, want.Equal(got), "size %d", n)
		require.Equal(t, want.DumpString(), got.DumpString(), "size %d", n)
	}
}

// Old snapshots are frozen, later Adds never show up.
func TestBuilderSnapshotsAreImmutable(t *testing.T) {
	t.Parallel()

	var b Builder[string]
	var snaps []*Trie[string]
	var dumps []string

	for i := range 2_000 {
		b.Add("x")
		if i%7 == 0 {
			s := b.Build()
			snaps = append(snaps, s)
			dumps = append(dumps, s.DumpString())
		}
	}

	for i, s := range snaps {
		require.NoError(t, s.CheckInvariants())
		require.Equal(t, dumps[i], s.DumpString(), "snapshot %d changed", i)
		require.Equal(t, i*7+1, s.Len())
	}
}

// Snapshots are regular tries and can be modified.
func TestBuilderSnapshotModify(t *testing.T) {
	t.Parallel()

	var b Builder[int]
	for i := range 100 {
		b.Add(i)
	}

	s1 := b.Build()
	s2 := s1.Assign(50, -1).Delete(99).Assign(-1, -1)
	require.NoError(t, s2.CheckInvariants())

	// builder and old snapshot unaffected
	b.Add(100)
	s3 := b.Build()

	assert.Equal(t, 49, s1.GetOrDefault(49, 0))
	assert.Equal(t, 50, s1.GetOrDefault(50, 0))
	assert.Equal(t, 50, s3.GetOrDefault(50, 0))
	assert.Equal(t, -1, s2.GetOrDefault(50, 0))
	assert.Equal(t, 101, s3.Len())
	assert.Equal(t, 100, s1.Len())

	want := make([]int, 101)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, slices.Collect(s3.Values()))
}

func TestBuilderReset(t *testing.T) {
	t.Parallel()

	var b Builder[int]
	for i := range 40 {
		b.Add(i)
	}
	s1 := b.Build()

	b.Reset()
	assert.Zero(t, b.Len())

	b.Add(42)
	s2 := b.Build()

	assert.Equal(t, 40, s1.Len())
	assert.Equal(t, 1, s2.Len())
	assert.Equal(t, 42, s2.GetOrDefault(0, 0))
	assert.Equal(t, 0, s1.GetOrDefault(0, -1))
}

func TestBuilderOverflowPanics(t *testing.T) {
	t.Parallel()

	var b Builder[struct{}]
	b.size = 1 << 31

	assert.Panics(t, func() { b.Add(struct{}{}) })
}

func BenchmarkBuilderAdd(b *testing.B) {
	var bld Builder[int]

	for i := range b.N {
		bld.Add(i)
	}
}
