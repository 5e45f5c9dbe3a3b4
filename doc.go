// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package inttrie provides a persistent associative array keyed by
// the full int32 domain, implemented as a 32-way radix trie.
//
// A [Trie] is immutable, every modifying method returns a new Trie
// and the receiver stays valid and unchanged. All untouched subtrees
// are shared between the versions, a modification allocates at most
// one node per level, and there are at most 7 levels.
//
// The trie consumes the index in slices of 5 bits, from the most
// significant to the least significant slice. The sign bit is flipped
// before slicing, so the slot order of the trie is the signed order
// of the indexes and all iterators run from math.MinInt32 upwards.
//
// For a given set of indexes the shape of the trie is unique, the
// minimum depth representation: a single entry is stored in a leaf,
// wherever it sits, and the root is the branch at the highest level
// where the stored indexes diverge. Two tries with the same entries
// are structurally identical, independent of the modification history.
//
// Bulk loading of consecutive indexes 0, 1, 2, ... is done with a
// [Builder], it appends in amortized O(1) and returns immutable
// snapshots at any time.
//
// The [Cursor] is a splittable traversal for parallel processing,
// see [ParallelForEach] and [ParallelReduce].
//
// Tries are safe for concurrent readers, they are values.
// A Builder must be used by a single goroutine.
package inttrie
