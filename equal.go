// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

// Equaler is a generic interface for types that can decide their own
// equality logic.
//
// Values are compared by [Trie.Assign] to detect no-op assignments,
// overriding the default == comparison, and by [Trie.Equal],
// overriding the default [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}
