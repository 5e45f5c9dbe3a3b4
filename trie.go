// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"fmt"

	"github.com/gaissmai/inttrie/internal/nodes"
)

// Trie is a persistent associative array from int32 to V.
// The zero value is an empty trie ready to use.
//
// A Trie is immutable, Assign, Update and Delete return new
// versions and share all untouched nodes with the receiver.
// A nil *Trie is treated as an empty trie by all methods.
type Trie[V any] struct {
	root nodes.Node[V]

	// the number of entries, maintained by the mutation deltas
	size int
}

// rootNode returns the root, normalized for the zero value.
func (t *Trie[V]) rootNode() nodes.Node[V] {
	if t == nil || t.root == nil {
		return nodes.EmptyNode[V]{}
	}
	return t.root
}

// newTrie returns t itself if nothing changed.
func (t *Trie[V]) newTrie(root nodes.Node[V], delta int) *Trie[V] {
	if t != nil && delta == 0 && root == t.rootNode() {
		return t
	}

	size := delta
	if t != nil {
		size += t.size
	}
	return &Trie[V]{root: root, size: size}
}

// Len returns the number of entries.
func (t *Trie[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Get returns the value stored at idx and true,
// or the zero value and false if idx is absent.
func (t *Trie[V]) Get(idx int32) (val V, ok bool) {
	return nodes.Find(t.rootNode(), idx)
}

// GetOrDefault returns the value stored at idx or dflt.
func (t *Trie[V]) GetOrDefault(idx int32, dflt V) V {
	return nodes.GetValueOr(t.rootNode(), idx, dflt)
}

// Contains reports whether idx is present.
func (t *Trie[V]) Contains(idx int32) bool {
	_, ok := nodes.Find(t.rootNode(), idx)
	return ok
}

// Assign returns a trie with idx set to val.
//
// If idx is already stored with an equal value, the receiver
// itself is returned. Values are compared with the Equal method
// of V, if implemented, or else with ==. Pointers are compared by
// identity, values that are not comparable like slices and maps are
// always stored.
func (t *Trie[V]) Assign(idx int32, val V) *Trie[V] {
	root, delta := nodes.AssignRoot(t.rootNode(), idx, val)
	return t.newTrie(root, delta)
}

// Update returns a trie with the value at idx replaced by the
// result of cb, ok is false if idx was absent. The new value
// is returned as well.
func (t *Trie[V]) Update(idx int32, cb func(val V, ok bool) V) (*Trie[V], V) {
	old, ok := t.Get(idx)
	val := cb(old, ok)
	return t.Assign(idx, val), val
}

// Delete returns a trie without idx.
// If idx is absent, the receiver itself is returned.
func (t *Trie[V]) Delete(idx int32) *Trie[V] {
	root, delta := nodes.DeleteRoot(t.rootNode(), idx)
	return t.newTrie(root, delta)
}

// Equal reports whether t and o hold the same entries.
// Values are compared with the Equal method of V, if implemented,
// or else with reflect.DeepEqual. Both tries are canonical, this is a structural comparison
// which skips all shared subtrees.
func (t *Trie[V]) Equal(o *Trie[V]) bool {
	if t.Len() != o.Len() {
		return false
	}
	return nodes.Equal(t.rootNode(), o.rootNode())
}

// CheckInvariants verifies the internal structure of the trie and
// the size counter. Any error is an implementation defect.
//
// This is expensive, for tests and debugging only.
func (t *Trie[V]) CheckInvariants() error {
	root := t.rootNode()
	if err := nodes.CheckInvariants(root); err != nil {
		return err
	}

	if leaves := nodes.Stats(root).Leaves; leaves != t.Len() {
		return fmt.Errorf("%w: size %d, but %d leaves", nodes.ErrInvariant, t.Len(), leaves)
	}
	return nil
}
