// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"iter"

	"github.com/gaissmai/inttrie/internal/nodes"
)

// All returns an iterator over all entries in ascending signed order
// of the index. The iteration can be stopped early by breaking out
// of the range loop.
func (t *Trie[V]) All() iter.Seq2[int32, V] {
	return func(yield func(int32, V) bool) {
		allRec(t.rootNode(), yield)
	}
}

// Backward returns an iterator over all entries in descending order.
func (t *Trie[V]) Backward() iter.Seq2[int32, V] {
	return func(yield func(int32, V) bool) {
		backwardRec(t.rootNode(), yield)
	}
}

// Keys returns an iterator over all indexes in ascending order.
func (t *Trie[V]) Keys() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for idx := range t.All() {
			if !yield(idx) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending order of their index.
func (t *Trie[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range t.All() {
			if !yield(val) {
				return
			}
		}
	}
}

// Min returns the entry with the lowest index, ok is false for an empty trie.
func (t *Trie[V]) Min() (idx int32, val V, ok bool) {
	leaf, ok := nodes.MinLeaf(t.rootNode())
	if !ok {
		return
	}
	return leaf.Index, leaf.Value, true
}

// Max returns the entry with the highest index, ok is false for an empty trie.
func (t *Trie[V]) Max() (idx int32, val V, ok bool) {
	leaf, ok := nodes.MaxLeaf(t.rootNode())
	if !ok {
		return
	}
	return leaf.Index, leaf.Value, true
}

// allRec, returns false if yield stopped the iteration.
func allRec[V any](n nodes.Node[V], yield func(int32, V) bool) bool {
	switch x := n.(type) {
	case nil, nodes.EmptyNode[V]:
		return true
	case *nodes.LeafNode[V]:
		return yield(x.Index, x.Value)
	case *nodes.SingleNode[V]:
		return allRec(x.Child, yield)
	case *nodes.MultiNode[V]:
		for _, kid := range x.Children.Items {
			if !allRec(kid, yield) {
				return false
			}
		}
		return true
	default:
		panic("logic error, wrong node type")
	}
}

// backwardRec, same as allRec but the kids in reverse order.
func backwardRec[V any](n nodes.Node[V], yield func(int32, V) bool) bool {
	switch x := n.(type) {
	case nil, nodes.EmptyNode[V]:
		return true
	case *nodes.LeafNode[V]:
		return yield(x.Index, x.Value)
	case *nodes.SingleNode[V]:
		return backwardRec(x.Child, yield)
	case *nodes.MultiNode[V]:
		for i := len(x.Children.Items) - 1; i >= 0; i-- {
			if !backwardRec(x.Children.Items[i], yield) {
				return false
			}
		}
		return true
	default:
		panic("logic error, wrong node type")
	}
}
