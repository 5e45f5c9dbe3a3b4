// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow int32 keyed map,
// a sorted slice of entries, as golden reference for the trie.
package golden

import (
	"cmp"
	"fmt"
	"slices"
)

// GoldTrie is kept sorted by index, persistence is emulated with Clone.
type GoldTrie[V any] []GoldTrieItem[V]

type GoldTrieItem[V any] struct {
	Idx int32
	Val V
}

func (g GoldTrieItem[V]) String() string {
	return fmt.Sprintf("(%d, %v)", g.Idx, g.Val)
}

// search returns the position of idx and true, or the insert position and false.
func (t GoldTrie[V]) search(idx int32) (int, bool) {
	return slices.BinarySearchFunc(t, idx, func(item GoldTrieItem[V], idx int32) int {
		return cmp.Compare(item.Idx, idx)
	})
}

func (t *GoldTrie[V]) Assign(idx int32, val V) {
	i, found := t.search(idx)
	if found {
		(*t)[i].Val = val // de-dupe
		return
	}
	*t = slices.Insert(*t, i, GoldTrieItem[V]{idx, val})
}

func (t *GoldTrie[V]) Delete(idx int32) (exists bool) {
	i, found := t.search(idx)
	if !found {
		return false
	}
	*t = slices.Delete(*t, i, i+1)
	return true
}

func (t GoldTrie[V]) Get(idx int32) (val V, ok bool) {
	i, found := t.search(idx)
	if !found {
		return val, false
	}
	return t[i].Val, true
}

func (t *GoldTrie[V]) Update(idx int32, cb func(V, bool) V) (val V) {
	old, ok := t.Get(idx)
	val = cb(old, ok)
	t.Assign(idx, val)
	return val
}

// Clone returns an independent copy, values are copied shallow.
func (t GoldTrie[V]) Clone() GoldTrie[V] {
	return slices.Clone(t)
}

// AllSorted returns the indexes in ascending order.
func (t GoldTrie[V]) AllSorted() []int32 {
	var result []int32
	for _, item := range t {
		result = append(result, item.Idx)
	}
	return result
}

// Values returns the values in ascending order of their index.
func (t GoldTrie[V]) Values() []V {
	var result []V
	for _, item := range t {
		result = append(result, item.Val)
	}
	return result
}

// Min returns the lowest index.
func (t GoldTrie[V]) Min() (idx int32, ok bool) {
	if len(t) == 0 {
		return
	}
	return t[0].Idx, true
}
