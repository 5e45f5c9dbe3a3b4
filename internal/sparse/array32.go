// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a special sparse array
// with popcount compression for max. 32 items.
//
// The array is used as child table of immutable trie branches,
// therefore all modifying methods are copy-on-write, the receiver
// is never changed and the returned array shares no memory with it.
package sparse

import (
	"fmt"

	"github.com/gaissmai/inttrie/internal/bitset"
)

// Array32 is a generic implementation of a sparse array
// with popcount compression for max. 32 items with payload T.
type Array32[T any] struct {
	bitset.BitSet32
	Items []T
}

// From returns an array over the given bitset and items.
// The items are not copied, the caller must not change them afterwards.
//
// It panics if the number of set bits and items differ.
func From[T any](bs bitset.BitSet32, items []T) Array32[T] {
	if bs.Size() != len(items) {
		panic(fmt.Sprintf("sparse: %d bits set but %d items", bs.Size(), len(items)))
	}
	return Array32[T]{BitSet32: bs, Items: items}
}

// Len returns the number of items in sparse array.
func (a *Array32[T]) Len() int {
	return len(a.Items)
}

// Get the value at i from sparse array.
//
// example: a.Get(5) -> a.Items[1]
//
//	                       ⬇
//	BitSet32:   [0|0|1|0|0|1|0|...|1] <- 3 bits set
//	Items:      [*|*|*]               <- len(Items) = 3
//	               ⬆
//
//	BitSet32.Test(5):     true
//	BitSet32.popcount(5): 2, for interval [0,5]
//	BitSet32.Rank0(5):    1, equal popcount(5)-1
func (a *Array32[T]) Get(i uint8) (value T, ok bool) {
	if a.Test(i) {
		return a.Items[a.Rank0(i)], true
	}
	return
}

// MustSet of the underlying bitset is forbidden. The bitset and the items are coupled.
// An unsynchronized Set() disturbs the coupling between bitset and Items[].
func (a *Array32[T]) MustSet(uint8) {
	panic("forbidden, use With")
}

// MustClear of the underlying bitset is forbidden. The bitset and the items are coupled.
// An unsynchronized Clear() disturbs the coupling between bitset and Items[].
func (a *Array32[T]) MustClear(uint8) {
	panic("forbidden, use Without")
}

// With returns a new array with value at i, inserted or replaced.
func (a *Array32[T]) With(i uint8, value T) Array32[T] {
	if a.Test(i) {
		items := append(a.Items[:0:0], a.Items...)
		items[a.Rank0(i)] = value
		return Array32[T]{BitSet32: a.BitSet32, Items: items}
	}

	bs := a.BitSet32
	bs.MustSet(i)
	rank0 := bs.Rank0(i)

	// make new backing array with exact size
	items := make([]T, len(a.Items)+1)
	copy(items, a.Items[:rank0])
	copy(items[rank0+1:], a.Items[rank0:])
	items[rank0] = value

	return Array32[T]{BitSet32: bs, Items: items}
}

// Without returns a new array without the value at i.
// If i is not set, a shallow copy of the receiver is returned.
func (a *Array32[T]) Without(i uint8) Array32[T] {
	if !a.Test(i) {
		return Array32[T]{BitSet32: a.BitSet32, Items: append(a.Items[:0:0], a.Items...)}
	}

	rank0 := a.Rank0(i)

	items := make([]T, len(a.Items)-1)
	copy(items, a.Items[:rank0])
	copy(items[rank0:], a.Items[rank0+1:])

	bs := a.BitSet32
	bs.MustClear(i)

	return Array32[T]{BitSet32: bs, Items: items}
}

// Slots returns the set slots in ascending order, parallel to Items.
func (a *Array32[T]) Slots(buf *[32]uint8) []uint8 {
	return a.AsSlice(buf)
}
