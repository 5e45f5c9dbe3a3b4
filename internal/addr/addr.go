// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package addr summarizes the bit arithmetic for addressing
// int32 indexes in a 32-way radix trie.
//
// The trie does not address the index itself but its sign-flipped
// unsigned key, see [Key]. Ascending unsigned keys are ascending
// signed indexes, so a slot ascending walk is already sorted.
package addr

import (
	"math"
	"math/bits"
)

// Stride is the number of index bits consumed per trie level.
const Stride = 5

// Fanout is the branching factor of a trie level, 1 << Stride.
const Fanout = 1 << Stride

// SliceMask masks a single stride.
const SliceMask = Fanout - 1

// MaxShift is the shift of the topmost possible trie level.
// At this level only the two most significant bits are left,
// the slots are limited to [0..3].
const MaxShift = 30

// MaxDepth is the number of trie levels, shift 0, 5, ..., 30.
const MaxDepth = MaxShift/Stride + 1

// Flip toggles the sign bit. Flip is its own inverse.
//
//	math.MinInt32 -> 0
//	-1            -> math.MaxInt32
//	0             -> math.MinInt32
//	math.MaxInt32 -> -1
func Flip(x int32) int32 {
	return x ^ math.MinInt32
}

// Key returns the unsigned trie key for idx, the sign-flipped idx
// reinterpreted as uint32.
//
// The unsigned order of the keys is the signed order of the indexes.
func Key(idx int32) uint32 {
	//nolint:gosec // G115: reinterpretation is intended
	return uint32(Flip(idx))
}

// Slice returns the 5-bit chunk of key selecting the slot at shift.
func Slice(key uint32, shift int) uint8 {
	return uint8((key >> shift) & SliceMask)
}

// ShiftForIndex returns the smallest shift that addresses key alone,
// the smallest multiple of Stride with key >> (shift+Stride) == 0.
//
//	0x0000_0000 -> 0
//	0x0000_001f -> 0
//	0x0000_0020 -> 5
//	0x0000_03ff -> 5
//	0x0000_0400 -> 10
//	0x8000_0000 -> 30
func ShiftForIndex(key uint32) int {
	n := bits.Len32(key)
	if n <= Stride {
		return 0
	}
	return (n - 1) / Stride * Stride
}

// FindCommonAncestorShift returns the shift of the lowest branch that
// holds both indexes on a shared path, that is the highest level at
// which the slices of a and b differ. Above this shift the keys are
// identical, see [Key].
//
// FindCommonAncestorShift(x, x) is 0.
//
// The sign flip toggles the same bit in both keys, therefore the
// divergence of the keys is the divergence of the raw indexes.
func FindCommonAncestorShift(a, b int32) int {
	return ShiftForIndex(Key(a) ^ Key(b))
}

// Prefix returns the bits of key above the level at shift, the
// part of the key shared by all indexes below a branch at shift.
func Prefix(key uint32, shift int) uint64 {
	// widen, shift+Stride may be 35
	return uint64(key) >> (shift + Stride)
}
