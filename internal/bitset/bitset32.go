// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements the fixed size occupancy bitmap
// for the 32 slots of a trie branch.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote needed parts from scratch for this project.
//
// A single uint32 word is enough for one stride of 5 bits,
// all methods are branch free or nearly so and inlineable.
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet32 represents a fixed size bitset from [0..31]
type BitSet32 uint32

// Range returns a bitset with the n consecutive bits [first, first+n) set.
// It panics if first+n > 32 by intention!
func Range(first, n uint8) BitSet32 {
	if uint(first)+uint(n) > 32 {
		panic(fmt.Sprintf("bitset: range [%d, %d) out of bounds", first, uint(first)+uint(n)))
	}
	return BitSet32((uint64(1)<<n - 1) << first)
}

func (b BitSet32) String() string {
	return fmt.Sprint(b.All())
}

// MustSet sets the bit, the bit is masked to [0..31].
func (b *BitSet32) MustSet(bit uint8) {
	*b |= 1 << (bit & 31)
}

// MustClear clears the bit, the bit is masked to [0..31].
func (b *BitSet32) MustClear(bit uint8) {
	*b &^= 1 << (bit & 31)
}

// Test if the bit is set.
func (b BitSet32) Test(bit uint8) bool {
	return bit < 32 && b&(1<<bit) != 0
}

// FirstSet returns the first bit set along with an ok code.
func (b BitSet32) FirstSet() (first uint8, ok bool) {
	if b == 0 {
		return
	}
	return uint8(bits.TrailingZeros32(uint32(b))), true
}

// AsSlice returns all set bits as slice of uint8 without
// heap allocations.
func (b BitSet32) AsSlice(buf *[32]uint8) []uint8 {
	size := 0
	for w := uint32(b); w != 0; size++ {
		buf[size&31] = uint8(bits.TrailingZeros32(w))

		// clear the rightmost set bit
		w &= w - 1
	}
	return buf[:size]
}

// All returns all set bits. This has a simpler API but is slower than AsSlice.
func (b BitSet32) All() []uint8 {
	var buf [32]uint8
	return append([]uint8(nil), b.AsSlice(&buf)...)
}

// Rank0 returns the set bits up to and including to bit, minus 1.
// It is the slice index of bit in a popcount compressed array.
func (b BitSet32) Rank0(bit uint8) int {
	// all 1 until and including bit pos, the rest is zero
	mask := uint32(uint64(1)<<(uint(bit&31)+1) - 1)
	return bits.OnesCount32(uint32(b)&mask) - 1
}

// Size is the number of set bits (popcount).
func (b BitSet32) Size() int {
	return bits.OnesCount32(uint32(b))
}
