// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestZeroValue(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("A zero value bitset must not panic: %v", r)
		}
	}()

	var b BitSet32

	b.MustSet(0)

	b = BitSet32(0)
	b.MustClear(31)

	b = BitSet32(0)
	b.Size()
	b.Rank0(31)
	b.Test(42)
	b.FirstSet()
	b.All()
	_ = b.String()
}

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		first, n uint8
		want     []uint8
	}{
		{0, 0, []uint8{}},
		{0, 1, []uint8{0}},
		{0, 3, []uint8{0, 1, 2}},
		{2, 2, []uint8{2, 3}},
		{31, 1, []uint8{31}},
	}

	for _, tc := range tests {
		got := Range(tc.first, tc.n).All()
		if !slices.Equal(got, tc.want) {
			t.Errorf("Range(%d, %d), want: %v, got: %v", tc.first, tc.n, tc.want, got)
		}
	}

	if got := Range(0, 32).Size(); got != 32 {
		t.Errorf("Range(0, 32).Size(), want: 32, got: %d", got)
	}
}

func TestRangeOutOfBounds(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("A Range() out of bounds MUST panic")
		}
	}()

	Range(31, 2)
}

func TestTest(t *testing.T) {
	t.Parallel()

	var b BitSet32
	b.MustSet(7)
	b.MustSet(31)

	for bit := range uint8(40) {
		want := bit == 7 || bit == 31
		if got := b.Test(bit); got != want {
			t.Errorf("Test(%d), want: %v, got: %v", bit, want, got)
		}
	}

	b.MustClear(7)
	if b.Test(7) {
		t.Error("Test(7) after MustClear, want: false")
	}
}

func TestFirstSet(t *testing.T) {
	t.Parallel()

	var b BitSet32
	if _, ok := b.FirstSet(); ok {
		t.Error("FirstSet on empty set, want: !ok")
	}

	for _, bit := range []uint8{30, 5, 3} {
		b.MustSet(bit)
		if first, ok := b.FirstSet(); !ok || first != bit {
			t.Errorf("FirstSet, want: %d, got: %d, %v", bit, first, ok)
		}
	}

	b.MustClear(3)
	if first, ok := b.FirstSet(); !ok || first != 5 {
		t.Errorf("FirstSet after clear, want: 5, got: %d, %v", first, ok)
	}
}

func TestAsSlice(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))

	for range 1_000 {
		var b BitSet32
		want := []uint8{}

		for bit := range uint8(32) {
			if prng.IntN(2) == 1 {
				b.MustSet(bit)
				want = append(want, bit)
			}
		}

		var buf [32]uint8
		got := b.AsSlice(&buf)
		if !slices.Equal(got, want) {
			t.Fatalf("AsSlice, want: %v, got: %v", want, got)
		}
		if b.Size() != len(want) {
			t.Fatalf("Size, want: %d, got: %d", len(want), b.Size())
		}
	}
}

func TestRank0(t *testing.T) {
	t.Parallel()

	var b BitSet32
	for _, bit := range []uint8{0, 4, 5, 31} {
		b.MustSet(bit)
	}

	tests := []struct {
		bit  uint8
		want int
	}{
		{0, 0},
		{1, 0},
		{4, 1},
		{5, 2},
		{30, 2},
		{31, 3},
	}

	for _, tc := range tests {
		if got := b.Rank0(tc.bit); got != tc.want {
			t.Errorf("Rank0(%d), want: %d, got: %d", tc.bit, tc.want, got)
		}
	}

	var empty BitSet32
	if got := empty.Rank0(5); got != -1 {
		t.Errorf("Rank0 on empty set, want: -1, got: %d", got)
	}
}

func BenchmarkRank0(b *testing.B) {
	bs := BitSet32(0xdead_beef)
	for range b.N {
		_ = bs.Rank0(17)
	}
}
