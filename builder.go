// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"fmt"
	"math"

	"github.com/gaissmai/inttrie/internal/addr"
	"github.com/gaissmai/inttrie/internal/bitset"
	"github.com/gaissmai/inttrie/internal/nodes"
	"github.com/gaissmai/inttrie/internal/sparse"
)

// Builder appends values at the consecutive indexes 0, 1, 2, ...
// and returns immutable snapshots of the trie built so far.
//
// Add is amortized O(1), completed subtrees are frozen and shared
// by all later snapshots. Build allocates only the branch nodes
// along the right edge of the trie, at most one per level.
//
// The zero value is an empty Builder ready to use.
// A Builder must not be used concurrently, the snapshots may.
type Builder[V any] struct {
	// spine[l] holds the completed kids of the open branch at
	// shift l*5, in slot order starting at the base slot.
	// Leaves at level 0, full multi nodes above.
	//
	// Snapshots reference spine[l][:n:n], appends never
	// write below the published length.
	spine [addr.MaxDepth][]nodes.Node[V]

	size int64
}

// Len returns the number of values added so far,
// the index of the next value.
func (b *Builder[V]) Len() int {
	return int(b.size)
}

// Reset drops all added values, snapshots are not affected.
func (b *Builder[V]) Reset() {
	*b = Builder[V]{}
}

// Add appends val at index b.Len().
// It panics if the int32 index space is exhausted.
func (b *Builder[V]) Add(val V) {
	if b.size > math.MaxInt32 {
		panic(fmt.Sprintf("inttrie: Builder.Add, index %d overflows int32", b.size))
	}

	idx := int32(b.size)
	b.spine[0] = append(b.spine[0], nodes.NewLeaf(idx, val))
	b.size++

	// carry full levels upwards, the top level never fills
	for level := 0; level < addr.MaxDepth-1; level++ {
		if len(b.spine[level]) < addr.Fanout {
			break
		}

		full := &nodes.MultiNode[V]{
			Shift:    uint8(level * addr.Stride),
			Children: sparse.From(bitset.Range(0, addr.Fanout), b.spine[level]),
		}

		b.spine[level+1] = append(b.spine[level+1], full)

		// the full slice is owned by the new node now
		b.spine[level] = nil
	}
}

// Build returns a snapshot with all values added so far.
// Build can be called any number of times, interleaved with Add.
func (b *Builder[V]) Build() *Trie[V] {
	if b.size == 0 {
		return &Trie[V]{}
	}

	// the subtree completed so far, bottom-up along the right edge
	var carry nodes.Node[V]

	for level := range addr.MaxDepth {
		shift := level * addr.Stride

		n := len(b.spine[level])
		kids := b.spine[level][:n:n]

		if carry != nil {
			// cap == len, append allocates, the spine is untouched
			kids = append(kids, carry)
		}

		carry = compose(shift, kids)
	}

	return &Trie[V]{root: nodes.Trimmed(carry), size: int(b.size)}
}

// compose returns the canonical node at shift for the kids
// in consecutive slots, starting at the base slot.
func compose[V any](shift int, kids []nodes.Node[V]) nodes.Node[V] {
	// slot of index 0, 2 at the top level because of the sign flip
	base := addr.Slice(addr.Key(0), shift)

	switch len(kids) {
	case 0:
		return nil
	case 1:
		if _, ok := kids[0].(*nodes.LeafNode[V]); ok {
			return kids[0]
		}
		return &nodes.SingleNode[V]{Shift: uint8(shift), Slot: base, Child: kids[0]}
	default:
		return &nodes.MultiNode[V]{
			Shift:    uint8(shift),
			Children: sparse.From(bitset.Range(base, uint8(len(kids))), kids),
		}
	}
}
