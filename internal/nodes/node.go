// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package nodes implements the node variants of the persistent
// int32 radix trie and the algorithms on them.
//
// The trie consumes 5 bits of the sign-flipped index per level,
// see package addr. A node is one of four variants:
//
//   - EmptyNode:   no entries, only ever a root
//   - *LeafNode:   exactly one entry, the full index is stored
//   - *SingleNode: a branch with exactly one populated slot
//   - *MultiNode:  a branch with 2..32 populated slots
//
// Nodes are immutable after construction, every modifying
// operation returns a new node and shares all untouched subtrees.
//
// For a given set of indexes there is exactly one legal shape,
// the canonical minimum depth:
//
//   - a single entry is always a leaf, wherever it sits
//   - a branch positioned at shift s has its slots at s,
//     all branch children are positioned at s-5
//   - the root is a multi node at the highest level where the
//     stored indexes diverge, never a single node shell
//
// It follows that a single node shell always holds a branch,
// a single node with a leaf is collapsed to the leaf itself.
package nodes

import (
	"fmt"

	"github.com/gaissmai/inttrie/internal/addr"
	"github.com/gaissmai/inttrie/internal/bitset"
	"github.com/gaissmai/inttrie/internal/sparse"
)

// Node is the closed sum type of the trie node variants.
//
// The unexported method with the phantom parameter V seals the
// interface and binds the variants to their payload type.
type Node[V any] interface {
	sealed(V)
}

// EmptyNode is the unique representation of zero entries.
type EmptyNode[V any] struct{}

// LeafNode holds exactly one index and its value.
type LeafNode[V any] struct {
	Value V
	Index int32
}

// SingleNode is a branch with exactly one populated slot.
// The Child is always a branch at Shift-5.
type SingleNode[V any] struct {
	Child Node[V]
	Shift uint8
	Slot  uint8
}

// MultiNode is a branch with 2..32 populated slots.
type MultiNode[V any] struct {
	Children sparse.Array32[Node[V]]
	Shift    uint8
}

func (EmptyNode[V]) sealed(V)   {}
func (*LeafNode[V]) sealed(V)   {}
func (*SingleNode[V]) sealed(V) {}
func (*MultiNode[V]) sealed(V)  {}

// NewLeaf returns a new leaf node.
func NewLeaf[V any](idx int32, val V) *LeafNode[V] {
	return &LeafNode[V]{Index: idx, Value: val}
}

// newPair returns a multi node at shift with the two kids a and b
// in the different slots sa and sb.
func newPair[V any](shift int, sa uint8, a Node[V], sb uint8, b Node[V]) *MultiNode[V] {
	if sa > sb {
		sa, sb = sb, sa
		a, b = b, a
	}

	var bs bitset.BitSet32
	bs.MustSet(sa)
	bs.MustSet(sb)

	return &MultiNode[V]{
		Shift:    uint8(shift),
		Children: sparse.From(bs, []Node[V]{a, b}),
	}
}

// BranchShift returns the shift of a branch node and true,
// or 0 and false for leaf and empty nodes.
func BranchShift[V any](n Node[V]) (int, bool) {
	switch x := n.(type) {
	case *SingleNode[V]:
		return int(x.Shift), true
	case *MultiNode[V]:
		return int(x.Shift), true
	default:
		return 0, false
	}
}

// IsEmpty reports whether n holds no entries.
func IsEmpty[V any](n Node[V]) bool {
	switch n.(type) {
	case nil, EmptyNode[V]:
		return true
	default:
		return false
	}
}

// Find returns the value stored at idx.
func Find[V any](n Node[V], idx int32) (val V, ok bool) {
	key := addr.Key(idx)

	for {
		switch x := n.(type) {
		case nil, EmptyNode[V]:
			return
		case *LeafNode[V]:
			if x.Index != idx {
				return
			}
			return x.Value, true
		case *SingleNode[V]:
			if addr.Slice(key, int(x.Shift)) != x.Slot {
				return
			}
			n = x.Child
		case *MultiNode[V]:
			kid, exists := x.Children.Get(addr.Slice(key, int(x.Shift)))
			if !exists {
				return
			}
			n = kid
		default:
			panic(unreachable(n))
		}
	}
}

// GetValueOr returns the value stored at idx or dflt.
func GetValueOr[V any](n Node[V], idx int32, dflt V) V {
	if val, ok := Find(n, idx); ok {
		return val
	}
	return dflt
}

// MinLeaf returns the leaf with the lowest index under n.
func MinLeaf[V any](n Node[V]) (*LeafNode[V], bool) {
	for {
		switch x := n.(type) {
		case nil, EmptyNode[V]:
			return nil, false
		case *LeafNode[V]:
			return x, true
		case *SingleNode[V]:
			n = x.Child
		case *MultiNode[V]:
			n = x.Children.Items[0]
		default:
			panic(unreachable(n))
		}
	}
}

// MaxLeaf returns the leaf with the highest index under n.
func MaxLeaf[V any](n Node[V]) (*LeafNode[V], bool) {
	for {
		switch x := n.(type) {
		case nil, EmptyNode[V]:
			return nil, false
		case *LeafNode[V]:
			return x, true
		case *SingleNode[V]:
			n = x.Child
		case *MultiNode[V]:
			n = x.Children.Items[len(x.Children.Items)-1]
		default:
			panic(unreachable(n))
		}
	}
}

func unreachable(n any) string {
	return fmt.Sprintf("logic error, wrong node type: %T", n)
}
