// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package nodes

import (
	"github.com/gaissmai/inttrie/internal/addr"
	"github.com/gaissmai/inttrie/internal/value"
)

// Assign sets idx to val in the subtree n positioned at shift.
// All keys under the position must share their bits above shift+5 with idx,
// the caller (the parent branch or AssignRoot) guarantees this.
//
// The returned delta is +1 for a new entry, 0 for a replaced value.
// If val equals the stored value, n itself is returned.
func Assign[V any](n Node[V], shift int, idx int32, val V) (Node[V], int) {
	switch x := n.(type) {
	case nil, EmptyNode[V]:
		return NewLeaf(idx, val), 1

	case *LeafNode[V]:
		if x.Index == idx {
			if value.Equal(x.Value, val) {
				return x, 0
			}
			return NewLeaf(idx, val), 0
		}

		// two leaves, fork them at their divergence and
		// pad the fork with shells up to this position
		return PaddedToShift[V](fork(x, NewLeaf(idx, val)), idx, shift), 1

	case *SingleNode[V]:
		slot := addr.Slice(addr.Key(idx), int(x.Shift))
		if slot != x.Slot {
			return newPair(int(x.Shift), x.Slot, x.Child, slot, Node[V](NewLeaf(idx, val))), 1
		}

		kid, delta := Assign(x.Child, int(x.Shift)-addr.Stride, idx, val)
		if kid == x.Child {
			return x, delta
		}
		return &SingleNode[V]{Shift: x.Shift, Slot: x.Slot, Child: kid}, delta

	case *MultiNode[V]:
		slot := addr.Slice(addr.Key(idx), int(x.Shift))

		kid, exists := x.Children.Get(slot)
		if !exists {
			return &MultiNode[V]{Shift: x.Shift, Children: x.Children.With(slot, NewLeaf(idx, val))}, 1
		}

		newKid, delta := Assign(kid, int(x.Shift)-addr.Stride, idx, val)
		if newKid == kid {
			return x, delta
		}
		return &MultiNode[V]{Shift: x.Shift, Children: x.Children.With(slot, newKid)}, delta

	default:
		panic(unreachable(n))
	}
}

// AssignRoot sets idx to val in the trie rooted at root.
//
// If idx is outside of the range addressed by the root, a new root
// is synthesized at the common ancestor shift of idx and the stored
// indexes, the old root is padded with single node shells below it.
func AssignRoot[V any](root Node[V], idx int32, val V) (Node[V], int) {
	switch x := root.(type) {
	case *LeafNode[V]:
		// a leaf root has no position, the fork is the new root
		return Assign(root, addr.FindCommonAncestorShift(x.Index, idx), idx, val)

	case *SingleNode[V], *MultiNode[V]:
		shift, _ := BranchShift(root)
		first, _ := MinLeaf(root)

		ancestor := addr.FindCommonAncestorShift(first.Index, idx)
		if ancestor <= shift {
			return Assign(root, shift, idx, val)
		}

		padded := PaddedToShift(root, first.Index, ancestor-addr.Stride)
		return newPair(ancestor,
			addr.Slice(addr.Key(first.Index), ancestor), padded,
			addr.Slice(addr.Key(idx), ancestor), Node[V](NewLeaf(idx, val))), 1

	default:
		return Assign(root, 0, idx, val)
	}
}

// fork returns the multi node at the common ancestor shift of a and b.
func fork[V any](a, b *LeafNode[V]) *MultiNode[V] {
	shift := addr.FindCommonAncestorShift(a.Index, b.Index)
	return newPair(shift,
		addr.Slice(addr.Key(a.Index), shift), Node[V](a),
		addr.Slice(addr.Key(b.Index), shift), Node[V](b))
}

// PaddedToShift wraps the branch n in new single node shells until
// a shell is positioned at target. The slots are taken from idx,
// any index stored under n. Leaves are canonical at any position
// and are returned as is, as are branches already at target or above.
//
// Only new shells are allocated, n is shared.
func PaddedToShift[V any](n Node[V], idx int32, target int) Node[V] {
	shift, ok := BranchShift(n)
	if !ok {
		return n
	}

	key := addr.Key(idx)
	for shift += addr.Stride; shift <= target; shift += addr.Stride {
		n = &SingleNode[V]{Shift: uint8(shift), Slot: addr.Slice(key, shift), Child: n}
	}
	return n
}

// Delete removes idx from the subtree n positioned at shift.
//
// The returned delta is -1 if idx was present, else 0 and n itself
// is returned. Collapsed branches are replaced by their last leaf or
// a single node shell, the result is canonical for its position.
func Delete[V any](n Node[V], shift int, idx int32) (Node[V], int) {
	switch x := n.(type) {
	case nil, EmptyNode[V]:
		return EmptyNode[V]{}, 0

	case *LeafNode[V]:
		if x.Index != idx {
			return x, 0
		}
		return EmptyNode[V]{}, -1

	case *SingleNode[V]:
		if addr.Slice(addr.Key(idx), int(x.Shift)) != x.Slot {
			return x, 0
		}

		kid, delta := Delete(x.Child, int(x.Shift)-addr.Stride, idx)
		if delta == 0 {
			return x, 0
		}

		switch kid.(type) {
		case EmptyNode[V], *LeafNode[V]:
			// a shell around a leaf is never canonical
			return kid, delta
		}
		return &SingleNode[V]{Shift: x.Shift, Slot: x.Slot, Child: kid}, delta

	case *MultiNode[V]:
		slot := addr.Slice(addr.Key(idx), int(x.Shift))

		kid, exists := x.Children.Get(slot)
		if !exists {
			return x, 0
		}

		newKid, delta := Delete(kid, int(x.Shift)-addr.Stride, idx)
		if delta == 0 {
			return x, 0
		}

		if !IsEmpty(newKid) {
			return &MultiNode[V]{Shift: x.Shift, Children: x.Children.With(slot, newKid)}, delta
		}

		rest := x.Children.Without(slot)
		if rest.Len() > 1 {
			return &MultiNode[V]{Shift: x.Shift, Children: rest}, delta
		}

		// one slot left, collapse
		last := rest.Items[0]
		if leaf, ok := last.(*LeafNode[V]); ok {
			return leaf, delta
		}

		lastSlot, _ := rest.FirstSet()
		return &SingleNode[V]{Shift: x.Shift, Slot: lastSlot, Child: last}, delta

	default:
		panic(unreachable(n))
	}
}

// DeleteRoot removes idx from the trie rooted at root and trims
// the result to the minimum depth.
func DeleteRoot[V any](root Node[V], idx int32) (Node[V], int) {
	shift, _ := BranchShift(root)

	n, delta := Delete(root, shift, idx)
	if delta == 0 {
		return root, 0
	}
	return Trimmed(n), delta
}

// Trimmed strips superfluous single node shells from the top of n.
// A root needs no shell, its position is its own shift.
func Trimmed[V any](n Node[V]) Node[V] {
	for {
		x, ok := n.(*SingleNode[V])
		if !ok {
			return n
		}
		n = x.Child
	}
}
