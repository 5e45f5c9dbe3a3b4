// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package nodes

import (
	"errors"
	"fmt"

	"github.com/gaissmai/inttrie/internal/addr"
)

// ErrInvariant is wrapped by all errors reported by CheckInvariants.
// Any such error is an implementation defect, never a user error.
var ErrInvariant = errors.New("trie invariant violated")

// CheckInvariants verifies the trie rooted at root:
//
//   - every branch records the shift of its position
//   - every stored index is addressed by the slices along its path
//   - the shape is the canonical minimum depth, the root is never
//     a single node shell, single nodes never hold a leaf and multi
//     nodes have at least two slots
//   - empty nodes never occur below the root
//
// It is expensive and meant for tests and debugging only.
func CheckInvariants[V any](root Node[V]) error {
	switch x := root.(type) {
	case nil:
		return fmt.Errorf("%w: nil root", ErrInvariant)
	case EmptyNode[V], *LeafNode[V]:
		return nil
	case *SingleNode[V]:
		return fmt.Errorf("%w: root is a single node shell at shift %d", ErrInvariant, x.Shift)
	case *MultiNode[V]:
		shift := int(x.Shift)
		if shift%addr.Stride != 0 || shift > addr.MaxShift {
			return fmt.Errorf("%w: root has illegal shift %d", ErrInvariant, shift)
		}

		// all indexes share the bits above the root level with the first one
		first, _ := MinLeaf(root)
		return checkRec(root, shift, addr.Prefix(addr.Key(first.Index), shift))
	default:
		panic(unreachable(root))
	}
}

// checkRec checks n positioned at shift, all indexes under n must
// have the bits prefix above shift+5.
func checkRec[V any](n Node[V], shift int, prefix uint64) error {
	switch x := n.(type) {
	case nil:
		return fmt.Errorf("%w: nil child at shift %d", ErrInvariant, shift)

	case EmptyNode[V]:
		return fmt.Errorf("%w: empty child at shift %d", ErrInvariant, shift)

	case *LeafNode[V]:
		if got := addr.Prefix(addr.Key(x.Index), shift); got != prefix {
			return fmt.Errorf("%w: leaf %d at shift %d, prefix %#x, want %#x",
				ErrInvariant, x.Index, shift, got, prefix)
		}
		return nil

	case *SingleNode[V]:
		if int(x.Shift) != shift {
			return fmt.Errorf("%w: single node with shift %d at position %d", ErrInvariant, x.Shift, shift)
		}
		if x.Slot >= addr.Fanout {
			return fmt.Errorf("%w: single node at shift %d with slot %d", ErrInvariant, shift, x.Slot)
		}
		if _, ok := BranchShift(x.Child); !ok {
			return fmt.Errorf("%w: single node at shift %d holds %T", ErrInvariant, shift, x.Child)
		}
		return checkRec(x.Child, shift-addr.Stride, prefix<<addr.Stride|uint64(x.Slot))

	case *MultiNode[V]:
		if int(x.Shift) != shift {
			return fmt.Errorf("%w: multi node with shift %d at position %d", ErrInvariant, x.Shift, shift)
		}
		if x.Children.Size() != x.Children.Len() {
			return fmt.Errorf("%w: multi node at shift %d, %d slots but %d children",
				ErrInvariant, shift, x.Children.Size(), x.Children.Len())
		}
		if x.Children.Len() < 2 {
			return fmt.Errorf("%w: multi node at shift %d with %d children", ErrInvariant, shift, x.Children.Len())
		}

		var buf [32]uint8
		for i, slot := range x.Children.Slots(&buf) {
			if err := checkRec(x.Children.Items[i], shift-addr.Stride, prefix<<addr.Stride|uint64(slot)); err != nil {
				return err
			}
		}
		return nil

	default:
		panic(unreachable(n))
	}
}
