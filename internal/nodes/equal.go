// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package nodes

import (
	"github.com/gaissmai/inttrie/internal/value"
)

// Equal reports whether a and b hold the same entries.
//
// Both tries are canonical, same entries means same shape,
// so the comparison is a parallel walk. Shared subtrees are
// detected by identity and not descended.
func Equal[V any](a, b Node[V]) bool {
	if a == b {
		return true
	}

	switch x := a.(type) {
	case nil, EmptyNode[V]:
		return IsEmpty(b)

	case *LeafNode[V]:
		y, ok := b.(*LeafNode[V])
		return ok && x.Index == y.Index && value.DeepEqual(x.Value, y.Value)

	case *SingleNode[V]:
		y, ok := b.(*SingleNode[V])
		return ok && x.Shift == y.Shift && x.Slot == y.Slot && Equal(x.Child, y.Child)

	case *MultiNode[V]:
		y, ok := b.(*MultiNode[V])
		if !ok || x.Shift != y.Shift || x.Children.BitSet32 != y.Children.BitSet32 {
			return false
		}
		for i, kid := range x.Children.Items {
			if !Equal(kid, y.Children.Items[i]) {
				return false
			}
		}
		return true

	default:
		panic(unreachable(a))
	}
}
