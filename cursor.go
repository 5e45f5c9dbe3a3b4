// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"slices"

	"github.com/gaissmai/inttrie/internal/nodes"
)

// Cursor is a splittable traversal of a trie in ascending index order.
//
// A Cursor is not safe for concurrent use, but the cursors
// returned by TrySplit are independent of each other and can
// be consumed in parallel.
type Cursor[V any] struct {
	// pending subtrees, the top of the stack is the next in order,
	// the stack from bottom to top is in descending index order
	stack []nodes.Node[V]
}

// Cursor returns a new cursor positioned before the lowest index.
func (t *Trie[V]) Cursor() *Cursor[V] {
	c := &Cursor[V]{}
	if root := t.rootNode(); !nodes.IsEmpty(root) {
		c.stack = append(c.stack, root)
	}
	return c
}

// Next returns the next entry, ok is false if the cursor is exhausted.
func (c *Cursor[V]) Next() (idx int32, val V, ok bool) {
	for len(c.stack) > 0 {
		n := c.pop()

		switch x := n.(type) {
		case nil, nodes.EmptyNode[V]:
			continue
		case *nodes.LeafNode[V]:
			return x.Index, x.Value, true
		case *nodes.SingleNode[V]:
			c.stack = append(c.stack, x.Child)
		case *nodes.MultiNode[V]:
			c.pushReverse(x.Children.Items)
		default:
			panic("logic error, wrong node type")
		}
	}
	return
}

// CanSplit reports whether TrySplit would succeed.
func (c *Cursor[V]) CanSplit() bool {
	switch len(c.stack) {
	case 0:
		return false
	case 1:
		_, ok := nodes.BranchShift(c.stack[0])
		return ok
	default:
		return true
	}
}

// TrySplit splits the remaining traversal in two non-empty parts
// at a child boundary. The returned cursor covers the lower indexes,
// the receiver keeps the higher ones. Consuming the returned cursor
// and then the receiver yields the same sequence as the receiver
// would have yielded without the split.
//
// TrySplit returns false if at most one entry remains.
func (c *Cursor[V]) TrySplit() (*Cursor[V], bool) {
	if len(c.stack) == 1 && !c.expand() {
		return nil, false
	}

	if len(c.stack) < 2 {
		return nil, false
	}

	mid := len(c.stack) / 2

	left := &Cursor[V]{stack: slices.Clone(c.stack[mid:])}

	clear(c.stack[mid:])
	c.stack = c.stack[:mid]

	return left, true
}

// expand replaces the single pending subtree by the kids of the
// first multi node below it, single node shells are skipped.
func (c *Cursor[V]) expand() bool {
	n := c.stack[0]

	for {
		switch x := n.(type) {
		case *nodes.SingleNode[V]:
			n = x.Child
		case *nodes.MultiNode[V]:
			c.stack = c.stack[:0]
			c.pushReverse(x.Children.Items)
			return true
		default:
			// leaf or empty, nothing to split
			return false
		}
	}
}

func (c *Cursor[V]) pop() nodes.Node[V] {
	last := len(c.stack) - 1
	n := c.stack[last]
	c.stack[last] = nil
	c.stack = c.stack[:last]
	return n
}

func (c *Cursor[V]) pushReverse(kids []nodes.Node[V]) {
	for i := len(kids) - 1; i >= 0; i-- {
		c.stack = append(c.stack, kids[i])
	}
}
