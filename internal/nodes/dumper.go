// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package nodes

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/inttrie/internal/addr"
)

// StatsT, only used for dump, tests and benchmarks
type StatsT struct {
	Leaves  int
	Singles int
	Multis  int
	Depth   int // number of branch levels on the longest path
}

// Nodes returns the number of allocated nodes.
func (s StatsT) Nodes() int {
	return s.Leaves + s.Singles + s.Multis
}

type nodeType byte

const (
	emptyNode  nodeType = iota // no entries
	leafNode                   // exactly one entry
	singleNode                 // branch with one slot
	multiNode                  // branch with 2..32 slots
)

// String implements Stringer for nodeType.
func (nt nodeType) String() string {
	switch nt {
	case emptyNode:
		return "EMPTY"
	case leafNode:
		return "LEAF"
	case singleNode:
		return "SINGLE"
	case multiNode:
		return "MULTI"
	default:
		return "unreachable"
	}
}

func hasType[V any](n Node[V]) nodeType {
	switch n.(type) {
	case nil, EmptyNode[V]:
		return emptyNode
	case *LeafNode[V]:
		return leafNode
	case *SingleNode[V]:
		return singleNode
	case *MultiNode[V]:
		return multiNode
	default:
		panic(unreachable(n))
	}
}

// Stats returns the node counters of the subtree n, rec-descent.
func Stats[V any](n Node[V]) StatsT {
	var s StatsT

	switch x := n.(type) {
	case nil, EmptyNode[V]:
	case *LeafNode[V]:
		s.Leaves++
	case *SingleNode[V]:
		c := Stats(x.Child)
		s = c
		s.Singles++
		s.Depth = c.Depth + 1
	case *MultiNode[V]:
		s.Multis++
		for _, kid := range x.Children.Items {
			c := Stats(kid)
			s.Leaves += c.Leaves
			s.Singles += c.Singles
			s.Multis += c.Multis
			s.Depth = max(s.Depth, c.Depth)
		}
		s.Depth++
	default:
		panic(unreachable(n))
	}

	return s
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// Dump writes the structure of the trie rooted at n to w.
//
//	[MULTI] shift(5) slots(#4): [0 1 2 3]
//	.[LEAF] 0=0
//	.[LEAF] 33=33
//	.[LEAF] 65=65
//	.[LEAF] 97=97
func Dump[V any](w io.Writer, n Node[V]) error {
	return dumpRec(w, n, 0)
}

// DumpString is just a wrapper for Dump.
func DumpString[V any](n Node[V]) string {
	w := new(strings.Builder)
	if err := Dump(w, n); err != nil {
		panic(err)
	}
	return w.String()
}

// dumpRec, rec-descent the trie.
func dumpRec[V any](w io.Writer, n Node[V], depth int) error {
	indent := strings.Repeat(".", depth)

	switch x := n.(type) {
	case nil, EmptyNode[V]:
		_, err := fmt.Fprintf(w, "%s[%s]\n", indent, hasType(n))
		return err

	case *LeafNode[V]:
		_, err := fmt.Fprintf(w, "%s[%s] %d=%v\n", indent, hasType(n), x.Index, x.Value)
		return err

	case *SingleNode[V]:
		if _, err := fmt.Fprintf(w, "%s[%s] shift(%d) slot(%d)\n", indent, hasType(n), x.Shift, x.Slot); err != nil {
			return err
		}
		return dumpRec(w, x.Child, depth+1)

	case *MultiNode[V]:
		var buf [addr.Fanout]uint8
		slots := x.Children.Slots(&buf)

		if _, err := fmt.Fprintf(w, "%s[%s] shift(%d) slots(#%d): %v\n",
			indent, hasType(n), x.Shift, len(slots), slots); err != nil {
			return err
		}

		for _, kid := range x.Children.Items {
			if err := dumpRec(w, kid, depth+1); err != nil {
				return err
			}
		}
		return nil

	default:
		panic(unreachable(n))
	}
}
