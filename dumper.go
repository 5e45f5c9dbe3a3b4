// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/inttrie/internal/nodes"
)

// Stats are the node counters of a trie.
type Stats struct {
	Size    int // number of entries
	Leaves  int // leaf nodes, equal to Size
	Singles int // branches with one slot
	Multis  int // branches with 2..32 slots
	Depth   int // branch levels on the longest path
}

// Nodes returns the number of allocated nodes.
func (s Stats) Nodes() int {
	return s.Leaves + s.Singles + s.Multis
}

// Stats returns the node counters, rec-descent the whole trie.
func (t *Trie[V]) Stats() Stats {
	s := nodes.Stats(t.rootNode())
	return Stats{
		Size:    t.Len(),
		Leaves:  s.Leaves,
		Singles: s.Singles,
		Multis:  s.Multis,
		Depth:   s.Depth,
	}
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// DumpString is just a wrapper for Dump.
func (t *Trie[V]) DumpString() string {
	w := new(strings.Builder)
	if err := t.Dump(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Dump writes the trie structure and all the nodes to w.
//
//	### size(4), nodes(5)
//	[MULTI] shift(5) slots(#4): [0 1 2 3]
//	.[LEAF] 0=0
//	.[LEAF] 33=33
//	.[LEAF] 65=65
//	.[LEAF] 97=97
func (t *Trie[V]) Dump(w io.Writer) error {
	root := t.rootNode()

	if _, err := fmt.Fprintf(w, "### size(%d), nodes(%d)\n", t.Len(), nodes.Stats(root).Nodes()); err != nil {
		return err
	}

	return nodes.Dump(w, root)
}
