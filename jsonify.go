// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"encoding/json"
)

// Entry is the JSON representation of a single trie entry.
type Entry[V any] struct {
	Index int32 `json:"index"`
	Value V     `json:"value"`
}

// MarshalJSON dumps the trie as list of entries in ascending index order.
// A list, not an object, because the order matters.
//
//	[{"index":-1,"value":"a"},{"index":0,"value":"b"}]
func (t *Trie[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// DumpList returns the entries in ascending index order.
func (t *Trie[V]) DumpList() []Entry[V] {
	list := make([]Entry[V], 0, t.Len())
	for idx, val := range t.All() {
		list = append(list, Entry[V]{Index: idx, Value: val})
	}
	return list
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// It replaces the receiver with a trie of the decoded entries,
// the entries may be in any order. For duplicate indexes the
// last entry wins.
func (t *Trie[V]) UnmarshalJSON(data []byte) error {
	var list []Entry[V]
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	var nt *Trie[V]
	for _, e := range list {
		nt = nt.Assign(e.Index, e.Value)
	}

	if nt == nil {
		*t = Trie[V]{}
		return nil
	}

	*t = *nt
	return nil
}
