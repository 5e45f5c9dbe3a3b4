// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Trie.Fprint].
func (t *Trie[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the ordered entries as string,
// just a wrapper for [Trie.Fprint].
// If Fprint returns an error, String panics.
func (t *Trie[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes the entries in ascending index order
// with default formatted payload V to w. If w is nil, Fprint panics.
//
//	[-500=a, -1=b, 0=c, 10=d]
//
// An empty trie is printed as [].
func (t *Trie[V]) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	sep := ""
	for idx, val := range t.All() {
		if _, err := fmt.Fprintf(w, "%s%d=%v", sep, idx, val); err != nil {
			return err
		}
		sep = ", "
	}

	_, err := io.WriteString(w, "]")
	return err
}
