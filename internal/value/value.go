// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides utilities for working with generic type parameters
// as payload at runtime.
//
// The trie never needs to order or hash its payload, the only requirement
// is an equality check: assigning an equal value must return the very same
// node, so that callers can short circuit on identity.
package value

import (
	"reflect"
)

// Equaler is a generic interface for types that can decide their own
// equality logic.
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal reports whether v2 may stand in for v1 without being stored.
//
// If V implements Equaler[V], that custom equality method is used.
// Otherwise comparable values are compared with ==, pointers by identity.
// Values that are not comparable, like slices, maps and funcs, are
// never equal, the new value must always be stored.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}

	a, b := any(v1), any(v2)

	// an interface typed V may hold a dynamic value that is not comparable,
	// == would panic at runtime
	if rv := reflect.ValueOf(a); rv.IsValid() && !rv.Comparable() {
		return false
	}
	if rv := reflect.ValueOf(b); rv.IsValid() && !rv.Comparable() {
		return false
	}

	return a == b
}

// DeepEqual compares two values of type V by content.
// If V implements Equaler[V], that custom equality method is used,
// avoiding the potentially expensive reflect.DeepEqual.
// Otherwise, reflect.DeepEqual is used as a fallback.
func DeepEqual[V any](v1, v2 V) bool {
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}
