// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"math/rand/v2"

	"github.com/gaissmai/inttrie"
)

// workload generates random indexes and operations.
type workload struct {
	prng *rand.Rand
}

func newWorkload(seed uint64) *workload {
	return &workload{prng: rand.New(rand.NewPCG(seed, seed))}
}

// randomIndex returns indexes of all magnitudes, sparse and
// clustered, a mix of short and long trie paths.
func (w *workload) randomIndex() int32 {
	//nolint:gosec
	idx := int32(w.prng.Uint32() >> w.prng.IntN(32))
	if w.prng.IntN(2) == 1 {
		return -idx
	}
	return idx
}

// randomDelete reports whether the next operation is a delete,
// one out of deleteEvery operations.
func (w *workload) randomDelete(deleteEvery int) bool {
	return deleteEvery > 0 && w.prng.IntN(deleteEvery) == 0
}

// checksum folds all entries in parallel, order sensitive.
func checksum(ctx context.Context, t *inttrie.Trie[int64], workers int) (uint64, error) {
	type acc struct {
		sum uint64
		n   uint64
	}

	fold := func(a acc, idx int32, val int64) acc {
		a.sum = a.sum*31 + (uint64(uint32(idx)) ^ uint64(val))
		a.n++
		return a
	}

	// the polynomial hash of the concatenation
	combine := func(a, b acc) acc {
		return acc{sum: a.sum*pow31(b.n) + b.sum, n: a.n + b.n}
	}

	res, err := inttrie.ParallelReduce(ctx, t, workers, acc{}, fold, combine)
	return res.sum, err
}

// pow31 returns 31^n mod 2^64, square and multiply.
func pow31(n uint64) uint64 {
	result, base := uint64(1), uint64(31)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result
}
