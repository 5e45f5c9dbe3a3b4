// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunks per worker, smooths out unbalanced subtrees
const chunksPerWorker = 4

// check the context every ctxCheckEvery entries
const ctxCheckEvery = 1024

// ParallelForEach calls fn for every entry of t, fanned out to at most
// workers goroutines. If workers <= 0, runtime.GOMAXPROCS(0) is used.
//
// The calls of fn are concurrent and in no particular order.
// The first error returned by fn cancels the remaining work
// and is returned, as is the error of a canceled ctx.
func ParallelForEach[V any](ctx context.Context, t *Trie[V], workers int, fn func(idx int32, val V) error) error {
	workers = normalizeWorkers(workers)
	chunks := splitCursor(t.Cursor(), workers*chunksPerWorker)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, c := range chunks {
		g.Go(func() error {
			for i := 0; ; i++ {
				if i%ctxCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				idx, val, ok := c.Next()
				if !ok {
					return nil
				}
				if err := fn(idx, val); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}

// ParallelReduce folds all entries of t, fanned out to at most
// workers goroutines. If workers <= 0, runtime.GOMAXPROCS(0) is used.
//
// Each worker folds a contiguous run of indexes in ascending order,
// starting with zero. The partial results are combined in ascending
// index order, left to right, so an associative combine gives the
// same result as the sequential fold:
//
//	acc := zero
//	for idx, val := range t.All() {
//		acc = fold(acc, idx, val)
//	}
//
// zero must be an identity of combine. ParallelReduce returns the
// error of a canceled ctx.
func ParallelReduce[V, R any](ctx context.Context, t *Trie[V], workers int, zero R,
	fold func(acc R, idx int32, val V) R,
	combine func(left, right R) R,
) (R, error) {
	workers = normalizeWorkers(workers)
	chunks := splitCursor(t.Cursor(), workers*chunksPerWorker)

	// one result per chunk, no locking needed
	partial := make([]R, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range chunks {
		g.Go(func() error {
			acc := zero
			for j := 0; ; j++ {
				if j%ctxCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				idx, val, ok := c.Next()
				if !ok {
					break
				}
				acc = fold(acc, idx, val)
			}
			partial[i] = acc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zero, err
	}

	result := zero
	for _, p := range partial {
		result = combine(result, p)
	}
	return result, nil
}

// splitCursor splits c until there are at least n cursors or no
// cursor can be split any further. The cursors are returned in
// ascending index order.
func splitCursor[V any](c *Cursor[V], n int) []*Cursor[V] {
	chunks := []*Cursor[V]{c}

	for len(chunks) < n {
		next := make([]*Cursor[V], 0, 2*len(chunks))
		split := false

		for _, c := range chunks {
			if left, ok := c.TrySplit(); ok {
				next = append(next, left)
				split = true
			}
			next = append(next, c)
		}

		chunks = next
		if !split {
			break
		}
	}

	return chunks
}

func normalizeWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
