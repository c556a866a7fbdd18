// SPDX-License-Identifier: MIT

package pagerank

import "golang.org/x/sync/errgroup"

// minChunk is the smallest index range handed to a separate task.
const minChunk = 2048

// span is the half-open index range [lo, hi).
type span struct{ lo, hi int }

// partition splits [0, n) into at most workers contiguous spans of at least
// minChunk indices (the last one may be shorter). n == 0 yields no spans.
func partition(n, workers int) []span {
	if n <= 0 {
		return nil
	}

	parts := (n + minChunk - 1) / minChunk
	if parts > workers {
		parts = workers
	}
	if parts < 1 {
		parts = 1
	}

	size := (n + parts - 1) / parts
	spans := make([]span, 0, parts)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo: lo, hi: hi})
	}

	return spans
}

// forEach runs fn(k, spans[k]) for every span, at most limit at a time, and
// waits for all of them. A single span runs on the calling goroutine.
// fn must touch only state owned by span k.
func forEach(spans []span, limit int, fn func(k int, s span)) {
	if len(spans) == 1 {
		fn(0, spans[0])
		return
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for k, s := range spans {
		k, s := k, s
		g.Go(func() error {
			fn(k, s)
			return nil
		})
	}
	_ = g.Wait()
}

// sumOrdered adds xs left to right so the result does not depend on which
// task finished first.
func sumOrdered(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
