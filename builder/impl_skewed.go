// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_skewed.go — Skewed(n, maxOut, hot) constructor.
//
// Model: a crawl-like stream with a few very popular targets. For every
// source i in ascending order draw k ∈ [0, maxOut) links; each target is
// uniform over [0, n), except that targets beyond 80% of n are redirected to
// a uniform pick among the first hot nodes.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • maxOut ≥ 1 and 1 ≤ hot ≤ n (else ErrInvalidDegree).
//   • cfg.rng required (else ErrNeedRandSource).
//
// Complexity: O(n·maxOut); about n·(maxOut-1)/2 links on average.

package builder

import "fmt"

const (
	methodSkewed      = "Skewed"
	minSkewedNodes    = 1
	skewedCutoffNum   = 4
	skewedCutoffDenom = 5
)

// Skewed returns a Constructor emitting a random stream biased towards the
// first hot nodes.
func Skewed(n, maxOut, hot int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minSkewedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSkewed, n, minSkewedNodes, ErrTooFewVertices)
		}
		if maxOut < 1 {
			return fmt.Errorf("%s: maxOut=%d < 1: %w", methodSkewed, maxOut, ErrInvalidDegree)
		}
		if hot < 1 || hot > n {
			return fmt.Errorf("%s: hot=%d not in [1,%d]: %w", methodSkewed, hot, n, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodSkewed, ErrNeedRandSource)
		}

		cutoff := n * skewedCutoffNum / skewedCutoffDenom
		for from := 0; from < n; from++ {
			k := cfg.rng.Intn(maxOut)
			for ; k > 0; k-- {
				to := cfg.rng.Intn(n)
				if to > cutoff {
					to = cfg.rng.Intn(hot)
				}
				if err := emit(methodSkewed, l, cfg, from, to); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
