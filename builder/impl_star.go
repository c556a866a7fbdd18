// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go — Star(n) and Loop(i) constructors.
//
// Contract:
//   • Star: n ≥ 2 (else ErrTooFewVertices); hub is index 0; emits leaf i → hub
//     for i = 1..n-1. The hub has no outgoing link, compose with Loop(0) to
//     give it one.
//   • Loop: i ≥ 0 (else ErrTooFewVertices); emits i → i once.

package builder

import "fmt"

const (
	methodStar   = "Star"
	methodLoop   = "Loop"
	minStarNodes = 2
	hubIndex     = 0
)

// Star returns a Constructor emitting an inward star: every leaf links to the hub.
func Star(n int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		for i := 1; i < n; i++ {
			if err := emit(methodStar, l, cfg, i, hubIndex); err != nil {
				return err
			}
		}

		return nil
	}
}

// Loop returns a Constructor emitting the self-link i → i.
func Loop(i int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if i < 0 {
			return fmt.Errorf("%s: i=%d < 0: %w", methodLoop, i, ErrTooFewVertices)
		}

		return emit(methodLoop, l, cfg, i, i)
	}
}
