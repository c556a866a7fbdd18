// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — Cycle(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i → (i+1)%n for i = 0..n-1, in that order.
//
// Complexity: O(n) links, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor emitting the directed ring over n nodes.
func Cycle(n int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := emit(methodCycle, l, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
