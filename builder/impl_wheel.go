// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go — Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): a rim cycle over indices 0..n-2 plus a
//     hub at index n-1.
//   • Emits the rim via Cycle(n-1), then hub → rim and rim → hub for every rim
//     index in ascending order.
//
// Complexity: O(n) links.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor emitting a directed rim cycle with a
// bidirectionally connected hub.
func Wheel(n int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(l, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := emit(methodWheel, l, cfg, hub, i); err != nil {
				return err
			}
			if err := emit(methodWheel, l, cfg, i, hub); err != nil {
				return err
			}
		}

		return nil
	}
}
