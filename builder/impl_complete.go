// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i, j), i ≠ j, i ascending then j ascending.
//   • n == 1 emits nothing.
//
// Complexity: O(n²) links.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor emitting the complete directed graph on n nodes.
func Complete(n int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := emit(methodComplete, l, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
