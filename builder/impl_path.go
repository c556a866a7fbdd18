// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i → i+1 for i = 0..n-2; the last node is dangling.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor emitting the directed chain 0 → 1 → … → n-1.
func Path(n int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i+1 < n; i++ {
			if err := emit(methodPath, l, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
