// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side has indices 0..n1-1, right side n1..n1+n2-1.
//   • Emits every left → right link, i ascending then j ascending. The right
//     side is dangling, which makes the fixture a dangling-mass stress case.
//
// Complexity: O(n1·n2) links.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor linking every left node to every
// right node.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := emit(methodCompleteBipartite, l, cfg, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
