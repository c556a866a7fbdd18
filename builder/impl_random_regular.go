// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_regular.go — RandomRegular(n, d) constructor.
//
// Contract:
//   • n ≥ 1 and 0 ≤ d < n (else ErrTooFewVertices / ErrInvalidDegree).
//   • cfg.rng must be non-nil when d > 0 (else ErrNeedRandSource).
//   • Every index i emits exactly d links to distinct targets j ≠ i, chosen
//     by a seeded permutation. Out-degrees are uniform; in-degrees are not.
//
// Complexity: O(n²) time for the permutations, O(n·d) links.
//
// Determinism: identical seed ⇒ identical link stream.

package builder

import "fmt"

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
)

// RandomRegular returns a Constructor in which every node has out-degree d.
func RandomRegular(n, d int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: d=%d not in [0,%d): %w", methodRandomRegular, d, n, ErrInvalidDegree)
		}
		if d == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			// Permute the n-1 other indices; k ≥ i maps to k+1 to skip i.
			perm := cfg.rng.Perm(n - 1)
			for _, k := range perm[:d] {
				if k >= i {
					k++
				}
				if err := emit(methodRandomRegular, l, cfg, i, k); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
