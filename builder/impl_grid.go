// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) has index r*cols + c.
//   • For each cell in row-major order emits a link to its right neighbour,
//     then to its bottom neighbour, where they exist. The bottom-right cell
//     is the only dangling node.
//
// Complexity: O(rows·cols) links.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor emitting a rows×cols lattice directed right and down.
func Grid(rows, cols int) Constructor {
	return func(l Linker, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := emit(methodGrid, l, cfg, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(methodGrid, l, cfg, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
