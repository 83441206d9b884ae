// SPDX-License-Identifier: MIT

package treegen

import "fmt"

const (
	methodPath         = "Path"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodRandomTree   = "RandomTree"
	methodRandomSparse = "RandomSparse"

	minPathNodes = 2
	minStarNodes = 2
	minGridDim   = 1
	minRandNodes = 1

	gridIDFmt = "%d,%d" // "r,c", independent of the id scheme
)

// Path builds idFn(0) – idFn(1) – ... – idFn(n-1) (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *Draft, cfg genConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		prev := d.add(0, cfg)
		for i := 1; i < n; i++ {
			cur := d.add(i, cfg)
			d.link(prev, cur)
			prev = cur
		}

		return nil
	}
}

// Star builds hub idFn(0) with leaves idFn(1..n-1) (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *Draft, cfg genConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		hub := d.add(0, cfg)
		for i := 1; i < n; i++ {
			d.link(hub, d.add(i, cfg))
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice with ids "r,c".
// The stat function receives the row-major index.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg genConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		cell := cfg
		cell.idFn = func(idx int) string { return fmt.Sprintf(gridIDFmt, idx/cols, idx%cols) }
		for i := 0; i < rows*cols; i++ {
			d.add(i, cell)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					d.link(u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					d.link(u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomTree builds a random recursive tree: node i > 0 attaches to a
// uniformly drawn earlier node. The result is always connected.
// Requires an RNG (WithSeed/WithRand).
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(d *Draft, cfg genConfig) error {
		if n < minRandNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		d.add(0, cfg)
		for i := 1; i < n; i++ {
			parent := cfg.idFn(cfg.rng.Intn(i))
			d.link(parent, d.add(i, cfg))
		}

		return nil
	}
}

// RandomSparse adds n nodes and links every unordered pair with probability p.
// p in (0,1) requires an RNG; p = 0 and p = 1 are deterministic.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg genConfig) error {
		if n < minRandNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			d.add(i, cfg)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					d.link(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
