// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavefront/edgelist"
)

const (
	minGridDim       = 1
	minPathVertices  = 2
	minCycleVertices = 3
	minStarVertices  = 2
	minCompleteSize  = 2
	minSparseSize    = 2
)

// mulCount multiplies two non-negative counts and reports whether the
// product stays within the int range.
func mulCount(a, b int) (int, bool) {
	if a > 0 && b > math.MaxInt/a {
		return 0, false
	}

	return a * b, true
}

// Grid emits a rows×cols orthogonal lattice with 4-neighborhood. Vertices
// are numbered row-major; each cell links its right and bottom neighbor,
// in that order. A 1×1 grid has no edges and is rejected.
//
// Complexity: O(rows·cols) time and pairs.
func Grid(rows, cols int, opts ...Option) ([]edgelist.Pair, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("grid %dx%d: each dimension must be at least %d: %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	cells, ok := mulCount(rows, cols)
	if !ok || cells > math.MaxInt/2 {
		return nil, fmt.Errorf("grid %dx%d: pair count overflows: %w", rows, cols, ErrTooManyPairs)
	}
	if cells < 2 {
		return nil, fmt.Errorf("grid %dx%d: needs at least two cells: %w", rows, cols, ErrTooFewVertices)
	}
	if err := cfg.idSpan(cells); err != nil {
		return nil, err
	}

	pairs := make([]edgelist.Pair, 0, 2*cells-rows-cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := r*cols + c
			if c+1 < cols {
				pairs = append(pairs, edgelist.Pair{Src: cfg.id(cell), Dst: cfg.id(cell + 1)})
			}
			if r+1 < rows {
				pairs = append(pairs, edgelist.Pair{Src: cfg.id(cell), Dst: cfg.id(cell + cols)})
			}
		}
	}

	return pairs, nil
}

// Path emits the n-vertex chain: consecutive ids linked pairwise.
//
// Complexity: O(n).
func Path(n int, opts ...Option) ([]edgelist.Pair, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < minPathVertices {
		return nil, fmt.Errorf("path n=%d: need at least %d vertices: %w", n, minPathVertices, ErrTooFewVertices)
	}
	if err := cfg.idSpan(n); err != nil {
		return nil, err
	}

	pairs := make([]edgelist.Pair, 0, n-1)
	for i := 0; i < n-1; i++ {
		pairs = append(pairs, edgelist.Pair{Src: cfg.id(i), Dst: cfg.id(i + 1)})
	}

	return pairs, nil
}

// Cycle emits the n-vertex ring: the chain plus the closing pair (n-1, 0).
//
// Complexity: O(n).
func Cycle(n int, opts ...Option) ([]edgelist.Pair, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < minCycleVertices {
		return nil, fmt.Errorf("cycle n=%d: need at least %d vertices: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	if err := cfg.idSpan(n); err != nil {
		return nil, err
	}

	pairs := make([]edgelist.Pair, 0, n)
	for i := 0; i < n-1; i++ {
		pairs = append(pairs, edgelist.Pair{Src: cfg.id(i), Dst: cfg.id(i + 1)})
	}
	pairs = append(pairs, edgelist.Pair{Src: cfg.id(n - 1), Dst: cfg.id(0)})

	return pairs, nil
}

// Star emits a hub at id 0 linked to n-1 leaves.
//
// Complexity: O(n).
func Star(n int, opts ...Option) ([]edgelist.Pair, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < minStarVertices {
		return nil, fmt.Errorf("star n=%d: need at least %d vertices: %w", n, minStarVertices, ErrTooFewVertices)
	}
	if err := cfg.idSpan(n); err != nil {
		return nil, err
	}

	pairs := make([]edgelist.Pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, edgelist.Pair{Src: cfg.id(0), Dst: cfg.id(i)})
	}

	return pairs, nil
}

// Complete emits every unordered pair {i, j}, i < j.
//
// Complexity: O(n²).
func Complete(n int, opts ...Option) ([]edgelist.Pair, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < minCompleteSize {
		return nil, fmt.Errorf("complete n=%d: need at least %d vertices: %w", n, minCompleteSize, ErrTooFewVertices)
	}
	if err := cfg.idSpan(n); err != nil {
		return nil, err
	}
	prod, ok := mulCount(n, n-1)
	if !ok {
		return nil, fmt.Errorf("complete n=%d: pair count overflows: %w", n, ErrTooManyPairs)
	}

	pairs := make([]edgelist.Pair, 0, prod/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, edgelist.Pair{Src: cfg.id(i), Dst: cfg.id(j)})
		}
	}

	return pairs, nil
}

// RandomSparse samples an Erdős–Rényi graph over n vertices: each
// unordered pair {i, j} is emitted independently with probability p.
// Reproducible for a fixed seed; may emit no pairs when p is small.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64, opts ...Option) ([]edgelist.Pair, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < minSparseSize {
		return nil, fmt.Errorf("random sparse n=%d: need at least %d vertices: %w", n, minSparseSize, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("random sparse p=%g: not in [0, 1]: %w", p, ErrInvalidProbability)
	}
	if err := cfg.idSpan(n); err != nil {
		return nil, err
	}

	// Degenerate probabilities need no draws.
	switch p {
	case 0:
		return []edgelist.Pair{}, nil
	case 1:
		return Complete(n, opts...)
	}

	trials, ok := mulCount(n, n-1)
	if !ok {
		return nil, fmt.Errorf("random sparse n=%d: pair count overflows: %w", n, ErrTooManyPairs)
	}

	pairs := make([]edgelist.Pair, 0, int(float64(trials/2)*p)+1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() <= p {
				pairs = append(pairs, edgelist.Pair{Src: cfg.id(i), Dst: cfg.id(j)})
			}
		}
	}

	return pairs, nil
}
