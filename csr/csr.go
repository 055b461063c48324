// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"

	"github.com/katalvlaran/wavefront/renumber"
)

// Edge is one ordered adjacency pair over dense internal ids.
type Edge struct {
	Src renumber.ID
	Dst renumber.ID
}

// Graph is an immutable compressed-sparse-row adjacency structure.
// offsets has length n+1; the neighbors of v occupy
// cols[offsets[v]:offsets[v+1]] in edge-insertion order.
type Graph struct {
	offsets    []uint64
	cols       []renumber.ID
	undirected bool
}

// Build constructs a Graph over vertices [0, n) from edges, in two passes:
// degree counting, then column fill through a moving per-vertex cursor.
// Edges are validated up front; duplicates and self-loops are stored as
// given. n is capped at renumber.MaxVertices so every id stays within
// 32-bit range. Complexity: O(n + m) time and space.
func Build(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("csr: build with n=%d: %w", n, ErrNegativeCount)
	}
	if uint64(n) > renumber.MaxVertices {
		return nil, fmt.Errorf("csr: build with n=%d: %w", n, ErrCountOverflow)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate every endpoint against the declared vertex count.
	bound := uint64(n)
	for i, e := range edges {
		if uint64(e.Src) >= bound || uint64(e.Dst) >= bound {
			return nil, fmt.Errorf("csr: build: edge %d (%d→%d) with n=%d: %w",
				i, e.Src, e.Dst, n, ErrVertexOutOfRange)
		}
	}

	// 2) First pass: count out-degrees into offsets[1:], then prefix-sum
	//    so offsets[v] is the first column slot of v.
	offsets := make([]uint64, n+1)
	for _, e := range edges {
		offsets[e.Src+1]++
		if cfg.undirected {
			offsets[e.Dst+1]++
		}
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	// 3) Second pass: lay entries down in input order. cursor[v] walks from
	//    offsets[v] to offsets[v+1] as v's entries are placed.
	cols := make([]renumber.ID, offsets[n])
	cursor := make([]uint64, n)
	copy(cursor, offsets[:n])
	for _, e := range edges {
		cols[cursor[e.Src]] = e.Dst
		cursor[e.Src]++
		if cfg.undirected {
			cols[cursor[e.Dst]] = e.Src
			cursor[e.Dst]++
		}
	}

	return &Graph{offsets: offsets, cols: cols, undirected: cfg.undirected}, nil
}

// N reports the vertex count.
func (g *Graph) N() int {
	return len(g.offsets) - 1
}

// M reports the number of stored adjacency entries. For an undirected
// build each input edge counts twice, once per direction.
func (g *Graph) M() int {
	return len(g.cols)
}

// Undirected reports whether Build stored both directions per input edge.
func (g *Graph) Undirected() bool {
	return g.undirected
}

// Degree reports the number of adjacency entries leaving v.
func (g *Graph) Degree(v renumber.ID) (int, error) {
	if uint64(v) >= uint64(g.N()) {
		return 0, fmt.Errorf("csr: degree of %d with n=%d: %w", v, g.N(), ErrVertexOutOfRange)
	}

	return int(g.offsets[v+1] - g.offsets[v]), nil
}

// Neighbors returns v's adjacency in edge-insertion order. The slice
// aliases graph storage and must be treated as read-only.
func (g *Graph) Neighbors(v renumber.ID) ([]renumber.ID, error) {
	if uint64(v) >= uint64(g.N()) {
		return nil, fmt.Errorf("csr: neighbors of %d with n=%d: %w", v, g.N(), ErrVertexOutOfRange)
	}

	return g.cols[g.offsets[v]:g.offsets[v+1]], nil
}

// Row is the unchecked variant of Neighbors for traversal inner loops.
// The caller must hold v < N(); the slice aliases graph storage.
func (g *Graph) Row(v renumber.ID) []renumber.ID {
	return g.cols[g.offsets[v]:g.offsets[v+1]]
}
