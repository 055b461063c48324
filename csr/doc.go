// SPDX-License-Identifier: MIT

// Package csr stores a graph in compressed-sparse-row form: one offsets
// array of length n+1 and one column array holding every adjacency entry,
// built once from an edge list and immutable afterwards.
//
// What
//
//   - Build constructs the arrays in two passes over the input: pass one
//     counts per-vertex out-degrees into the offsets array, pass two lays
//     the neighbor entries down through a moving cursor per vertex. No
//     per-vertex dynamic growth, no intermediate adjacency maps.
//   - Neighbors(v) is an O(1) subslice view of v's adjacency, ordered the
//     way the edges were provided (stable, not sorted).
//   - WithUndirected makes every input edge contribute entries in both
//     directions. Duplicates and self-loops are stored as given; they cost
//     space, never correctness.
//
// Why
//
//	Frontier expansion touches every adjacency entry of every discovered
//	vertex exactly once per traversal. Two flat arrays give that scan
//	sequential memory order and zero pointer chasing, and an immutable
//	graph is safely shared by any number of concurrent traversals without
//	synchronization.
//
// Concurrency
//
//	A built Graph is read-only. All methods are safe for concurrent use.
//
// Complexity (n = vertex count, m = stored adjacency entries)
//
//   - Build:     O(n + m) time, O(n + m) space
//   - Neighbors: O(1), the returned slice aliases graph storage
//   - Degree:    O(1)
//
// Usage
//
//	g, err := csr.Build(4, []csr.Edge{{0, 1}, {0, 2}, {1, 2}, {2, 3}},
//		csr.WithUndirected())
//	if err != nil { ... }
//	nbrs, _ := g.Neighbors(2) // [0 1 3] for the undirected build above
//
// Errors
//
//   - ErrVertexOutOfRange  if an edge endpoint or a queried vertex is ≥ n.
//   - ErrNegativeCount     if Build is given n < 0.
//   - ErrCountOverflow     if Build is given n beyond renumber.MaxVertices.
package csr
