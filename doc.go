// SPDX-License-Identifier: MIT

// Package wavefront is a parallel, level-synchronous breadth-first search
// engine: feed it an edge list under arbitrary 64-bit vertex identifiers,
// point it at a source, and read back shortest-hop distances and
// predecessors for every vertex the wave reached.
//
// 🚀 What is wavefront?
//
//	A focused, concurrency-first traversal engine that brings together:
//		• Renumbering: sparse external ids ⇄ dense internal range [0, n)
//		• Storage: immutable compressed-sparse-row adjacency, built once
//		• Scheduling: one frontier wave per level, expanded in parallel
//		• Claims: lock-free first-writer-wins discovery via atomic CAS
//		• Projection: tabular results back in the caller's id space
//		• Paths: guarded predecessor walks from any vertex to the source
//
// ✨ Why wavefront?
//
//   - Race-free by construction – the level barrier and the claim protocol
//     are the whole synchronization story; no per-vertex locks
//   - Honest sentinels – unreachable stays unreachable, never an error
//   - Scales down – small frontiers run on the calling goroutine, so a
//     ten-vertex graph pays no goroutine tax
//   - Explicit everything – the renumbering index is an instance you own,
//     not package state
//
// The engine is organized leaf-first:
//
//	renumber/ — ExternalID ⇄ dense ID bijection with overflow guards
//	csr/      — two-pass compressed-sparse-row graph storage
//	bfs/      — the level-synchronous frontier scheduler (the core)
//	result/   — projection to external ids, rendering, path reconstruction
//	edgelist/ — text ingestion of (src, dst) pairs
//	gen/      — deterministic topologies for benches, tests and the CLI
//
// This package ties them into the one-call surface:
//
//	eng, err := wavefront.New(pairs, wavefront.WithUndirected())
//	if err != nil { ... }
//	table, err := eng.BFS(1)
//	path, err := table.Path(4)
//
// Quick ASCII sketch of one traversal (source S, levels left to right):
//
//	S ── a ── c
//	│         │
//	b ── d ───┘        levels: {S}, {a,b}, {c,d}
//
// A cobra CLI ships under cmd/wavefront: run traversals, reconstruct
// paths, and generate benchmark topologies straight from the shell.
//
//	go get github.com/katalvlaran/wavefront
package wavefront
