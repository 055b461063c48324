// SPDX-License-Identifier: MIT

// Package result projects traversal output back into the caller's vertex
// universe and reconstructs shortest-hop paths.
//
// # What
//
// A traversal works on dense internal ids; its distance and predecessor
// arrays mean nothing to a caller who thinks in external identifiers.
// Project resolves every internal id through the renumbering index and
// yields a Table of (Vertex, Distance, Predecessor) rows, one per vertex,
// in internal-id order. Table.Path walks predecessor links from any target
// back to the source.
//
// # Why
//
// Keeping projection separate from the engine keeps the engine free of id
// translation on the hot path and lets callers that only need one column
// skip the rest. The Table owns a vertex lookup, so path reconstruction
// and renderers work without touching the index again.
//
// # Sentinels
//
// Unreached rows carry Distance = bfs.Unreachable and Predecessor =
// NoPredecessor (-1). Predecessor is meaningful only for reached rows; the
// source row is the one row whose Predecessor equals its own Vertex.
//
// # Usage
//
//	table, err := result.Project(run, idx)
//	if err != nil { ... }
//	_ = table.WriteText(os.Stdout)
//	hops, err := table.Path(42)
//
// # Errors
//
//	ErrNilTraversal / ErrNilIndex — Project handed nil input.
//	ErrUnknownVertex             — Path target never interned.
//	ErrUnreachable               — Path target not reached; recoverable.
//	ErrCorruptChain              — predecessor data broke the walk
//	                               invariants; never tolerated.
//
// Complexity: Project is O(n); Path is O(dist(target)).
package result
