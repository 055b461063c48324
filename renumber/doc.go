// SPDX-License-Identifier: MIT

// Package renumber maps arbitrary 64-bit external vertex identifiers onto a
// dense internal range [0, n), and back.
//
// What
//
//   - Intern assigns the next dense ID on first sight of an ExternalID and
//     returns the existing ID on every later sight.
//   - Resolve inverts the mapping, total over every ID ever assigned.
//   - Lookup probes without interning, for callers that must reject unknown
//     identifiers instead of minting new ones.
//   - The mapping is a bijection over exactly the identifiers interned;
//     numbering is deterministic but insertion-order-dependent.
//
// Why
//
//	Array-indexed traversal state (distances, predecessors, frontiers) needs
//	identifiers that are small, dense, and zero-based. Callers have none of
//	that: their ids are sparse, huge, or both. One Index instance per
//	pipeline invocation bridges the two worlds; nothing is process-wide.
//
// Capacity
//
//	Internal ids are 32-bit. The top value (math.MaxUint32) is never
//	assigned, since traversal packages reserve it as a marker, so an Index
//	holds at most MaxVertices distinct identifiers and Intern fails with
//	ErrRangeOverflow beyond that.
//
// Concurrency
//
//	Intern mutates and is not safe for concurrent use. Once interning is
//	finished, Resolve, Lookup and Len are safe to call from any number of
//	goroutines.
//
// Complexity
//
//   - Intern, Lookup: O(1) expected
//   - Resolve: O(1)
//   - Memory: O(n) for n distinct identifiers
//
// Usage
//
//	ix := renumber.New()
//	a, _ := ix.Intern(1_000_007)
//	b, _ := ix.Intern(-42)
//	ext, _ := ix.Resolve(a) // 1_000_007
//
// Errors
//
//   - ErrInvalidID      if Resolve is called with an id never assigned.
//   - ErrRangeOverflow  if the number of distinct ids would exceed capacity.
package renumber
