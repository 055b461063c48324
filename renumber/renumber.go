// SPDX-License-Identifier: MIT

package renumber

import (
	"fmt"
	"math"
)

// ExternalID is a caller-supplied vertex identifier: any 64-bit integer,
// not necessarily contiguous, non-negative, or starting at zero.
type ExternalID = int64

// ID is a dense internal vertex identifier in [0, n) for an Index holding
// n distinct external ids. IDs index directly into traversal arrays.
type ID = uint32

// MaxVertices is the greatest number of distinct external ids one Index can
// hold. The internal id math.MaxUint32 itself is never assigned; traversal
// packages reserve it as a "no vertex" marker.
const MaxVertices = math.MaxUint32

// Index is an explicit, instance-scoped bijection ExternalID ⇄ ID.
// The zero value is not usable; construct with New.
type Index struct {
	fwd map[ExternalID]ID
	rev []ExternalID

	// capacity is MaxVertices except in white-box tests, which lower it
	// to make the overflow branch reachable.
	capacity uint64
}

// New returns an empty Index.
func New() *Index {
	return &Index{fwd: make(map[ExternalID]ID), capacity: MaxVertices}
}

// Intern returns the dense id for ext, assigning the next free id on first
// sight. Assignment order is the order of first sight.
// Complexity: O(1) expected.
func (ix *Index) Intern(ext ExternalID) (ID, error) {
	if id, ok := ix.fwd[ext]; ok {
		return id, nil
	}
	next := uint64(len(ix.rev))
	if next >= ix.capacity {
		return 0, fmt.Errorf("renumber: intern %d: %w", ext, ErrRangeOverflow)
	}
	id := ID(next)
	ix.fwd[ext] = id
	ix.rev = append(ix.rev, ext)

	return id, nil
}

// Lookup reports the dense id for ext without interning it.
// Complexity: O(1) expected.
func (ix *Index) Lookup(ext ExternalID) (ID, bool) {
	id, ok := ix.fwd[ext]

	return id, ok
}

// Resolve returns the external id that was interned as id.
// Complexity: O(1).
func (ix *Index) Resolve(id ID) (ExternalID, error) {
	if uint64(id) >= uint64(len(ix.rev)) {
		return 0, fmt.Errorf("renumber: resolve %d: %w", id, ErrInvalidID)
	}

	return ix.rev[id], nil
}

// Len reports the number of distinct external ids interned so far.
// Interned ids are exactly [0, Len()).
func (ix *Index) Len() int {
	return len(ix.rev)
}
