// SPDX-License-Identifier: MIT

package csr

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexOutOfRange is returned when an edge endpoint or a queried
	// vertex id is not below the declared vertex count.
	ErrVertexOutOfRange = errors.New("csr: vertex id out of range")

	// ErrNegativeCount is returned when Build is given a negative vertex
	// count.
	ErrNegativeCount = errors.New("csr: negative vertex count")

	// ErrCountOverflow is returned when Build is given a vertex count
	// beyond renumber.MaxVertices, the 32-bit id range.
	ErrCountOverflow = errors.New("csr: vertex count exceeds id range")
)
