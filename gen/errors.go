// SPDX-License-Identifier: MIT

package gen

import "errors"

var (
	// ErrTooFewVertices means a size parameter is below the topology's
	// minimum (a shape with no edges cannot seed an edge list).
	ErrTooFewVertices = errors.New("gen: parameter too small")

	// ErrTooManyPairs means a size parameter implies more pairs than a
	// slice can hold.
	ErrTooManyPairs = errors.New("gen: pair count overflows")

	// ErrInvalidProbability means an edge probability lies outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrOptionViolation means an option carried a meaningless value.
	ErrOptionViolation = errors.New("gen: invalid option value")
)
