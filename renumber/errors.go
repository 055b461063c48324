// SPDX-License-Identifier: MIT

package renumber

import "errors"

// Sentinel errors for index operations.
var (
	// ErrInvalidID is returned by Resolve for an internal id never assigned.
	ErrInvalidID = errors.New("renumber: internal id was never assigned")

	// ErrRangeOverflow is returned by Intern once the number of distinct
	// external ids exhausts the internal id capacity (MaxVertices).
	ErrRangeOverflow = errors.New("renumber: distinct vertex count exceeds internal id capacity")
)
