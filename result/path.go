// SPDX-License-Identifier: MIT

package result

import (
	"fmt"

	"go.uber.org/zap"
)

// Path reconstructs the shortest-hop route to target by walking
// predecessor links backwards until the source's self-reference. The
// returned slice is ordered target first, source last.
//
// Predecessor data crossing the projection boundary is not trusted: the
// walk fails with ErrCorruptChain on a self-reference off the source, a
// predecessor missing from the table, a hop into an unreached row, or
// more hops than the target's recorded distance.
//
// Complexity: O(dist(target)) time, one allocation for the path.
func (t *Table) Path(target ExternalID) ([]ExternalID, error) {
	i, ok := t.byVertex[target]
	if !ok {
		return nil, fmt.Errorf("path to %d: %w", target, ErrUnknownVertex)
	}
	at := t.Rows[i]
	if !at.Distance.Reached() {
		return nil, fmt.Errorf("path to %d: %w", target, ErrUnreachable)
	}

	// A well-formed chain holds exactly budget+1 vertices.
	budget := int(at.Distance)
	path := make([]ExternalID, 0, budget+1)
	for hop := 0; ; hop++ {
		if hop > budget {
			return nil, t.corrupt(target, at.Vertex, fmt.Sprintf("walk exceeds %d hops", budget))
		}
		path = append(path, at.Vertex)

		if at.Predecessor == at.Vertex {
			if at.Vertex != t.Source {
				return nil, t.corrupt(target, at.Vertex, fmt.Sprintf("self-reference at %d", at.Vertex))
			}

			return path, nil
		}

		j, ok := t.byVertex[at.Predecessor]
		if !ok {
			return nil, t.corrupt(target, at.Vertex, fmt.Sprintf("predecessor %d not in table", at.Predecessor))
		}
		next := t.Rows[j]
		if !next.Distance.Reached() {
			return nil, t.corrupt(target, at.Vertex, fmt.Sprintf("hop into unreached %d", next.Vertex))
		}
		at = next
	}
}

// corrupt logs a broken predecessor invariant found mid-walk at Error
// level and wraps it in ErrCorruptChain.
func (t *Table) corrupt(target, at ExternalID, cause string) error {
	if t.log != nil {
		t.log.Error("corrupt predecessor chain",
			zap.Int64("target", int64(target)),
			zap.Int64("at", int64(at)),
			zap.String("cause", cause))
	}

	return fmt.Errorf("path to %d: %s: %w", target, cause, ErrCorruptChain)
}
