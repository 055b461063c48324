// SPDX-License-Identifier: MIT

package result

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavefront/bfs"
	"github.com/katalvlaran/wavefront/renumber"
)

// ExternalID mirrors renumber.ExternalID so table consumers stay in one
// vocabulary.
type ExternalID = renumber.ExternalID

// NoPredecessor marks the predecessor column of unreached rows. The value
// is only a marker there; reached rows always carry a real vertex id.
const NoPredecessor ExternalID = -1

// Row is one projected vertex: its external id, its shortest-hop distance
// from the source, and the external id of the vertex it was discovered
// from. Predecessor is meaningful only when Distance.Reached().
type Row struct {
	Vertex      ExternalID
	Distance    bfs.Distance
	Predecessor ExternalID
}

// Table is the projected traversal: one Row per vertex in internal-id
// order, plus the source vertex in external terms. Immutable once built;
// safe for concurrent reads.
type Table struct {
	Rows   []Row
	Source ExternalID

	byVertex map[ExternalID]int
	log      *zap.Logger
}

// Project resolves a traversal result into external-id rows.
//
// Every internal id in the run must be known to the index; a resolution
// failure wraps renumber.ErrInvalidID and means the run and the index were
// not produced by the same pipeline.
//
// Complexity: O(n) time and space.
func Project(run *bfs.Result, idx *renumber.Index, opts ...Option) (*Table, error) {
	if run == nil {
		return nil, ErrNilTraversal
	}
	if idx == nil {
		return nil, ErrNilIndex
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := idx.Resolve(run.Source)
	if err != nil {
		return nil, fmt.Errorf("project source %d: %w", run.Source, err)
	}

	n := len(run.Dist)
	t := &Table{
		Rows:     make([]Row, 0, n),
		Source:   src,
		byVertex: make(map[ExternalID]int, n),
		log:      cfg.log,
	}
	for v := 0; v < n; v++ {
		ext, err := idx.Resolve(renumber.ID(v))
		if err != nil {
			return nil, fmt.Errorf("project vertex %d: %w", v, err)
		}
		row := Row{Vertex: ext, Distance: run.Dist[v], Predecessor: NoPredecessor}
		if run.Dist[v].Reached() {
			pre, err := idx.Resolve(run.Pred[v])
			if err != nil {
				return nil, fmt.Errorf("project predecessor of %d: %w", v, err)
			}
			row.Predecessor = pre
		}
		t.byVertex[ext] = len(t.Rows)
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Lookup returns the row for an external vertex id.
func (t *Table) Lookup(vertex ExternalID) (Row, bool) {
	i, ok := t.byVertex[vertex]
	if !ok {
		return Row{}, false
	}

	return t.Rows[i], true
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }
