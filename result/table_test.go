// SPDX-License-Identifier: MIT

package result_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/bfs"
	"github.com/katalvlaran/wavefront/csr"
	"github.com/katalvlaran/wavefront/renumber"
	"github.com/katalvlaran/wavefront/result"
)

// projectPendant runs the full pipeline over the triangle 1-2-3 with
// pendant 4 hanging off 3, source 1.
func projectPendant(t *testing.T) *result.Table {
	t.Helper()

	idx := renumber.New()
	pairs := [][2]renumber.ExternalID{{1, 2}, {1, 3}, {2, 3}, {3, 4}}
	edges := make([]csr.Edge, 0, len(pairs))
	for _, p := range pairs {
		s, err := idx.Intern(p[0])
		require.NoError(t, err)
		d, err := idx.Intern(p[1])
		require.NoError(t, err)
		edges = append(edges, csr.Edge{Src: s, Dst: d})
	}

	g, err := csr.Build(idx.Len(), edges, csr.WithUndirected())
	require.NoError(t, err)
	src, ok := idx.Lookup(1)
	require.True(t, ok)
	run, err := bfs.Run(g, src)
	require.NoError(t, err)

	table, err := result.Project(run, idx)
	require.NoError(t, err)

	return table
}

// projectPartial runs the pipeline with isolated vertex 10 next to the
// edge 20-30, source 20, leaving 10 unreached.
func projectPartial(t *testing.T) *result.Table {
	t.Helper()

	idx := renumber.New()
	var ids [3]renumber.ID
	for i, ext := range []renumber.ExternalID{10, 20, 30} {
		id, err := idx.Intern(ext)
		require.NoError(t, err)
		ids[i] = id
	}

	g, err := csr.Build(idx.Len(), []csr.Edge{{Src: ids[1], Dst: ids[2]}}, csr.WithUndirected())
	require.NoError(t, err)
	run, err := bfs.Run(g, ids[1])
	require.NoError(t, err)

	table, err := result.Project(run, idx)
	require.NoError(t, err)

	return table
}

func TestProject_PendantRows(t *testing.T) {
	t.Parallel()

	table := projectPendant(t)

	want := []result.Row{
		{Vertex: 1, Distance: 0, Predecessor: 1},
		{Vertex: 2, Distance: 1, Predecessor: 1},
		{Vertex: 3, Distance: 1, Predecessor: 1},
		{Vertex: 4, Distance: 2, Predecessor: 3},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, result.ExternalID(1), table.Source)
	require.Equal(t, 4, table.Len())
}

func TestProject_UnreachedSentinels(t *testing.T) {
	t.Parallel()

	table := projectPartial(t)

	want := []result.Row{
		{Vertex: 10, Distance: bfs.Unreachable, Predecessor: result.NoPredecessor},
		{Vertex: 20, Distance: 0, Predecessor: 20},
		{Vertex: 30, Distance: 1, Predecessor: 20},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table := projectPendant(t)

	row, ok := table.Lookup(4)
	require.True(t, ok)
	require.Equal(t, result.Row{Vertex: 4, Distance: 2, Predecessor: 3}, row)

	_, ok = table.Lookup(99)
	require.False(t, ok)
}

func TestProject_Errors(t *testing.T) {
	t.Parallel()

	idx := renumber.New()
	_, err := idx.Intern(5)
	require.NoError(t, err)

	_, err = result.Project(nil, idx)
	require.ErrorIs(t, err, result.ErrNilTraversal)

	run := &bfs.Result{
		Dist:   []bfs.Distance{0},
		Pred:   []renumber.ID{0},
		Source: 0,
	}
	_, err = result.Project(run, nil)
	require.ErrorIs(t, err, result.ErrNilIndex)

	// The index knows one vertex; a two-vertex run cannot have come from
	// the same pipeline.
	mismatched := &bfs.Result{
		Dist:   []bfs.Distance{0, 1},
		Pred:   []renumber.ID{0, 0},
		Source: 0,
	}
	_, err = result.Project(mismatched, idx)
	require.ErrorIs(t, err, renumber.ErrInvalidID)

	orphanSource := &bfs.Result{
		Dist:   []bfs.Distance{0},
		Pred:   []renumber.ID{0},
		Source: 9,
	}
	_, err = result.Project(orphanSource, idx)
	require.ErrorIs(t, err, renumber.ErrInvalidID)
}
