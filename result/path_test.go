// SPDX-License-Identifier: MIT

package result_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wavefront/bfs"
	"github.com/katalvlaran/wavefront/renumber"
	"github.com/katalvlaran/wavefront/result"
)

// projectFabricated projects a hand-built traversal over external ids
// 10, 20, 30 so corrupt predecessor shapes can be staged.
func projectFabricated(t *testing.T, dist []bfs.Distance, pred []renumber.ID, opts ...result.Option) *result.Table {
	t.Helper()

	idx := renumber.New()
	for _, ext := range []renumber.ExternalID{10, 20, 30} {
		_, err := idx.Intern(ext)
		require.NoError(t, err)
	}

	table, err := result.Project(&bfs.Result{Dist: dist, Pred: pred, Source: 0}, idx, opts...)
	require.NoError(t, err)

	return table
}

func TestPath_Pendant(t *testing.T) {
	t.Parallel()

	table := projectPendant(t)

	path, err := table.Path(4)
	require.NoError(t, err)
	require.Equal(t, []result.ExternalID{4, 3, 1}, path)

	path, err = table.Path(2)
	require.NoError(t, err)
	require.Equal(t, []result.ExternalID{2, 1}, path)

	// The source's path is itself.
	path, err = table.Path(1)
	require.NoError(t, err)
	require.Equal(t, []result.ExternalID{1}, path)
}

func TestPath_UnknownVertex(t *testing.T) {
	t.Parallel()

	table := projectPendant(t)
	_, err := table.Path(99)
	require.ErrorIs(t, err, result.ErrUnknownVertex)
}

func TestPath_Unreachable(t *testing.T) {
	t.Parallel()

	table := projectPartial(t)
	_, err := table.Path(10)
	require.ErrorIs(t, err, result.ErrUnreachable)
}

func TestPath_CorruptSelfReference(t *testing.T) {
	t.Parallel()

	// Vertex 20 claims itself as predecessor without being the source.
	table := projectFabricated(t,
		[]bfs.Distance{0, 1, 2},
		[]renumber.ID{0, 1, 1},
	)
	_, err := table.Path(20)
	require.ErrorIs(t, err, result.ErrCorruptChain)
}

func TestPath_CorruptCycle(t *testing.T) {
	t.Parallel()

	// 20 and 30 point at each other; the walk must give up once it has
	// spent the target's distance budget.
	table := projectFabricated(t,
		[]bfs.Distance{0, 1, 2},
		[]renumber.ID{0, 2, 1},
	)
	_, err := table.Path(30)
	require.ErrorIs(t, err, result.ErrCorruptChain)
}

func TestPath_CorruptHopIntoUnreached(t *testing.T) {
	t.Parallel()

	// 20 is reached but its predecessor 30 is not.
	table := projectFabricated(t,
		[]bfs.Distance{0, 1, bfs.Unreachable},
		[]renumber.ID{0, 2, bfs.NoPredecessor},
	)
	_, err := table.Path(20)
	require.ErrorIs(t, err, result.ErrCorruptChain)
}

func TestPath_CorruptChainLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	table := projectFabricated(t,
		[]bfs.Distance{0, 1, 2},
		[]renumber.ID{0, 1, 1},
		result.WithLogger(zap.New(core)),
	)

	_, err := table.Path(20)
	require.ErrorIs(t, err, result.ErrCorruptChain)

	entries := logs.FilterMessage("corrupt predecessor chain").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(20), entries[0].ContextMap()["target"])
}
