// SPDX-License-Identifier: MIT

package wavefront

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavefront/bfs"
	"github.com/katalvlaran/wavefront/csr"
	"github.com/katalvlaran/wavefront/edgelist"
	"github.com/katalvlaran/wavefront/renumber"
	"github.com/katalvlaran/wavefront/result"
)

var (
	// ErrUnknownSource means the requested source id never appeared in the
	// pairs the engine was built from.
	ErrUnknownSource = errors.New("wavefront: unknown source vertex")

	// ErrOptionViolation means an engine option carried a meaningless value.
	ErrOptionViolation = errors.New("wavefront: invalid option value")
)

// Engine owns one renumbered graph and serves shortest-hop queries over
// it. Immutable after New; any number of goroutines may query it
// concurrently.
type Engine struct {
	idx     *renumber.Index
	graph   *csr.Graph
	log     *zap.Logger
	workers int
}

// New interns every endpoint in encounter order and builds the adjacency
// once. Empty input yields an engine over the empty graph; every query
// against it fails with ErrUnknownSource.
//
// Complexity: O(pairs) interning plus O(n+m) construction.
func New(pairs []edgelist.Pair, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	idx := renumber.New()
	edges := make([]csr.Edge, 0, len(pairs))
	for _, p := range pairs {
		src, err := idx.Intern(p.Src)
		if err != nil {
			return nil, fmt.Errorf("wavefront: intern %d: %w", p.Src, err)
		}
		dst, err := idx.Intern(p.Dst)
		if err != nil {
			return nil, fmt.Errorf("wavefront: intern %d: %w", p.Dst, err)
		}
		edges = append(edges, csr.Edge{Src: src, Dst: dst})
	}

	var copts []csr.Option
	if cfg.undirected {
		copts = append(copts, csr.WithUndirected())
	}
	g, err := csr.Build(idx.Len(), edges, copts...)
	if err != nil {
		return nil, fmt.Errorf("wavefront: build graph: %w", err)
	}

	cfg.log.Info("engine ready",
		zap.Int("vertices", g.N()),
		zap.Int("adjacency", g.M()),
		zap.Bool("undirected", g.Undirected()),
	)

	return &Engine{idx: idx, graph: g, log: cfg.log, workers: cfg.workers}, nil
}

// BFS runs one traversal from an external source id and projects the
// outcome into external terms. Engine defaults go first, so caller
// options win. A cancelled traversal still returns the partial table,
// alongside the context error.
func (e *Engine) BFS(source renumber.ExternalID, opts ...bfs.Option) (*result.Table, error) {
	id, ok := e.idx.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("source %d: %w", source, ErrUnknownSource)
	}

	merged := make([]bfs.Option, 0, len(opts)+2)
	merged = append(merged, bfs.WithLogger(e.log), bfs.WithWorkers(e.workers))
	merged = append(merged, opts...)

	run, runErr := bfs.Run(e.graph, id, merged...)
	if run == nil {
		return nil, runErr
	}
	table, err := result.Project(run, e.idx, result.WithLogger(e.log))
	if err != nil {
		return nil, err
	}

	return table, runErr
}

// N returns the vertex count.
func (e *Engine) N() int { return e.graph.N() }

// M returns the stored adjacency entry count.
func (e *Engine) M() int { return e.graph.M() }
