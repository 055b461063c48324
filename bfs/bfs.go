// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavefront/csr"
	"github.com/katalvlaran/wavefront/renumber"
)

// Run performs a level-synchronous breadth-first traversal of g from
// source, assigning every reachable vertex its shortest-hop distance and
// one predecessor. Unreached vertices keep their sentinels; that is the
// defined outcome for disconnected graphs, never an error.
//
// On cancellation the partial Result gathered so far is returned together
// with the context error; distances recorded up to that point are final.
//
// Complexity: O(n + m) work, O(n) extra space, split across Workers
// goroutines one frontier at a time.
func Run(g *csr.Graph, source renumber.ID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if uint64(source) >= uint64(g.N()) {
		return nil, fmt.Errorf("bfs: source %d with n=%d: %w", source, g.N(), ErrSourceOutOfRange)
	}

	r := &runner{graph: g, opts: o, source: source}

	return r.run()
}

// runner holds the mutable state for one traversal.
type runner struct {
	graph  *csr.Graph
	opts   Options
	source renumber.ID

	dist []Distance
	pred []renumber.ID

	reached int // vertices holding a real distance
	deepest int // deepest recorded distance
}

// run seeds the arrays and drives the level loop until the frontier
// empties, the level bound trips, or the context is cancelled.
func (r *runner) run() (*Result, error) {
	n := r.graph.N()

	// 1) Initialize both arrays to their sentinels, then claim the source.
	r.dist = make([]Distance, n)
	r.pred = make([]renumber.ID, n)
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.pred[i] = NoPredecessor
	}
	r.dist[r.source] = 0
	r.pred[r.source] = r.source
	r.reached = 1

	frontier := []renumber.ID{r.source}
	level := Distance(0)

	// 2) One iteration per wave. Cancellation, the level bound, and the
	//    OnLevel hook are observed here and only here: a level either runs
	//    to its barrier or does not start.
	for len(frontier) > 0 {
		select {
		case <-r.opts.Ctx.Done():
			r.opts.Logger.Debug("traversal cancelled between levels",
				zap.Int("level", int(level)), zap.Int("reached", r.reached))

			return r.result(), r.opts.Ctx.Err()
		default:
		}

		r.opts.OnLevel(level, len(frontier))

		if r.opts.MaxLevels > 0 && int(level) >= r.opts.MaxLevels {
			break
		}

		// 3) Expand the wave: every claim made by this call records
		//    distance level+1.
		next, found := r.expand(frontier, level+1)
		r.opts.Logger.Debug("level expanded",
			zap.Int("level", int(level)),
			zap.Int("frontier", len(frontier)),
			zap.Int("discovered", found))

		if found > 0 {
			r.reached += found
			r.deepest = int(level) + 1
		}
		frontier = next
		level++
	}

	r.opts.Logger.Info("traversal complete",
		zap.Uint32("source", r.source),
		zap.Int("levels", r.deepest),
		zap.Int("reached", r.reached),
		zap.Int("vertices", n))

	return r.result(), nil
}

// expand discovers the next wave at distance d. Large frontiers split into
// contiguous chunks, one goroutine per chunk, each claiming into a private
// buffer; the WaitGroup is the level barrier and the buffers are
// concatenated after it, so every write of this level happens before any
// read of the next.
func (r *runner) expand(frontier []renumber.ID, d Distance) ([]renumber.ID, int) {
	workers := r.opts.Workers
	if workers == 1 || len(frontier) < sequentialCutoff {
		next := r.claimRange(frontier, d, nil)

		return next, len(next)
	}

	chunk := (len(frontier) + workers - 1) / workers
	bufs := make([][]renumber.ID, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(frontier) {
			break
		}
		hi := min(lo+chunk, len(frontier))

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			bufs[w] = r.claimRange(frontier[lo:hi], d, nil)
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for _, buf := range bufs {
		total += len(buf)
	}
	next := make([]renumber.ID, 0, total)
	for _, buf := range bufs {
		next = append(next, buf...)
	}

	return next, total
}

// claimRange walks the adjacency of every vertex in part and claims each
// undiscovered neighbor at distance d, appending winners to buf.
// The claim winner is the sole writer of pred[v] for its vertex.
func (r *runner) claimRange(part []renumber.ID, d Distance, buf []renumber.ID) []renumber.ID {
	for _, u := range part {
		for _, v := range r.graph.Row(u) {
			if r.claim(v, d) {
				r.pred[v] = u
				buf = append(buf, v)
			}
		}
	}

	return buf
}

// claim attempts the first-writer-wins transition of v's distance word
// from the sentinel to d. The plain load in front filters vertices already
// claimed in an earlier level or by another worker in this one.
func (r *runner) claim(v renumber.ID, d Distance) bool {
	word := (*int32)(&r.dist[v])
	if atomic.LoadInt32(word) != int32(Unreachable) {
		return false
	}

	return atomic.CompareAndSwapInt32(word, int32(Unreachable), int32(d))
}

// result snapshots the runner state into the caller-facing form.
func (r *runner) result() *Result {
	return &Result{
		Dist:    r.dist,
		Pred:    r.pred,
		Source:  r.source,
		Levels:  r.deepest,
		Reached: r.reached,
	}
}
