// SPDX-License-Identifier: MIT

// Package bfs is a parallel, level-synchronous breadth-first traversal over
// a csr.Graph, producing shortest-hop distances and predecessor links for
// every vertex reachable from a source.
//
// # What
//
//   - Advances one frontier wave per level: every vertex at hop-distance k
//     is fully resolved before any vertex at k+1 is touched.
//   - Expands each wave in parallel across worker goroutines; discovery
//     races resolve through an atomic first-writer-wins claim on the
//     vertex's distance word.
//   - Returns a Result holding flat Dist/Pred arrays over internal ids,
//     plus Levels and Reached counters.
//   - Supports a between-level OnLevel hook, a MaxLevels bound, context
//     cancellation, and zap progress logging.
//
// # Why
//
//   - Exact unweighted shortest paths in O(n + m) work.
//   - The level barrier is the entire synchronization story: within a
//     level, workers share only the read-only graph and the claim words;
//     between levels, the WaitGroup publishes every write.
//   - Flat arrays keep the hot loop free of hashing and pointer chasing.
//
// # Determinism
//
//	Distances are fully deterministic for a given graph and source.
//	Predecessors are deterministic only when run with one worker (first
//	discoverer in adjacency order wins); with several workers, any
//	same-level discoverer may win the claim, so consumers must not rely on
//	a specific predecessor where multiple shortest paths tie.
//
// # Cancellation
//
//	The context is observed between levels only. A mid-level abort would
//	leave claims half-published, so a level either runs to its barrier or
//	does not start. A cancelled run returns the partial Result together
//	with the context error; recorded distances are final.
//
// # Complexity (n = vertices, m = adjacency entries)
//
//   - Time:   O(n + m) work per run, split across Workers goroutines
//   - Memory: O(n) for the output arrays and the two frontier buffers
//
// # Usage
//
//	res, err := bfs.Run(g, src)
//	if err != nil {
//		// handle ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation,
//		// or the context error from a cancelled run
//	}
//	for v, d := range res.Dist {
//		if d.Reached() {
//			fmt.Println(v, d, res.Pred[v])
//		}
//	}
//
//	// With options:
//	res, err = bfs.Run(g, src,
//		bfs.WithWorkers(8),
//		bfs.WithMaxLevels(3),
//		bfs.WithContext(ctx),
//		bfs.WithLogger(logger),
//		bfs.WithOnLevel(func(level bfs.Distance, size int) { /* ... */ }),
//	)
//
// # Options
//
//   - DefaultOptions(): background Context, GOMAXPROCS workers, no level
//     bound, Nop logger, no-op hook.
//   - WithContext(ctx):   between-level cancellation.
//   - WithWorkers(k):     expansion goroutine count (0 = auto).
//   - WithMaxLevels(l):   cap recorded distances at l hops (0 = no bound).
//   - WithLogger(lg):     per-level Debug lines, completion Info line.
//   - WithOnLevel(fn):    hook at each level barrier.
//
// # Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if source ≥ the graph's vertex count.
//   - ErrOptionViolation   if an invalid Option was supplied.
//   - context.Canceled / context.DeadlineExceeded from a cancelled run,
//     alongside the partial Result.
package bfs
