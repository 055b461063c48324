// SPDX-License-Identifier: MIT

// Package bfs provides tunable options, sentinel values, and error
// definitions for the level-synchronous frontier scheduler.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavefront/renumber"
)

// Distance is a shortest-hop count from the traversal source. The sentinel
// Unreachable doubles as the atomic claim state: a vertex is discovered by
// the one writer that transitions its distance word away from the sentinel.
type Distance int32

// Unreachable marks a vertex no wave has reached. It is the maximum
// representable Distance, so no real hop count collides with it.
const Unreachable Distance = math.MaxInt32

// Reached reports whether d is a real hop count rather than the sentinel.
func (d Distance) Reached() bool {
	return d != Unreachable
}

// NoPredecessor marks a vertex with no recorded predecessor. The id is
// reserved: renumber never assigns it (see renumber.MaxVertices).
const NoPredecessor renumber.ID = math.MaxUint32

// sequentialCutoff is the frontier size below which expansion runs on the
// calling goroutine; spawning workers for tiny frontiers costs more than
// the expansion itself.
const sequentialCutoff = 128

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source id is not below the
	// graph's vertex count.
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines, observed between levels only.
	Ctx context.Context

	// Workers is the number of goroutines expanding each frontier.
	// 0 selects runtime.GOMAXPROCS(0).
	Workers int

	// MaxLevels, if > 0, caps recorded distances at that many hops;
	// deeper vertices report as unreachable. 0 disables the bound.
	MaxLevels int

	// Logger receives per-level Debug lines and a completion Info line.
	Logger *zap.Logger

	// OnLevel runs at each level barrier, before the frontier holding
	// vertices at that distance is expanded. It must not mutate traversal
	// state; cancelling the run's context from it is the supported way to
	// stop between levels.
	OnLevel func(level Distance, frontier int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers = runtime.GOMAXPROCS(0)
//   - no level bound (MaxLevels == 0)
//   - zap.NewNop() logger
//   - no-op OnLevel hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   runtime.GOMAXPROCS(0),
		MaxLevels: 0,
		Logger:    zap.NewNop(),
		OnLevel:   func(Distance, int) {},
		err:       nil,
	}
}

// WithContext sets a custom context for between-level cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the expansion goroutine count.
//
//	k > 0:  use k workers
//	k == 0: explicit "auto" (runtime.GOMAXPROCS(0))
//	k < 0:  invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = k
		}
	}
}

// WithMaxLevels caps recorded distances at l hops.
//
//	l > 0:  vertices farther than l hops stay unreachable
//	l == 0: explicit no bound
//	l < 0:  invalid option → ErrOptionViolation
func WithMaxLevels(l int) Option {
	return func(o *Options) {
		switch {
		case l < 0:
			o.err = fmt.Errorf("%w: MaxLevels cannot be negative (%d)", ErrOptionViolation, l)
		case l == 0:
			o.MaxLevels = 0
		default:
			o.MaxLevels = l
		}
	}
}

// WithLogger attaches a logger for traversal progress.
func WithLogger(lg *zap.Logger) Option {
	return func(o *Options) {
		if lg != nil {
			o.Logger = lg
		}
	}
}

// WithOnLevel registers a hook to run at each level barrier.
func WithOnLevel(fn func(level Distance, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Result holds the outcome of one traversal:
//   - Dist: shortest-hop distance per internal id, Unreachable where no
//     path exists (or where a MaxLevels bound cut the wave short).
//   - Pred: predecessor per internal id; Pred[Source] == Source is the one
//     legal self-reference, NoPredecessor marks unreached vertices.
//   - Source: the internal id the wave started from.
//   - Levels: the deepest recorded distance.
//   - Reached: vertices holding a real distance, the source included.
type Result struct {
	Dist    []Distance
	Pred    []renumber.ID
	Source  renumber.ID
	Levels  int
	Reached int
}
