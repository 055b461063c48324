// SPDX-License-Identifier: MIT

package wavefront

import (
	"fmt"

	"go.uber.org/zap"
)

type config struct {
	undirected bool
	workers    int
	log        *zap.Logger

	err error
}

func defaultConfig() config {
	return config{
		undirected: false,
		workers:    0,
		log:        zap.NewNop(),
	}
}

// Option customizes engine construction.
type Option func(*config)

// WithUndirected stores both directions of every pair.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

// WithWorkers sets the default worker count forwarded to every traversal.
// Zero keeps the automatic choice; negative is invalid.
func WithWorkers(k int) Option {
	return func(c *config) {
		if k < 0 {
			c.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		c.workers = k
	}
}

// WithLogger attaches a logger shared by the engine and its traversals.
func WithLogger(lg *zap.Logger) Option {
	return func(c *config) {
		if lg != nil {
			c.log = lg
		}
	}
}
