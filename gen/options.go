// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/wavefront/renumber"
)

// defaultSeed keeps stochastic constructors deterministic when the caller
// sets no seed of their own.
const defaultSeed int64 = 1

type config struct {
	base renumber.ExternalID
	rng  *rand.Rand

	err error
}

// Option customizes a constructor.
type Option func(*config)

// WithBase shifts emitted vertex ids to start at base instead of 0.
func WithBase(base renumber.ExternalID) Option {
	return func(c *config) { c.base = base }
}

// WithSeed seeds the random source of stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit random source. Nil is rejected when the
// constructor runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("WithRand: nil source: %w", ErrOptionViolation)

			return
		}
		c.rng = r
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := config{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return config{}, cfg.err
	}

	return cfg, nil
}

// idSpan verifies that ids base..base+n-1 fit the id range.
func (c config) idSpan(n int) error {
	if n > 0 && c.base > math.MaxInt64-renumber.ExternalID(n-1) {
		return fmt.Errorf("base %d with %d vertices overflows the id range: %w", c.base, n, ErrOptionViolation)
	}

	return nil
}

func (c config) id(i int) renumber.ExternalID { return c.base + renumber.ExternalID(i) }
