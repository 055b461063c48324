// SPDX-License-Identifier: MIT

package result

import "go.uber.org/zap"

// config holds resolved Project parameters.
type config struct {
	// log receives diagnostics from operations on the projected table.
	log *zap.Logger
}

// defaultConfig returns the Project defaults: a no-op logger.
func defaultConfig() config {
	return config{log: zap.NewNop()}
}

// Option configures Project via functional arguments.
type Option func(*config)

// WithLogger attaches a logger to the projected table. Path reports a
// corrupt predecessor chain through it at Error level before returning
// the error.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
