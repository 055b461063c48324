// SPDX-License-Identifier: MIT

package csr

// config holds resolved Build parameters.
type config struct {
	// undirected stores each input edge in both directions.
	undirected bool
}

// defaultConfig returns the Build defaults: directed adjacency.
func defaultConfig() config {
	return config{undirected: false}
}

// Option configures Build via functional arguments.
type Option func(*config)

// WithUndirected stores every input edge in both directions, so each pair
// (u, v) yields the adjacency entries u→v and v→u.
func WithUndirected() Option {
	return func(c *config) {
		c.undirected = true
	}
}
