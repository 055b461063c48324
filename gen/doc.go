// SPDX-License-Identifier: MIT

// Package gen constructs synthetic edge lists: deterministic topology
// generators for tests, benchmarks, and the CLI.
//
// # What
//
// Each constructor emits []edgelist.Pair over vertex ids base..base+n-1
// (default base 0): Grid, Path, Cycle, Star, Complete, and RandomSparse.
// Emission order is fixed per topology, and RandomSparse is reproducible
// for a fixed seed, so generated graphs are stable across runs and
// platforms.
//
// # Usage
//
//	pairs, err := gen.Grid(64, 64)
//	ring, err := gen.Cycle(100, gen.WithBase(1000))
//	rnd, err := gen.RandomSparse(500, 0.01, gen.WithSeed(7))
//
// Pairs carry no direction of their own; feed them to an undirected
// consumer for symmetric adjacency.
//
// # Errors
//
// Validation failures return sentinel errors (ErrTooFewVertices,
// ErrTooManyPairs, ErrInvalidProbability, ErrOptionViolation);
// constructors never panic.
package gen
