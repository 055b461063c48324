// SPDX-License-Identifier: MIT

package result

import "errors"

var (
	// ErrNilTraversal means Project received a nil traversal result.
	ErrNilTraversal = errors.New("result: nil traversal result")

	// ErrNilIndex means Project received a nil renumbering index.
	ErrNilIndex = errors.New("result: nil renumbering index")

	// ErrUnknownVertex means the path target was never part of the graph.
	ErrUnknownVertex = errors.New("result: unknown vertex")

	// ErrUnreachable means the path target was not reached from the source.
	// Expected for disconnected inputs; callers recover by reporting it.
	ErrUnreachable = errors.New("result: vertex unreachable from source")

	// ErrCorruptChain means a predecessor walk broke an invariant: a
	// self-reference off the source, a hop into an unreached row, a
	// predecessor missing from the table, or more hops than the recorded
	// distance allows.
	ErrCorruptChain = errors.New("result: corrupt predecessor chain")
)
