// SPDX-License-Identifier: MIT

// Package edgelist reads (source, destination) vertex-id pairs from plain
// text: one pair per line, fields separated by whitespace or commas,
// #-comments and blank lines skipped. Ids are arbitrary signed 64-bit
// integers. Duplicate pairs pass through untouched; redundant adjacency is
// the storage layer's business.
//
// Errors: ErrBadLine (with the 1-based line number in the wrap) for
// anything that is not two integers, ErrNoPairs for input with nothing in
// it.
package edgelist
