// SPDX-License-Identifier: MIT

package csr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wavefront/csr"
	"github.com/katalvlaran/wavefront/renumber"
)

// gridEdges emits the right/down edges of an m×m grid in row-major order.
func gridEdges(m int) []csr.Edge {
	edges := make([]csr.Edge, 0, 2*m*(m-1))
	at := func(i, j int) renumber.ID { return renumber.ID(i*m + j) }
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if j+1 < m {
				edges = append(edges, csr.Edge{Src: at(i, j), Dst: at(i, j+1)})
			}
			if i+1 < m {
				edges = append(edges, csr.Edge{Src: at(i, j), Dst: at(i+1, j)})
			}
		}
	}

	return edges
}

// BenchmarkBuild_Grid measures two-pass construction on a 100×100 grid.
func BenchmarkBuild_Grid(b *testing.B) {
	const m = 100
	edges := gridEdges(m)

	b.ReportAllocs()
	b.SetBytes(int64(m*m + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = csr.Build(m*m, edges, csr.WithUndirected())
	}
}

// BenchmarkBuild_RandomSparse measures construction on a random sparse
// directed graph (duplicates allowed, as ingestion may deliver them).
func BenchmarkBuild_RandomSparse(b *testing.B) {
	const (
		v = 5000
		e = 20000
	)
	rnd := rand.New(rand.NewSource(42))
	edges := make([]csr.Edge, e)
	for k := range edges {
		edges[k] = csr.Edge{
			Src: renumber.ID(rnd.Intn(v)),
			Dst: renumber.ID(rnd.Intn(v)),
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(v + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = csr.Build(v, edges)
	}
}
