// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorgraph/shortestpaths/graph"
)

// Scenario 3 (§8): Bellman-Ford with negative edges and a valid
// potential.
func TestBellmanFordNegativeEdgesNoCycle(t *testing.T) {
	b := graph.NewBuilder(4, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(0, 3)
	g := b.Build()
	weights := []float64{1, -2, 2, 4}
	w := graph.RealWeight(func(e int) float64 { return weights[e] })

	res, err := BellmanFord(g, w, 0)
	require.NoError(t, err)

	want := []float64{0, 1, -1, 1}
	for v, exp := range want {
		got, err := res.Dist(v)
		require.NoError(t, err)
		require.InDelta(t, exp, got, 1e-9)
	}
	assertSSSPInvariants(t, g, w, res)
}

// Scenario 4 (§8): Bellman-Ford detects a negative cycle.
func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	g := b.Build()
	weights := []float64{1, -1, -1}
	w := graph.RealWeight(func(e int) float64 { return weights[e] })

	_, err := BellmanFord(g, w, 0)
	require.Error(t, err)

	var nc *NegativeCycleError
	require.ErrorAs(t, err, &nc)
	require.InDelta(t, -1, nc.Weight, 1e-9)
	require.Equal(t, nc.Cycle.Source, nc.Cycle.Target)
	require.Len(t, nc.Cycle.Edges, 3)
}

func TestBellmanFordMatchesDijkstraOnNonNegativeGraph(t *testing.T) {
	b := graph.NewBuilder(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(0, 4)
	b.AddEdge(1, 2)
	b.AddEdge(1, 3)
	b.AddEdge(2, 3)
	b.AddEdge(2, 4)
	b.AddEdge(3, 4)
	g := b.Build()
	ws := []float64{7, 9, 14, 10, 15, 11, 2, 6}
	w := graph.RealWeight(func(e int) float64 { return ws[e] })

	bf, err := BellmanFord(g, w, 0)
	require.NoError(t, err)
	dij, err := Dijkstra(g, w, 0)
	require.NoError(t, err)

	for v := 0; v < g.N(); v++ {
		bd, _ := bf.Dist(v)
		dd, _ := dij.Dist(v)
		require.InDelta(t, dd, bd, 1e-9)
	}
}

func TestBellmanFordRequiresDirected(t *testing.T) {
	b := graph.NewBuilder(2, false)
	b.AddEdge(0, 1)
	g := b.Build()
	_, err := BellmanFord(g, graph.UniformCost(), 0)
	require.Error(t, err)
	var se *StructuralError
	require.ErrorAs(t, err, &se)
	require.Equal(t, NotDirected, se.Kind)
}
