// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorgraph/shortestpaths/graph"
)

func buildGridGraph() (graph.Graph, func(v int) (x, y int)) {
	// 3x3 grid, vertex v = y*3+x, edges to right and down neighbors.
	b := graph.NewBuilder(9, true)
	coord := func(v int) (int, int) { return v % 3, v / 3 }
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v := y*3 + x
			if x < 2 {
				b.AddEdge(v, v+1)
			}
			if y < 2 {
				b.AddEdge(v, v+3)
			}
		}
	}
	return b.Build(), coord
}

func TestAStarWithNullHeuristicMatchesDijkstra(t *testing.T) {
	g, _ := buildGridGraph()
	w := graph.UniformCost()

	p, wt, err := AStar(g, w, 0, 8, nil)
	require.NoError(t, err)
	require.Equal(t, 4.0, wt)
	require.Equal(t, 4, p.Len())

	dij, err := Dijkstra(g, w, 0)
	require.NoError(t, err)
	d8, _ := dij.Dist(8)
	require.Equal(t, d8, wt)
}

func TestAStarWithManhattanHeuristicMatchesDijkstra(t *testing.T) {
	g, coord := buildGridGraph()
	w := graph.UniformCost()
	tx, ty := coord(8)
	h := func(v int) float64 {
		vx, vy := coord(v)
		return math.Abs(float64(tx-vx)) + math.Abs(float64(ty-vy))
	}

	p, wt, err := AStar(g, w, 0, 8, h)
	require.NoError(t, err)
	require.Equal(t, 4.0, wt)
	require.Equal(t, 4, p.Len())
}

func TestAStarRejectsUnknownVertex(t *testing.T) {
	g, _ := buildGridGraph()
	_, _, err := AStar(g, graph.UniformCost(), 0, 99, nil)
	require.Error(t, err)
	var nsv *NoSuchVertexError
	require.ErrorAs(t, err, &nsv)
}
