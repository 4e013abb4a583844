// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorgraph/shortestpaths/graph"
)

func TestRunInfersCardinalityProfile(t *testing.T) {
	b := graph.NewBuilder(4, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(0, 3)
	g := b.Build()

	res, err := Run(g, graph.UniformCost(), 0, AutoProfile)
	require.NoError(t, err)
	d2, _ := res.Dist(2)
	require.Equal(t, 2.0, d2)
}

func TestRunInfersNonNegativeIntProfile(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	g := b.Build()
	ws := []int64{3, 4}
	w := graph.IntegerWeight(func(e int) int64 { return ws[e] })

	res, err := Run(g, w, 0, AutoProfile)
	require.NoError(t, err)
	d2, _ := res.Dist(2)
	require.Equal(t, 7.0, d2)
}

func TestRunInfersRealGeneralProfileOnNegativeWeights(t *testing.T) {
	b := graph.NewBuilder(4, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(0, 3)
	g := b.Build()
	weights := []float64{1, -2, 2, 4}
	w := graph.RealWeight(func(e int) float64 { return weights[e] })

	res, err := Run(g, w, 0, AutoProfile)
	require.NoError(t, err)
	d2, _ := res.Dist(2)
	require.InDelta(t, -1, d2, 1e-9)
}

func TestRunExplicitDAGProfile(t *testing.T) {
	b := graph.NewBuilder(4, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(0, 3)
	g := b.Build()
	weights := []float64{2, -5, 1, 10}
	w := graph.RealWeight(func(e int) float64 { return weights[e] })

	res, err := Run(g, w, 0, DAGProfile)
	require.NoError(t, err)
	d2, _ := res.Dist(2)
	require.InDelta(t, -3, d2, 1e-9)
}
