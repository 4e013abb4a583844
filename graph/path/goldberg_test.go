// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorgraph/shortestpaths/graph"
)

func TestGoldbergScalingMatchesBellmanFord(t *testing.T) {
	b := graph.NewBuilder(4, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(0, 3)
	g := b.Build()
	weights := []int64{1, -2, 2, 4}
	w := graph.IntegerWeight(func(e int) int64 { return weights[e] })

	gold, err := GoldbergScaling(g, w, 0)
	require.NoError(t, err)
	bf, err := BellmanFord(g, w, 0)
	require.NoError(t, err)

	for v := 0; v < g.N(); v++ {
		gd, _ := gold.Dist(v)
		bd, _ := bf.Dist(v)
		require.InDelta(t, bd, gd, 1e-9)
	}
}

func TestGoldbergScalingOnNonNegativeDelegatesToDial(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	g := b.Build()
	weights := []int64{3, 4}
	w := graph.IntegerWeight(func(e int) int64 { return weights[e] })

	res, err := GoldbergScaling(g, w, 0)
	require.NoError(t, err)
	d2, _ := res.Dist(2)
	require.Equal(t, 7.0, d2)
}

func TestGoldbergScalingRequiresIntegerWeight(t *testing.T) {
	b := graph.NewBuilder(2, true)
	b.AddEdge(0, 1)
	g := b.Build()
	w := graph.RealWeight(func(e int) float64 { return 1.5 })
	_, err := GoldbergScaling(g, w, 0)
	require.Error(t, err)
	var nie *NonIntegerWeightError
	require.ErrorAs(t, err, &nie)
}
