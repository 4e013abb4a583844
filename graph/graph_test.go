// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderDirected(t *testing.T) {
	b := NewBuilder(3, true)
	e0 := b.AddEdge(0, 1)
	e1 := b.AddEdge(1, 2)
	g := b.Build()

	require.Equal(t, 3, g.N())
	require.Equal(t, 2, g.M())
	require.True(t, g.IsDirected())
	require.Equal(t, []int{e0}, g.OutEdges(0))
	require.Equal(t, []int{e1}, g.OutEdges(1))
	require.Empty(t, g.OutEdges(2))
	require.Equal(t, []int{e0}, g.InEdges(1))
	require.Empty(t, g.InEdges(0))
	require.Equal(t, 1, g.Other(e0, 0))
	require.Equal(t, 0, g.Other(e0, 1))
}

func TestBuilderUndirected(t *testing.T) {
	b := NewBuilder(3, false)
	e0 := b.AddEdge(0, 1)
	g := b.Build()

	require.False(t, g.IsDirected())
	require.Equal(t, []int{e0}, g.OutEdges(0))
	require.Equal(t, []int{e0}, g.OutEdges(1))
	require.Equal(t, g.OutEdges(0), g.InEdges(0))
}

func TestSelfEdges(t *testing.T) {
	b := NewBuilder(2, true)
	b.AddEdge(0, 1)
	loop := b.AddEdge(1, 1)
	g := b.Build()

	require.Equal(t, []int{loop}, g.SelfEdges())
}

func TestOtherPanicsOnNonEndpoint(t *testing.T) {
	b := NewBuilder(3, true)
	e0 := b.AddEdge(0, 1)
	g := b.Build()
	require.Panics(t, func() { g.Other(e0, 2) })
}

func TestWeightFuncKinds(t *testing.T) {
	uniform := UniformCost()
	require.Equal(t, Cardinality, uniform.Kind())
	require.Equal(t, 1.0, uniform.Weight(0))
	wi, ok := uniform.WeightInt(0)
	require.True(t, ok)
	require.EqualValues(t, 1, wi)

	real := RealWeight(func(e int) float64 { return 2.5 })
	require.Equal(t, Real, real.Kind())
	require.Equal(t, 2.5, real.Weight(0))
	_, ok = real.WeightInt(0)
	require.False(t, ok)

	integer := IntegerWeight(func(e int) int64 { return 7 })
	require.Equal(t, Integer, integer.Kind())
	require.Equal(t, 7.0, integer.Weight(0))
	wi, ok = integer.WeightInt(0)
	require.True(t, ok)
	require.EqualValues(t, 7, wi)
}

func TestIsValidRejectsNaNAndInf(t *testing.T) {
	nanW := RealWeight(func(e int) float64 { return nan() })
	require.False(t, nanW.IsValid(0))

	infW := RealWeight(func(e int) float64 { return inf() })
	require.False(t, infW.IsValid(0))

	finite := RealWeight(func(e int) float64 { return 3 })
	require.True(t, finite.IsValid(0))
}

func nan() float64 { var z float64; return z / z }
func inf() float64 { var z float64; return 1 / z }
