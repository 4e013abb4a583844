// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorgraph/shortestpaths/graph"
)

func TestSortDAG(t *testing.T) {
	b := graph.NewBuilder(4, true)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(1, 3)
	b.AddEdge(2, 3)
	g := b.Build()

	order, err := Sort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[int]int, 4)
	for i, v := range order {
		pos[v] = i
	}
	require.Less(t, pos[0], pos[1])
	require.Less(t, pos[0], pos[2])
	require.Less(t, pos[1], pos[3])
	require.Less(t, pos[2], pos[3])
}

func TestSortCycleIsUnorderable(t *testing.T) {
	b := graph.NewBuilder(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	g := b.Build()

	_, err := Sort(g)
	require.Error(t, err)
	var uo Unorderable
	require.ErrorAs(t, err, &uo)
}

func TestSCCFindsCycleAndSingletons(t *testing.T) {
	b := graph.NewBuilder(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	g := b.Build()

	sccs := SCC(g)
	var sizes []int
	for _, c := range sccs {
		sizes = append(sizes, len(c))
	}
	// One 3-cycle and two singletons.
	total := 0
	three := 0
	for _, s := range sizes {
		total += s
		if s == 3 {
			three++
		}
	}
	require.Equal(t, 5, total)
	require.Equal(t, 1, three)
}
