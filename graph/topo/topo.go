// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo implements the topological-ordering and
// strongly-connected-component primitives the shortest-paths core
// reuses as subroutines: Kahn-style topological sort backs the DAG
// relaxation SSSP variant (§4.2.4), and SCC detection backs negative
// cycle localization in Goldberg scaling (§4.2.6).
package topo

import "github.com/vectorgraph/shortestpaths/graph"

// Unorderable reports that a graph is not acyclic; it carries the
// vertices that make up each offending strongly-connected component,
// in the order SCC reports them (not sorted by index).
type Unorderable [][]int

func (e Unorderable) Error() string {
	n := 0
	for _, c := range e {
		n += len(c)
	}
	return "topo: no topological ordering: cyclic components present"
}

// Sort computes a Kahn-style topological order of g's vertices. It
// returns Unorderable if g is not a DAG.
//
// Grounded on graph/topo/topo.go's Sort, adapted from node-ID sorted
// SCCs to an index-addressed Kahn sweep: Kahn's algorithm is the more
// natural fit for a dense-index graph because it needs no auxiliary
// node-identity bookkeeping, and it is the formulation §4.2.4 names
// explicitly ("Kahn-style linear topological order").
func Sort(g graph.Graph) ([]int, error) {
	if !g.IsDirected() {
		panic("topo: Sort requires a directed graph")
	}
	n := g.N()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		for _, e := range g.OutEdges(v) {
			indeg[g.Edge(e).Dst]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, e := range g.OutEdges(v) {
			ed := g.Edge(e)
			if ed.Src != v || ed.Src == ed.Dst {
				continue
			}
			indeg[ed.Dst]--
			if indeg[ed.Dst] == 0 {
				queue = append(queue, ed.Dst)
			}
		}
	}

	if len(order) != n {
		return order, cyclicRemainder(g, order)
	}
	return order, nil
}

// cyclicRemainder builds the Unorderable error for the vertices Sort
// could not place, reporting them grouped by strongly connected
// component.
func cyclicRemainder(g graph.Graph, placed []int) error {
	seen := make([]bool, g.N())
	for _, v := range placed {
		seen[v] = true
	}
	remaining := graph.NewBuilder(g.N(), true)
	for e := 0; e < g.M(); e++ {
		ed := g.Edge(e)
		if !seen[ed.Src] && !seen[ed.Dst] {
			remaining.AddEdge(ed.Src, ed.Dst)
		}
	}
	sccs := SCC(remaining.Build())
	var out Unorderable
	for _, c := range sccs {
		if len(c) > 1 {
			out = append(out, c)
		}
	}
	if out == nil {
		// A lone self-loop vertex is its own 1-element "cycle".
		for v := range seen {
			if !seen[v] {
				out = append(out, []int{v})
			}
		}
	}
	return out
}
