// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/vectorgraph/shortestpaths/graph"

// SCC returns the strongly connected components of the directed graph
// g using Tarjan's algorithm, adapted from a node-ID map-based
// bookkeeping scheme to plain index-addressed slices (the
// dense [0,n) domain makes those maps unnecessary). Goldberg scaling
// (§4.2.6) uses this to find negative
// cycles within the zero-or-negative-weight subgraph of each scaling
// phase.
func SCC(g graph.Graph) [][]int {
	if !g.IsDirected() {
		panic("topo: SCC requires a directed graph")
	}
	t := &tarjan{
		g:       g,
		index:   make([]int, g.N()),
		lowLink: make([]int, g.N()),
		onStack: make([]bool, g.N()),
	}
	for v := 0; v < g.N(); v++ {
		if t.index[v] == 0 {
			t.strongconnect(v)
		}
	}
	return t.sccs
}

type tarjan struct {
	g       graph.Graph
	counter int
	index   []int
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) strongconnect(v int) {
	t.counter++
	t.index[v] = t.counter
	t.lowLink[v] = t.counter
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, e := range t.g.OutEdges(v) {
		w := t.g.Edge(e).Dst
		switch {
		case t.index[w] == 0:
			t.strongconnect(w)
			if t.lowLink[w] < t.lowLink[v] {
				t.lowLink[v] = t.lowLink[w]
			}
		case t.onStack[w]:
			if t.index[w] < t.lowLink[v] {
				t.lowLink[v] = t.index[w]
			}
		}
	}

	if t.lowLink[v] == t.index[v] {
		var scc []int
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}
