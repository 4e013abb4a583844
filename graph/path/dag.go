// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/topo"
)

// DAGShortestPath computes the shortest-path tree from source on a
// directed acyclic graph in linear time (§4.2.4): compute a
// topological order, then relax each vertex's outgoing edges once, in
// that order, starting from source's position. Works for arbitrary
// (including negative) edge weights because no vertex is ever
// reconsidered once its predecessors have all been processed.
//
// DAGShortestPath requires g to be directed and acyclic; it returns a
// *StructuralError (NotDirected or HasCycle) otherwise.
func DAGShortestPath(g graph.Graph, w graph.WeightFunc, source int) (*SSSPResult, error) {
	if !g.IsDirected() {
		return nil, &StructuralError{Kind: NotDirected}
	}
	if source < 0 || source >= g.N() {
		return nil, &NoSuchVertexError{Index: source}
	}
	order, err := topo.Sort(g)
	if err != nil {
		return nil, &StructuralError{Kind: HasCycle}
	}

	res := newSSSPResult(g, source)

	start := -1
	for i, v := range order {
		if v == source {
			start = i
			break
		}
	}
	if start < 0 {
		return res, nil // source has no outgoing reach; unreachable is fine.
	}

	for _, u := range order[start:] {
		if !res.Reachable(u) {
			continue
		}
		for _, e := range g.OutEdges(u) {
			if !w.IsValid(e) {
				continue
			}
			v := g.Edge(e).Dst
			joint := res.dist[u] + w.Weight(e)
			if joint < res.dist[v] {
				res.dist[v] = joint
				res.backtrack[v] = e
			}
		}
	}
	return res, nil
}
