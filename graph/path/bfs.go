// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/vectorgraph/shortestpaths/graph"

// BFS computes the cardinality-weighted (§4.2.1) shortest-path tree
// from source by layered breadth-first search: dist[v] is the layer
// in which v is first discovered, i.e. the edge count of the shortest
// path to v.
func BFS(g graph.Graph, source int) (*SSSPResult, error) {
	if source < 0 || source >= g.N() {
		return nil, &NoSuchVertexError{Index: source}
	}
	res := newSSSPResult(g, source)

	queue := make([]int, 0, g.N())
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range g.OutEdges(u) {
			v := neighborVia(g, e, u)
			if !res.Reachable(v) {
				res.dist[v] = res.dist[u] + 1
				res.backtrack[v] = e
				queue = append(queue, v)
			}
		}
	}
	return res, nil
}

// neighborVia returns the endpoint of edge e reached when traversing
// it starting at u: for a directed graph this is Dst (e must have
// Src==u); for an undirected graph it is whichever endpoint is not u.
func neighborVia(g graph.Graph, e, u int) int {
	if g.IsDirected() {
		return g.Edge(e).Dst
	}
	return g.Other(e, u)
}
