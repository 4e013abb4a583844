// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/bitset"
	"github.com/vectorgraph/shortestpaths/graph/internal/heap"
)

// Dijkstra computes the non-negative-weight shortest-path tree from
// source (§4.2.2). It returns a NegativeEdgeWeightError the moment
// relaxation observes a negative edge.
func Dijkstra(g graph.Graph, w graph.WeightFunc, source int) (*SSSPResult, error) {
	if source < 0 || source >= g.N() {
		return nil, &NoSuchVertexError{Index: source}
	}
	return dijkstraCore(g, w, source, -1, nil, nil)
}

// dijkstraCore is the shared engine behind Dijkstra and the
// k-shortest-paths baseline replacement subroutine (the bidirectional
// S-T search and Voronoi run their own relaxation loops). target, when >= 0, stops relaxation the moment it is
// settled (§4.4.1's DijkstraFromTo-style early exit); excludeEdges and
// excludeVertices, when non-nil, mask out edges/vertices the
// replacement subroutine must avoid (§4.6.3).
//
// Grounded on graph/path/dijkstra.go's priority-queue relaxation loop,
// adapted to use an addressable IndexedHeap (decrease-key) instead of
// container/heap's no-decrease "push a new entry, skip stale pops"
// idiom, since §4.1 specifies IndexedHeap as a first-class component.
func dijkstraCore(g graph.Graph, w graph.WeightFunc, source, target int, excludeEdges, excludeVertices *bitset.Bitmap) (*SSSPResult, error) {
	res := newSSSPResult(g, source)
	if excludeVertices != nil && excludeVertices.Has(source) {
		return res, nil
	}

	q := heap.New(g.N())
	q.Insert(source, 0, 0)

	for q.Len() != 0 {
		u := q.ExtractMin()
		if u == target {
			break
		}
		for _, e := range g.OutEdges(u) {
			if excludeEdges != nil && excludeEdges.Has(e) {
				continue
			}
			v := neighborVia(g, e, u)
			if excludeVertices != nil && excludeVertices.Has(v) {
				continue
			}
			if !w.IsValid(e) {
				continue
			}
			wt := w.Weight(e)
			if wt < 0 {
				return nil, &NegativeEdgeWeightError{Edge: e}
			}
			joint := res.dist[u] + wt
			if joint < res.dist[v] {
				res.dist[v] = joint
				res.backtrack[v] = e
				if q.Contains(v) {
					q.DecreaseKey(v, joint, 0)
				} else {
					q.Insert(v, joint, 0)
				}
			}
		}
	}
	return res, nil
}
