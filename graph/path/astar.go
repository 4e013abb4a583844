// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/heap"
)

// Heuristic estimates the remaining cost from v to the search goal. An
// admissible heuristic never overestimates the true remaining cost; a
// consistent one additionally satisfies h(u) <= w(u,v) + h(v) for
// every edge (u,v), which lets A* settle each vertex at most once
// (§4.4.2).
type Heuristic func(v int) float64

// NullHeuristic is the trivially admissible and consistent heuristic
// h(v) = 0 for all v; A* with NullHeuristic degenerates to Dijkstra.
func NullHeuristic(int) float64 { return 0 }

// AStar finds a shortest path from source to target using a
// heuristic-guided priority order (§4.4.2): the open set is ordered by
// f(v) = g(v) + h(v), the known distance from source plus the
// heuristic estimate to target, so vertices the heuristic judges
// promising are explored first.
//
// Grounded on path/a_star.go's gscore/fscore open-set loop, adapted
// from that file's container/heap no-decrease queue (push a new copy,
// lazily skip stale pops keyed by a node-ID map) to the addressable
// heap.Indexed this module's Dijkstra also uses, and from an
// open/visited node-ID map pair to a plain settled []bool slice, since
// vertices are already dense indices.
//
// Like Dijkstra, AStar returns a NegativeEdgeWeightError the moment
// relaxation observes a negative edge. It does not validate h: if h is
// not admissible, the returned path is not guaranteed shortest.
func AStar(g graph.Graph, w graph.WeightFunc, source, target int, h Heuristic) (Path, float64, error) {
	if source < 0 || source >= g.N() {
		return Path{}, 0, &NoSuchVertexError{Index: source}
	}
	if target < 0 || target >= g.N() {
		return Path{}, 0, &NoSuchVertexError{Index: target}
	}
	if h == nil {
		h = NullHeuristic
	}

	n := g.N()
	gscore := make([]float64, n)
	backtrack := make([]int, n)
	settled := make([]bool, n)
	for v := range gscore {
		gscore[v] = -1
		backtrack[v] = -1
	}
	gscore[source] = 0

	q := heap.New(n)
	q.Insert(source, h(source), 0)

	for q.Len() != 0 {
		u := q.ExtractMin()
		if settled[u] {
			continue
		}
		settled[u] = true
		if u == target {
			break
		}
		for _, e := range g.OutEdges(u) {
			if !w.IsValid(e) {
				continue
			}
			if w.Weight(e) < 0 {
				return Path{}, 0, &NegativeEdgeWeightError{Edge: e}
			}
			v := neighborVia(g, e, u)
			if settled[v] {
				continue
			}
			joint := gscore[u] + w.Weight(e)
			if gscore[v] < 0 || joint < gscore[v] {
				gscore[v] = joint
				backtrack[v] = e
				f := joint + h(v)
				if q.Contains(v) {
					q.DecreaseKey(v, f, 0)
				} else {
					q.Insert(v, f, 0)
				}
			}
		}
	}

	if gscore[target] < 0 {
		return Path{}, 0, &NoSuchVertexError{Index: target}
	}
	var edges []int
	cur := target
	for cur != source {
		e := backtrack[cur]
		edges = append(edges, e)
		if g.IsDirected() {
			cur = g.Edge(e).Src
		} else {
			cur = g.Other(e, cur)
		}
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Path{Source: source, Target: target, Edges: edges}, gscore[target], nil
}
