// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/heap"
)

// Bidirectional finds a shortest path from source to target on a
// non-negative-weight graph by growing two simultaneous Dijkstra
// searches, one forward from source and one backward from target
// along reversed edges, until they meet (§4.4.1): each step settles
// one vertex from whichever frontier currently has the smaller top
// key, and the search stops once the sum of the two frontiers' top
// keys reaches the best complete source-target path discovered so
// far, the standard bidirectional-Dijkstra optimality criterion.
//
// Grounded on graph/path/dijkstra.go's single-direction relaxation
// loop, mirrored into a backward pass over InEdges (the same
// reversed-graph trick Johnson's auxiliary-vertex reweighting and
// Goldberg's fake-source layering both use to reason about a graph
// from a different vantage point), and extended with the meet-in-the-
// middle bookkeeping (§4.4.1) the single-direction engine has no need
// for.
func Bidirectional(g graph.Graph, w graph.WeightFunc, source, target int) (Path, float64, error) {
	n := g.N()
	if source < 0 || source >= n {
		return Path{}, 0, &NoSuchVertexError{Index: source}
	}
	if target < 0 || target >= n {
		return Path{}, 0, &NoSuchVertexError{Index: target}
	}
	if source == target {
		return Path{Source: source, Target: target}, 0, nil
	}

	distF := make([]float64, n)
	distB := make([]float64, n)
	backF := make([]int, n)
	backB := make([]int, n)
	settledF := make([]bool, n)
	settledB := make([]bool, n)
	for v := 0; v < n; v++ {
		distF[v] = math.Inf(1)
		distB[v] = math.Inf(1)
		backF[v] = -1
		backB[v] = -1
	}
	distF[source] = 0
	distB[target] = 0

	qF := heap.New(n)
	qB := heap.New(n)
	qF.Insert(source, 0, 0)
	qB.Insert(target, 0, 0)

	mu := math.Inf(1)
	meet := -1

	relax := func(u int, forward bool) {
		var dist []float64
		var back []int
		var settled []bool
		var q *heap.Indexed
		if forward {
			dist, back, settled, q = distF, backF, settledF, qF
		} else {
			dist, back, settled, q = distB, backB, settledB, qB
		}
		edges := g.OutEdges(u)
		if !forward {
			edges = g.InEdges(u)
		}
		for _, e := range edges {
			if !w.IsValid(e) {
				continue
			}
			wt := w.Weight(e)
			if wt < 0 {
				continue // Bidirectional assumes non-negative weights; caller's contract.
			}
			var v int
			if forward {
				v = neighborVia(g, e, u)
			} else if g.IsDirected() {
				v = g.Edge(e).Src
			} else {
				v = g.Other(e, u)
			}
			if settled[v] {
				continue
			}
			joint := dist[u] + wt
			if joint < dist[v] {
				dist[v] = joint
				back[v] = e
				other := distB
				if !forward {
					other = distF
				}
				if c := joint + other[v]; c < mu {
					mu, meet = c, v
				}
				if q.Contains(v) {
					q.DecreaseKey(v, joint, 0)
				} else {
					q.Insert(v, joint, 0)
				}
			}
		}
	}

	for qF.Len() != 0 && qB.Len() != 0 {
		topF, topB := qF.Key(qF.Peek()), qB.Key(qB.Peek())
		if !math.IsInf(mu, 1) && topF+topB >= mu {
			break
		}

		if topF <= topB {
			u := qF.ExtractMin()
			settledF[u] = true
			if settledB[u] {
				if c := distF[u] + distB[u]; c < mu {
					mu, meet = c, u
				}
			}
			relax(u, true)
		} else {
			u := qB.ExtractMin()
			settledB[u] = true
			if settledF[u] {
				if c := distF[u] + distB[u]; c < mu {
					mu, meet = c, u
				}
			}
			relax(u, false)
		}
	}

	if meet < 0 {
		return Path{}, 0, &NoSuchVertexError{Index: target}
	}

	var edges []int
	cur := meet
	for cur != source {
		e := backF[cur]
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

	cur = meet
	for cur != target {
		e := backB[cur]
		edges = append(edges, e)
		cur = neighborVia(g, e, cur)
	}

	return Path{Source: source, Target: target, Edges: edges}, mu, nil
}
