// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/vectorgraph/shortestpaths/graph"

// BellmanFord computes the shortest-path tree from source on a
// directed graph with possibly-negative edge weights (§4.2.5). It
// returns a *NegativeCycleError if a cycle reachable from source sums
// to a negative weight.
//
// Two relaxation modes alternate adaptively, grounded on
// graph/path/bellman_ford_moore.go's queue-based "only re-relax
// vertices whose distance changed" approach, extended with the
// classic full-scan fallback §4.2.5 calls for: if the modified
// frontier grows past n/4 of the vertices after a round, the
// algorithm falls back to scanning every edge for a doubling gap of
// rounds (1, 2, 4, ...) before retrying the frontier mode.
func BellmanFord(g graph.Graph, w graph.WeightFunc, source int) (*SSSPResult, error) {
	if !g.IsDirected() {
		return nil, &StructuralError{Kind: NotDirected}
	}
	if source < 0 || source >= g.N() {
		return nil, &NoSuchVertexError{Index: source}
	}
	res := newSSSPResult(g, source)
	n := g.N()

	relaxEdge := func(e int) bool {
		if !w.IsValid(e) {
			return false
		}
		ed := g.Edge(e)
		if !res.Reachable(ed.Src) {
			return false
		}
		joint := res.dist[ed.Src] + w.Weight(e)
		if joint < res.dist[ed.Dst] {
			res.dist[ed.Dst] = joint
			res.backtrack[ed.Dst] = e
			return true
		}
		return false
	}

	frontier := []int{source}
	onFrontier := make([]bool, n)
	onFrontier[source] = true

	classicGap := 0   // remaining classic-mode rounds forced by the switch heuristic.
	nextGapLen := 1    // doubling gap length (1, 2, 4, ...).
	for round := 0; round < n; round++ {
		var changed []int
		if classicGap == 0 && len(frontier) > 0 {
			// Modified-frontier mode: relax only the outgoing edges
			// of vertices whose distance changed last round.
			mark := make([]bool, n)
			for _, u := range frontier {
				onFrontier[u] = false
				for _, e := range g.OutEdges(u) {
					if relaxEdge(e) {
						v := g.Edge(e).Dst
						if !mark[v] {
							mark[v] = true
							changed = append(changed, v)
						}
					}
				}
			}
			if len(changed) > n/4 {
				// The frontier grew too large to stay cheap; fall
				// back to classic full scans for a while.
				classicGap = nextGapLen
				nextGapLen *= 2
			}
		} else {
			// Classic mode: scan every edge once.
			for e := 0; e < g.M(); e++ {
				if relaxEdge(e) {
					v := g.Edge(e).Dst
					changed = append(changed, v)
				}
			}
			if classicGap > 0 {
				classicGap--
			}
		}

		if len(changed) == 0 {
			return res, nil
		}
		frontier = frontier[:0]
		seen := make(map[int]bool, len(changed))
		for _, v := range changed {
			if !seen[v] {
				seen[v] = true
				frontier = append(frontier, v)
				onFrontier[v] = true
			}
		}
	}

	// n rounds have passed and distances are still improving: a
	// negative cycle reachable from source exists. Find one edge that
	// can still relax, then walk backtrack edges from its head until a
	// vertex repeats.
	for e := 0; e < g.M(); e++ {
		if relaxEdge(e) {
			ed := g.Edge(e)
			cyc, weight := extractNegativeCycle(g, w, res, ed.Dst)
			return nil, &NegativeCycleError{Cycle: cyc, Weight: weight}
		}
	}
	return res, nil
}

// extractNegativeCycle walks backtrack edges from v until a vertex
// repeats, which closes a negative cycle (§4.2.5), and returns the
// cycle as a Path plus its total weight.
func extractNegativeCycle(g graph.Graph, w graph.WeightFunc, res *SSSPResult, v int) (Path, float64) {
	// n+1 steps from any vertex are guaranteed to repeat a vertex.
	seen := make(map[int]int)
	cur := v
	order := []int{cur}
	seen[cur] = 0
	for {
		e := res.backtrack[cur]
		if e < 0 {
			break
		}
		var prev int
		if g.IsDirected() {
			prev = g.Edge(e).Src
		} else {
			prev = g.Other(e, cur)
		}
		cur = prev
		if idx, ok := seen[cur]; ok {
			// order[idx:] (in reverse) are the cycle vertices.
			cycleVerts := append([]int(nil), order[idx:]...)
			for i, j := 0, len(cycleVerts)-1; i < j; i, j = i+1, j-1 {
				cycleVerts[i], cycleVerts[j] = cycleVerts[j], cycleVerts[i]
			}
			return cycleFromVertices(g, w, cycleVerts)
		}
		seen[cur] = len(order)
		order = append(order, cur)
	}
	return Path{}, 0
}

// cycleFromVertices re-derives the edge sequence of a cycle given its
// vertex sequence (first == last implicitly, by construction of the
// caller) by re-scanning each vertex's outgoing edges for the cheapest
// connection to the next vertex under w.
func cycleFromVertices(g graph.Graph, w graph.WeightFunc, verts []int) (Path, float64) {
	var edges []int
	var total float64
	for i := 0; i < len(verts); i++ {
		u := verts[i]
		v := verts[(i+1)%len(verts)]
		best := -1
		var bestW float64
		for _, e := range g.OutEdges(u) {
			if neighborVia(g, e, u) != v {
				continue
			}
			wt := w.Weight(e)
			if best < 0 || wt < bestW {
				best = e
				bestW = wt
			}
		}
		edges = append(edges, best)
		total += bestW
	}
	return Path{Source: verts[0], Target: verts[0], Edges: edges}, total
}
