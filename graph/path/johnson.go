// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"golang.org/x/sync/errgroup"

	"github.com/vectorgraph/shortestpaths/graph"
)

// johnsonParallelThreshold is the minimum number of sources before
// Johnson dispatches its per-source Dijkstra passes across goroutines.
// Below this many sources, goroutine setup overhead outweighs the
// saving (§4.3.2).
const johnsonParallelThreshold = 32

// Johnson computes all-pairs shortest paths on a graph with possibly
// negative (but not negatively-cycled) real edge weights in
// O(|V||E| + |V|^2 log|V|) (§4.3.2): a single Bellman-Ford pass from an
// auxiliary vertex connected to everything by zero-weight edges
// produces a feasible potential h; reweighting by h makes every edge
// non-negative, and a Dijkstra pass per source recovers the true
// all-pairs distances by undoing the potential shift.
//
// Grounded on graph/path/johnson_apsp.go's johnsonWeightAdjuster
// (auxiliary vertex + BellmanFord-for-potentials + per-source
// Dijkstra + "-h(u)+h(v)" unadjustment), adapted to dense integer
// indices (the auxiliary vertex is simply index n, never a randomly
// chosen free node id, since the dense model always has one free
// index) and to dispatch per-source Dijkstra passes across goroutines
// via golang.org/x/sync/errgroup once the source count justifies it,
// which the node-ID-keyed teacher version does not do.
//
// Johnson returns a *NegativeCycleError if g has a negative cycle.
func Johnson(g graph.Graph, w graph.WeightFunc) (*APSPResult, error) {
	if !g.IsDirected() {
		return nil, &StructuralError{Kind: NotDirected}
	}
	h, err := johnsonPotentials(g, w)
	if err != nil {
		return nil, err
	}
	return johnsonAllPairs(g, w, h, nil)
}

// JohnsonSubset restricts the all-pairs computation to shortest paths
// originating from sources, still computing distances to every vertex
// in g (§13's supplemented restricted-source APSP query surface): a
// caller that only ever needs paths from a handful of known sources
// saves the |V|-|sources| unused Dijkstra passes Johnson would
// otherwise run.
func JohnsonSubset(g graph.Graph, w graph.WeightFunc, sources []int) (*APSPResult, error) {
	if !g.IsDirected() {
		return nil, &StructuralError{Kind: NotDirected}
	}
	for _, s := range sources {
		if s < 0 || s >= g.N() {
			return nil, &NoSuchVertexError{Index: s}
		}
	}
	h, err := johnsonPotentials(g, w)
	if err != nil {
		return nil, err
	}
	return johnsonAllPairs(g, w, h, sources)
}

// johnsonPotentials runs Bellman-Ford from an auxiliary vertex with a
// zero-weight edge to every vertex of g, returning the resulting
// distance array as the Johnson potential h.
func johnsonPotentials(g graph.Graph, w graph.WeightFunc) ([]float64, error) {
	n := g.N()
	aux := graph.NewBuilder(n+1, true)
	for e := 0; e < g.M(); e++ {
		ed := g.Edge(e)
		aux.AddEdge(ed.Src, ed.Dst)
		if !g.IsDirected() {
			aux.AddEdge(ed.Dst, ed.Src)
		}
	}
	auxSrc := n
	for v := 0; v < n; v++ {
		aux.AddEdge(auxSrc, v)
	}
	ag := aux.Build()

	// Directed graphs contribute one aux edge per original edge, in
	// order, so aux index e maps straight back to original edge e.
	// Undirected graphs contribute two consecutive aux edges (Src->Dst
	// then Dst->Src) per original edge, so aux index e maps back to
	// original edge e/2.
	dupStride := 1
	if !g.IsDirected() {
		dupStride = 2
	}
	auxWeight := graph.RealWeight(func(e int) float64 {
		if e >= g.M()*dupStride {
			return 0 // the zero-weight auxSrc fan-out edges.
		}
		return w.Weight(e / dupStride)
	})

	res, err := BellmanFord(ag, auxWeight, auxSrc)
	if err != nil {
		return nil, err
	}
	h := make([]float64, n)
	for v := 0; v < n; v++ {
		h[v] = res.dist[v]
	}
	return h, nil
}

// johnsonAllPairs runs the reweighted per-source Dijkstra passes and
// undoes the potential shift. sources of nil means every vertex.
func johnsonAllPairs(g graph.Graph, w graph.WeightFunc, h []float64, sources []int) (*APSPResult, error) {
	reweighted := graph.RealWeight(func(e int) float64 {
		ed := g.Edge(e)
		return w.Weight(e) + h[ed.Src] - h[ed.Dst]
	})

	res := newAPSPResult(g, sources)
	rows := sources
	if rows == nil {
		rows = make([]int, g.N())
		for i := range rows {
			rows[i] = i
		}
	}

	run := func(i int) error {
		src := rows[i]
		dres, err := Dijkstra(g, reweighted, src)
		if err != nil {
			return err
		}
		for v := 0; v < g.N(); v++ {
			if !dres.Reachable(v) {
				continue
			}
			res.dist.Set(i, v, dres.dist[v]-h[src]+h[v])
			res.firstEdge[i][v] = firstEdgeFromBacktrack(g, dres, src, v)
		}
		return nil
	}

	if len(rows) < johnsonParallelThreshold {
		for i := range rows {
			if err := run(i); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	var grp errgroup.Group
	for i := range rows {
		i := i
		grp.Go(func() error { return run(i) })
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// firstEdgeFromBacktrack walks dres's backtrack chain from v back to
// src and returns the edge incident on src, i.e. the first edge of the
// src-to-v shortest path. Returns -1 if src == v.
func firstEdgeFromBacktrack(g graph.Graph, dres *SSSPResult, src, v int) int {
	if src == v {
		return -1
	}
	cur := v
	e := dres.backtrack[cur]
	for {
		var prev int
		if g.IsDirected() {
			prev = g.Edge(e).Src
		} else {
			prev = g.Other(e, cur)
		}
		if prev == src {
			return e
		}
		cur = prev
		e = dres.backtrack[cur]
	}
}
