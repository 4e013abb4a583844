// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path implements the shortest-paths algorithm family: the
// SSSP family (BFS, Dijkstra, Dial, DAG relaxation, Bellman-Ford,
// Goldberg scaling), all-pairs shortest paths (Floyd-Warshall,
// Johnson), single-pair S-T search (bidirectional meet, A*), Voronoi
// partitions, and k-shortest-simple-paths enumeration via a
// compressed paths tree. It is laid out as one package with many small
// files, each owning one algorithm or result type.
package path

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/vectorgraph/shortestpaths/graph"
)

// relTol is the relative-scale factor in the scale-sensitive epsilon
// comparisons §4.2 requires: ε = max(|a|,|b|)·1e-6.
const relTol = 1e-6

// equalWithinTolerance reports whether a and b agree within the
// scale-sensitive tolerance required of real-weight comparisons.
// Integer comparisons (done directly on int64 by callers) are exact
// and never go through this helper.
func equalWithinTolerance(a, b float64) bool {
	return floats.EqualWithinAbsOrRel(a, b, 0, relTol)
}

// lessWithinTolerance reports whether a is smaller than b by more
// than the tolerance, i.e. a is genuinely less, not just a floating
// point artifact of an equal value.
func lessWithinTolerance(a, b float64) bool {
	return a < b && !equalWithinTolerance(a, b)
}

// Path is an immutable ordered sequence of edge indices, together with
// the two endpoints it connects. A zero-length Path with Source ==
// Target represents the trivial path from a vertex to itself.
type Path struct {
	Source, Target int
	Edges          []int
}

// Len returns the number of edges in the path.
func (p Path) Len() int { return len(p.Edges) }

// Weight returns the path's total weight under w.
func (p Path) Weight(w graph.WeightFunc) float64 {
	var total float64
	for _, e := range p.Edges {
		total += w.Weight(e)
	}
	return total
}

// Vertices reconstructs the vertex sequence the path visits, starting
// at Source and ending at Target, using g to resolve each edge's far
// endpoint.
func (p Path) Vertices(g graph.Graph) []int {
	vs := make([]int, 0, len(p.Edges)+1)
	v := p.Source
	vs = append(vs, v)
	for _, e := range p.Edges {
		v = g.Other(e, v)
		vs = append(vs, v)
	}
	return vs
}

// IsSimple reports whether the path visits every vertex at most once
// (§8 K-SSP laws: "Simplicity").
func (p Path) IsSimple(g graph.Graph) bool {
	vs := p.Vertices(g)
	seen := make(map[int]bool, len(vs))
	for _, v := range vs {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// SSSPResult is the immutable result of a single-source shortest-path
// computation (§3). dist[v] is the shortest distance from the source
// to v (+Inf if unreachable); backtrack[v] is the edge index last
// used to reach v, or -1 if v is the source or unreachable.
type SSSPResult struct {
	g         graph.Graph
	source    int
	dist      []float64
	backtrack []int
}

func newSSSPResult(g graph.Graph, source int) *SSSPResult {
	n := g.N()
	dist := make([]float64, n)
	backtrack := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		backtrack[v] = -1
	}
	dist[source] = 0
	return &SSSPResult{g: g, source: source, dist: dist, backtrack: backtrack}
}

// Source returns the originating vertex of this result.
func (r *SSSPResult) Source() int { return r.source }

// Dist returns the shortest-path weight from the source to v, or an
// error if v is out of range. An unreachable v returns +Inf, nil.
func (r *SSSPResult) Dist(v int) (float64, error) {
	if v < 0 || v >= len(r.dist) {
		return 0, &NoSuchVertexError{Index: v}
	}
	return r.dist[v], nil
}

// Reachable reports whether v is reachable from the source.
func (r *SSSPResult) Reachable(v int) bool {
	return v >= 0 && v < len(r.dist) && !math.IsInf(r.dist[v], 1)
}

// PathTo reconstructs the shortest path from the source to v by
// walking backtrack edges. PathTo returns an error if v is out of
// range or unreachable.
func (r *SSSPResult) PathTo(v int) (Path, error) {
	if v < 0 || v >= len(r.dist) {
		return Path{}, &NoSuchVertexError{Index: v}
	}
	if !r.Reachable(v) {
		return Path{}, &NoSuchVertexError{Index: v}
	}
	var edges []int
	cur := v
	for cur != r.source {
		e := r.backtrack[cur]
		edges = append(edges, e)
		if r.g.IsDirected() {
			cur = r.g.Edge(e).Src
		} else {
			cur = r.g.Other(e, cur)
		}
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Path{Source: r.source, Target: v, Edges: edges}, nil
}
