// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/heap"
)

// VoronoiResult partitions a graph's vertices among a set of sites by
// nearest-site distance (§4.5): cell[v] names the index into sites
// whose site is closest to v, ties broken toward the lower site index.
// A vertex no site can reach is assigned the sentinel cell index
// len(sites) (§3: "a sentinel 'unreachable' block whose index is
// exactly the site count").
type VoronoiResult struct {
	sites []int
	dist  []float64
	cell  []int
}

// Sites returns the site vertices the partition was computed from.
func (r *VoronoiResult) Sites() []int { return r.sites }

// Unreachable returns the sentinel cell index assigned to a vertex no
// site can reach: len(Sites()).
func (r *VoronoiResult) Unreachable() int { return len(r.sites) }

// Cell reports the index into Sites of the site closest to v, or
// Unreachable() if no site can reach v.
func (r *VoronoiResult) Cell(v int) (int, error) {
	if v < 0 || v >= len(r.cell) {
		return 0, &NoSuchVertexError{Index: v}
	}
	return r.cell[v], nil
}

// Dist returns the distance from v to its nearest site, or +Inf if
// unreachable.
func (r *VoronoiResult) Dist(v int) (float64, error) {
	if v < 0 || v >= len(r.dist) {
		return 0, &NoSuchVertexError{Index: v}
	}
	return r.dist[v], nil
}

// Voronoi partitions g's vertices among sites by running a single
// multi-source Dijkstra pass seeded with every site at distance 0,
// tagged with its own cell index (§4.5): whichever site's wavefront
// reaches a vertex first claims it, the same way a standard
// single-source Dijkstra settles the globally nearest unsettled
// vertex each step, except the source set here has |sites| members
// instead of one.
//
// Voronoi requires non-negative weights, returning a
// NegativeEdgeWeightError under the same contract as Dijkstra, and a
// DuplicateSiteError if the same vertex appears twice in sites.
//
// Grounded on graph/path/dijkstra.go's relaxation loop, reusing
// dijkstraCore's addressable-heap pattern but seeding multiple
// sources and carrying a per-vertex site tag through relaxation
// instead of a single implicit source.
func Voronoi(g graph.Graph, w graph.WeightFunc, sites []int) (*VoronoiResult, error) {
	n := g.N()
	seen := make(map[int]bool, len(sites))
	for _, s := range sites {
		if s < 0 || s >= n {
			return nil, &NoSuchVertexError{Index: s}
		}
		if seen[s] {
			return nil, &DuplicateSiteError{Index: s}
		}
		seen[s] = true
	}

	unreachable := len(sites)
	dist := make([]float64, n)
	cell := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		cell[v] = unreachable
	}

	settled := make([]bool, n)
	q := heap.New(n)
	for i, s := range sites {
		dist[s] = 0
		cell[s] = i
		q.Insert(s, 0, int64(i))
	}

	for q.Len() != 0 {
		u := q.ExtractMin()
		settled[u] = true
		for _, e := range g.OutEdges(u) {
			v := neighborVia(g, e, u)
			if settled[v] {
				continue
			}
			if !w.IsValid(e) {
				continue
			}
			wt := w.Weight(e)
			if wt < 0 {
				return nil, &NegativeEdgeWeightError{Edge: e}
			}
			joint := dist[u] + wt
			if joint < dist[v] || (joint == dist[v] && cell[u] < cell[v]) {
				dist[v] = joint
				cell[v] = cell[u]
				if q.Contains(v) {
					q.DecreaseKey(v, joint, int64(cell[u]))
				} else {
					q.Insert(v, joint, int64(cell[u]))
				}
			}
		}
	}

	return &VoronoiResult{sites: append([]int(nil), sites...), dist: dist, cell: cell}, nil
}
