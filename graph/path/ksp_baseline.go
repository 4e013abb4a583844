// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/bitset"
)

// The replacement search computes the cheapest deviationVertex-to-target
// path avoiding excludeEdges and excludeVertices, the core subroutine
// every k-shortest-simple-paths replacement strategy reduces to
// (§4.6.3): Yen's algorithm calls this once per candidate spur point
// per round, masking out the edge each already-discovered sibling path
// used to leave the spur, plus every vertex on the shared prefix
// (which would otherwise let the replacement loop back through
// already-visited territory and break simplicity).
//
// baselineReplacement runs a single masked Dijkstra per call, with no
// state shared across calls; it is correct for both directed and
// undirected graphs and is the strategy every Strategy value in this
// package's public KShortestPaths API ultimately dispatches to (see
// ksp_directed_fast.go and ksp_undirected_fast.go for why their
// namesake two-SP-tree sharing optimizations are not implemented
// separately).
func baselineReplacement(g graph.Graph, w graph.WeightFunc, deviationVertex, target int, excludeEdges, excludeVertices *bitset.Bitmap) (Path, float64, bool) {
	res, err := dijkstraCore(g, w, deviationVertex, target, excludeEdges, excludeVertices)
	if err != nil || !res.Reachable(target) {
		return Path{}, 0, false
	}
	p, err := res.PathTo(target)
	if err != nil {
		return Path{}, 0, false
	}
	return p, res.dist[target], true
}
