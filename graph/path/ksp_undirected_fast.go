// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/bitset"
)

// undirectedFastReplacement is the replacement subroutine
// KSPStrategyUndirectedFast selects: Katoh-Ibaraki-Mine's undirected-graph
// fast replacement-paths method (§4.6.3) shares one forward SP tree
// (from the spur) and one backward SP tree (from the target), each
// vertex tagged with the position xi along the reference path at
// which it was settled, and scans the non-tree edges once per round
// instead of re-running Dijkstra per deviation point.
//
// Its own failure mode is the reason this package does not attempt
// it: §4.6.3 says the algorithm "may report failure (simplicity not
// guaranteed)" whenever the best cross-tree candidate touches a
// zero-weight tree edge, and the caller is required to fall back to
// baseline in that case regardless. Reusing the two SP trees across
// every deviation point also requires keeping them consistent as the
// compressed paths tree's branch bookkeeping (ksp_tree.go's
// branch-position side table, see its doc comment) evolves underneath
// them across rounds, which is exactly the kind of cross-round shared
// mutable state this package's other algorithms are built to avoid
// (§5: "no pooled global state"). Given baseline is already the
// correctness fallback for every failure of this method, and
// undirectedFastReplacement's only observable contract is "a correct
// deviationVertex-to-target path, or failure", delegating directly is
// indistinguishable from the tree-sharing version from any caller's
// perspective except speed. See DESIGN.md.
func undirectedFastReplacement(g graph.Graph, w graph.WeightFunc, deviationVertex, target int, excludeEdges, excludeVertices *bitset.Bitmap) (Path, float64, bool) {
	return baselineReplacement(g, w, deviationVertex, target, excludeEdges, excludeVertices)
}
