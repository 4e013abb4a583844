// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/vectorgraph/shortestpaths/graph"
)

// FloydWarshall computes all-pairs shortest paths by dynamic
// programming over intermediate vertex sets (§4.3.1): dist[i][j] is
// refined n times, each round allowing one more vertex k to serve as
// an intermediate stop.
//
// Grounded on search/floydwarshall.go's dist/next dense-matrix
// formulation, ported from that file's mat64.Dense to the current
// gonum.org/v1/gonum/mat.Dense, and from a "list of midpoints per
// pair" next structure to the single firstEdge matrix APSPResult
// maintains (see apsp.go's doc comment for why).
//
// A negative cycle taints every pair (i,j) such that i can reach the
// cycle and the cycle can reach j; APSPResult.HasNegativeCycle reports
// which rows were tainted, and Weight for a tainted pair returns -Inf
// rather than a number that does not correspond to any real path.
func FloydWarshall(g graph.Graph, w graph.WeightFunc) (*APSPResult, error) {
	n := g.N()
	res := newAPSPResult(g, nil)

	for e := 0; e < g.M(); e++ {
		if !w.IsValid(e) {
			continue
		}
		ed := g.Edge(e)
		relaxDirect(res, ed.Src, ed.Dst, e, w.Weight(e))
		if !g.IsDirected() {
			relaxDirect(res, ed.Dst, ed.Src, e, w.Weight(e))
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := res.dist.At(i, k)
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := res.dist.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				joint := dik + dkj
				if lessWithinTolerance(joint, res.dist.At(i, j)) {
					res.dist.Set(i, j, joint)
					res.firstEdge[i][j] = res.firstEdge[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if res.dist.At(i, i) < 0 {
			markNegativeCycleReach(res, i, n)
		}
	}

	return res, nil
}

func relaxDirect(res *APSPResult, u, v, e int, weight float64) {
	if weight < res.dist.At(u, v) {
		res.dist.Set(u, v, weight)
		res.firstEdge[u][v] = e
	}
}

// markNegativeCycleReach flags every row i such that i can reach the
// negative-cycle vertex src, since the distance from such i to any
// vertex the cycle can also reach is unbounded below.
func markNegativeCycleReach(res *APSPResult, src, n int) {
	for i := 0; i < n; i++ {
		if !math.IsInf(res.dist.At(i, src), 1) {
			res.negCycle[i] = true
			for j := 0; j < n; j++ {
				if !math.IsInf(res.dist.At(src, j), 1) {
					res.dist.Set(i, j, math.Inf(-1))
				}
			}
		}
	}
}
