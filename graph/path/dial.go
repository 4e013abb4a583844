// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/vectorgraph/shortestpaths/graph"

// Dial computes the non-negative-integer-weight shortest-path tree
// from source using Dial's bucket-indexed algorithm (§4.2.3):
// buckets[d] holds vertices currently tentatively at distance d, and
// extraction scans buckets from a monotonically non-decreasing cursor.
//
// Dial requires w to be declared Integer or Cardinality; it returns a
// NonIntegerWeightError otherwise, and a NegativeEdgeWeightError the
// moment relaxation observes a negative weight.
func Dial(g graph.Graph, w graph.WeightFunc, source int) (*SSSPResult, error) {
	if source < 0 || source >= g.N() {
		return nil, &NoSuchVertexError{Index: source}
	}
	if w.Kind() != graph.Integer && w.Kind() != graph.Cardinality {
		return nil, &NonIntegerWeightError{}
	}
	res := newSSSPResult(g, source)

	// buckets[d] holds vertices with tentative distance d. Stale
	// entries (a vertex re-inserted at a smaller distance after
	// already being queued at a larger one) are skipped lazily by
	// comparing the popped distance against the vertex's current
	// tentative distance, the same lazy-deletion trick Dijkstra's
	// no-decrease priority queue relies on, adapted to plain buckets.
	buckets := make([][]int, 1)
	buckets[0] = append(buckets[0], source)

	scan := 0
	settled := make([]bool, g.N())
	for scan < len(buckets) {
		bucket := buckets[scan]
		if len(bucket) == 0 {
			scan++
			continue
		}
		u := bucket[len(bucket)-1]
		buckets[scan] = bucket[:len(bucket)-1]
		if settled[u] || int64(res.dist[u]) != int64(scan) {
			continue
		}
		settled[u] = true

		for _, e := range g.OutEdges(u) {
			v := neighborVia(g, e, u)
			if settled[v] {
				continue
			}
			wi, ok := w.WeightInt(e)
			if !ok {
				return nil, &NonIntegerWeightError{}
			}
			if wi < 0 {
				return nil, &NegativeEdgeWeightError{Edge: e}
			}
			joint := int64(res.dist[u]) + wi
			if float64(joint) < res.dist[v] {
				res.dist[v] = float64(joint)
				res.backtrack[v] = e
				for int64(len(buckets)) <= joint {
					buckets = append(buckets, nil)
				}
				buckets[joint] = append(buckets[joint], v)
			}
		}
	}
	return res, nil
}
