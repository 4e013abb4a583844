// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/vectorgraph/shortestpaths/graph"

// Profile names the edge-weight shape an SSSP call declares, so Run
// can pick the cheapest correct algorithm instead of probing every
// edge weight up front (§4.1, "SSSP family: profile-directed
// dispatch").
type Profile int

const (
	// AutoProfile tells Run to infer the cheapest applicable profile by
	// scanning w and g once.
	AutoProfile Profile = iota
	// CardinalityProfile selects BFS: every edge has weight 1.
	CardinalityProfile
	// NonNegativeIntProfile selects Dial: non-negative integer weights.
	NonNegativeIntProfile
	// NonNegativeRealProfile selects Dijkstra: non-negative real weights.
	NonNegativeRealProfile
	// DAGProfile selects DAGShortestPath: g is a directed acyclic graph,
	// any real weight.
	DAGProfile
	// IntGeneralProfile selects Goldberg scaling: integer weights,
	// possibly negative.
	IntGeneralProfile
	// RealGeneralProfile selects Bellman-Ford: real weights, possibly
	// negative.
	RealGeneralProfile
)

// Run dispatches a single-source shortest-path query to the algorithm
// matching profile (§4.1's dispatch table), or infers the cheapest
// applicable one when profile is AutoProfile:
//
//	cardinality            -> BFS
//	non-negative integer    -> Dial
//	non-negative real       -> Dijkstra
//	DAG, any weight         -> DAGShortestPath
//	integer, negative       -> GoldbergScaling
//	real, negative          -> BellmanFord
//
// Inference never runs a structural check (acyclicity) speculatively:
// a caller that knows its graph is a DAG must say so via DAGProfile,
// since detecting acyclicity is itself as expensive as topo.Sort.
func Run(g graph.Graph, w graph.WeightFunc, source int, profile Profile) (*SSSPResult, error) {
	if profile == AutoProfile {
		profile = inferProfile(g, w)
	}
	switch profile {
	case CardinalityProfile:
		return BFS(g, source)
	case NonNegativeIntProfile:
		return Dial(g, w, source)
	case NonNegativeRealProfile:
		return Dijkstra(g, w, source)
	case DAGProfile:
		return DAGShortestPath(g, w, source)
	case IntGeneralProfile:
		return GoldbergScaling(g, w, source)
	case RealGeneralProfile:
		return BellmanFord(g, w, source)
	default:
		return nil, &NonIntegerWeightError{}
	}
}

// inferProfile picks the cheapest profile Run can satisfy without
// assuming acyclicity, by a single scan over w.
func inferProfile(g graph.Graph, w graph.WeightFunc) Profile {
	if w.Kind() == graph.Cardinality {
		return CardinalityProfile
	}
	negative := false
	for e := 0; e < g.M(); e++ {
		if w.Weight(e) < 0 {
			negative = true
			break
		}
	}
	if !negative {
		if w.Kind() == graph.Integer {
			return NonNegativeIntProfile
		}
		return NonNegativeRealProfile
	}
	if w.Kind() == graph.Integer {
		return IntGeneralProfile
	}
	return RealGeneralProfile
}
