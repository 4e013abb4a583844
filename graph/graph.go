// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the dense-index graph collaborator that the
// shortest-paths core (package path) is built against: vertices and
// edges are addressed by integer indices in [0,n) and [0,m), not by
// caller-supplied identifiers.
package graph

import "math"

// Edge is a read-only view of a single edge. Src and Dst name the
// directed endpoints; for an undirected graph the pair has no
// intrinsic direction and Other resolves the endpoint opposite a given
// vertex.
type Edge struct {
	Src, Dst int
}

// Graph is the collaborator contract the shortest-paths core consumes
// (§6). It is satisfied
// by the immutable graph Builder.Build returns, and may be satisfied
// by any other dense-index graph representation a caller supplies.
type Graph interface {
	// N returns the number of vertices; valid vertex indices are
	// [0,N()).
	N() int
	// M returns the number of edges; valid edge indices are [0,M()).
	M() int
	// IsDirected reports whether edge traversal is one-directional.
	IsDirected() bool
	// Edge returns the read-only record for edge e.
	Edge(e int) Edge
	// Other returns the endpoint of edge e opposite v. Other panics if
	// v is not an endpoint of e; undirected graphs use this to avoid
	// exposing a meaningless Src/Dst order.
	Other(e, v int) int
	// OutEdges returns the indices of edges leaving v (directed) or
	// incident on v (undirected), in a fixed but otherwise unspecified
	// order that is stable for the graph's lifetime.
	OutEdges(v int) []int
	// InEdges returns the indices of edges entering v (directed) or
	// is identical to OutEdges (undirected).
	InEdges(v int) []int
	// SelfEdges returns the indices of every edge whose two endpoints
	// coincide.
	SelfEdges() []int
}

// WeightKind classifies a WeightFunc's numeric nature so the SSSP
// dispatcher (see path.Run) can pick a specialized strategy without
// probing every weight.
type WeightKind int

const (
	// Cardinality marks the null/sentinel weight function: every edge
	// has weight 1.
	Cardinality WeightKind = iota
	// Integer marks a weight function whose values are always integral
	// and representable in 64 bits.
	Integer
	// Real marks a weight function with arbitrary finite real values.
	Real
)

// WeightFunc is a pure edge-to-weight mapping. The zero WeightFunc has
// kind Cardinality and is treated as the cardinality sentinel by every
// algorithm in this module (§3).
type WeightFunc struct {
	kind WeightKind
	real func(e int) float64
	int_ func(e int) int64
}

// UniformCost returns the sentinel cardinality weight function: every
// edge has weight 1.
func UniformCost() WeightFunc {
	return WeightFunc{kind: Cardinality}
}

// RealWeight wraps an arbitrary finite-real edge weight function.
func RealWeight(f func(e int) float64) WeightFunc {
	return WeightFunc{kind: Real, real: f}
}

// IntegerWeight wraps an edge weight function whose values are always
// integral; Weight(e) and WeightInt(e) agree for every e.
func IntegerWeight(f func(e int) int64) WeightFunc {
	return WeightFunc{kind: Integer, int_: f}
}

// Kind reports the weight function's declared nature.
func (w WeightFunc) Kind() WeightKind {
	return w.kind
}

// Weight returns the real-valued weight of edge e. NaN weights are a
// caller error; Weight never returns NaN for a validly constructed
// WeightFunc.
func (w WeightFunc) Weight(e int) float64 {
	switch w.kind {
	case Cardinality:
		return 1
	case Integer:
		return float64(w.int_(e))
	default:
		return w.real(e)
	}
}

// WeightInt returns the integer weight of edge e and whether an
// integer value is available. It is available for Cardinality and
// Integer weight functions only.
func (w WeightFunc) WeightInt(e int) (int64, bool) {
	switch w.kind {
	case Cardinality:
		return 1, true
	case Integer:
		return w.int_(e), true
	default:
		return 0, false
	}
}

// IsValid reports whether the weight of e is a finite, non-NaN value.
// Algorithms call this while relaxing edges to reject malformed input
// per §3 ("NaN weights are rejected").
func (w WeightFunc) IsValid(e int) bool {
	v := w.Weight(e)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
