// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// Builder accumulates an edge list for a fixed vertex count and
// produces an immutable dense graph. It is the only mutation surface
// the shortest-paths core uses internally (Johnson's auxiliary graph,
// §4.3.2, is built this way).
type Builder struct {
	n        int
	directed bool
	edges    []Edge
}

// NewBuilder starts a builder for a graph on n vertices. directed
// selects whether the produced graph treats Edge.Src/Dst as one-way.
func NewBuilder(n int, directed bool) *Builder {
	if n < 0 {
		panic(fmt.Sprintf("graph: negative vertex count %d", n))
	}
	return &Builder{n: n, directed: directed}
}

// AddEdge appends an edge between u and v and returns its index. u and
// v must be in [0,n); AddEdge panics otherwise, since the builder is
// only ever driven by internal callers constructing a well-formed
// graph, never by untrusted input.
func (b *Builder) AddEdge(u, v int) int {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		panic(fmt.Sprintf("graph: vertex out of range [0,%d): %d,%d", b.n, u, v))
	}
	idx := len(b.edges)
	b.edges = append(b.edges, Edge{Src: u, Dst: v})
	return idx
}

// Build freezes the accumulated edges into an immutable Graph.
func (b *Builder) Build() Graph {
	out := make([][]int, b.n)
	in := make([][]int, b.n)
	var self []int
	for e, ed := range b.edges {
		out[ed.Src] = append(out[ed.Src], e)
		if ed.Src == ed.Dst {
			self = append(self, e)
		}
		if b.directed {
			in[ed.Dst] = append(in[ed.Dst], e)
		} else if ed.Src != ed.Dst {
			out[ed.Dst] = append(out[ed.Dst], e)
		}
	}
	if !b.directed {
		in = out
	}
	return &dense{
		n:        b.n,
		directed: b.directed,
		edges:    append([]Edge(nil), b.edges...),
		out:      out,
		in:       in,
		self:     self,
	}
}

// dense is the concrete, immutable IndexedGraph used throughout this
// module's tests and by the algorithms that need to build an auxiliary
// graph (Johnson's potential-augmented graph).
type dense struct {
	n        int
	directed bool
	edges    []Edge
	out, in  [][]int
	self     []int
}

func (g *dense) N() int          { return g.n }
func (g *dense) M() int          { return len(g.edges) }
func (g *dense) IsDirected() bool { return g.directed }
func (g *dense) Edge(e int) Edge { return g.edges[e] }

func (g *dense) Other(e, v int) int {
	ed := g.edges[e]
	switch v {
	case ed.Src:
		return ed.Dst
	case ed.Dst:
		return ed.Src
	default:
		panic(fmt.Sprintf("graph: vertex %d is not an endpoint of edge %d", v, e))
	}
}

func (g *dense) OutEdges(v int) []int   { return g.out[v] }
func (g *dense) InEdges(v int) []int    { return g.in[v] }
func (g *dense) SelfEdges() []int       { return g.self }
