// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vectorgraph/shortestpaths/graph"
)

// APSPResult is the immutable result of an all-pairs shortest-path
// computation (§4.3), produced by FloydWarshall or Johnson. dist is a
// dense n×n (or subset×n, see JohnsonSubset) distance matrix; firstEdge[u][v]
// holds the index of the first edge on a shortest u-to-v path, or -1
// if u == v or v is unreachable from u.
//
// Grounded on graph/path/shortest.go's AllShortest, simplified from a
// "list of midpoint node ids per pair" reconstruction structure (built
// for a sparse node-ID graph where the shortest first hop can change
// across updates) to a single "first edge" matrix: on a dense
// integer-indexed graph the first edge already names the first hop
// unambiguously, and a path reconstructs by repeatedly looking up
// firstEdge[cur][target] and walking that edge, so no auxiliary
// midpoint bookkeeping is needed.
type APSPResult struct {
	g        graph.Graph
	rows     []int // rows[i] is the original vertex id for local row i; nil means rows == all vertices.
	rowOf    map[int]int
	dist     *mat.Dense
	firstEdge [][]int
	negCycle []bool // negCycle[i] marks that row i can reach a vertex whose self-distance went negative.
}

func newAPSPResult(g graph.Graph, rows []int) *APSPResult {
	n := g.N()
	nr := n
	if rows != nil {
		nr = len(rows)
	}
	data := make([]float64, nr*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	firstEdge := make([][]int, nr)
	for i := range firstEdge {
		firstEdge[i] = make([]int, n)
		for j := range firstEdge[i] {
			firstEdge[i][j] = -1
		}
	}
	r := &APSPResult{
		g:         g,
		rows:      rows,
		dist:      mat.NewDense(nr, n, data),
		firstEdge: firstEdge,
		negCycle:  make([]bool, nr),
	}
	if rows != nil {
		r.rowOf = make(map[int]int, len(rows))
		for i, v := range rows {
			r.rowOf[v] = i
		}
	}
	for i := 0; i < nr; i++ {
		origin := i
		if rows != nil {
			origin = rows[i]
		}
		r.dist.Set(i, origin, 0)
	}
	return r
}

func (r *APSPResult) rowIndex(u int) (int, bool) {
	if r.rows == nil {
		return u, u >= 0 && u < r.dist.RawMatrix().Rows
	}
	i, ok := r.rowOf[u]
	return i, ok
}

// Weight returns the shortest-path weight from u to v. It returns a
// SubsetViolationError if u was not one of the restricted sources a
// Subset computation was given.
func (r *APSPResult) Weight(u, v int) (float64, error) {
	i, ok := r.rowIndex(u)
	if !ok {
		return 0, &SubsetViolationError{Index: u}
	}
	if v < 0 || v >= r.g.N() {
		return 0, &NoSuchVertexError{Index: v}
	}
	return r.dist.At(i, v), nil
}

// HasNegativeCycle reports whether u lies on, or can reach, a negative
// cycle discovered by the computation.
func (r *APSPResult) HasNegativeCycle(u int) (bool, error) {
	i, ok := r.rowIndex(u)
	if !ok {
		return false, &SubsetViolationError{Index: u}
	}
	return r.negCycle[i], nil
}

// Between reconstructs a shortest path from u to v by walking
// firstEdge. It returns an error if u is outside the computed subset,
// v is out of range, or v is unreachable from u.
func (r *APSPResult) Between(u, v int) (Path, error) {
	i, ok := r.rowIndex(u)
	if !ok {
		return Path{}, &SubsetViolationError{Index: u}
	}
	if v < 0 || v >= r.g.N() {
		return Path{}, &NoSuchVertexError{Index: v}
	}
	if math.IsInf(r.dist.At(i, v), 1) {
		return Path{}, &NoSuchVertexError{Index: v}
	}
	var edges []int
	cur := u
	for cur != v {
		ci, _ := r.rowIndex(cur)
		e := r.firstEdge[ci][v]
		if e < 0 {
			break
		}
		edges = append(edges, e)
		cur = neighborVia(r.g, e, cur)
	}
	return Path{Source: u, Target: v, Edges: edges}, nil
}
