// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/vectorgraph/shortestpaths/graph"

// compressedPathNode is one path in the k-shortest-simple-paths
// search's compressed paths tree (§4.6.1): every discovered path
// beyond the first is a deviation from some earlier path at a single
// vertex, so the tree stores only that deviation rather than a full
// independent copy of the shared prefix.
//
// parent indexes the node this one branched off of (-1 for the root,
// the overall shortest path). branchPos is the position along
// parent.localPath at which this node's ancestor path diverges;
// localSource is the vertex at that position (= s for the root).
// localPath is this node's own vertex-disjoint-from-its-ancestors
// path from localSource to the overall target, the path that was
// actually discovered for it by a replacement search.
//
// This package deviates from §4.6.1's literal "insert a prefix node
// and truncate N" splitting procedure: rather than physically
// rewriting a node's localPath every time a new child branches off an
// interior position, a node's localPath is written once, at
// discovery, and never truncated afterward; siblings branching at the
// same (node, position) are tracked by a side table keyed on that
// pair (see ksp.go's branchKey) instead of a per-node
// source_used_out_edges field. Both schemes produce the same set of
// candidate deviations and enforce the same uniqueness invariant
// (K3); this one avoids ever invalidating a node index's identity
// mid-search, which is easy to get subtly wrong given how easily a
// freshly split prefix node can itself become the target of a later
// split. See DESIGN.md.
//
// weightToSource is the accumulated weight of the ancestor path up to
// localSource (not including localPath itself); it is the additive
// constant the candidate frontier (§4.6.2) adds to a node's best
// deviation weight to order the global frontier.
type compressedPathNode struct {
	parent         int
	branchPos      int
	localSource    int
	localPath      Path
	weightToSource float64
}

// ancestorPrefix reconstructs the path from the search's source to
// nodes[i].localSource by walking up the tree: at each ancestor, only
// the portion of its localPath before its child's branch position is
// shared, so the full prefix is built by splicing those portions
// together on the way back down.
func ancestorPrefix(nodes []compressedPathNode, i int, g graph.Graph) Path {
	n := nodes[i]
	if n.parent < 0 {
		return Path{Source: n.localSource, Target: n.localSource}
	}
	parent := nodes[n.parent]
	above := ancestorPrefix(nodes, n.parent, g)
	shared := subpath(parent.localPath, 0, n.branchPos, g)
	return concatPaths(above, shared)
}

// vertexAt returns the vertex reached after following the first pos
// edges of p from p.Source.
func vertexAt(p Path, pos int, g graph.Graph) int {
	cur := p.Source
	for i := 0; i < pos; i++ {
		cur = neighborVia(g, p.Edges[i], cur)
	}
	return cur
}

// subpath returns the portion of p spanning edges [i,j), with Source
// and Target recomputed to match that span.
func subpath(p Path, i, j int, g graph.Graph) Path {
	src := vertexAt(p, i, g)
	tgt := p.Target
	if j < len(p.Edges) {
		tgt = vertexAt(p, j, g)
	}
	edges := append([]int(nil), p.Edges[i:j]...)
	return Path{Source: src, Target: tgt, Edges: edges}
}

// concatPaths splices b onto the end of a; the caller is responsible
// for a.Target and b.Source naming the same vertex.
func concatPaths(a, b Path) Path {
	edges := make([]int, 0, len(a.Edges)+len(b.Edges))
	edges = append(edges, a.Edges...)
	edges = append(edges, b.Edges...)
	return Path{Source: a.Source, Target: b.Target, Edges: edges}
}

// longestCommonPrefixLen returns the number of leading edges a and b
// agree on.
func longestCommonPrefixLen(a, b Path) int {
	n := len(a.Edges)
	if len(b.Edges) < n {
		n = len(b.Edges)
	}
	i := 0
	for i < n && a.Edges[i] == b.Edges[i] {
		i++
	}
	return i
}
