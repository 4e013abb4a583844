// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"
	"math"

	"github.com/vectorgraph/shortestpaths/graph"
	"github.com/vectorgraph/shortestpaths/graph/internal/bitset"
)

// KSPStrategy selects the replacement subroutine KShortestPaths uses
// to compute each candidate deviation (§4.6.3, §9 "replacement
// subroutine as a strategy").
type KSPStrategy int

const (
	// KSPStrategyAuto picks baseline for small graphs and the
	// direction-appropriate fast strategy otherwise, mirroring the
	// threshold-driven dispatch §4.6.3 describes.
	KSPStrategyAuto KSPStrategy = iota
	// KSPStrategyBaseline always uses the masked-Dijkstra-per-deviation-
	// point replacement search. Always correct.
	KSPStrategyBaseline
	// KSPStrategyDirectedFast selects directedFastReplacement
	// (ksp_directed_fast.go), intended for directed graphs. It runs the
	// same masked-Dijkstra search as the baseline; the
	// Hershberger-Maxel-Suri tree-sharing method is not implemented.
	KSPStrategyDirectedFast
	// KSPStrategyUndirectedFast selects undirectedFastReplacement
	// (ksp_undirected_fast.go), intended for undirected graphs. It runs
	// the same masked-Dijkstra search as the baseline; the
	// Katoh-Ibaraki-Mine tree-sharing method is not implemented.
	KSPStrategyUndirectedFast
)

// KSPOptions tunes KShortestPaths. The zero value selects
// KSPStrategyAuto with the default baseline threshold (§4.6.3: "below
// a configurable threshold, default 50").
type KSPOptions struct {
	Strategy          KSPStrategy
	BaselineThreshold int
}

const defaultBaselineThreshold = 50

// replacementFunc is the shared signature of every replacement
// subroutine strategy (§4.6.3): find the cheapest simple
// deviationVertex-to-target path avoiding excludeEdges and
// excludeVertices, or report failure.
type replacementFunc func(g graph.Graph, w graph.WeightFunc, deviationVertex, target int, excludeEdges, excludeVertices *bitset.Bitmap) (Path, float64, bool)

func selectReplacement(g graph.Graph, opts KSPOptions) replacementFunc {
	switch opts.Strategy {
	case KSPStrategyBaseline:
		return baselineReplacement
	case KSPStrategyDirectedFast:
		return directedFastReplacement
	case KSPStrategyUndirectedFast:
		return undirectedFastReplacement
	default:
		threshold := opts.BaselineThreshold
		if threshold <= 0 {
			threshold = defaultBaselineThreshold
		}
		if g.N() < threshold {
			return baselineReplacement
		}
		if g.IsDirected() {
			return directedFastReplacement
		}
		return undirectedFastReplacement
	}
}

// KShortestPaths returns up to k simple paths from s to t in
// non-decreasing weight order (§4.6), using KSPStrategyAuto. w must be
// non-negative; a negative edge weight produces a
// *NegativeEdgeWeightError.
func KShortestPaths(g graph.Graph, w graph.WeightFunc, s, t, k int) ([]Path, error) {
	return KShortestPathsWithOptions(g, w, s, t, k, KSPOptions{})
}

// branchKey identifies one branching point in the compressed paths
// tree: the node whose localPath is being deviated from, and the
// position along it. Two children created at the same branchKey are
// siblings in the sense §4.6.1 describes, and must not share a first
// deviation edge (K3). Position 0 of a non-root node is the same
// branching point as that node's own branch off its parent, so such a
// key is replaced by the parent's (node, branchPos) key, repeatedly
// up the tree, before the side table is read or written.
type branchKey struct {
	node int
	pos  int
}

// kspCandidate is one entry in the best-first deviation frontier
// (§4.6.2 step 2-3): the total weight of ancestorPrefix(node) spliced
// with dev, the node the deviation was computed for, and the
// deviation path itself.
type kspCandidate struct {
	weight float64
	node   int
	dev    Path
}

type kspFrontier []kspCandidate

func (f kspFrontier) Len() int            { return len(f) }
func (f kspFrontier) Less(i, j int) bool  { return f[i].weight < f[j].weight }
func (f kspFrontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *kspFrontier) Push(x interface{}) { *f = append(*f, x.(kspCandidate)) }
func (f *kspFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// KShortestPathsWithOptions is KShortestPaths with explicit strategy
// control (§9 "replacement subroutine as a strategy").
//
// Grounded on graph/path/yen_ksp.go's candidate-pool-plus-best-pick
// loop structure (that file's retrieved revision is a non-compiling
// sketch; other_examples/fumin-gonum's YenKShortestPaths is the coherent
// version this package follows for the overall shape: compute the
// first shortest path, then repeatedly spur off every already-found
// path to build a pool of candidates and promote the cheapest one),
// generalized per §4.6.1-§4.6.2 so that a single compressed-tree node
// can be deviated from at any position along its own path rather than
// needing one tree node per spur point the way classic Yen needs one
// root/spur pair per round.
func KShortestPathsWithOptions(g graph.Graph, w graph.WeightFunc, s, t, k int, opts KSPOptions) ([]Path, error) {
	if s < 0 || s >= g.N() {
		return nil, &NoSuchVertexError{Index: s}
	}
	if t < 0 || t >= g.N() {
		return nil, &NoSuchVertexError{Index: t}
	}
	if k <= 0 {
		return nil, nil
	}
	for e := 0; e < g.M(); e++ {
		if w.IsValid(e) && w.Weight(e) < 0 {
			return nil, &NegativeEdgeWeightError{Edge: e}
		}
	}

	first, _, err := Bidirectional(g, w, s, t)
	if err != nil {
		if _, ok := err.(*NoSuchVertexError); ok {
			return nil, nil
		}
		return nil, err
	}
	results := []Path{first}
	if k == 1 || s == t {
		return results, nil
	}

	replace := selectReplacement(g, opts)

	nodes := []compressedPathNode{{parent: -1, localSource: s, localPath: first}}
	used := make(map[branchKey]*bitset.Bitmap)

	frontier := &kspFrontier{}
	pushBest := func(idx int) {
		dev, weight, ok := computeBestDeviation(nodes, idx, g, w, t, used, replace)
		if !ok {
			return
		}
		heap.Push(frontier, kspCandidate{weight: nodes[idx].weightToSource + weight, node: idx, dev: dev})
	}
	pushBest(0)

	for len(results) < k && frontier.Len() > 0 {
		cand := heap.Pop(frontier).(kspCandidate)
		n := nodes[cand.node]

		full := concatPaths(ancestorPrefix(nodes, cand.node, g), cand.dev)
		results = append(results, full)
		if len(results) >= k {
			break
		}

		commonLen := longestCommonPrefixLen(n.localPath, cand.dev)
		childLocal := subpath(cand.dev, commonLen, len(cand.dev.Edges), g)
		childIdx := len(nodes)
		nodes = append(nodes, compressedPathNode{
			parent:         cand.node,
			branchPos:      commonLen,
			localSource:    vertexAt(n.localPath, commonLen, g),
			localPath:      childLocal,
			weightToSource: n.weightToSource + subpath(n.localPath, 0, commonLen, g).Weight(w),
		})

		key := branchKey{node: cand.node, pos: commonLen}
		for key.pos == 0 && nodes[key.node].parent >= 0 {
			key = branchKey{node: nodes[key.node].parent, pos: nodes[key.node].branchPos}
		}
		b, ok := used[key]
		if !ok {
			b = bitset.New(g.M())
			used[key] = b
		}
		if len(childLocal.Edges) > 0 {
			b.Set(childLocal.Edges[0])
		}

		pushBest(cand.node)
		pushBest(childIdx)

		// §4.6.2 step 4: keep only the k-r best outstanding
		// candidates once r results have been emitted.
		if keep := k - len(results); frontier.Len() > keep {
			kept := make(kspFrontier, 0, keep)
			for i := 0; i < keep; i++ {
				kept = append(kept, heap.Pop(frontier).(kspCandidate))
			}
			*frontier = kept
			heap.Init(frontier)
		}
	}

	return results, nil
}

// computeBestDeviation finds node idx's best candidate deviation: the
// cheapest simple localSource-to-target path that differs from
// nodes[idx].localPath at some position, avoiding the node's ancestor
// prefix and any sibling's already-claimed first deviation edge at
// that position (§4.6.3). It mirrors the baseline strategy's own
// per-deviation-point loop (try masking each edge of the reference
// path in turn), since every concrete replacementFunc in this package
// ultimately reduces to that search (see ksp_baseline.go).
func computeBestDeviation(nodes []compressedPathNode, idx int, g graph.Graph, w graph.WeightFunc, t int, used map[branchKey]*bitset.Bitmap, replace replacementFunc) (Path, float64, bool) {
	n := nodes[idx]
	maxDev := len(n.localPath.Edges)
	if maxDev == 0 {
		return Path{}, 0, false
	}

	ancestors := ancestorPrefix(nodes, idx, g)
	excludeVerts := bitset.New(g.N())
	for _, v := range ancestors.Vertices(g) {
		if v != n.localSource {
			excludeVerts.Set(v)
		}
	}

	bestWeight := math.Inf(1)
	var best Path
	found := false

	prefixEdges := make([]int, 0, maxDev)
	prefixWeight := 0.0
	cur := n.localSource

	for pos := 0; pos < maxDev; pos++ {
		excludeEdges := bitset.New(g.M())
		key := branchKey{node: idx, pos: pos}
		for key.pos == 0 && nodes[key.node].parent >= 0 {
			key = branchKey{node: nodes[key.node].parent, pos: nodes[key.node].branchPos}
		}
		if b, ok := used[key]; ok {
			b.Each(excludeEdges.Set)
		}
		if key.node != idx {
			excludeEdges.Set(nodes[key.node].localPath.Edges[key.pos])
		}
		excludeEdges.Set(n.localPath.Edges[pos])

		if dev, w2, ok := replace(g, w, cur, t, excludeEdges, excludeVerts); ok {
			total := prefixWeight + w2
			if total < bestWeight {
				bestWeight = total
				edges := make([]int, 0, len(prefixEdges)+len(dev.Edges))
				edges = append(edges, prefixEdges...)
				edges = append(edges, dev.Edges...)
				best = Path{Source: n.localSource, Target: t, Edges: edges}
				found = true
			}
		}

		e := n.localPath.Edges[pos]
		excludeVerts.Set(cur)
		prefixWeight += w.Weight(e)
		prefixEdges = append(prefixEdges, e)
		cur = neighborVia(g, e, cur)
	}

	return best, bestWeight, found
}
