// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements the addressable min-heap the SSSP family
// shares (§4.1 IndexedHeap): insert, decrease-key, extract-min and
// membership over a dense vertex-index domain [0,n), with an explicit
// secondary tie-break key.
//
// The decrease-key-by-position trick (each element remembers its own
// slot so a later Fix/decrease can find it in O(1)) is the same one
// ed.go's tent heap and path/a_star.go's aStarQueue use; this package
// just gives it an addressable-by-vertex-index API instead of
// baking the bookkeeping into a node struct per caller.
package heap

import "container/heap"

// Indexed is an addressable min-heap over vertex indices [0,n). Keys
// are float64; ties are broken by a caller-supplied secondary key
// (used by the k-shortest-paths fast-replacement subroutine to prefer
// the smaller xi position along a reference path).
type Indexed struct {
	h   binHeap
	pos []int // pos[v] is v's slot in h, or -1 if v is not in the heap
}

// New creates an Indexed heap with capacity for vertex indices [0,n).
func New(n int) *Indexed {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &Indexed{pos: pos}
}

// Len returns the number of vertices currently in the heap.
func (q *Indexed) Len() int { return len(q.h) }

// Contains reports whether v currently has an entry in the heap.
func (q *Indexed) Contains(v int) bool { return q.pos[v] >= 0 }

// Key returns the current key of v. Key panics if v is not present.
func (q *Indexed) Key(v int) float64 {
	return q.h[q.pos[v]].key
}

// Insert adds v with the given primary and secondary key. Insert
// panics if v is already present; callers should use DecreaseKey to
// update an existing entry.
func (q *Indexed) Insert(v int, key float64, secondary int64) {
	if q.pos[v] >= 0 {
		panic("heap: inserting vertex already present")
	}
	heap.Push(&q.h, item{v: v, key: key, secondary: secondary, pos: q})
}

// DecreaseKey lowers v's key. DecreaseKey is a no-op if the new key is
// larger than the current one, and panics if v is absent. Otherwise,
// including when the new key equals the current one, both the key and
// the secondary key are replaced.
func (q *Indexed) DecreaseKey(v int, key float64, secondary int64) {
	i := q.pos[v]
	if i < 0 {
		panic("heap: decrease-key on absent vertex")
	}
	if key > q.h[i].key {
		return
	}
	q.h[i].key = key
	q.h[i].secondary = secondary
	heap.Fix(&q.h, i)
}

// ExtractMin removes and returns the vertex with the smallest key,
// breaking ties by the smaller secondary key.
func (q *Indexed) ExtractMin() int {
	it := heap.Pop(&q.h).(item)
	return it.v
}

// Peek returns the vertex with the smallest key without removing it.
// Peek panics if the heap is empty, used by the bidirectional S-T
// search to compare both frontiers' minimum keys before deciding which
// side to extract from (§4.4.1).
func (q *Indexed) Peek() int {
	return q.h[0].v
}

// Clear empties the heap, leaving capacity intact.
func (q *Indexed) Clear() {
	for _, it := range q.h {
		q.pos[it.v] = -1
	}
	q.h = q.h[:0]
}

type item struct {
	v         int
	key       float64
	secondary int64
	pos       *Indexed
}

type binHeap []item

func (h binHeap) Len() int { return len(h) }

func (h binHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].secondary < h[j].secondary
}

func (h binHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos.pos[h[i].v] = i
	h[j].pos.pos[h[j].v] = j
}

func (h *binHeap) Push(x interface{}) {
	it := x.(item)
	it.pos.pos[it.v] = len(*h)
	*h = append(*h, it)
}

func (h *binHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	it.pos.pos[it.v] = -1
	*h = old[:n-1]
	return it
}
