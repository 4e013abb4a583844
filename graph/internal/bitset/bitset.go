// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitset implements the fixed-capacity bit-set (§3 Bitmap)
// used as the edge/vertex avoidance mask in the k-shortest-simple-paths
// replacement subroutines.
package bitset

import "math/bits"

// Bitmap is a fixed-capacity bit-set over [0,n).
type Bitmap struct {
	n    int
	bits []uint64
}

// New creates a Bitmap with capacity for indices [0,n), all clear.
func New(n int) *Bitmap {
	return &Bitmap{n: n, bits: make([]uint64, (n+63)/64)}
}

// Len returns the capacity n passed to New.
func (b *Bitmap) Len() int { return b.n }

// Set marks i as present.
func (b *Bitmap) Set(i int) { b.bits[i/64] |= 1 << uint(i%64) }

// Clear unmarks i.
func (b *Bitmap) Clear(i int) { b.bits[i/64] &^= 1 << uint(i%64) }

// ClearAll unmarks every index, leaving capacity intact.
func (b *Bitmap) ClearAll() {
	for i := range b.bits {
		b.bits[i] = 0
	}
}

// Has reports whether i is marked.
func (b *Bitmap) Has(i int) bool {
	return b.bits[i/64]&(1<<uint(i%64)) != 0
}

// Count returns the number of marked indices.
func (b *Bitmap) Count() int {
	n := 0
	for _, w := range b.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls f once for every marked index, in increasing order.
func (b *Bitmap) Each(f func(i int)) {
	for wi, w := range b.bits {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			f(wi*64 + tz)
			w &^= 1 << uint(tz)
		}
	}
}
