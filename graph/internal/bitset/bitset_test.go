// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetClearHas(t *testing.T) {
	b := New(130)
	require.False(t, b.Has(0))
	b.Set(0)
	b.Set(64)
	b.Set(129)
	require.True(t, b.Has(0))
	require.True(t, b.Has(64))
	require.True(t, b.Has(129))
	require.Equal(t, 3, b.Count())

	b.Clear(64)
	require.False(t, b.Has(64))
	require.Equal(t, 2, b.Count())
}

func TestEachAndClearAll(t *testing.T) {
	b := New(10)
	for _, i := range []int{1, 3, 5, 9} {
		b.Set(i)
	}
	var got []int
	b.Each(func(i int) { got = append(got, i) })
	require.Equal(t, []int{1, 3, 5, 9}, got)

	b.ClearAll()
	require.Equal(t, 0, b.Count())
}
