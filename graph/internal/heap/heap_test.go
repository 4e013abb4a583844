// Copyright ©2026 The Shortestpaths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertExtractMinOrder(t *testing.T) {
	q := New(5)
	q.Insert(2, 3.0, 0)
	q.Insert(0, 1.0, 0)
	q.Insert(4, 5.0, 0)
	q.Insert(1, 2.0, 0)

	require.Equal(t, 4, q.Len())
	got := []int{q.ExtractMin(), q.ExtractMin(), q.ExtractMin(), q.ExtractMin()}
	require.Equal(t, []int{0, 1, 2, 4}, got)
	require.Equal(t, 0, q.Len())
}

func TestDecreaseKeyReordersAndIgnoresIncrease(t *testing.T) {
	q := New(3)
	q.Insert(0, 10.0, 0)
	q.Insert(1, 20.0, 0)
	q.Insert(2, 30.0, 0)

	q.DecreaseKey(2, 5.0, 0)
	require.Equal(t, 2, q.ExtractMin())

	// A "decrease" to a larger key must be ignored.
	q.DecreaseKey(1, 100.0, 0)
	require.Equal(t, float64(20), q.Key(1))
}

func TestSecondaryKeyTieBreak(t *testing.T) {
	q := New(3)
	q.Insert(0, 1.0, 7)
	q.Insert(1, 1.0, 2)
	q.Insert(2, 1.0, 9)

	require.Equal(t, 1, q.ExtractMin())
	require.Equal(t, 0, q.ExtractMin())
	require.Equal(t, 2, q.ExtractMin())
}

func TestContainsAndClear(t *testing.T) {
	q := New(4)
	q.Insert(3, 1.0, 0)
	require.True(t, q.Contains(3))
	require.False(t, q.Contains(0))

	q.Clear()
	require.Equal(t, 0, q.Len())
	require.False(t, q.Contains(3))

	// Capacity survives Clear: re-inserting the same vertex must work.
	q.Insert(3, 2.0, 0)
	require.Equal(t, 1, q.Len())
}
