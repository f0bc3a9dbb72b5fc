// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPrev(t *testing.T) {
	test(t, func(t *testing.T, newTree func() *Tree[int, int]) {
		for N := range 11 {
			tr, _, slice := permute(newTree(), N)
			want := nonzeroIndexes(slice)

			var have []int
			i := 0
			for it := tr.First(); it.Valid(); it.Next() {
				require.Equal(t, i, it.Index())
				assert.Equal(t, i > 0, it.HasPrev())
				assert.Equal(t, i < N-1, it.HasNext())
				assert.Equal(t, slice[it.Key()], it.Value())
				have = append(have, it.Key())
				i++
			}
			assert.Equal(t, want, have)

			have = nil
			for it := tr.Last(); it.Valid(); it.Prev() {
				have = append(have, it.Key())
			}
			slices.Reverse(want)
			assert.Equal(t, want, have)
		}
	})
}

func TestInvalidIterator(t *testing.T) {
	tr, _, _ := permute(New[int, int](), 5)
	it := tr.Last()
	it.Next()
	require.False(t, it.Valid())
	assert.Equal(t, 5, it.Index())
	assert.Nil(t, it.Node())
	assert.Zero(t, it.Key())
	assert.Zero(t, it.Value())
	assert.False(t, it.HasNext())
	assert.False(t, it.HasPrev())

	// An invalid iterator stays invalid.
	it.Prev()
	assert.False(t, it.Valid())
	it.Next()
	assert.False(t, it.Valid())

	t2, err := it.Update(7)
	assert.Nil(t, t2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIterator))

	assert.Same(t, tr, it.Remove())
	assert.Same(t, tr, it.Tree())
}

func TestClone(t *testing.T) {
	tr, _, _ := permute(New[int, int](), 10)
	it := tr.GE(8)
	require.Equal(t, 9, it.Key())
	c := it.Clone()
	it.Next()
	it.Next()
	assert.Equal(t, 13, it.Key())
	assert.Equal(t, 9, c.Key())
	c.Prev()
	assert.Equal(t, 7, c.Key())
	assert.Equal(t, 13, it.Key())
}

func TestUpdate(t *testing.T) {
	tr, _, slice := permute(New[int, int](), 30)
	for k, v := range slice {
		if v == 0 {
			continue
		}
		before := dump(tr)
		t2, err := tr.Find(k).Update(-k)
		require.NoError(t, err)
		checkTree(t, t2)
		got, ok := t2.Get(k)
		assert.True(t, ok)
		assert.Equal(t, -k, got)
		old, _ := tr.Get(k)
		assert.Equal(t, v, old)
		assert.Equal(t, before, dump(tr))
		assert.Equal(t, tr.Keys(), t2.Keys())
	}
}

func TestIteratorRemove(t *testing.T) {
	for N := 1; N < 40; N++ {
		tr, _, _ := permute(New[int, int](), N)
		i := rand.IntN(N)
		it := tr.At(i)
		k := it.Key()
		t2 := it.Remove()
		checkTree(t, t2)
		assert.Equal(t, N-1, t2.Len())
		assert.False(t, t2.Find(k).Valid())

		// The iterator still sees the tree it came from.
		assert.Equal(t, k, it.Key())
		assert.Equal(t, i, it.Index())
		assert.Equal(t, N, tr.Len())
	}
}

func TestIteratorSnapshot(t *testing.T) {
	tr, _, _ := permute(New[int, int](), 20)
	it := tr.First()
	t2 := tr
	for k := 1; k < 40; k += 2 {
		t2 = t2.Remove(k)
	}
	t2 = t2.Insert(0, 0)
	require.Equal(t, 1, t2.Len())

	var have []int
	for ; it.Valid(); it.Next() {
		have = append(have, it.Key())
	}
	assert.Len(t, have, 20)
	assert.True(t, slices.IsSorted(have))
}

func TestFindDuplicates(t *testing.T) {
	tr := New[string, int]()
	for i := range 10 {
		tr = tr.Insert("k", i)
	}
	tr = tr.Insert("a", -1).Insert("z", -1)
	checkTree(t, tr)

	it := tr.Find("k")
	require.True(t, it.Valid())
	assert.Equal(t, "k", it.Key())

	n := 0
	for t2 := tr; t2.Find("k").Valid(); t2 = t2.Remove("k") {
		checkTree(t, t2)
		n++
	}
	assert.Equal(t, 10, n)
}
