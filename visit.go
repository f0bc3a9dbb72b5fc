// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

import (
	"iter"

	"github.com/jba/rbmap/rng"
)

// ForEach calls fn on each entry of t in key order until fn returns true.
// It reports whether fn stopped the walk.
func (t *Tree[K, V]) ForEach(fn func(K, V) bool) bool {
	return t.Visit(rng.All[K](), fn)
}

// ForEachFrom is like ForEach, limited to keys k with lo ≤ k.
func (t *Tree[K, V]) ForEachFrom(lo K, fn func(K, V) bool) bool {
	return t.Visit(rng.From(lo), fn)
}

// ForEachRange is like ForEach, limited to keys k with lo ≤ k < hi.
// If hi ≤ lo, fn is not called.
func (t *Tree[K, V]) ForEachRange(lo, hi K, fn func(K, V) bool) bool {
	if t.cmp(lo, hi) >= 0 {
		return false
	}
	return t.Visit(rng.From(lo).Below(hi), fn)
}

// Visit calls fn on each entry of t whose key is in r, in key order
// (reverse key order if r is backwards), until fn returns true.
// It reports whether fn stopped the walk.
// Subtrees that cannot hold keys in r are not entered.
func (t *Tree[K, V]) Visit(r rng.Range[K], fn func(K, V) bool) bool {
	if t.root == nil {
		return false
	}
	if r.IsBackwards() {
		return t.visitBackward(t.root, r, fn)
	}
	return t.visit(t.root, r, fn)
}

func (t *Tree[K, V]) visit(x *Node[K, V], r rng.Range[K], fn func(K, V) bool) bool {
	lo := r.AboveLow(t.cmp, x.key)
	hi := r.BelowHigh(t.cmp, x.key)
	if lo && x.left != nil && t.visit(x.left, r, fn) {
		return true
	}
	if lo && hi && fn(x.key, x.val) {
		return true
	}
	return hi && x.right != nil && t.visit(x.right, r, fn)
}

func (t *Tree[K, V]) visitBackward(x *Node[K, V], r rng.Range[K], fn func(K, V) bool) bool {
	lo := r.AboveLow(t.cmp, x.key)
	hi := r.BelowHigh(t.cmp, x.key)
	if hi && x.right != nil && t.visitBackward(x.right, r, fn) {
		return true
	}
	if lo && hi && fn(x.key, x.val) {
		return true
	}
	return lo && x.left != nil && t.visitBackward(x.left, r, fn)
}

// Keys returns the keys of t in order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Values returns the values of t in key order.
func (t *Tree[K, V]) Values() []V {
	vals := make([]V, 0, t.Len())
	t.ForEach(func(_ K, v V) bool {
		vals = append(vals, v)
		return false
	})
	return vals
}

// All returns an iterator over the entries of t from smallest to largest key.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.First(); it.Valid() && yield(it.Key(), it.Value()); {
			it.Next()
		}
	}
}

// Backward returns an iterator over the entries of t from largest to smallest key.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Last(); it.Valid() && yield(it.Key(), it.Value()); {
			it.Prev()
		}
	}
}

// Scan returns an iterator over the entries of t whose keys are in r,
// in key order or, if r is backwards, in reverse key order.
func (t *Tree[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if r.IsBackwards() {
			for it := t.high(r); it.Valid() && r.AboveLow(t.cmp, it.Key()) && yield(it.Key(), it.Value()); {
				it.Prev()
			}
			return
		}
		for it := t.low(r); it.Valid() && r.BelowHigh(t.cmp, it.Key()) && yield(it.Key(), it.Value()); {
			it.Next()
		}
	}
}

// low returns an iterator at the first entry satisfying r's low bound.
func (t *Tree[K, V]) low(r rng.Range[K]) *Iterator[K, V] {
	lo, inf, incl := r.Low()
	switch {
	case inf:
		return t.First()
	case incl:
		return t.GE(lo)
	default:
		return t.GT(lo)
	}
}

// high returns an iterator at the last entry satisfying r's high bound.
func (t *Tree[K, V]) high(r rng.Range[K]) *Iterator[K, V] {
	hi, inf, incl := r.High()
	switch {
	case inf:
		return t.Last()
	case incl:
		return t.LE(hi)
	default:
		return t.LT(hi)
	}
}
