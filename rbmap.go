// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rbmap implements persistent ordered maps.
//
// A [Tree] is immutable: Insert, Remove and [Iterator.Update] return a new
// Tree and leave the receiver unchanged. Only the nodes on the path from the
// root to the changed entry are copied; every other subtree is shared between
// the old and new trees. Because no published node is ever written, any
// number of goroutines may read the same Tree without synchronization.
//
// Keys need not be unique. An entry inserted with a key equal to existing
// keys is placed before the equal keys on its search path.
package rbmap

// The implementation is a red-black tree without parent pointers.
// Positions are root-to-node stacks. See:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree
// https://en.wikipedia.org/wiki/Persistent_data_structure#Trees

import (
	"cmp"
)

// A Tree is a persistent map from K to V ordered by a comparison function.
// The zero Tree has no comparison function and cannot be written;
// use [New] or [NewFunc].
type Tree[K, V any] struct {
	root *Node[K, V]
	cmp  func(K, K) int
}

// New returns an empty Tree ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc returns an empty Tree ordered according to cmp.
// cmp must be a strict total order: it returns a negative number, zero or a
// positive number when a < b, a == b or a > b. The order is not checked;
// the behavior of a Tree with an inconsistent cmp is unspecified.
func NewFunc[K, V any](cmp func(K, K) int) *Tree[K, V] {
	if cmp == nil {
		panic("rbmap: nil comparison function")
	}
	return &Tree[K, V]{cmp: cmp}
}

// with returns a tree with root x and t's comparison function.
func (t *Tree[K, V]) with(x *Node[K, V]) *Tree[K, V] {
	return &Tree[K, V]{root: x, cmp: t.cmp}
}

// Root returns the root node of t, or nil if t is empty.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// Len returns the number of entries in t.
func (t *Tree[K, V]) Len() int { return t.root.Len() }

// Compare returns t's comparison function.
func (t *Tree[K, V]) Compare() func(K, K) int { return t.cmp }

// Get returns the value of the first entry with key found on the search path
// and reports whether there is one.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	for x := t.root; x != nil; {
		c := t.cmp(key, x.key)
		if c == 0 {
			return x.val, true
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	var zero V
	return zero, false
}

// Find returns an iterator positioned at the entry Get(key) would return.
// If there is no such entry, the iterator is invalid.
func (t *Tree[K, V]) Find(key K) *Iterator[K, V] {
	var stack []*Node[K, V]
	for x := t.root; x != nil; {
		c := t.cmp(key, x.key)
		stack = append(stack, x)
		if c == 0 {
			return t.iter(stack)
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return t.iter(nil)
}

// seek walks the search path for key, going left when goLeft(c) holds
// for c = cmp(key, x.key), and truncates the path after the deepest node
// for which match(c) holds.
func (t *Tree[K, V]) seek(key K, match, goLeft func(int) bool) *Iterator[K, V] {
	var stack []*Node[K, V]
	cut := 0
	for x := t.root; x != nil; {
		c := t.cmp(key, x.key)
		stack = append(stack, x)
		if match(c) {
			cut = len(stack)
		}
		if goLeft(c) {
			x = x.left
		} else {
			x = x.right
		}
	}
	return t.iter(stack[:cut])
}

func le0(c int) bool { return c <= 0 }
func lt0(c int) bool { return c < 0 }
func gt0(c int) bool { return c > 0 }
func ge0(c int) bool { return c >= 0 }

// GE returns an iterator at the first entry whose key is ≥ key.
// If there is none, the iterator is invalid.
func (t *Tree[K, V]) GE(key K) *Iterator[K, V] { return t.seek(key, le0, le0) }

// GT returns an iterator at the first entry whose key is > key.
// If there is none, the iterator is invalid.
func (t *Tree[K, V]) GT(key K) *Iterator[K, V] { return t.seek(key, lt0, lt0) }

// LE returns an iterator at the last entry whose key is ≤ key.
// If there is none, the iterator is invalid.
func (t *Tree[K, V]) LE(key K) *Iterator[K, V] { return t.seek(key, ge0, lt0) }

// LT returns an iterator at the last entry whose key is < key.
// If there is none, the iterator is invalid.
func (t *Tree[K, V]) LT(key K) *Iterator[K, V] { return t.seek(key, gt0, le0) }

// At returns an iterator at the i'th entry of t in key order, counting from 0.
// If i is out of range, the iterator is invalid.
func (t *Tree[K, V]) At(i int) *Iterator[K, V] {
	if i < 0 || i >= t.Len() {
		return t.iter(nil)
	}
	var stack []*Node[K, V]
	x := t.root
	for {
		stack = append(stack, x)
		n := x.left.Len()
		if i < n {
			x = x.left
			continue
		}
		i -= n
		if i == 0 {
			return t.iter(stack)
		}
		i--
		x = x.right
	}
}

// First returns an iterator at the entry with the smallest key.
// If t is empty, the iterator is invalid.
func (t *Tree[K, V]) First() *Iterator[K, V] {
	var stack []*Node[K, V]
	for x := t.root; x != nil; x = x.left {
		stack = append(stack, x)
	}
	return t.iter(stack)
}

// Last returns an iterator at the entry with the largest key.
// If t is empty, the iterator is invalid.
func (t *Tree[K, V]) Last() *Iterator[K, V] {
	var stack []*Node[K, V]
	for x := t.root; x != nil; x = x.right {
		stack = append(stack, x)
	}
	return t.iter(stack)
}

// Min returns the minimum key in t and true.
// If t is empty, the second return value is false.
func (t *Tree[K, V]) Min() (K, bool) {
	if t.root == nil {
		var z K
		return z, false
	}
	return t.root.minNode().key, true
}

// Max returns the maximum key in t and true.
// If t is empty, the second return value is false.
func (t *Tree[K, V]) Max() (K, bool) {
	if t.root == nil {
		var z K
		return z, false
	}
	return t.root.maxNode().key, true
}

// Remove returns a tree without the entry Find(key) would return.
// If there is no such entry, Remove returns t itself.
func (t *Tree[K, V]) Remove(key K) *Tree[K, V] {
	return t.Find(key).Remove()
}
