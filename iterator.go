// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrInvalidIterator is returned by [Iterator.Update] when the iterator
// is not positioned at an entry.
var ErrInvalidIterator = errors.New("rbmap: invalid iterator")

// An Iterator is a position in a Tree: an entry, or past either end.
//
// An Iterator holds the path from the root to its entry, so it sees the
// tree it was created from no matter what trees are derived from it later.
// Moving an Iterator off either end makes it invalid; an invalid Iterator
// stays invalid.
type Iterator[K, V any] struct {
	tree  *Tree[K, V]
	stack []*Node[K, V] // root to current; empty if invalid
}

func (t *Tree[K, V]) iter(stack []*Node[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, stack: stack}
}

// Tree returns the tree it iterates over.
func (it *Iterator[K, V]) Tree() *Tree[K, V] { return it.tree }

// Valid reports whether it is positioned at an entry.
func (it *Iterator[K, V]) Valid() bool { return len(it.stack) > 0 }

// Node returns the node at it, or nil if it is invalid.
func (it *Iterator[K, V]) Node() *Node[K, V] {
	if len(it.stack) == 0 {
		return nil
	}
	return it.stack[len(it.stack)-1]
}

// Key returns the key at it, or the zero K if it is invalid.
func (it *Iterator[K, V]) Key() K { return it.Node().Key() }

// Value returns the value at it, or the zero V if it is invalid.
func (it *Iterator[K, V]) Value() V { return it.Node().Value() }

// Clone returns an independent iterator at the same position.
func (it *Iterator[K, V]) Clone() *Iterator[K, V] {
	return &Iterator[K, V]{tree: it.tree, stack: slices.Clone(it.stack)}
}

// Index returns the position of its entry in key order.
// An invalid iterator is at position Len().
func (it *Iterator[K, V]) Index() int {
	s := it.stack
	if len(s) == 0 {
		return it.tree.Len()
	}
	i := s[len(s)-1].left.Len()
	for j := len(s) - 2; j >= 0; j-- {
		if s[j+1] == s[j].right {
			i += 1 + s[j].left.Len()
		}
	}
	return i
}

// Next moves it to the next entry. If there is none, it becomes invalid.
func (it *Iterator[K, V]) Next() {
	s := it.stack
	if len(s) == 0 {
		return
	}
	x := s[len(s)-1]
	if x.right != nil {
		for x = x.right; x != nil; x = x.left {
			s = append(s, x)
		}
	} else {
		s = s[:len(s)-1]
		for len(s) > 0 && s[len(s)-1].right == x {
			x = s[len(s)-1]
			s = s[:len(s)-1]
		}
	}
	it.stack = s
}

// Prev moves it to the previous entry. If there is none, it becomes invalid.
func (it *Iterator[K, V]) Prev() {
	s := it.stack
	if len(s) == 0 {
		return
	}
	x := s[len(s)-1]
	if x.left != nil {
		for x = x.left; x != nil; x = x.right {
			s = append(s, x)
		}
	} else {
		s = s[:len(s)-1]
		for len(s) > 0 && s[len(s)-1].left == x {
			x = s[len(s)-1]
			s = s[:len(s)-1]
		}
	}
	it.stack = s
}

// HasNext reports whether there is an entry after it.
func (it *Iterator[K, V]) HasNext() bool {
	s := it.stack
	if len(s) == 0 {
		return false
	}
	if s[len(s)-1].right != nil {
		return true
	}
	for j := len(s) - 1; j > 0; j-- {
		if s[j-1].left == s[j] {
			return true
		}
	}
	return false
}

// HasPrev reports whether there is an entry before it.
func (it *Iterator[K, V]) HasPrev() bool {
	s := it.stack
	if len(s) == 0 {
		return false
	}
	if s[len(s)-1].left != nil {
		return true
	}
	for j := len(s) - 1; j > 0; j-- {
		if s[j-1].right == s[j] {
			return true
		}
	}
	return false
}

// Update returns a tree in which the entry at it has value val.
// If it is invalid, Update returns an error wrapping [ErrInvalidIterator].
func (it *Iterator[K, V]) Update(val V) (*Tree[K, V], error) {
	if len(it.stack) == 0 {
		return nil, errors.WithStack(ErrInvalidIterator)
	}
	path := copyPath(it.stack)
	path[len(path)-1].val = val
	return it.tree.with(path[0]), nil
}
