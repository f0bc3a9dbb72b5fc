// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

import "github.com/cockroachdb/errors"

// Check verifies the red-black tree invariants of t: keys are in order,
// no red node has a red child, every path from the root to a leaf has the
// same number of black nodes, the root is black, and every node's size is
// the size of its subtree. It returns an error describing the first
// violation found, or nil.
//
// Check takes time proportional to Len; it is meant for tests and debugging.
func (t *Tree[K, V]) Check() error {
	if t.root == nil {
		return nil
	}
	if t.root.color != Black {
		return errors.AssertionFailedf("root is %s", t.root.color)
	}
	if _, err := t.check(t.root, 0); err != nil {
		return err
	}
	i := 0
	var prev K
	for k := range t.All() {
		if i > 0 && t.cmp(prev, k) > 0 {
			return errors.AssertionFailedf("key %d is less than key %d", i, i-1)
		}
		prev = k
		i++
	}
	return nil
}

// check verifies the subtree at x, found at depth, and returns its
// black height.
func (t *Tree[K, V]) check(x *Node[K, V], depth int) (int, error) {
	if x == nil {
		return 1, nil
	}
	if x.color == Red && (x.left.isRed() || x.right.isRed()) {
		return 0, errors.AssertionFailedf("red node at depth %d has a red child", depth)
	}
	if want := 1 + x.left.Len() + x.right.Len(); x.size != want {
		return 0, errors.AssertionFailedf("node at depth %d has size %d, want %d", depth, x.size, want)
	}
	lh, err := t.check(x.left, depth+1)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(x.right, depth+1)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.AssertionFailedf("node at depth %d has black heights %d and %d", depth, lh, rh)
	}
	if x.color == Black {
		lh++
	}
	return lh, nil
}
