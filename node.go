// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

// A Color is the color of a node in a red-black tree.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "Color(?)"
	}
}

// A Node is a node in a Tree.
//
// Nodes are shared between every Tree that reaches them and must be treated
// as read-only. The accessors are safe to call on a nil *Node.
type Node[K, V any] struct {
	left  *Node[K, V]
	right *Node[K, V]
	key   K
	val   V
	size  int // nodes in this subtree, including this one
	color Color
}

// Key returns the node's key.
func (x *Node[K, V]) Key() K {
	if x == nil {
		var z K
		return z
	}
	return x.key
}

// Value returns the node's value.
func (x *Node[K, V]) Value() V {
	if x == nil {
		var z V
		return z
	}
	return x.val
}

// Left returns the node's left child, or nil.
func (x *Node[K, V]) Left() *Node[K, V] {
	if x == nil {
		return nil
	}
	return x.left
}

// Right returns the node's right child, or nil.
func (x *Node[K, V]) Right() *Node[K, V] {
	if x == nil {
		return nil
	}
	return x.right
}

// Color returns the node's color. The nil node is black.
func (x *Node[K, V]) Color() Color {
	if x == nil {
		return Black
	}
	return x.color
}

// Len returns the number of nodes in the subtree rooted at x.
func (x *Node[K, V]) Len() int {
	if x == nil {
		return 0
	}
	return x.size
}

func (x *Node[K, V]) isRed() bool { return x != nil && x.color == Red }

// clone returns a fresh, unpublished copy of x that shares x's children.
func (x *Node[K, V]) clone() *Node[K, V] {
	c := *x
	return &c
}

// repaint returns a copy of x with color c.
func (x *Node[K, V]) repaint(c Color) *Node[K, V] {
	y := x.clone()
	y.color = c
	return y
}

// recount recomputes x.size from its children.
// x must be unpublished.
func (x *Node[K, V]) recount() {
	x.size = 1 + x.left.Len() + x.right.Len()
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *Node[K, V]) minNode() *Node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *Node[K, V]) maxNode() *Node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}
