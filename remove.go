// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

import "github.com/cockroachdb/errors"

// copyPath returns unpublished copies of the nodes of stack, a root-to-node
// path, each copy linked to the copy below it.
func copyPath[K, V any](stack []*Node[K, V]) []*Node[K, V] {
	path := make([]*Node[K, V], len(stack), len(stack)+8)
	path[len(path)-1] = stack[len(stack)-1].clone()
	for i := len(stack) - 2; i >= 0; i-- {
		x := stack[i].clone()
		if x.left == stack[i+1] {
			x.left = path[i+1]
		} else {
			x.right = path[i+1]
		}
		path[i] = x
	}
	return path
}

// Remove returns a tree without the entry at it.
// If it is invalid, Remove returns its tree unchanged.
// The iterator itself is unaffected.
func (it *Iterator[K, V]) Remove() *Tree[K, V] {
	if len(it.stack) == 0 {
		return it.tree
	}
	path := copyPath(it.stack)

	// A node with two children trades places with its predecessor,
	// which has at most one child, and that position is removed instead.
	if n := path[len(path)-1]; n.left != nil && n.right != nil {
		split := len(path)
		x := n.left
		for x.right != nil {
			path = append(path, x)
			x = x.right
		}
		y := x.clone()
		y.key, y.val = n.key, n.val
		path = append(path, y)
		n.key, n.val = x.key, x.val
		for i := len(path) - 2; i >= split; i-- {
			z := path[i].clone()
			z.right = path[i+1]
			path[i] = z
		}
		n.left = path[split]
	}

	n := path[len(path)-1]
	switch {
	case n.color == Red:
		// A red node with at most one child is a leaf.
		unlink(path[len(path)-2], n)
		path = path[:len(path)-1]
		decrement(path)

	case n.left != nil || n.right != nil:
		// The only child of a black node is red. It takes n's place.
		c := n.left
		if c == nil {
			c = n.right
		}
		*n = *c
		n.color = Black
		decrement(path[:len(path)-1])

	case len(path) == 1:
		return it.tree.with(nil)

	default:
		decrement(path)
		p := path[len(path)-2]
		path = fixRemove(path)
		unlink(p, n)
	}
	return it.tree.with(path[0])
}

func unlink[K, V any](p, n *Node[K, V]) {
	if p.left == n {
		p.left = nil
	} else {
		p.right = nil
	}
}

func decrement[K, V any](path []*Node[K, V]) {
	for _, x := range path {
		x.size--
	}
}

// fixRemove resolves the black-height deficit left by removing the black
// leaf at the end of path. It works upward from the deficient node, rotating
// and repainting copies of the nodes it touches, and returns path, which may
// have grown; path[0] is the new root.
func fixRemove[K, V any](path []*Node[K, V]) []*Node[K, V] {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if i == 0 {
			n.color = Black
			return path
		}
		p := path[i-1]
		if p.left == n {
			s := p.right
			if s == nil {
				panic(errors.AssertionFailedf("rbmap: deficient node %d has no sibling", i))
			}
			switch {
			case s.right.isRed():
				trace("remove", "left: far nephew red", i)
				s = s.clone()
				z := s.right.repaint(Black)
				p.right = s.left
				s.left = p
				s.right = z
				s.color = p.color
				p.color = Black
				n.color = Black
				p.recount()
				s.recount()
				replace(path, i-1, p, s)
				return path

			case s.left.isRed():
				trace("remove", "left: near nephew red", i)
				s = s.clone()
				z := s.left.clone()
				p.right = z.left
				s.left = z.right
				z.left = p
				z.right = s
				z.color = p.color
				p.color = Black
				s.color = Black
				n.color = Black
				p.recount()
				s.recount()
				z.recount()
				replace(path, i-1, p, z)
				return path

			case s.color == Black:
				p.right = s.repaint(Red)
				if p.color == Red {
					trace("remove", "left: black sibling, red parent", i)
					p.color = Black
					return path
				}
				trace("remove", "left: black sibling, black parent", i)

			default:
				trace("remove", "left: red sibling", i)
				s = s.clone()
				p.right = s.left
				s.left = p
				s.color = p.color
				p.color = Red
				p.recount()
				s.recount()
				replace(path, i-1, p, s)
				path = descend(path, i, p, n)
				i += 2
			}
			continue
		}

		s := p.left
		if s == nil {
			panic(errors.AssertionFailedf("rbmap: deficient node %d has no sibling", i))
		}
		switch {
		case s.left.isRed():
			trace("remove", "right: far nephew red", i)
			s = s.clone()
			z := s.left.repaint(Black)
			p.left = s.right
			s.right = p
			s.left = z
			s.color = p.color
			p.color = Black
			n.color = Black
			p.recount()
			s.recount()
			replace(path, i-1, p, s)
			return path

		case s.right.isRed():
			trace("remove", "right: near nephew red", i)
			s = s.clone()
			z := s.right.clone()
			p.left = z.right
			s.right = z.left
			z.right = p
			z.left = s
			z.color = p.color
			p.color = Black
			s.color = Black
			n.color = Black
			p.recount()
			s.recount()
			z.recount()
			replace(path, i-1, p, z)
			return path

		case s.color == Black:
			p.left = s.repaint(Red)
			if p.color == Red {
				trace("remove", "right: black sibling, red parent", i)
				p.color = Black
				return path
			}
			trace("remove", "right: black sibling, black parent", i)

		default:
			trace("remove", "right: red sibling", i)
			s = s.clone()
			p.left = s.right
			s.right = p
			s.color = p.color
			p.color = Red
			p.recount()
			s.recount()
			replace(path, i-1, p, s)
			path = descend(path, i, p, n)
			i += 2
		}
	}
	return path
}

// descend records that a rotation pushed p, the parent of the deficient
// node n, one level down: p moves to path[i] and n to path[i+1].
func descend[K, V any](path []*Node[K, V], i int, p, n *Node[K, V]) []*Node[K, V] {
	path[i] = p
	if i+1 < len(path) {
		path[i+1] = n
	} else {
		path = append(path, n)
	}
	return path
}
