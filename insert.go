// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbmap

// Insert returns a tree that contains every entry of t and key → val.
// If t already has entries equal to key, the new entry is added before
// those on its search path; none are replaced.
func (t *Tree[K, V]) Insert(key K, val V) *Tree[K, V] {
	// Find the leaf position, remembering the path and the directions taken.
	var path []*Node[K, V]
	var left []bool
	for x := t.root; x != nil; {
		l := t.cmp(key, x.key) <= 0
		path = append(path, x)
		left = append(left, l)
		if l {
			x = x.left
		} else {
			x = x.right
		}
	}

	// Copy the path bottom-up, hanging the new red leaf off the end.
	path = append(path, &Node[K, V]{key: key, val: val, size: 1, color: Red})
	for i := len(path) - 2; i >= 0; i-- {
		x := path[i].clone()
		x.size++
		if left[i] {
			x.left = path[i+1]
		} else {
			x.right = path[i+1]
		}
		path[i] = x
	}

	fixInsert(path)
	path[0].color = Black
	return t.with(path[0])
}

// fixInsert restores the red-black invariants after a red leaf was appended
// to path. Every node in path is an unpublished copy.
func fixInsert[K, V any](path []*Node[K, V]) {
	for i := len(path) - 1; i > 1; i-- {
		p, n := path[i-1], path[i]
		if p.color == Black || n.color == Black {
			return
		}
		g := path[i-2]
		if g.left == p {
			if u := g.right; u.isRed() {
				trace("insert", "left uncle red", i)
				p.color = Black
				g.right = u.repaint(Black)
				g.color = Red
				i--
				continue
			}
			var top *Node[K, V]
			if p.left == n {
				trace("insert", "left-left", i)
				g.left = p.right
				p.right = g
				top = p
				path[i-1] = n
			} else {
				trace("insert", "left-right", i)
				p.right = n.left
				g.left = n.right
				n.left = p
				n.right = g
				top = n
				path[i-1] = p
			}
			rotated(path, i-2, g, top)
			return
		}

		if u := g.left; u.isRed() {
			trace("insert", "right uncle red", i)
			p.color = Black
			g.left = u.repaint(Black)
			g.color = Red
			i--
			continue
		}
		var top *Node[K, V]
		if p.right == n {
			trace("insert", "right-right", i)
			g.right = p.left
			p.left = g
			top = p
			path[i-1] = n
		} else {
			trace("insert", "right-left", i)
			p.left = n.right
			g.right = n.left
			n.right = p
			n.left = g
			top = n
			path[i-1] = p
		}
		rotated(path, i-2, g, top)
		return
	}
}

// rotated finishes an insertion rotation that replaced g, the node at
// path[j], with top: it repaints, recounts and relinks top into path[j-1].
func rotated[K, V any](path []*Node[K, V], j int, g, top *Node[K, V]) {
	g.color = Red
	top.color = Black
	g.recount()
	if top.left != g {
		top.left.recount()
	}
	if top.right != g {
		top.right.recount()
	}
	top.recount()
	replace(path, j, g, top)
}

// replace puts x in place of old at path[j], relinking it into its parent.
func replace[K, V any](path []*Node[K, V], j int, old, x *Node[K, V]) {
	path[j] = x
	if j > 0 {
		if p := path[j-1]; p.left == old {
			p.left = x
		} else {
			p.right = x
		}
	}
}
