// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/treebench/treebench/tree"
)

// replace the sub-tree rooted at u by the sub-tree rooted at v
func (t *Tree) transplant(u *Node, v *Node) {
	if nil == u.up {
		t.root = v
	} else if u == u.up.left {
		u.up.left = v
	} else {
		u.up.right = v
	}
	if nil != v {
		v.up = u.up
	}
}

// Delete - remove a key from the tree
// returns true if the key was present and removed
func (t *Tree) Delete(key tree.Item) bool {
	z := search(key, t.root)
	if nil == z {
		return false
	}
	t.count -= 1

	// y is the node physically unlinked: z itself when z has at
	// most one child, otherwise z's in-order successor whose key
	// moves into z's position; x (possibly nil, with parent xUp)
	// takes y's place and inherits the black deficiency
	y := z
	removedColour := y.colour
	var x *Node
	var xUp *Node

	if nil == z.left {
		x = z.right
		xUp = z.up
		t.transplant(z, z.right)
	} else if nil == z.right {
		x = z.left
		xUp = z.up
		t.transplant(z, z.left)
	} else {
		y = z.right.first()
		removedColour = y.colour
		x = y.right
		if y.up == z {
			xUp = y
		} else {
			xUp = y.up
			t.transplant(y, y.right)
			y.right = z.right
			y.right.up = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.up = y
		y.colour = z.colour
	}

	if black == removedColour {
		t.deleteFixup(x, xUp)
	}
	return true
}

// absorb the double-black deficiency left by unlinking a black node
//
// x may be nil (a nil leaf), so its parent is tracked explicitly;
// the loop branches on the sibling's colour and the colours of the
// sibling's children:
//   red sibling           - rotate the parent so the sibling is black
//   two black nephews     - recolour, deficiency moves to the parent
//   near nephew red only  - rotate the sibling to expose a red far
//                           nephew
//   far nephew red        - recolour and rotate the parent, done
func (t *Tree) deleteFixup(x *Node, parent *Node) {
	for x != t.root && !isRed(x) && nil != parent {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.colour = black
				parent.colour = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.colour = red
				x = parent
				parent = x.up
			} else {
				if !isRed(w.right) {
					w.left.colour = black
					w.colour = red
					t.rotateRight(w)
					w = parent.right
				}
				w.colour = parent.colour
				parent.colour = black
				w.right.colour = black
				t.rotateLeft(parent)
				x = t.root
			}
		} else {
			w := parent.left
			if isRed(w) {
				w.colour = black
				parent.colour = red
				t.rotateRight(parent)
				w = parent.left
			}
			if !isRed(w.right) && !isRed(w.left) {
				w.colour = red
				x = parent
				parent = x.up
			} else {
				if !isRed(w.left) {
					w.right.colour = black
					w.colour = red
					t.rotateLeft(w)
					w = parent.left
				}
				w.colour = parent.colour
				parent.colour = black
				w.left.colour = black
				t.rotateRight(parent)
				x = t.root
			}
		}
	}
	if nil != x {
		x.colour = black
	}
}
