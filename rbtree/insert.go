// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/treebench/treebench/tree"
)

// Insert - insert a new node into the tree
// returns true if the key was added, false if it was already present
func (t *Tree) Insert(key tree.Item) bool {
	var parent *Node
	p := t.root

	for nil != p {
		parent = p
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			// duplicate key: leave the tree unchanged
			return false
		}
	}

	n := &Node{
		key:    key,
		up:     parent,
		colour: red,
	}
	if nil == parent {
		t.root = n
	} else if +1 == parent.key.Compare(key) {
		parent.left = n
	} else {
		parent.right = n
	}
	t.count += 1

	t.insertFixup(n)
	return true
}

// restore the colour properties after attaching a red leaf
//
// walks up while the parent is red; each step is one of:
//   red uncle    - recolour and restart from the grandparent
//   inner child  - rotate the parent to convert to the outer case
//   outer child  - recolour and rotate the grandparent, done
func (t *Tree) insertFixup(n *Node) {
	for isRed(n.up) {
		parent := n.up
		grand := parent.up // a red parent is never the root

		if parent == grand.left {
			uncle := grand.right
			if isRed(uncle) {
				parent.colour = black
				uncle.colour = black
				grand.colour = red
				n = grand
				continue
			}
			if n == parent.right {
				n = parent
				t.rotateLeft(n)
				parent = n.up
			}
			parent.colour = black
			grand.colour = red
			t.rotateRight(grand)
		} else {
			uncle := grand.left
			if isRed(uncle) {
				parent.colour = black
				uncle.colour = black
				grand.colour = red
				n = grand
				continue
			}
			if n == parent.left {
				n = parent
				t.rotateRight(n)
				parent = n.up
			}
			parent.colour = black
			grand.colour = red
			t.rotateLeft(grand)
		}
	}
	t.root.colour = black
}
