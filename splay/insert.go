// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"github.com/treebench/treebench/tree"
)

// Insert - insert a new node into the tree and splay it to the root
// returns true if the key was added, false if it was already present
func (t *Tree) Insert(key tree.Item) bool {
	if nil == t.root {
		t.root = &Node{key: key}
		t.count += 1
		return true
	}

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
			// duplicate key: bring the existing node to the root
			t.splay(p)
			return false
		}
	}

	n := &Node{
		key: key,
		up:  parent,
	}
	if +1 == parent.key.Compare(key) {
		parent.left = n
	} else {
		parent.right = n
	}
	t.count += 1

	t.splay(n)
	return true
}
