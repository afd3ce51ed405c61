// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"github.com/treebench/treebench/tree"
)

// Delete - remove a key from the tree
// returns true if the key was present and removed
//
// the target is splayed to the root first, then its two sub-trees
// are joined: the maximum of the left sub-tree is splayed to its own
// root, which then has no right child, and the original right
// sub-tree is attached there
func (t *Tree) Delete(key tree.Item) bool {
	if !t.Search(key) {
		// absent key: the search has still reshaped the tree
		return false
	}

	z := t.root
	if nil == z.left {
		t.root = z.right
		if nil != t.root {
			t.root.up = nil
		}
	} else if nil == z.right {
		t.root = z.left
		t.root.up = nil
	} else {
		l := z.left
		r := z.right
		l.up = nil
		r.up = nil

		t.root = l
		t.splay(l.last())
		t.root.right = r
		r.up = t.root
	}
	t.count -= 1
	return true
}
