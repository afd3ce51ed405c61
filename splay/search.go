// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"github.com/treebench/treebench/tree"
)

// Search - true if the key is present in the tree
//
// the found node is splayed to the root; on a miss the last node
// visited before falling off the tree is splayed instead, so the
// closest stored key ends up at the root
func (t *Tree) Search(key tree.Item) bool {
	p := t.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil == p.left {
				t.splay(p)
				return false
			}
			p = p.left
		case -1: // p.key < key
			if nil == p.right {
				t.splay(p)
				return false
			}
			p = p.right
		default:
			t.splay(p)
			return true
		}
	}
	return false
}
