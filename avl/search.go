// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/treebench/treebench/tree"
)

// Search - true if the key is present in the tree
func (t *Tree) Search(key tree.Item) bool {
	return nil != search(key, t.root)
}

// SearchNode - find the node holding a specific key
func (t *Tree) SearchNode(key tree.Item) *Node {
	return search(key, t.root)
}

func search(key tree.Item, p *Node) *Node {
	if nil == p {
		return nil
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		return search(key, p.left)
	case -1: // p.key < key
		return search(key, p.right)
	default:
		return p
	}
}
