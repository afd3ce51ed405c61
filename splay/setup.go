// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"github.com/treebench/treebench/tree"
)

// a node in the tree
type Node struct {
	left  *Node     // left sub-tree
	right *Node     // right sub-tree
	up    *Node     // points to parent node
	key   tree.Item // key part for ordering
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (t *Tree) IsEmpty() bool {
	return nil == t.root
}

// Count - number of nodes currently in the tree
func (t *Tree) Count() int {
	return t.count
}

// Root - return the root node of the tree
func (t *Tree) Root() *Node {
	return t.root
}

// Keys - all keys in ascending order; does not splay
func (t *Tree) Keys() []tree.Item {
	keys := make([]tree.Item, 0, t.count)
	for p := t.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// Key - read the key from a node
func (p *Node) Key() tree.Item {
	return p.key
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return right child of a node
func (p *Node) Right() *Node {
	return p.right
}
