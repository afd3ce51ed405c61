// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// First - return the node with the lowest key value
func (t *Tree) First() *Node {
	return t.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (t *Tree) Last() *Node {
	return t.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	if p.right == nil {
		for {
			up := p.up
			if up == nil {
				return nil
			}
			if p == up.left {
				return up
			}
			p = up
		}
	}
	return p.right.first()
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	if p.left == nil {
		for {
			up := p.up
			if up == nil {
				return nil
			}
			if p == up.right {
				return up
			}
			p = up
		}
	}
	return p.left.last()
}
