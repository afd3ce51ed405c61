// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"fmt"

	"github.com/treebench/treebench/tree"
)

// CheckUp - check the up pointers for consistency
func (t *Tree) CheckUp() bool {
	return checkup(t.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckOrder - verify BST ordering; the only structural invariant a
// splay tree keeps, used by tests after mutations
func (t *Tree) CheckOrder() bool {
	return checkOrder(t.root, nil, nil)
}

// internal: strict ordering with open interval bounds
func checkOrder(p *Node, min tree.Item, max tree.Item) bool {
	if nil == p {
		return true
	}
	if nil != min && p.key.Compare(min) != +1 {
		return false
	}
	if nil != max && p.key.Compare(max) != -1 {
		return false
	}
	return checkOrder(p.left, min, p.key) && checkOrder(p.right, p.key, max)
}

// Height - number of nodes on the longest root to leaf path
//
// zero for an empty tree; O(n), for verification only
func (t *Tree) Height() int {
	return height(t.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	hl := height(p.left)
	hr := height(p.right)
	if hr > hl {
		return hr + 1
	}
	return hl + 1
}
