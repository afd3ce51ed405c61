// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

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

// CheckBalance - verify the AVL invariant and BST ordering
//
// every node's height difference must be within [-1, +1], the stored
// balance must agree with the actual sub-tree heights and all keys
// must be in strict ascending order; used by tests after mutations
func (t *Tree) CheckBalance() bool {
	_, ok := checkBalance(t.root)
	if !ok {
		return false
	}
	return checkOrder(t.root, nil, nil)
}

// internal: returns height of the sub-tree and invariant status
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkBalance(p.left)
	if !okl {
		return 0, false
	}
	hr, okr := checkBalance(p.right)
	if !okr {
		return 0, false
	}
	b := hr - hl
	if b < -1 || b > 1 || b != p.balance {
		fmt.Printf("balance fail at node: %v   stored: %d  actual: %d\n", p.key, p.balance, b)
		return 0, false
	}
	h := hl
	if hr > hl {
		h = hr
	}
	return h + 1, true
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
