// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

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

// CheckProperties - verify the red-black colour properties and BST
// ordering; used by tests after mutations
func (t *Tree) CheckProperties() bool {
	if isRed(t.root) {
		fmt.Printf("red root: %v\n", t.root.key)
		return false
	}
	_, ok := checkColours(t.root)
	if !ok {
		return false
	}
	return checkOrder(t.root, nil, nil)
}

// internal: returns the black-height of the sub-tree counting nil
// leaves as one black node
func checkColours(p *Node) (int, bool) {
	if nil == p {
		return 1, true
	}
	if isRed(p) && (isRed(p.left) || isRed(p.right)) {
		fmt.Printf("red node with red child: %v\n", p.key)
		return 0, false
	}
	bl, okl := checkColours(p.left)
	if !okl {
		return 0, false
	}
	br, okr := checkColours(p.right)
	if !okr {
		return 0, false
	}
	if bl != br {
		fmt.Printf("black height mismatch at node: %v   left: %d  right: %d\n", p.key, bl, br)
		return 0, false
	}
	if black == p.colour {
		bl += 1
	}
	return bl, true
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

// BlackHeight - black nodes on any path from the root down to a nil
// leaf, counting the nil leaf
func (t *Tree) BlackHeight() int {
	bh := 0
	for p := t.root; nil != p; p = p.left {
		if black == p.colour {
			bh += 1
		}
	}
	return bh + 1
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
