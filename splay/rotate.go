// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"github.com/treebench/treebench/fault"
)

// rotate the edge between x and its right child to the left
//
// x must have a right child; rotating without one is a programming
// error, not a recoverable condition
func (t *Tree) rotateLeft(x *Node) {
	y := x.right
	if nil == y {
		fault.Panicf("splay: rotate left around %v without right child", x.key)
	}
	x.right = y.left
	if nil != y.left {
		y.left.up = x
	}
	y.up = x.up
	if nil == x.up {
		t.root = y
	} else if x == x.up.left {
		x.up.left = y
	} else {
		x.up.right = y
	}
	y.left = x
	x.up = y
}

// rotate the edge between x and its left child to the right
//
// x must have a left child
func (t *Tree) rotateRight(x *Node) {
	y := x.left
	if nil == y {
		fault.Panicf("splay: rotate right around %v without left child", x.key)
	}
	x.left = y.right
	if nil != y.right {
		y.right.up = x
	}
	y.up = x.up
	if nil == x.up {
		t.root = y
	} else if x == x.up.right {
		x.up.right = y
	} else {
		x.up.left = y
	}
	y.right = x
	x.up = y
}
