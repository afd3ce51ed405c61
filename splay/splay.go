// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

// move a node to the root by repeated double rotations
//
// each step looks at the node, its parent and its grandparent:
//   zig      - parent is the root, one rotation finishes
//   zig-zig  - node and parent are children on the same side,
//              rotate the grandparent first, then the parent
//   zig-zag  - node and parent are children on opposite sides,
//              rotate the parent first, then the grandparent
func (t *Tree) splay(x *Node) {
	for nil != x.up {
		parent := x.up
		grand := parent.up

		if nil == grand {
			// zig
			if x == parent.left {
				t.rotateRight(parent)
			} else {
				t.rotateLeft(parent)
			}
		} else if x == parent.left && parent == grand.left {
			// zig-zig, both left children
			t.rotateRight(grand)
			t.rotateRight(parent)
		} else if x == parent.right && parent == grand.right {
			// zig-zig, both right children
			t.rotateLeft(grand)
			t.rotateLeft(parent)
		} else if x == parent.right && parent == grand.left {
			// zig-zag
			t.rotateLeft(parent)
			t.rotateRight(grand)
		} else {
			// zig-zag, mirrored
			t.rotateRight(parent)
			t.rotateLeft(grand)
		}
	}
}
