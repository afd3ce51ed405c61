// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package splay - a self-adjusting binary search tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// There is no stored balance attribute; instead every access moves
// the touched node to the root by a sequence of zig, zig-zig and
// zig-zag rotation steps.  A single operation can cost O(n) but any
// sequence of m operations costs O(m log n) amortised.
//
// A failed search still reshapes the tree: the last node visited
// before falling off the tree is splayed to the root, so the closest
// stored key ends up at the top.
//
// Keys are unique within a tree; inserting a key that is already
// present splays the existing node and reports nothing added.
package splay
