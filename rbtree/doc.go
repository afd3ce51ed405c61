// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with parent pointers to
// allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Balance is maintained by node colouring:
//   1. every node is either red or black
//   2. the root is black
//   3. every nil leaf counts as black
//   4. a red node has no red child
//   5. every path from a node down to a nil leaf crosses the same
//      number of black nodes
//
// Keys are unique within a tree; inserting a key that is already
// present leaves the tree unchanged.
package rbtree
