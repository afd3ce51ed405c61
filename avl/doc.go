// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Keys are unique within a tree; inserting a key that is already
// present leaves the tree unchanged.
package avl
