// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"github.com/treebench/treebench/avl"
	"github.com/treebench/treebench/fault"
	"github.com/treebench/treebench/rbtree"
	"github.com/treebench/treebench/splay"
	"github.com/treebench/treebench/tree"
)

// Variant - which tree implementation to exercise
type Variant string

// supported variants
const (
	AVL      Variant = "avl"
	RedBlack Variant = "rb"
	Splay    Variant = "splay"
)

// AllVariants - every supported variant in report order
var AllVariants = []Variant{AVL, RedBlack, Splay}

// NewTree - create an empty tree of the requested variant
func NewTree(v Variant) (tree.Balanced, error) {
	switch v {
	case AVL:
		return avl.New(), nil
	case RedBlack:
		return rbtree.New(), nil
	case Splay:
		return splay.New(), nil
	default:
		return nil, fault.ErrInvalidTreeVariant
	}
}
