// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"strconv"
	"strings"
)

// Item - a key must implement the Compare function
//
// Compare returns -1, 0 or +1 for less than, equal or greater than
// the argument, which must be of the same concrete type.
type Item interface {
	Compare(interface{}) int
}

// IntItem - integer key
type IntItem int

// Compare - integer ordering for the tree interface
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func (i IntItem) String() string {
	return strconv.Itoa(int(i))
}

// StringItem - string key
type StringItem string

// Compare - lexical ordering for the tree interface
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}

func (s StringItem) String() string {
	return string(s)
}
