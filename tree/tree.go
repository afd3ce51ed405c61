// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Balanced - the operation surface every tree variant provides
//
// Insert returns true if the key was added, false if it was already
// present; a duplicate insert never changes the stored key set.
// Delete returns true if the key was removed, false if it was absent;
// a missing key is an expected condition, never a failure.  Count is
// O(1).  Keys returns the keys in ascending order and exists for
// verification; it never mutates the tree shape.
type Balanced interface {
	Insert(key Item) bool
	Search(key Item) bool
	Delete(key Item) bool
	Count() int
	IsEmpty() bool
	Keys() []Item
}
