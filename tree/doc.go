// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - the common contract shared by the balanced tree
// variants
//
// Each variant owns its node representation and balancing algorithm;
// the only thing they share is the key abstraction and the operation
// surface defined here, so that harnesses and tests can be written
// once against the interface and run against any variant.
package tree
