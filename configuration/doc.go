// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the configuration file is executed as a Lua script and must leave a
// table on the stack; the table is mapped onto a Go structure using
// "gluamapper" field tags
package configuration
