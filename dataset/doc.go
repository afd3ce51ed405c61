// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dataset - key sequence generation for benchmark runs
//
// Produces the input patterns the harness feeds to the trees: unique
// random keys, ascending and descending runs, and Zipf distributed
// access sequences where a few hot keys dominate.  Sequences can be
// written to and reloaded from JSON files so a run is reproducible.
package dataset
