// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench - wall-clock timing harness for the tree variants
//
// Runs configured workloads (insert, search, delete, mixed) over the
// common tree contract for a matrix of variants, key distributions
// and dataset sizes, and collects the elapsed durations into a
// report that can be printed as a table or written as JSON.
//
// Only elapsed time is recorded; statistical post-processing and
// plotting are left to external tooling.
package bench
