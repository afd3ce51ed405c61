// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Command treebench - benchmark self-balancing binary search trees

subcommands:

	generate  write the key datasets named by the configuration
	run       execute the benchmark matrix and write a JSON report
	verify    check every tree invariant over random workloads

the configuration is a Lua file, e.g.:

	local M = {}

	M.data_directory = "."

	M.benchmark = {
	    variants = {"avl", "rb", "splay"},
	    workloads = {"insert", "search", "delete", "mixed"},
	    distributions = {"random", "sequential", "skewed"},
	    sizes = {1000, 10000, 100000},
	    skew_factor = 1.1,
	    seed = 42,
	}

	M.logging = {
	    size = 1048576,
	    count = 10,
	    console = false,
	    levels = {
	        DEFAULT = "info",
	    },
	}

	return M
*/
package main
