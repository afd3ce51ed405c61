// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command treedemo - walk each tree variant through a fixed
// insert/search/delete scenario with an ASCII printout after every
// mutation
package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/treebench/treebench/avl"
	"github.com/treebench/treebench/rbtree"
	"github.com/treebench/treebench/splay"
	"github.com/treebench/treebench/tree"
)

// the demo scenario
var (
	demoInserts  = []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45}
	demoSearches = []int{40, 40, 40, 75}
	demoDeletes  = []int{30, 50, 80}
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "variant", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--quiet] [--variant=avl|rb|splay]", program)
	}

	if len(arguments) != 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	quiet := len(options["quiet"]) > 0

	variants := []string{"avl", "rb", "splay"}
	if len(options["variant"]) > 0 {
		variants = options["variant"]
	}

	for _, v := range variants {
		switch v {
		case "avl":
			t := avl.New()
			demo(v, t, func() { t.Print(true) }, quiet)
		case "rb":
			t := rbtree.New()
			demo(v, t, func() { t.Print() }, quiet)
		case "splay":
			t := splay.New()
			demo(v, t, func() { t.Print() }, quiet)
		default:
			exitwithstatus.Message("%s: invalid variant: %q", program, v)
		}
	}
}

// run the fixed scenario on one tree
func demo(name string, t tree.Balanced, print func(), quiet bool) {

	fmt.Printf("==== %s ====\n", name)

	for _, k := range demoInserts {
		t.Insert(tree.IntItem(k))
	}
	fmt.Printf("after %d inserts, count: %d\n", len(demoInserts), t.Count())
	if !quiet {
		print()
	}

	for _, k := range demoSearches {
		found := t.Search(tree.IntItem(k))
		fmt.Printf("search %d: %t\n", k, found)
	}
	if !quiet {
		// a splay tree moves the last hit to the root
		print()
	}

	for _, k := range demoDeletes {
		removed := t.Delete(tree.IntItem(k))
		fmt.Printf("delete %d: %t\n", k, removed)
		if !quiet {
			print()
		}
	}

	fmt.Printf("final count: %d  keys: %v\n\n", t.Count(), t.Keys())
}
