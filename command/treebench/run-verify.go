// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"

	"github.com/urfave/cli"

	"github.com/treebench/treebench/avl"
	"github.com/treebench/treebench/rbtree"
	"github.com/treebench/treebench/splay"
	"github.com/treebench/treebench/tree"
)

// the structural checks for one variant
type checks struct {
	name  string
	tree  tree.Balanced
	check func() bool
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	size := c.Int("size")
	rounds := c.Int("rounds")
	seed := c.Int64("seed")

	if size < 1 || rounds < 1 {
		return fmt.Errorf("size: %d and rounds: %d must be positive", size, rounds)
	}

	rng := rand.New(rand.NewSource(seed))

	for round := 1; round <= rounds; round += 1 {

		a := avl.New()
		r := rbtree.New()
		s := splay.New()

		variants := []checks{
			{"avl", a, func() bool { return a.CheckUp() && a.CheckBalance() }},
			{"rb", r, func() bool { return r.CheckUp() && r.CheckProperties() }},
			{"splay", s, func() bool { return s.CheckUp() && s.CheckOrder() }},
		}

		for _, v := range variants {
			present := map[int]struct{}{}

			for i := 0; i < size; i += 1 {
				key := rng.Intn(10 * size)
				item := tree.IntItem(key)

				switch rng.Intn(3) {
				case 0, 1:
					_, duplicate := present[key]
					if v.tree.Insert(item) == duplicate {
						return fmt.Errorf("%s: insert %d: wrong duplicate handling", v.name, key)
					}
					present[key] = struct{}{}
				case 2:
					_, ok := present[key]
					if v.tree.Delete(item) != ok {
						return fmt.Errorf("%s: delete %d: wrong presence", v.name, key)
					}
					delete(present, key)
				}

				_, ok := present[key]
				if v.tree.Search(tree.IntItem(key)) != ok {
					return fmt.Errorf("%s: search %d: wrong presence", v.name, key)
				}
			}

			if v.tree.Count() != len(present) {
				return fmt.Errorf("%s: count: %d  expected: %d", v.name, v.tree.Count(), len(present))
			}
			if !v.check() {
				return fmt.Errorf("%s: structure check failed on round %d", v.name, round)
			}

			if m.verbose {
				fmt.Fprintf(m.e, "round %d: %s ok, %d keys\n", round, v.name, v.tree.Count())
			}
		}
	}

	fmt.Fprintf(m.w, "verified %d rounds of %d operations per variant\n", rounds, size)
	return nil
}
