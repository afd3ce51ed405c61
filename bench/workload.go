// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"math/rand"
	"time"

	"github.com/treebench/treebench/tree"
)

// Workload - which operation sequence to time
type Workload string

// supported workloads
const (
	Insert Workload = "insert"
	Search Workload = "search"
	Delete Workload = "delete"
	Mixed  Workload = "mixed"
)

// AllWorkloads - every supported workload in report order
var AllWorkloads = []Workload{Insert, Search, Delete, Mixed}

// a single step of a mixed workload
type opKind int

const (
	opInsert opKind = iota
	opSearch
	opDelete
)

type op struct {
	kind opKind
	key  tree.Item
}

// convert raw keys once, outside any timed loop
func toItems(keys []int) []tree.Item {
	items := make([]tree.Item, len(keys))
	for i, k := range keys {
		items[i] = tree.IntItem(k)
	}
	return items
}

func timeInsert(t tree.Balanced, keys []tree.Item) time.Duration {
	start := time.Now()
	for _, k := range keys {
		t.Insert(k)
	}
	return time.Since(start)
}

func timeSearch(t tree.Balanced, keys []tree.Item) time.Duration {
	start := time.Now()
	for _, k := range keys {
		t.Search(k)
	}
	return time.Since(start)
}

func timeDelete(t tree.Balanced, keys []tree.Item) time.Duration {
	start := time.Now()
	for _, k := range keys {
		t.Delete(k)
	}
	return time.Since(start)
}

func timeMixed(t tree.Balanced, ops []op) time.Duration {
	start := time.Now()
	for _, o := range ops {
		switch o.kind {
		case opInsert:
			t.Insert(o.key)
		case opSearch:
			t.Search(o.key)
		case opDelete:
			t.Delete(o.key)
		}
	}
	return time.Since(start)
}

// 60% inserts, 30% searches and 10% deletes; searches and deletes
// only pick keys that have already appeared, as a live workload would
func mixedOps(keys []int, seed int64) []op {
	rng := rand.New(rand.NewSource(seed))
	ops := make([]op, 0, len(keys))
	for i, k := range keys {
		r := rng.Float64()
		switch {
		case r < 0.6:
			ops = append(ops, op{opInsert, tree.IntItem(k)})
		case r < 0.9:
			if i > 0 {
				ops = append(ops, op{opSearch, tree.IntItem(keys[rng.Intn(i)])})
			}
		default:
			if i > 0 {
				ops = append(ops, op{opDelete, tree.IntItem(keys[rng.Intn(i)])})
			}
		}
	}
	return ops
}
