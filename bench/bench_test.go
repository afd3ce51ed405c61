// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/treebench/treebench/dataset"
	"github.com/treebench/treebench/fault"
	"github.com/treebench/treebench/tree"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "bench.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialisation failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestNewTree(t *testing.T) {
	for _, v := range AllVariants {
		tr, err := NewTree(v)
		if nil != err {
			t.Fatalf("NewTree(%q) error: %s", v, err)
		}
		if !tr.IsEmpty() {
			t.Errorf("NewTree(%q) is not empty", v)
		}
	}

	_, err := NewTree(Variant("btree"))
	if fault.ErrInvalidTreeVariant != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrInvalidTreeVariant)
	}
}

func TestNewRunnerValidation(t *testing.T) {
	testItems := []struct {
		opts Options
		err  error
	}{
		{Options{Sizes: []int{100}}, fault.ErrRequiredVariants},
		{Options{Variants: AllVariants}, fault.ErrRequiredSizes},
		{Options{Variants: []Variant{Variant("treap")}, Sizes: []int{100}}, fault.ErrInvalidTreeVariant},
		{Options{Variants: AllVariants, Sizes: []int{100}, Workloads: []Workload{Workload("scan")}}, fault.ErrInvalidWorkload},
	}

	for i, item := range testItems {
		_, err := NewRunner(item.opts)
		if item.err != err {
			t.Errorf("%d: unexpected error: %v  expected: %v", i, err, item.err)
		}
	}

	// a valid matrix must create a runner
	r, err := NewRunner(Options{
		Variants: AllVariants,
		Sizes:    []int{100},
	})
	if nil != err {
		t.Fatalf("NewRunner error: %s", err)
	}
	if nil == r {
		t.Fatal("NewRunner returned nil runner")
	}
}

func TestRunMatrix(t *testing.T) {
	opts := Options{
		Variants:      AllVariants,
		Workloads:     []Workload{Insert, Search, Delete, Mixed},
		Distributions: []dataset.Distribution{dataset.RandomOrder, dataset.Sequential, dataset.SkewedAccess},
		Sizes:         []int{200, 500},
		Seed:          20250901,
	}
	r, err := NewRunner(opts)
	if nil != err {
		t.Fatalf("NewRunner error: %s", err)
	}

	report, err := r.Run()
	if nil != err {
		t.Fatalf("Run error: %s", err)
	}

	expected := len(opts.Variants) * len(opts.Workloads) * len(opts.Distributions) * len(opts.Sizes)
	assert.Equal(t, expected, len(report.Results), "result count")
	assert.Equal(t, opts.Seed, report.Seed, "report seed")

	for i, res := range report.Results {
		if res.Operations <= 0 {
			t.Errorf("%d: %s %s %s: no operations recorded", i, res.Variant, res.Workload, res.Distribution)
		}
		if res.ElapsedNs < 0 {
			t.Errorf("%d: %s %s %s: negative elapsed time", i, res.Variant, res.Workload, res.Distribution)
		}
		if res.Workload == string(Insert) && res.Operations != res.Size {
			t.Errorf("%d: insert operations: %d  expected: %d", i, res.Operations, res.Size)
		}
	}
}

func TestRunReproducible(t *testing.T) {
	opts := Options{
		Variants:  []Variant{AVL},
		Workloads: []Workload{Mixed},
		Sizes:     []int{300},
		Seed:      7,
	}

	first, err := NewRunner(opts)
	if nil != err {
		t.Fatalf("NewRunner error: %s", err)
	}
	second, err := NewRunner(opts)
	if nil != err {
		t.Fatalf("NewRunner error: %s", err)
	}

	a, err := first.Run()
	if nil != err {
		t.Fatalf("Run error: %s", err)
	}
	b, err := second.Run()
	if nil != err {
		t.Fatalf("Run error: %s", err)
	}

	// same seed must produce the same operation counts
	for i := range a.Results {
		if a.Results[i].Operations != b.Results[i].Operations {
			t.Errorf("%d: operations: %d and %d differ for the same seed",
				i, a.Results[i].Operations, b.Results[i].Operations)
		}
	}
}

func TestMixedOps(t *testing.T) {
	keys, err := dataset.Random(2000, 99)
	if nil != err {
		t.Fatalf("Random error: %s", err)
	}

	ops := mixedOps(keys, 99)
	if len(ops) > len(keys) {
		t.Fatalf("ops: %d exceeds key count: %d", len(ops), len(keys))
	}

	counts := map[opKind]int{}
	inserted := map[tree.Item]struct{}{}
	for i, o := range ops {
		counts[o.kind] += 1
		if opInsert == o.kind {
			inserted[o.key] = struct{}{}
		} else if _, ok := inserted[o.key]; !ok {
			t.Errorf("%d: key: %v accessed before any insert", i, o.key)
		}
	}

	// 60/30/10 split with a generous tolerance
	n := len(ops)
	if counts[opInsert] < n/2 {
		t.Errorf("insert count: %d too low for %d ops", counts[opInsert], n)
	}
	if counts[opSearch] < n/5 {
		t.Errorf("search count: %d too low for %d ops", counts[opSearch], n)
	}
	if counts[opDelete] < n/20 {
		t.Errorf("delete count: %d too low for %d ops", counts[opDelete], n)
	}
}

func TestReportWriteJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "bench")
	if nil != err {
		t.Fatalf("TempDir error: %s", err)
	}
	defer os.RemoveAll(dir)

	r, err := NewRunner(Options{
		Variants:  []Variant{Splay},
		Workloads: []Workload{Insert},
		Sizes:     []int{100},
		Seed:      1,
	})
	if nil != err {
		t.Fatalf("NewRunner error: %s", err)
	}
	report, err := r.Run()
	if nil != err {
		t.Fatalf("Run error: %s", err)
	}

	fileName := filepath.Join(dir, "report.json")
	err = report.WriteJSON(fileName)
	if nil != err {
		t.Fatalf("WriteJSON error: %s", err)
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		t.Fatalf("ReadFile error: %s", err)
	}
	s := string(data)
	for _, want := range []string{`"splay"`, `"insert"`, `"operations": 100`} {
		if !strings.Contains(s, want) {
			t.Errorf("report JSON is missing: %s", want)
		}
	}
}

func TestReportWriteTable(t *testing.T) {
	report := &Report{
		Results: []Result{
			{Variant: "avl", Workload: "search", Distribution: "random", Size: 100, Operations: 10, Seconds: 0.001},
		},
	}

	buffer := &bytes.Buffer{}
	report.WriteTable(buffer)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if 2 != len(lines) {
		t.Fatalf("table lines: %d  expected: 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "variant") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "avl") || !strings.Contains(lines[1], "search") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func benchmarkInsert(b *testing.B, v Variant) {
	keys, err := dataset.Random(10000, 4321)
	if nil != err {
		b.Fatalf("Random error: %s", err)
	}
	items := toItems(keys)

	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tr, _ := NewTree(v)
		for _, k := range items {
			tr.Insert(k)
		}
	}
}

func benchmarkSearch(b *testing.B, v Variant) {
	keys, err := dataset.Random(10000, 4321)
	if nil != err {
		b.Fatalf("Random error: %s", err)
	}
	items := toItems(keys)
	tr, _ := NewTree(v)
	for _, k := range items {
		tr.Insert(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tr.Search(items[i%len(items)])
	}
}

func BenchmarkAVLInsert(b *testing.B)      { benchmarkInsert(b, AVL) }
func BenchmarkRedBlackInsert(b *testing.B) { benchmarkInsert(b, RedBlack) }
func BenchmarkSplayInsert(b *testing.B)    { benchmarkInsert(b, Splay) }

func BenchmarkAVLSearch(b *testing.B)      { benchmarkSearch(b, AVL) }
func BenchmarkRedBlackSearch(b *testing.B) { benchmarkSearch(b, RedBlack) }
func BenchmarkSplaySearch(b *testing.B)    { benchmarkSearch(b, Splay) }
