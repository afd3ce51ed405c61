// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/treebench/treebench/dataset"
	"github.com/treebench/treebench/fault"
)

func TestRandomUnique(t *testing.T) {
	keys, err := dataset.Random(1000, 1)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if 1000 != len(keys) {
		t.Fatalf("key count: actual: %d  expected: 1000", len(keys))
	}
	seen := make(map[int]struct{})
	for _, k := range keys {
		if k < 0 || k >= 10000 {
			t.Fatalf("key out of range: %d", k)
		}
		if _, ok := seen[k]; ok {
			t.Fatalf("duplicate key: %d", k)
		}
		seen[k] = struct{}{}
	}

	// same seed, same sequence
	again, err := dataset.Random(1000, 1)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	for i, k := range keys {
		if again[i] != k {
			t.Fatalf("sequence not reproducible at %d: %d != %d", i, k, again[i])
		}
	}
}

func TestSequentialAndReversed(t *testing.T) {
	seq, err := dataset.SequentialKeys(10)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	rev, err := dataset.ReversedKeys(10)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	for i := 0; i < 10; i += 1 {
		if seq[i] != i {
			t.Fatalf("sequential[%d]: actual: %d  expected: %d", i, seq[i], i)
		}
		if rev[i] != 9-i {
			t.Fatalf("reversed[%d]: actual: %d  expected: %d", i, rev[i], 9-i)
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	_, err := dataset.Generate("triangular", 10, 1)
	if fault.ErrInvalidDistribution != err {
		t.Fatalf("error: actual: %v  expected: %v", err, fault.ErrInvalidDistribution)
	}
	_, err = dataset.Random(0, 1)
	if fault.ErrDatasetTooSmall != err {
		t.Fatalf("error: actual: %v  expected: %v", err, fault.ErrDatasetTooSmall)
	}
}

func TestSkewed(t *testing.T) {
	keys, err := dataset.Random(500, 7)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	_, err = dataset.Skewed(keys, 100, 1.0, 7)
	if fault.ErrInvalidSkewFactor != err {
		t.Fatalf("error: actual: %v  expected: %v", err, fault.ErrInvalidSkewFactor)
	}

	picked, err := dataset.Skewed(keys, 2000, 1.1, 7)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if 2000 != len(picked) {
		t.Fatalf("key count: actual: %d  expected: 2000", len(picked))
	}

	// every picked key must come from the base set
	valid := make(map[int]struct{})
	for _, k := range keys {
		valid[k] = struct{}{}
	}
	hits := make(map[int]int)
	for _, k := range picked {
		if _, ok := valid[k]; !ok {
			t.Fatalf("picked key not in base set: %d", k)
		}
		hits[k] += 1
	}

	// the distribution is skewed: the hottest key dominates a
	// uniform share by a wide margin
	max := 0
	for _, n := range hits {
		if n > max {
			max = n
		}
	}
	if max < 5*len(picked)/len(keys) {
		t.Fatalf("hottest key only picked %d times, distribution looks uniform", max)
	}
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "dataset")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(dir)

	keys, err := dataset.Random(100, 3)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	fileName := dataset.FileName(dir, dataset.RandomOrder, 100)
	if err := dataset.Save(fileName, keys); nil != err {
		t.Fatalf("save error: %s", err)
	}

	loaded, err := dataset.Load(fileName)
	if nil != err {
		t.Fatalf("load error: %s", err)
	}
	if len(loaded) != len(keys) {
		t.Fatalf("key count: actual: %d  expected: %d", len(loaded), len(keys))
	}
	for i, k := range keys {
		if loaded[i] != k {
			t.Fatalf("loaded[%d]: actual: %d  expected: %d", i, loaded[i], k)
		}
	}

	_, err = dataset.Load(filepath.Join(dir, "no-such-file.json"))
	if fault.ErrNotFoundDatasetFile != err {
		t.Fatalf("error: actual: %v  expected: %v", err, fault.ErrNotFoundDatasetFile)
	}
}

func TestSaveAll(t *testing.T) {
	dir, err := ioutil.TempDir("", "dataset")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(dir)

	if err := dataset.SaveAll(dir, []int{10, 20}, 5); nil != err {
		t.Fatalf("save all error: %s", err)
	}

	for _, size := range []int{10, 20} {
		for _, dist := range []dataset.Distribution{dataset.RandomOrder, dataset.Sequential} {
			keys, err := dataset.Load(dataset.FileName(dir, dist, size))
			if nil != err {
				t.Fatalf("load %s_%d error: %s", dist, size, err)
			}
			if size != len(keys) {
				t.Fatalf("%s_%d key count: actual: %d  expected: %d", dist, size, len(keys), size)
			}
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "metadata.json")); nil != err {
		t.Fatalf("metadata file missing: %s", err)
	}
}
