// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/treebench/treebench/avl"
	"github.com/treebench/treebench/tree"
)

func TestListShort(t *testing.T) {
	addList := []tree.StringItem{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []tree.StringItem{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []tree.StringItem{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// insert all keys, delete a prefix, delete the remainder; the up
// pointers and the balance invariant must hold after every phase
func doList(t *testing.T, addList []tree.StringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[tree.StringItem]struct{})

		tr := avl.New()
		for _, key := range addList {
			tr.Insert(key)
		}

		if !tr.CheckUp() {
			t.Errorf("add: inconsistent up pointers")
			depth := tr.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}
		if !tr.CheckBalance() {
			t.Errorf("add: unbalanced tree")
			depth := tr.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("unbalanced tree")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tr.Delete(key) {
				t.Fatalf("delete missed key: %q", key)
			}

			if !tr.CheckBalance() {
				t.Errorf("delete: unbalanced tree after removing: %q", key)
				depth := tr.Print(true)
				t.Logf("depth: %d", depth)
				t.Fatal("unbalanced tree")
			}
		}

		if !tr.CheckUp() {
			t.Errorf("delete: inconsistent up pointers")
			depth := tr.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tr.Delete(key) {
				t.Fatalf("delete missed key: %q", key)
			}
		}
		if !tr.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			depth := tr.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []tree.StringItem) {

	unique := make(map[string]struct{})
	tr := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tr.Insert(key)
	}

	p := tr.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(tree.StringItem(expected[i])) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tr.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(tree.StringItem(expected[i])) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tr.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tr.Count(), n)
	}

	// delete remainder
	for _, key := range expected {
		tr.Delete(tree.StringItem(key))
	}

	if !tr.IsEmpty() {
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tr.Count() {
		t.Fatalf("tree count: actual: %d  expected: 0", tr.Count())
	}
}

// duplicate insert must not change size or key set
func TestInsertDuplicate(t *testing.T) {
	tr := avl.New()
	if !tr.Insert(tree.IntItem(7)) {
		t.Fatal("initial insert reported duplicate")
	}
	if tr.Insert(tree.IntItem(7)) {
		t.Fatal("duplicate insert reported added")
	}
	if 1 != tr.Count() {
		t.Fatalf("count: actual: %d  expected: 1", tr.Count())
	}
	keys := tr.Keys()
	if 1 != len(keys) || 0 != keys[0].Compare(tree.IntItem(7)) {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

// worked example: seven keys give a tree of height at most four and
// removing an inner key keeps the balance
func TestScenario(t *testing.T) {
	tr := avl.New()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(tree.IntItem(k))
	}

	if h := tr.Height(); h > 4 {
		t.Fatalf("height: actual: %d  expected: <= 4", h)
	}

	expected := []int{20, 30, 40, 50, 60, 70, 80}
	checkKeys(t, tr.Keys(), expected)

	if !tr.Delete(tree.IntItem(30)) {
		t.Fatal("delete missed key 30")
	}
	if !tr.CheckBalance() {
		t.Fatal("unbalanced after delete")
	}
	checkKeys(t, tr.Keys(), []int{20, 40, 50, 60, 70, 80})
	if 6 != tr.Count() {
		t.Fatalf("count: actual: %d  expected: 6", tr.Count())
	}
}

// searching all inserted keys finds them; deleting all makes every
// search fail
func TestRoundTrip(t *testing.T) {
	values := []int{17, 3, 25, 1, 9, 21, 30, 6, 12, 28, 4}
	tr := avl.New()
	for _, v := range values {
		tr.Insert(tree.IntItem(v))
	}
	for _, v := range values {
		if !tr.Search(tree.IntItem(v)) {
			t.Fatalf("search missed key: %d", v)
		}
	}
	if tr.Search(tree.IntItem(1000)) {
		t.Fatal("search found a key never inserted")
	}
	for _, v := range values {
		if !tr.Delete(tree.IntItem(v)) {
			t.Fatalf("delete missed key: %d", v)
		}
	}
	if tr.Delete(tree.IntItem(17)) {
		t.Fatal("delete of absent key reported removed")
	}
	for _, v := range values {
		if tr.Search(tree.IntItem(v)) {
			t.Fatalf("search found deleted key: %d", v)
		}
	}
}

func checkKeys(t *testing.T, keys []tree.Item, expected []int) {
	t.Helper()
	if len(keys) != len(expected) {
		t.Fatalf("key count: actual: %d  expected: %d", len(keys), len(expected))
	}
	for i, k := range keys {
		if 0 != k.Compare(tree.IntItem(expected[i])) {
			t.Fatalf("key[%d]: actual: %v  expected: %d", i, k, expected[i])
		}
	}
}
