// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/treebench/treebench/fault"
)

// Metadata - describes a generated dataset directory
type Metadata struct {
	Sizes           []int  `json:"sizes"`
	Description     string `json:"description"`
	RandomRange     string `json:"random_range"`
	SequentialRange string `json:"sequential_range"`
	Seed            int64  `json:"seed"`
}

// Save - write a key sequence as a JSON array
func Save(fileName string, keys []int) error {
	data, err := json.Marshal(keys)
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, data, 0600)
}

// Load - read a key sequence from a JSON array
func Load(fileName string) ([]int, error) {
	data, err := ioutil.ReadFile(fileName)
	if os.IsNotExist(err) {
		return nil, fault.ErrNotFoundDatasetFile
	}
	if nil != err {
		return nil, err
	}
	keys := []int{}
	if err := json.Unmarshal(data, &keys); nil != err {
		return nil, err
	}
	return keys, nil
}

// FileName - canonical dataset file name for a distribution and size
func FileName(dir string, dist Distribution, size int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.json", dist, size))
}

// SaveAll - generate and store random and sequential datasets of the
// given sizes, together with a metadata file
func SaveAll(dir string, sizes []int, seed int64) error {
	if 0 == len(sizes) {
		return fault.ErrRequiredSizes
	}
	if "" == dir {
		return fault.ErrRequiredOutputDir
	}
	if err := os.MkdirAll(dir, 0700); nil != err {
		return err
	}

	for _, size := range sizes {
		keys, err := Random(size, seed)
		if nil != err {
			return err
		}
		if err := Save(FileName(dir, RandomOrder, size), keys); nil != err {
			return err
		}

		keys, err = SequentialKeys(size)
		if nil != err {
			return err
		}
		if err := Save(FileName(dir, Sequential, size), keys); nil != err {
			return err
		}
	}

	meta := Metadata{
		Sizes:           sizes,
		Description:     "test datasets for AVL, red-black and splay tree benchmarking",
		RandomRange:     "random samples from [0, size*10)",
		SequentialRange: "sequential integers from 0 to size-1",
		Seed:            seed,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(filepath.Join(dir, "metadata.json"), data, 0600)
}
