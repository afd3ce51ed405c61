// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/treebench/treebench/dataset"
	"github.com/treebench/treebench/fault"
	"github.com/treebench/treebench/tree"
)

// default Zipf s parameter for skewed access sequences
const defaultSkewFactor = 1.1

// cap on derived search and delete sequences
const maxAccessCount = 10000

// Options - the benchmark matrix to run
type Options struct {
	Variants      []Variant
	Workloads     []Workload
	Distributions []dataset.Distribution
	Sizes         []int
	AccessCount   int     // cap on derived search/delete keys, 0 for size/10
	SkewFactor    float64 // Zipf s parameter, 0 for the default
	Seed          int64
}

// Runner - executes a benchmark matrix
type Runner struct {
	log  *logger.L
	opts Options
}

// NewRunner - validate the options and create a runner
func NewRunner(opts Options) (*Runner, error) {
	if 0 == len(opts.Variants) {
		return nil, fault.ErrRequiredVariants
	}
	if 0 == len(opts.Sizes) {
		return nil, fault.ErrRequiredSizes
	}
	for _, v := range opts.Variants {
		if _, err := NewTree(v); nil != err {
			return nil, err
		}
	}
	for _, w := range opts.Workloads {
		switch w {
		case Insert, Search, Delete, Mixed:
		default:
			return nil, fault.ErrInvalidWorkload
		}
	}
	if 0 == len(opts.Workloads) {
		opts.Workloads = AllWorkloads
	}
	if 0 == len(opts.Distributions) {
		opts.Distributions = []dataset.Distribution{dataset.RandomOrder}
	}
	if 0 == opts.SkewFactor {
		opts.SkewFactor = defaultSkewFactor
	}

	return &Runner{
		log:  logger.New("bench"),
		opts: opts,
	}, nil
}

// Run - execute the whole matrix and collect a report
func (r *Runner) Run() (*Report, error) {
	report := &Report{
		CreatedAt: time.Now(),
		Seed:      r.opts.Seed,
	}

	for _, size := range r.opts.Sizes {
		for _, dist := range r.opts.Distributions {

			dataDist := dist
			if dataset.SkewedAccess == dist {
				dataDist = dataset.RandomOrder
			}
			data, err := dataset.Generate(dataDist, size, r.opts.Seed)
			if nil != err {
				return nil, err
			}
			items := toItems(data)

			for _, w := range r.opts.Workloads {
				for _, v := range r.opts.Variants {
					result, err := r.runOne(v, w, dist, size, data, items)
					if nil != err {
						return nil, err
					}
					r.log.Infof("%s %s %s size: %d  operations: %d  elapsed: %.4fs",
						v, w, dist, size, result.Operations, result.Seconds)
					report.Results = append(report.Results, result)
				}
			}
		}
	}
	return report, nil
}

// time a single cell of the matrix on a fresh tree
func (r *Runner) runOne(v Variant, w Workload, dist dataset.Distribution, size int, data []int, items []tree.Item) (Result, error) {
	tr, err := NewTree(v)
	if nil != err {
		return Result{}, err
	}

	switch w {
	case Insert:
		elapsed := timeInsert(tr, items)
		return newResult(v, w, string(dist), size, len(items), elapsed), nil

	case Search:
		for _, k := range items {
			tr.Insert(k)
		}
		keys, err := r.accessKeys(data, dist)
		if nil != err {
			return Result{}, err
		}
		accessItems := toItems(keys)
		elapsed := timeSearch(tr, accessItems)
		return newResult(v, w, string(dist), size, len(accessItems), elapsed), nil

	case Delete:
		for _, k := range items {
			tr.Insert(k)
		}
		keys, err := r.accessKeys(data, dist)
		if nil != err {
			return Result{}, err
		}
		accessItems := toItems(keys)
		elapsed := timeDelete(tr, accessItems)
		return newResult(v, w, string(dist), size, len(accessItems), elapsed), nil

	case Mixed:
		ops := mixedOps(data, r.opts.Seed)
		elapsed := timeMixed(tr, ops)
		return newResult(v, w, string(dist), size, len(ops), elapsed), nil

	default:
		return Result{}, fault.ErrInvalidWorkload
	}
}

// derive the search/delete key sequence from the stored keys
func (r *Runner) accessKeys(data []int, dist dataset.Distribution) ([]int, error) {
	n := r.opts.AccessCount
	if n <= 0 {
		n = len(data) / 10
		if n > maxAccessCount {
			n = maxAccessCount
		}
	}
	if n < 1 {
		n = 1
	}
	if n > len(data) {
		n = len(data)
	}

	if dataset.SkewedAccess == dist {
		return dataset.Skewed(data, n, r.opts.SkewFactor, r.opts.Seed)
	}
	return dataset.Sample(data, n, r.opts.Seed)
}
