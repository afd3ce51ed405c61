// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/treebench/treebench/bench"
	"github.com/treebench/treebench/configuration"
	"github.com/treebench/treebench/dataset"
	"github.com/treebench/treebench/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// BenchmarkSection - the matrix to time
type BenchmarkSection struct {
	Variants      []string `gluamapper:"variants" json:"variants"`
	Workloads     []string `gluamapper:"workloads" json:"workloads"`
	Distributions []string `gluamapper:"distributions" json:"distributions"`
	Sizes         []int    `gluamapper:"sizes" json:"sizes"`
	AccessCount   int      `gluamapper:"access_count" json:"access_count"`
	SkewFactor    float64  `gluamapper:"skew_factor" json:"skew_factor"`
	Seed          int64    `gluamapper:"seed" json:"seed"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Benchmark     BenchmarkSection     `gluamapper:"benchmark" json:"benchmark"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		return nil, fault.ErrRequiredConfigFile
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(configurationFileName); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Benchmark: BenchmarkSection{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	if "" == options.DataDirectory {
		return nil, fault.ErrRequiredOutputDir
	}
	options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// resolve a possibly relative path against a base directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// create log and data directories then start logging
func initialiseLogger(options *Configuration) error {
	if err := os.MkdirAll(options.DataDirectory, 0700); nil != err {
		return err
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}
	return logger.Initialise(options.Logging)
}

// map the configuration strings onto benchmark options
func benchOptions(options *Configuration) (bench.Options, error) {

	opts := bench.Options{
		Sizes:       options.Benchmark.Sizes,
		AccessCount: options.Benchmark.AccessCount,
		SkewFactor:  options.Benchmark.SkewFactor,
		Seed:        options.Benchmark.Seed,
	}

	for _, v := range options.Benchmark.Variants {
		switch bench.Variant(v) {
		case bench.AVL, bench.RedBlack, bench.Splay:
			opts.Variants = append(opts.Variants, bench.Variant(v))
		default:
			return bench.Options{}, fault.ErrInvalidTreeVariant
		}
	}

	for _, w := range options.Benchmark.Workloads {
		switch bench.Workload(w) {
		case bench.Insert, bench.Search, bench.Delete, bench.Mixed:
			opts.Workloads = append(opts.Workloads, bench.Workload(w))
		default:
			return bench.Options{}, fault.ErrInvalidWorkload
		}
	}

	for _, d := range options.Benchmark.Distributions {
		switch dataset.Distribution(d) {
		case dataset.RandomOrder, dataset.Sequential, dataset.Reversed, dataset.SkewedAccess:
			opts.Distributions = append(opts.Distributions, dataset.Distribution(d))
		default:
			return bench.Options{}, fault.ErrInvalidDistribution
		}
	}

	return opts, nil
}
