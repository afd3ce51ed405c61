// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/treebench/treebench/dataset"
	"github.com/treebench/treebench/fault"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(m.config.Benchmark.Sizes) {
		return fault.ErrRequiredSizes
	}

	if err := initialiseLogger(m.config); nil != err {
		return err
	}
	defer logger.Finalise()

	if m.verbose {
		fmt.Fprintf(m.e, "writing datasets to: %q\n", m.config.DataDirectory)
	}

	err := dataset.SaveAll(m.config.DataDirectory, m.config.Benchmark.Sizes, m.config.Benchmark.Seed)
	if nil != err {
		return err
	}

	for _, size := range m.config.Benchmark.Sizes {
		fmt.Fprintf(m.w, "%s\n", dataset.FileName(m.config.DataDirectory, dataset.RandomOrder, size))
		fmt.Fprintf(m.w, "%s\n", dataset.FileName(m.config.DataDirectory, dataset.Sequential, size))
	}
	return nil
}
