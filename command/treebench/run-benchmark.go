// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/treebench/treebench/bench"
)

func runBenchmark(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	opts, err := benchOptions(m.config)
	if nil != err {
		return err
	}

	if err := initialiseLogger(m.config); nil != err {
		return err
	}
	defer logger.Finalise()

	runner, err := bench.NewRunner(opts)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "running %d sizes over %d variants\n",
			len(opts.Sizes), len(opts.Variants))
	}

	report, err := runner.Run()
	if nil != err {
		return err
	}

	report.WriteTable(m.w)

	outputFile := c.String("output")
	if "" == outputFile {
		outputFile = filepath.Join(m.config.DataDirectory, "report.json")
	}
	err = report.WriteJSON(outputFile)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "report: %s\n", outputFile)
	return nil
}
