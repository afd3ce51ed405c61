// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "treebench"
	app.Usage = "benchmark balanced binary search trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose progress",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration file `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "write the key datasets named by the configuration",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "run",
			Usage:     "execute the benchmark matrix and write a JSON report",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " report file `FILE` [report.json in the data directory]",
				},
			},
			Action: runBenchmark,
		},
		{
			Name:      "verify",
			Usage:     "check every tree invariant over random workloads",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "size, s",
					Value: 1000,
					Usage: " keys per round `COUNT`",
				},
				cli.IntFlag{
					Name:  "rounds, r",
					Value: 10,
					Usage: " rounds per variant `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: " random seed `SEED`",
				},
			},
			Action: runVerify,
		},
	}

	// read the configuration; verify works without one
	app.Before = func(c *cli.Context) error {
		command := c.Args().Get(0)
		if "verify" == command || "help" == command || "h" == command || "" == command {
			c.App.Metadata["config"] = &metadata{
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			}
			return nil
		}

		file := c.GlobalString("config")
		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
