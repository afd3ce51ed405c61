// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"text/tabwriter"
	"time"
)

// Result - one timed cell of the benchmark matrix
type Result struct {
	Variant      string  `json:"variant"`
	Workload     string  `json:"workload"`
	Distribution string  `json:"distribution"`
	Size         int     `json:"size"`
	Operations   int     `json:"operations"`
	ElapsedNs    int64   `json:"elapsed_ns"`
	Seconds      float64 `json:"seconds"`
}

// Report - all results of one benchmark run
type Report struct {
	CreatedAt time.Time `json:"created_at"`
	Seed      int64     `json:"seed"`
	Results   []Result  `json:"results"`
}

func newResult(v Variant, w Workload, dist string, size int, operations int, elapsed time.Duration) Result {
	return Result{
		Variant:      string(v),
		Workload:     string(w),
		Distribution: dist,
		Size:         size,
		Operations:   operations,
		ElapsedNs:    elapsed.Nanoseconds(),
		Seconds:      elapsed.Seconds(),
	}
}

// WriteJSON - store the report for later comparison
func (r *Report) WriteJSON(fileName string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, data, 0600)
}

// WriteTable - print an aligned text summary
func (r *Report) WriteTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "variant\tworkload\tdistribution\tsize\toperations\tseconds")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.4f\n",
			res.Variant, res.Workload, res.Distribution,
			res.Size, res.Operations, res.Seconds)
	}
	tw.Flush()
}
