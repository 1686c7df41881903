// Copyright 2026 The irqsuspend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotqps reads benchmark results from a CSV file, aggregates
// throughput by scenario, and renders a bar chart plus a summary
// table.
//
// Usage:
//
//	plotqps [-display] [results.csv]
//
// The input must have a header row and at least the columns
// "scenario" (a label identifying the benchmark configuration) and
// "QPS" (the throughput measured by one run). Other columns are
// ignored. With no argument, plotqps reads results/results.csv.
//
// For each distinct scenario, plotqps computes the mean QPS, the
// sample standard deviation, and the run count. The chart shows one
// bar per scenario in order of descending mean, with one-deviation
// error bars and per-bar annotations; it is written next to the input
// with the .csv suffix replaced by _throughput.png. The same
// aggregates are printed to standard output as a fixed-width table.
//
// The -display flag opens the written chart in the system image
// viewer. It is off by default so the tool stays usable in headless
// environments.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/browser"

	"github.com/alirezasalamat/irqsuspend/benchagg"
	"github.com/alirezasalamat/irqsuspend/benchcsv"
	"github.com/alirezasalamat/irqsuspend/benchplot"
)

const defaultPath = "results/results.csv"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plotqps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: plotqps [-display] [%s]\n", defaultPath)
		fs.PrintDefaults()
	}
	display := fs.Bool("display", false, "open the chart in the system viewer after writing it")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	path := defaultPath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(stderr, "plotqps: CSV file not found: %s\n", path)
		return 1
	}

	recs, err := benchcsv.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "plotqps: %v\n", err)
		return 1
	}
	table := benchagg.Aggregate(recs)

	pngPath := strings.TrimSuffix(path, ".csv") + "_throughput.png"
	if err := benchplot.WritePNG(table, pngPath, benchplot.DefaultOptions); err != nil {
		fmt.Fprintf(stderr, "plotqps: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Chart saved to: %s\n", pngPath)

	fmt.Fprintln(stdout)
	benchagg.FormatText(stdout, table)

	if *display {
		if err := browser.OpenFile(pngPath); err != nil {
			// The chart and table are already out; a viewer
			// failure is not fatal.
			fmt.Fprintf(stderr, "plotqps: %v\n", err)
		}
	}
	return 0
}
