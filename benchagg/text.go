// Copyright 2026 The irqsuspend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

var banner = strings.Repeat("=", 60)

// FormatText writes t to w as a fixed-width summary table:
//
//	============================================================
//	Throughput Statistics by Scenario
//	============================================================
//	sequential          :   45,231.7 ±   812.4 QPS (n=5)
//	random              :   12,004.0 ±     nan QPS (n=1)
//	============================================================
//
// An empty table prints only the banners and title.
func FormatText(w io.Writer, t *Table) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Throughput Statistics by Scenario")
	fmt.Fprintln(w, banner)
	for _, row := range t.Rows {
		fmt.Fprintf(w, "%-20s: %10s ± %7s QPS (n=%d)\n",
			row.Scenario, commaf1(row.Mean), commaf1(row.Std), row.Count)
	}
	fmt.Fprintln(w, banner)
}

// commaf1 renders v with one decimal place and comma-grouped digits.
// NaN, the undefined deviation of a single-sample group, renders as
// "nan" so it right-aligns like a number.
func commaf1(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return humanize.FormatFloat("#,###.#", v)
}
