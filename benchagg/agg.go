// Copyright 2026 The irqsuspend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg aggregates benchmark measurements by scenario.
//
// Aggregate reduces a sequence of per-run measurements to one summary
// row per distinct scenario, giving the mean throughput, the sample
// standard deviation, and the number of runs. The resulting table is
// what the plotqps command renders and prints.
package benchagg

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/alirezasalamat/irqsuspend/benchcsv"
)

// A Row summarizes the throughput samples of a single scenario.
type Row struct {
	// Scenario is the grouping label, unique within a Table.
	Scenario string

	// Mean is the arithmetic mean of the scenario's QPS samples.
	Mean float64

	// Std is the sample standard deviation of the QPS samples,
	// using a count-1 denominator. It is NaN when Count < 2.
	Std float64

	// Count is the number of samples, always >= 1.
	Count int
}

// A Table holds one Row per distinct scenario, ordered by descending
// mean throughput. Scenarios with equal means keep the order in which
// they first appeared in the input.
type Table struct {
	Rows []*Row
}

// Row returns the row for the named scenario, or nil if the scenario
// does not appear in the table.
func (t *Table) Row(scenario string) *Row {
	for _, row := range t.Rows {
		if row.Scenario == scenario {
			return row
		}
	}
	return nil
}

// Aggregate groups records by scenario and computes per-group
// statistics. Every record contributes to exactly one row, and the
// scenarios in the result are exactly the distinct scenarios in recs.
// An empty input yields an empty table.
func Aggregate(recs []benchcsv.Record) *Table {
	groups := make(map[string][]float64)
	var order []string
	for _, rec := range recs {
		if _, ok := groups[rec.Scenario]; !ok {
			order = append(order, rec.Scenario)
		}
		groups[rec.Scenario] = append(groups[rec.Scenario], rec.QPS)
	}

	t := new(Table)
	for _, scenario := range order {
		vals := groups[scenario]
		row := &Row{
			Scenario: scenario,
			Mean:     stats.Mean(vals),
			Std:      math.NaN(),
			Count:    len(vals),
		}
		if row.Count >= 2 {
			row.Std = stats.StdDev(vals)
		}
		t.Rows = append(t.Rows, row)
	}

	// Stable, so ties keep first-appearance order.
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Mean > t.Rows[j].Mean
	})
	return t
}
