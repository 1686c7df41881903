// Copyright 2026 The irqsuspend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"math"
	"testing"

	"github.com/alirezasalamat/irqsuspend/benchcsv"
)

// close2 reports whether got is within 1e-9 relative tolerance of want.
func close2(got, want float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want) <= 1e-9*math.Abs(want)
}

func TestAggregate(t *testing.T) {
	table := Aggregate([]benchcsv.Record{
		{Scenario: "A", QPS: 100},
		{Scenario: "A", QPS: 120},
		{Scenario: "B", QPS: 50},
	})

	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := table.Rows[0].Scenario; got != "A" {
		t.Errorf("rows[0] is %s, want A", got)
	}
	if got := table.Rows[1].Scenario; got != "B" {
		t.Errorf("rows[1] is %s, want B", got)
	}

	a := table.Row("A")
	if !close2(a.Mean, 110) {
		t.Errorf("A mean = %v, want 110", a.Mean)
	}
	if want := math.Sqrt(200); !close2(a.Std, want) {
		t.Errorf("A std = %v, want %v", a.Std, want)
	}
	if a.Count != 2 {
		t.Errorf("A count = %d, want 2", a.Count)
	}

	b := table.Row("B")
	if !close2(b.Mean, 50) {
		t.Errorf("B mean = %v, want 50", b.Mean)
	}
	if !math.IsNaN(b.Std) {
		t.Errorf("B std = %v, want NaN", b.Std)
	}
	if b.Count != 1 {
		t.Errorf("B count = %d, want 1", b.Count)
	}
}

func TestAggregateExhaustive(t *testing.T) {
	recs := []benchcsv.Record{
		{Scenario: "x", QPS: 10},
		{Scenario: "y", QPS: 5},
		{Scenario: "x", QPS: 30},
		{Scenario: "z", QPS: 20},
		{Scenario: "y", QPS: 5},
		{Scenario: "x", QPS: 20},
	}
	table := Aggregate(recs)

	// The scenario set is exactly the distinct input set, and the
	// counts partition the input.
	counts := make(map[string]int)
	for _, rec := range recs {
		counts[rec.Scenario]++
	}
	if len(table.Rows) != len(counts) {
		t.Fatalf("got %d rows, want %d", len(table.Rows), len(counts))
	}
	total := 0
	for _, row := range table.Rows {
		if row.Count != counts[row.Scenario] {
			t.Errorf("%s count = %d, want %d", row.Scenario, row.Count, counts[row.Scenario])
		}
		total += row.Count
	}
	if total != len(recs) {
		t.Errorf("counts sum to %d, want %d", total, len(recs))
	}

	// Ordering is non-increasing by mean.
	for i := 1; i < len(table.Rows); i++ {
		if table.Rows[i-1].Mean < table.Rows[i].Mean {
			t.Errorf("rows %d,%d out of order: %v < %v",
				i-1, i, table.Rows[i-1].Mean, table.Rows[i].Mean)
		}
	}
}

func TestAggregateTies(t *testing.T) {
	// Equal means keep first-appearance order.
	table := Aggregate([]benchcsv.Record{
		{Scenario: "late", QPS: 7},
		{Scenario: "early", QPS: 7},
	})
	if table.Rows[0].Scenario != "late" || table.Rows[1].Scenario != "early" {
		t.Errorf("tie order = [%s %s], want [late early]",
			table.Rows[0].Scenario, table.Rows[1].Scenario)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	recs := []benchcsv.Record{
		{Scenario: "a", QPS: 3},
		{Scenario: "b", QPS: 9},
		{Scenario: "a", QPS: 5},
	}
	t1 := Aggregate(recs)
	t2 := Aggregate(recs)
	if len(t1.Rows) != len(t2.Rows) {
		t.Fatalf("row counts differ: %d vs %d", len(t1.Rows), len(t2.Rows))
	}
	for i := range t1.Rows {
		r1, r2 := t1.Rows[i], t2.Rows[i]
		if r1.Scenario != r2.Scenario || r1.Mean != r2.Mean || r1.Count != r2.Count {
			t.Errorf("row %d differs: %+v vs %+v", i, r1, r2)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	table := Aggregate(nil)
	if len(table.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(table.Rows))
	}
	if table.Row("anything") != nil {
		t.Error("Row on empty table is non-nil")
	}
}
