// Copyright 2026 The irqsuspend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads benchmark throughput measurements from CSV
// files.
//
// The expected input is comma-separated tabular data with a header
// row. Two columns are required: "scenario", a label identifying the
// benchmark configuration, and "QPS", the throughput measured by one
// run of that configuration, a non-negative finite number. Any other
// columns are ignored.
package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// A Record is a single benchmark measurement: one run of one scenario.
type Record struct {
	Scenario string
	QPS      float64
}

// A SyntaxError represents a malformed row on a particular line of a
// results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads benchmark measurements from CSV input.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, consuming each measurement with Record, then check Err.
type Reader struct {
	cr       *csv.Reader
	fileName string

	// scenarioCol and qpsCol are the indexes of the required
	// columns, resolved from the header row on the first Scan.
	scenarioCol, qpsCol int
	header              bool

	rec Record
	err error
}

// NewReader constructs a Reader that parses CSV data from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	// Rows may carry extra columns beyond the ones we need, and
	// their count may vary.
	cr.FieldsPerRecord = -1
	return &Reader{cr: cr, fileName: fileName}
}

// readHeader resolves the required column indexes from the first row.
// The first row is always treated as a header, never as data.
func (r *Reader) readHeader() error {
	row, err := r.cr.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: missing header row", r.fileName)
	}
	if err != nil {
		return err
	}
	r.scenarioCol, r.qpsCol = -1, -1
	for i, name := range row {
		switch name {
		case "scenario":
			if r.scenarioCol < 0 {
				r.scenarioCol = i
			}
		case "QPS":
			if r.qpsCol < 0 {
				r.qpsCol = i
			}
		}
	}
	if r.scenarioCol < 0 {
		return fmt.Errorf("%s: missing required column %q", r.fileName, "scenario")
	}
	if r.qpsCol < 0 {
		return fmt.Errorf("%s: missing required column %q", r.fileName, "QPS")
	}
	r.header = true
	return nil
}

// Scan advances the Reader to the next measurement and reports
// whether one was read. Once Scan returns false, the caller should
// use Err to distinguish end of input from a read error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.header {
		if r.err = r.readHeader(); r.err != nil {
			return false
		}
	}
	row, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		// csv.ParseError already carries position information.
		r.err = err
		return false
	}
	if len(row) <= r.scenarioCol || len(row) <= r.qpsCol {
		line, _ := r.cr.FieldPos(0)
		r.err = &SyntaxError{r.fileName, line, fmt.Sprintf("row has %d fields, need at least %d", len(row), max(r.scenarioCol, r.qpsCol)+1)}
		return false
	}
	qps, err := strconv.ParseFloat(row[r.qpsCol], 64)
	if err != nil {
		line, _ := r.cr.FieldPos(r.qpsCol)
		r.err = &SyntaxError{r.fileName, line, fmt.Sprintf("malformed QPS value %q", row[r.qpsCol])}
		return false
	}
	if qps < 0 || math.IsNaN(qps) || math.IsInf(qps, 0) {
		line, _ := r.cr.FieldPos(r.qpsCol)
		r.err = &SyntaxError{r.fileName, line, fmt.Sprintf("QPS value %q is not a non-negative finite number", row[r.qpsCol])}
		return false
	}
	r.rec = Record{Scenario: row[r.scenarioCol], QPS: qps}
	return true
}

// Record returns the measurement read by the last call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first error encountered by the Reader.
// A nil result after Scan returns false means the input was exhausted.
func (r *Reader) Err() error {
	return r.err
}

// ReadFile reads all measurements from the CSV file at path.
// A file containing only a header yields zero records and no error.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recs []Record
	r := NewReader(f, path)
	for r.Scan() {
		recs = append(recs, r.Record())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
