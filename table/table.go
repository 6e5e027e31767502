// Copyright 2026 Stockwire

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table renders rows of string cells as aligned text or CSV.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Params configure table rendering.
type Params struct {
	Limit    int  // maximum number of rows to write; 0 = unlimited
	NoHeader bool // skip the header row
}

// Table is a fixed-width table of string cells.
type Table struct {
	header []string
	rows   [][]string
}

// New creates an empty table with the given column headers.
func New(header ...string) *Table {
	return &Table{header: header}
}

// Add appends one row. Short rows are padded with empty cells, long rows
// truncated to the header width.
func (t *Table) Add(cells ...string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// NumRows returns the number of rows added so far.
func (t *Table) NumRows() int { return len(t.rows) }

// limited returns the rows capped by p.Limit.
func (t *Table) limited(p Params) [][]string {
	if p.Limit > 0 && p.Limit < len(t.rows) {
		return t.rows[:p.Limit]
	}
	return t.rows
}

// WriteCSV writes the table in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	if !p.NoHeader {
		if err := cw.Write(t.header); err != nil {
			return errors.Annotate(err, "failed to write CSV header")
		}
	}
	for _, row := range t.limited(p) {
		if err := cw.Write(row); err != nil {
			return errors.Annotate(err, "failed to write CSV row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush CSV")
	}
	return nil
}

// WriteText writes the table as space-aligned columns.
func (t *Table) WriteText(w io.Writer, p Params) error {
	rows := t.limited(p)
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	writeRow := func(row []string) error {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
		return err
	}
	if !p.NoHeader {
		if err := writeRow(t.header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
