// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report holds the shared plain-text formatting helper used by the
// Format() methods of uniform.PrismaticFlowResult and
// uniform.IrregularFlowResult (spec §6 "Formatters"); the other result
// types have no Format() method. Reports are fixed-width two-column
// (field, value) tables built with text/tabwriter, grounded on the
// tabwriter report layout in
// the corpus' reinforced-concrete section-analysis CLI
// (alexiusacademia-gorcb/cmd/section_analyze.go).
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Table accumulates "field\tvalue" rows and renders them as an aligned
// plain-text table. Field order is the caller's emission order, matching
// each result struct's declared field order (spec §6: "same field ordering
// as the structured result").
type Table struct {
	w   *tabwriter.Writer
	buf strings.Builder
}

// NewTable starts a new report table.
func NewTable() *Table {
	t := &Table{}
	t.w = tabwriter.NewWriter(&t.buf, 0, 4, 2, ' ', 0)
	return t
}

// Row appends one "name\tvalue" line.
func (t *Table) Row(name, format string, args ...interface{}) *Table {
	fmt.Fprintf(t.w, "%s\t%s\n", name, fmt.Sprintf(format, args...))
	return t
}

// Blank appends an empty line, used to separate sections of a report.
func (t *Table) Blank() *Table {
	fmt.Fprint(t.w, "\n")
	return t
}

// String flushes the tabwriter and returns the accumulated report.
func (t *Table) String() string {
	_ = t.w.Flush()
	return t.buf.String()
}
