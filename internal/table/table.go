// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package table turns raw query result sets into bounded, column-stable,
// copyable table views. It is pure view-model logic; rendering lives in
// the ui layer.
package table

import (
	"strings"

	"github.com/jeranaias/datachat-tui/internal/model"
)

// CollapsedRows is the number of rows shown before the table is expanded.
const CollapsedRows = 10

// Table is a windowed view over a result set. Expansion is per-render view
// state owned by the caller (keyed by message identity there), never part
// of the message itself.
type Table struct {
	rs       *model.ResultSet
	expanded bool
}

// New builds a table view over a result set.
func New(rs *model.ResultSet, expanded bool) *Table {
	return &Table{rs: rs, expanded: expanded}
}

// Columns returns the display column order: the payload's explicit column
// list, or the first row's key order when the list is absent.
func (t *Table) Columns() []string {
	return t.rs.ColumnOrder()
}

// TotalRows returns the number of rows actually present in the result set.
func (t *Table) TotalRows() int {
	return len(t.rs.Rows)
}

// VisibleRows returns the rows to render: everything when expanded or when
// the set fits the collapsed window, otherwise the first CollapsedRows.
func (t *Table) VisibleRows() []model.Row {
	rows := t.rs.Rows
	if t.expanded || len(rows) <= CollapsedRows {
		return rows
	}
	return rows[:CollapsedRows]
}

// HasMore reports whether a show-more affordance applies: rows were hidden
// by the collapsed window.
func (t *Table) HasMore() bool {
	return !t.expanded && len(t.rs.Rows) > CollapsedRows
}

// CanCollapse reports whether a show-less affordance applies: the window
// is expanded past what the collapsed view would hold.
func (t *Table) CanCollapse() bool {
	return t.expanded && len(t.rs.Rows) > CollapsedRows
}

// HiddenRows returns how many rows the collapsed window hides.
func (t *Table) HiddenRows() int {
	if !t.HasMore() {
		return 0
	}
	return len(t.rs.Rows) - CollapsedRows
}

// DisplayCount returns the row count to report: the backend's count field
// when present, otherwise the number of rows shipped.
func (t *Table) DisplayCount() int {
	if t.rs.Count != nil {
		return *t.rs.Count
	}
	return len(t.rs.Rows)
}

// CopyText serializes the ENTIRE result set for the clipboard: one line
// per row, cells tab-separated in column order. Expansion state has no
// effect here.
func (t *Table) CopyText() string {
	cols := t.Columns()
	lines := make([]string, 0, len(t.rs.Rows))
	for _, row := range t.rs.Rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = row.Get(col)
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}
