// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jeranaias/datachat-tui/internal/model"
)

func makeResultSet(n int) *model.ResultSet {
	rs := &model.ResultSet{}
	for i := 0; i < n; i++ {
		rs.Rows = append(rs.Rows, model.NewRow("id", i, "name", fmt.Sprintf("row-%d", i)))
	}
	return rs
}

func TestVisibleRowsWindow(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		expanded bool
		want     int
		hasMore  bool
	}{
		{"small set shows everything", 3, false, 3, false},
		{"boundary set shows everything", 10, false, 10, false},
		{"large set collapses to ten", 25, false, 10, true},
		{"expanded shows everything", 25, true, 25, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New(makeResultSet(tc.rows), tc.expanded)
			if got := len(tbl.VisibleRows()); got != tc.want {
				t.Errorf("visible = %d, want %d", got, tc.want)
			}
			if got := tbl.HasMore(); got != tc.hasMore {
				t.Errorf("hasMore = %v, want %v", got, tc.hasMore)
			}
		})
	}
}

func TestCanCollapse(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		expanded bool
		want     bool
	}{
		{"expanded large set collapses", 25, true, true},
		{"collapsed large set does not", 25, false, false},
		{"expanded small set has nothing to collapse", 5, true, false},
		{"boundary set has nothing to collapse", 10, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New(makeResultSet(tc.rows), tc.expanded)
			if got := tbl.CanCollapse(); got != tc.want {
				t.Errorf("canCollapse = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHiddenRowsReportsTrueTotal(t *testing.T) {
	tbl := New(makeResultSet(25), false)
	if got := tbl.HiddenRows(); got != 15 {
		t.Errorf("hidden = %d, want 15", got)
	}
	if got := tbl.TotalRows(); got != 25 {
		t.Errorf("total = %d, want 25", got)
	}
}

func TestDisplayCountPrefersBackendCount(t *testing.T) {
	rs := makeResultSet(5)
	count := 500
	rs.Count = &count
	if got := New(rs, false).DisplayCount(); got != 500 {
		t.Errorf("count = %d, want 500", got)
	}

	rs.Count = nil
	if got := New(rs, false).DisplayCount(); got != 5 {
		t.Errorf("count = %d, want 5", got)
	}
}

func TestCopyTextSerializesAllRows(t *testing.T) {
	// Collapsed view shows 10 rows but copy always covers the whole set.
	tbl := New(makeResultSet(25), false)
	text := tbl.CopyText()

	lines := strings.Split(text, "\n")
	if len(lines) != 25 {
		t.Fatalf("lines = %d, want 25", len(lines))
	}
	if lines[0] != "0\trow-0" {
		t.Errorf("line[0] = %q", lines[0])
	}
	if lines[24] != "24\trow-24" {
		t.Errorf("line[24] = %q", lines[24])
	}

	expanded := New(makeResultSet(25), true)
	if expanded.CopyText() != text {
		t.Error("copy text should not depend on expansion state")
	}
}

func TestColumnsFollowExplicitListThenFirstRow(t *testing.T) {
	rs := makeResultSet(2)
	if cols := New(rs, false).Columns(); len(cols) != 2 || cols[0] != "id" || cols[1] != "name" {
		t.Errorf("columns = %v, want [id name]", cols)
	}

	rs.Columns = []string{"name", "id"}
	if cols := New(rs, false).Columns(); cols[0] != "name" || cols[1] != "id" {
		t.Errorf("columns = %v, want [name id]", cols)
	}
}

func TestCopyTextFollowsColumnOrder(t *testing.T) {
	rs := makeResultSet(1)
	rs.Columns = []string{"name", "id"}
	if got := New(rs, false).CopyText(); got != "row-0\t0" {
		t.Errorf("copy = %q, want %q", got, "row-0\t0")
	}
}
