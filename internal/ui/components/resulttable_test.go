// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/model"
	"github.com/jeranaias/datachat-tui/internal/table"
	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

func makeResultSet(n int) *model.ResultSet {
	rs := &model.ResultSet{}
	for i := 0; i < n; i++ {
		rs.Rows = append(rs.Rows, model.NewRow("id", i, "name", fmt.Sprintf("row-%d", i)))
	}
	return rs
}

func TestResultTableAffordances(t *testing.T) {
	theme := styles.NewTheme()
	tr := i18n.Pick("en")

	tests := []struct {
		name        string
		rows        int
		expanded    bool
		wantMore    bool
		wantLess    bool
		wantSnippet string
	}{
		{"collapsed large set offers show-more with true total", 25, false, true, false, "Show all 25 rows"},
		{"expanded large set offers show-less", 25, true, false, true, "Show less"},
		{"small set offers neither", 5, false, false, false, ""},
		{"expanded small set offers neither", 5, true, false, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := RenderResultTable(theme, table.New(makeResultSet(tc.rows), tc.expanded), tr, 120)

			if got := strings.Contains(out, "Show all"); got != tc.wantMore {
				t.Errorf("show-more present = %v, want %v", got, tc.wantMore)
			}
			if got := strings.Contains(out, "Show less"); got != tc.wantLess {
				t.Errorf("show-less present = %v, want %v", got, tc.wantLess)
			}
			if tc.wantSnippet != "" && !strings.Contains(out, tc.wantSnippet) {
				t.Errorf("output missing %q", tc.wantSnippet)
			}
		})
	}
}
