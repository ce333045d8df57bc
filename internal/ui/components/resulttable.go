// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/table"
	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// maxCellWidth bounds a single column so one verbose field cannot eat
// the whole terminal.
const maxCellWidth = 32

// RenderResultTable renders the windowed table view with its count line
// and, when rows are hidden, the expand affordance.
func RenderResultTable(theme *styles.Theme, tbl *table.Table, tr *i18n.Strings, width int) string {
	cols := tbl.Columns()
	if len(cols) == 0 {
		return ""
	}
	rows := tbl.VisibleRows()

	// Column widths from header and visible cells, capped.
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = cellWidth(col)
	}
	for _, row := range rows {
		for i, col := range cols {
			if w := cellWidth(row.Get(col)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = theme.TableHeader.Render(padCell(col, widths[i]))
	}
	b.WriteString(strings.Join(header, "  "))
	b.WriteString("\n")

	sepWidth := 0
	for _, w := range widths {
		sepWidth += w + 2
	}
	b.WriteString(theme.TableSeparator.Render(strings.Repeat("─", maxInt(sepWidth-2, 1))))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = theme.TableCell.Render(padCell(row.Get(col), widths[i]))
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	b.WriteString(theme.TableCount.Render(fmt.Sprintf("%d %s", tbl.DisplayCount(), tr.Results)))

	if tbl.HasMore() {
		b.WriteString("\n")
		b.WriteString(theme.TableShowMore.Render(showMoreLabel(tbl.TotalRows())))
	} else if tbl.CanCollapse() {
		b.WriteString("\n")
		b.WriteString(theme.TableShowMore.Render(showLessLabel))
	}

	return theme.TableBox.Width(maxInt(width-2, 20)).Render(strings.TrimRight(b.String(), "\n"))
}

// showMoreLabel names the affordance with the true total, not the
// window size.
func showMoreLabel(total int) string {
	return fmt.Sprintf("▸ Show all %d rows (ctrl+e)", total)
}

// showLessLabel invites collapsing an expanded window.
const showLessLabel = "▴ Show less (ctrl+e)"

func cellWidth(s string) int {
	return minInt(runewidth.StringWidth(s), maxCellWidth)
}
