// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// RenderWelcome renders the empty-session screen: connected databases,
// query suggestions, and the privacy footer.
func RenderWelcome(theme *styles.Theme, tr *i18n.Strings, dbs []api.DatabaseInfo, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.WelcomeTitle.Render(tr.Title))
	b.WriteString("\n")
	b.WriteString(theme.WelcomeInfo.Render(strings.Join(wordWrap(tr.Subtitle, 56), "\n")))
	b.WriteString("\n\n")

	if len(dbs) == 0 {
		b.WriteString(theme.DBChipEmpty.Render(tr.NoDB))
		b.WriteString("\n")
		b.WriteString(theme.WelcomeInfo.Render(tr.NoDBSub))
	} else {
		b.WriteString(theme.DBChip.Render(tr.DBConnected(len(dbs))))
		b.WriteString("\n")
		for _, db := range dbs {
			chip := fmt.Sprintf("▪ %s (%s rows)", db.Name, formatCount(db.RowCount))
			b.WriteString(theme.WelcomeInfo.Render(chip))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	for i, s := range tr.Suggestions {
		key := theme.SuggestionKey.Render(fmt.Sprintf("[%d]", i+1))
		b.WriteString(key + " " + theme.Suggestion.Render(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.WelcomeInfo.Render(strings.Join(wordWrap(tr.Footer, 56), "\n")))

	box := theme.WelcomeBox.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
