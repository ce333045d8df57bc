// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared setup and rendering helpers for CLI commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/blocks"
	"github.com/jeranaias/datachat-tui/internal/config"
	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/model"
	"github.com/jeranaias/datachat-tui/internal/table"
	"github.com/jeranaias/datachat-tui/internal/ui/components"
	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// =============================================================================
// SETUP
// =============================================================================

// setup loads configuration, applies CLI overrides, and builds the
// backend client and translation table.
func setup(args Args) (*api.Client, *i18n.Strings) {
	cfg := config.Global()

	serverURL := cfg.Server.URL
	if args.Server != "" {
		serverURL = args.Server
	}
	lang := cfg.UI.Language
	if args.Lang != "" {
		lang = args.Lang
	}

	client := api.NewClient().WithBaseURL(serverURL)
	return client, i18n.Pick(lang)
}

// chatRequest builds a chat request. A nil conversation id asks the
// backend to open a new conversation.
func chatRequest(query string, conversationID *string, aiMode bool) api.ChatRequest {
	return api.ChatRequest{
		Message:        query,
		ConversationID: conversationID,
		AIMode:         aiMode,
	}
}

// terminalWidth returns the stdout width, or a sane default when the
// output is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 100
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// printAssistantMessage renders an assistant reply's ordered blocks to
// stdout: text, SQL, OSINT dossier, result table, metadata footer.
func printAssistantMessage(msg *model.Message, tr *i18n.Strings, expanded bool) {
	theme := styles.NewTheme()
	width := terminalWidth()

	for _, blk := range blocks.Compose(msg, expanded) {
		switch blk.Kind {
		case blocks.KindText:
			if blk.Text == "" {
				continue
			}
			if blk.Rich {
				fmt.Println(components.RenderMarkdown(blk.Text, width))
			} else {
				fmt.Println(blk.Text)
			}
		case blocks.KindSQL:
			fmt.Println(components.RenderSQLBlock(theme, blk.SQL, width))
		case blocks.KindDossier:
			fmt.Println(components.RenderDossier(theme, blk.Dossier, width))
		case blocks.KindTable:
			fmt.Println(components.RenderResultTable(theme, blk.Table, tr, width))
		case blocks.KindCount:
			fmt.Printf("%d %s\n", blk.Count, tr.Results)
		case blocks.KindMeta:
			fmt.Println(mutedStyle.Render(blk.Meta.Footer(" • ")))
		}
	}
}

// copyTextFor returns the tab-separated full export for a message's
// results, or empty when it carries none.
func copyTextFor(msg *model.Message) string {
	if !msg.HasResults() {
		return ""
	}
	return table.New(msg.Results, false).CopyText()
}

// =============================================================================
// PLAIN TABLES
// =============================================================================

// printColumns prints rows as aligned columns for list commands.
// Widths use display width, not byte length; accented names are routine
// in this data.
func printColumns(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(padRight(h, widths[i]+2))
	}
	fmt.Println(sectionStyle.Render(strings.TrimRight(b.String(), " ")))

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(padRight(cell, widths[i]+2))
			}
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
	}
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
