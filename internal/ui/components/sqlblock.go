// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// RenderSQLBlock renders a generated query verbatim in a bordered
// monospace block with a language badge and syntax highlighting.
func RenderSQLBlock(theme *styles.Theme, sql string, width int) string {
	badge := theme.SQLLangBadge.Render("SQL")
	code := highlightSQL(strings.TrimRight(sql, "\n"))

	block := theme.SQLBlock.Width(maxInt(width-2, 10))
	return block.Render(badge + "\n" + code)
}

// highlightSQL applies syntax highlighting using the chroma library.
func highlightSQL(code string) string {
	lexer := lexers.Get("sql")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
