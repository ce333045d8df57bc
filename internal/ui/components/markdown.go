// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdownCache holds glamour renderers keyed by wrap width. Building a
// renderer is expensive; widths repeat every frame.
var markdownCache = struct {
	sync.Mutex
	renderers map[int]*glamour.TermRenderer
}{renderers: make(map[int]*glamour.TermRenderer)}

// RenderMarkdown renders assistant rich text for terminal display.
// Returns the original content if rendering fails.
func RenderMarkdown(content string, width int) string {
	if width < 10 {
		width = 10
	}

	markdownCache.Lock()
	renderer, ok := markdownCache.renderers[width]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			renderer = nil
		}
		markdownCache.renderers[width] = renderer
	}
	markdownCache.Unlock()

	if renderer == nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
