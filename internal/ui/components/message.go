// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// bubbleMaxShare bounds a bubble to a fraction of the terminal width so
// conversation sides stay visually distinct.
const bubbleMaxShare = 0.8

// RenderUserBubble renders a user message as a right-aligned bubble.
func RenderUserBubble(theme *styles.Theme, content string, width int) string {
	maxWidth := bubbleWidth(width)
	text := strings.Join(wordWrap(content, maxWidth), "\n")
	bubble := theme.UserBubble.Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
}

// RenderAssistantBubble renders assistant rich text inside the assistant
// bubble, left-aligned.
func RenderAssistantBubble(theme *styles.Theme, content string, width int) string {
	maxWidth := bubbleWidth(width)
	return theme.AssistantBubble.Render(RenderMarkdown(content, maxWidth))
}

// RenderErrorBubble renders the synthetic connection-error message. The
// fixed string renders as plain text, never through markdown.
func RenderErrorBubble(theme *styles.Theme, content string, width int) string {
	maxWidth := bubbleWidth(width)
	text := strings.Join(wordWrap(content, maxWidth), "\n")
	return theme.ErrorBubble.Render(text)
}

func bubbleWidth(width int) int {
	w := int(float64(width) * bubbleMaxShare)
	return maxInt(w-8, 20)
}
