// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for CLI output.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple)

	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	valueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Emerald)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Rose)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple)

	mutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)
