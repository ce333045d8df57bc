// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/datachat-tui/internal/blocks"
	"github.com/jeranaias/datachat-tui/internal/model"
	"github.com/jeranaias/datachat-tui/internal/ui/components"
	"github.com/jeranaias/datachat-tui/internal/util"
)

// View assembles the full screen.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	if m.showConvList {
		return m.renderConvList()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render(m.tr.Title)
	sub := ""
	if n := len(m.databases); n > 0 {
		sub = m.theme.HeaderSubtitle.Render("  " + m.tr.DBConnected(n))
	}
	return m.theme.Header.Width(m.width).Render(title + sub)
}

func (m *Model) renderInput() string {
	if m.loading {
		label := m.tr.Searching
		if m.aiMode {
			label = m.tr.OsintSearching
		}
		return m.theme.InputContainer.Width(m.width).Render(
			m.theme.Spinner.Render(m.spin.View()) + " " + m.theme.ThinkingText.Render(label),
		)
	}
	return m.theme.InputContainer.Width(m.width).Render(
		m.theme.InputPrompt.Render("> ") + m.input.View(),
	)
}

func (m *Model) renderStatusBar() string {
	mode := m.theme.AIModeOff.Render("[ AI ]")
	if m.aiMode {
		mode = m.theme.AIModeOn.Render("[ AI+OSINT ]")
	}

	shortcuts := []string{
		m.shortcut("ctrl+n", m.tr.NewConversation),
		m.shortcut("ctrl+l", m.tr.Conversations),
		m.shortcut("ctrl+o", m.tr.AIMode),
	}
	if msg := m.lastTableMessage(); msg != nil {
		shortcuts = append(shortcuts,
			m.shortcut("ctrl+e", "expand"),
			m.shortcut("ctrl+y", "copy"),
		)
	}

	line := mode + "  " + strings.Join(shortcuts, "  ")
	if m.statusMsg != "" {
		line += "  " + m.theme.ShortcutDesc.Render(m.statusMsg)
	}
	return m.theme.StatusBar.Width(m.width).Render(line)
}

func (m *Model) shortcut(key, desc string) string {
	return m.theme.ShortcutKey.Render(key) + " " + m.theme.ShortcutDesc.Render(desc)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshViewport rebuilds the transcript content and follows the tail.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	msgs := m.store.Messages()
	if len(msgs) == 0 {
		m.viewport.SetContent(components.RenderWelcome(
			m.theme, m.tr, m.databases, m.viewport.Width, m.viewport.Height,
		))
		m.viewport.GotoTop()
		return
	}

	var parts []string
	for _, msg := range msgs {
		parts = append(parts, m.renderMessage(msg))
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

// renderMessage renders one message from its ordered block list.
func (m *Model) renderMessage(msg *model.Message) string {
	if msg.Role == model.RoleUser {
		return components.RenderUserBubble(m.theme, msg.Content, m.viewport.Width)
	}
	if msg.IsError {
		return components.RenderErrorBubble(m.theme, msg.Content, m.viewport.Width)
	}

	var parts []string
	for _, blk := range blocks.Compose(msg, m.expanded[msg.ID]) {
		switch blk.Kind {
		case blocks.KindText:
			if blk.Text == "" {
				continue
			}
			if blk.Rich {
				parts = append(parts, components.RenderAssistantBubble(m.theme, blk.Text, m.viewport.Width))
			} else {
				parts = append(parts, blk.Text)
			}
		case blocks.KindSQL:
			parts = append(parts, components.RenderSQLBlock(m.theme, blk.SQL, m.viewport.Width))
		case blocks.KindDossier:
			parts = append(parts, components.RenderDossier(m.theme, blk.Dossier, m.viewport.Width))
		case blocks.KindTable:
			parts = append(parts, components.RenderResultTable(m.theme, blk.Table, m.tr, m.viewport.Width))
		case blocks.KindCount:
			parts = append(parts, m.theme.TableCount.Render(
				fmt.Sprintf("%d %s", blk.Count, m.tr.Results),
			))
		case blocks.KindMeta:
			parts = append(parts, m.theme.MetaFooter.Render(blk.Meta.Footer(" • ")))
		}
	}
	return strings.Join(parts, "\n")
}

// =============================================================================
// CONVERSATION PICKER
// =============================================================================

func (m *Model) renderConvList() string {
	convs := m.store.Conversations()

	var b strings.Builder
	b.WriteString(m.theme.ConvTitle.Render(m.tr.Conversations))
	b.WriteString("\n\n")
	for i, conv := range convs {
		line := m.theme.ConvItem
		prefix := "  "
		if i == m.convCursor {
			line = m.theme.ConvItemSelected
			prefix = "> "
		}
		b.WriteString(line.Render(prefix + util.TruncateRunes(conv.Title, maxInt(m.width-20, 20))))
		b.WriteString("\n")
		b.WriteString(m.theme.ConvMeta.Render("    " + conv.CreatedAt.Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render("enter: open  esc: close"))

	box := m.theme.ConvList.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
