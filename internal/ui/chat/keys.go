// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/datachat-tui/internal/table"
)

// handleKey routes key presses. The conversation picker, when open,
// captures navigation keys before the input does.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConvList {
		return m.handleConvListKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		// A rejected send (blank input, request in flight) keeps the
		// typed text; the input clears only when the query goes out.
		if cmd := m.sendQuery(m.input.Value()); cmd != nil {
			m.input.Reset()
			return m, cmd
		}
		return m, nil

	case "ctrl+n":
		m.startNewConversation()
		m.refreshViewport()
		return m, nil

	case "ctrl+o":
		m.toggleAIMode()
		return m, nil

	case "ctrl+e":
		m.toggleExpand()
		return m, nil

	case "ctrl+y":
		if msg := m.lastTableMessage(); msg != nil {
			// Copy covers every row in column order, not just the
			// visible window.
			return m, copyCmd(table.New(msg.Results, false).CopyText())
		}
		return m, nil

	case "ctrl+l":
		if len(m.store.Conversations()) > 0 {
			m.showConvList = true
			m.convCursor = 0
		}
		return m, nil

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil

	case "1", "2", "3", "4":
		// Suggestion shortcuts only apply on the welcome screen with an
		// empty input; otherwise digits type normally.
		if len(m.store.Messages()) == 0 && m.input.Value() == "" {
			idx := int(msg.String()[0] - '1')
			if idx < len(m.tr.Suggestions) {
				m.input.SetValue(m.tr.Suggestions[idx])
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConvListKey drives the conversation picker overlay.
func (m *Model) handleConvListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	convs := m.store.Conversations()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "ctrl+l":
		m.showConvList = false
		return m, nil

	case "up", "k":
		if m.convCursor > 0 {
			m.convCursor--
		}
		return m, nil

	case "down", "j":
		if m.convCursor < len(convs)-1 {
			m.convCursor++
		}
		return m, nil

	case "enter":
		m.showConvList = false
		if m.convCursor >= 0 && m.convCursor < len(convs) {
			return m, m.selectConversation(convs[m.convCursor].ID)
		}
		return m, nil
	}

	return m, nil
}
