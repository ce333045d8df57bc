// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atotto/clipboard"

	"github.com/jeranaias/datachat-tui/internal/api"
)

// chatTimeout bounds one exchange. OSINT scans can run long.
const chatTimeout = 120 * time.Second

// listTimeout bounds the passive list fetches.
const listTimeout = 10 * time.Second

// statusTTL is how long a transient status line stays visible.
const statusTTL = 3 * time.Second

// sendChatCmd issues the chat request. The generation and conversation
// id captured here let the handler detect a stale response.
func (m *Model) sendChatCmd(generation int, conversationID, text string) tea.Cmd {
	client := m.client
	aiMode := m.aiMode
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
		defer cancel()

		var convPtr *string
		if conversationID != "" {
			convPtr = &conversationID
		}
		resp, err := client.Chat(ctx, api.ChatRequest{
			Message:        text,
			ConversationID: convPtr,
			AIMode:         aiMode,
		})
		return chatResponseMsg{
			generation:     generation,
			conversationID: conversationID,
			query:          text,
			resp:           resp,
			err:            err,
		}
	}
}

// loadConversationsCmd fetches the conversation listing.
func (m *Model) loadConversationsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		convs, err := client.ListConversations(ctx)
		return conversationsLoadedMsg{convs: convs, err: err}
	}
}

// loadHistoryCmd fetches a conversation's replayed messages.
func (m *Model) loadHistoryCmd(generation int, conversationID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		msgs, err := client.ConversationMessages(ctx, conversationID)
		return historyLoadedMsg{
			generation:     generation,
			conversationID: conversationID,
			msgs:           msgs,
			err:            err,
		}
	}
}

// loadDatabasesCmd fetches the imported-database listing.
func (m *Model) loadDatabasesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		dbs, err := client.ListDatabases(ctx)
		return databasesLoadedMsg{dbs: dbs, err: err}
	}
}

// copyCmd writes text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: clipboard.WriteAll(text)}
	}
}

// clearStatusCmd expires the status line after statusTTL.
func (m *Model) clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
