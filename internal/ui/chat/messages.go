// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/model"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================
// Bubble Tea messages produced by the async commands in commands.go.

// chatResponseMsg carries the outcome of a chat request. generation and
// conversationID are the session identity at send time; the handler
// discards the message when they no longer match.
type chatResponseMsg struct {
	generation     int
	conversationID string
	query          string
	resp           *api.ChatResponse
	err            error
}

// conversationsLoadedMsg carries the backend conversation listing.
// A failed listing is passive: err is recorded nowhere and the old list
// stays.
type conversationsLoadedMsg struct {
	convs []*model.Conversation
	err   error
}

// historyLoadedMsg carries a conversation's replayed messages.
type historyLoadedMsg struct {
	generation     int
	conversationID string
	msgs           []*model.Message
	err            error
}

// databasesLoadedMsg carries the imported-database listing for the
// welcome screen and header.
type databasesLoadedMsg struct {
	dbs []api.DatabaseInfo
	err error
}

// copyDoneMsg reports a clipboard write.
type copyDoneMsg struct {
	err error
}

// statusClearMsg expires the transient status line.
type statusClearMsg struct{}
