// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"
)

// TitleMaxLen is the number of characters of the first query kept as the
// conversation title. The backend applies the same truncation on its side.
const TitleMaxLen = 50

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the metadata for a chat session. Message content lives
// on the backend; the client only tracks the messages of the currently
// active conversation.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// NewConversation creates conversation metadata for a session the backend
// just opened. The title is derived from the query that started it.
func NewConversation(id, firstQuery string) *Conversation {
	return &Conversation{
		ID:        id,
		Title:     TitleFromQuery(firstQuery),
		CreatedAt: time.Now(),
	}
}

// TitleFromQuery derives a conversation title from its opening query:
// the first TitleMaxLen characters, no ellipsis.
func TitleFromQuery(query string) string {
	runes := []rune(query)
	if len(runes) <= TitleMaxLen {
		return query
	}
	return string(runes[:TitleMaxLen])
}
