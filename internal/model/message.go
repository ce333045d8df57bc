// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "DataChat"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
//
// User messages carry only Content. Assistant messages may additionally
// carry any subset of SQL, Results, ElapsedSecs, Database, and Osint,
// depending on what the backend produced for the exchange. Messages
// rebuilt from conversation history carry ResultsCount instead of a full
// Results payload.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// Query attachments (assistant messages only)
	SQL         string        `json:"sql,omitempty"`
	Results     *ResultSet    `json:"results,omitempty"`
	ElapsedSecs float64       `json:"time,omitempty"`
	Database    string        `json:"database,omitempty"`
	Osint       *OsintPayload `json:"osint,omitempty"`

	// History-only summary of a result set that was not replayed in full.
	ResultsCount *int `json:"results_count,omitempty"`

	// Marks the synthetic message appended when the backend is unreachable.
	IsError bool `json:"is_error,omitempty"`
}

// NewUserMessage creates a new user message with the given content.
func NewUserMessage(content string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      RoleUser,
		Timestamp: time.Now(),
		Content:   content,
	}
}

// NewAssistantMessage creates a new assistant message with the given content.
func NewAssistantMessage(content string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      RoleAssistant,
		Timestamp: time.Now(),
		Content:   content,
	}
}

// NewErrorMessage creates the synthetic assistant message used when a chat
// request could not reach the backend. The content is the localized
// connection-error string chosen by the caller.
func NewErrorMessage(content string) *Message {
	msg := NewAssistantMessage(content)
	msg.IsError = true
	return msg
}

// HasResults reports whether the message carries a result set with at
// least one row.
func (m *Message) HasResults() bool {
	return m.Results != nil && len(m.Results.Rows) > 0
}

// HasMetadata reports whether the message carries anything for the
// metadata footer line.
func (m *Message) HasMetadata() bool {
	return m.ElapsedSecs > 0 || m.Database != "" || m.Osint != nil
}

// Preview returns a truncated version of the message content.
func (m *Message) Preview(maxLen int) string {
	content := strings.TrimSpace(m.Content)
	content = strings.ReplaceAll(content, "\n", " ")

	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "..."
}

func generateMessageID() string {
	return "msg-" + uuid.NewString()
}
