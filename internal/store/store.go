// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the client-side session state: the known
// conversation list, the active conversation, and the messages of the
// active conversation. The backend owns persistence; this store only
// mirrors it plus the optimistic local state of the running session.
package store

import (
	"github.com/jeranaias/datachat-tui/internal/model"
)

// Store is the in-memory session state. It is owned by the UI event loop
// and is not safe for concurrent use.
type Store struct {
	conversations []*model.Conversation
	activeID      string
	messages      []*model.Message
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Conversations returns the known conversation list, newest first.
func (s *Store) Conversations() []*model.Conversation {
	return s.conversations
}

// SetConversations reconciles the known list with a backend listing.
func (s *Store) SetConversations(convs []*model.Conversation) {
	s.conversations = convs
}

// Find returns the known conversation with the given id, or nil.
func (s *Store) Find(id string) *model.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ActiveID returns the id of the active conversation, empty when the
// session has not been persisted yet.
func (s *Store) ActiveID() string {
	return s.activeID
}

// HasActive reports whether a persisted conversation is active.
func (s *Store) HasActive() bool {
	return s.activeID != ""
}

// Messages returns the message list of the active session.
func (s *Store) Messages() []*model.Message {
	return s.messages
}

// Append adds a message to the active session.
func (s *Store) Append(msg *model.Message) {
	s.messages = append(s.messages, msg)
}

// SetMessages replaces the active session's messages, typically with a
// fetched history.
func (s *Store) SetMessages(msgs []*model.Message) {
	s.messages = msgs
}

// Activate switches to an existing conversation. The message list is
// cleared; the caller replaces it once history arrives.
func (s *Store) Activate(id string) {
	s.activeID = id
	s.messages = nil
}

// Open records a conversation the backend just created: it becomes the
// head of the known list and the active conversation. The running
// session's messages are kept.
func (s *Store) Open(conv *model.Conversation) {
	s.conversations = append([]*model.Conversation{conv}, s.conversations...)
	s.activeID = conv.ID
}

// StartNew clears the active conversation and its messages while keeping
// the known conversation list.
func (s *Store) StartNew() {
	s.activeID = ""
	s.messages = nil
}
