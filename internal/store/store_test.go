// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"testing"

	"github.com/jeranaias/datachat-tui/internal/model"
)

func TestOpenPrependsAndActivates(t *testing.T) {
	s := New()
	s.SetConversations([]*model.Conversation{{ID: "old"}})
	s.Append(model.NewUserMessage("first question"))

	s.Open(model.NewConversation("c1", "first question"))

	convs := s.Conversations()
	if len(convs) != 2 || convs[0].ID != "c1" || convs[1].ID != "old" {
		t.Errorf("conversations out of order: %v", convs)
	}
	if s.ActiveID() != "c1" {
		t.Errorf("active = %q, want c1", s.ActiveID())
	}
	if len(s.Messages()) != 1 {
		t.Error("open should keep the running session's messages")
	}
}

func TestStartNewKeepsKnownList(t *testing.T) {
	s := New()
	s.SetConversations([]*model.Conversation{{ID: "a"}, {ID: "b"}})
	s.Activate("a")
	s.Append(model.NewUserMessage("hello"))

	s.StartNew()

	if s.HasActive() {
		t.Error("active id should be cleared")
	}
	if len(s.Messages()) != 0 {
		t.Error("messages should be cleared")
	}
	if len(s.Conversations()) != 2 {
		t.Error("known list should survive")
	}
}

func TestActivateClearsMessages(t *testing.T) {
	s := New()
	s.Append(model.NewUserMessage("pending"))
	s.Activate("c9")

	if s.ActiveID() != "c9" {
		t.Errorf("active = %q", s.ActiveID())
	}
	if len(s.Messages()) != 0 {
		t.Error("messages should be cleared until history arrives")
	}
}

func TestFind(t *testing.T) {
	s := New()
	s.SetConversations([]*model.Conversation{{ID: "a", Title: "t"}})
	if got := s.Find("a"); got == nil || got.Title != "t" {
		t.Errorf("Find(a) = %v", got)
	}
	if got := s.Find("zzz"); got != nil {
		t.Errorf("Find(zzz) = %v, want nil", got)
	}
}
