// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/model"
)

func newTestModel() *Model {
	return New(api.NewClient(), i18n.Pick("en"), false)
}

func TestSendQueryAppendsUserMessage(t *testing.T) {
	m := newTestModel()

	cmd := m.sendQuery("  how many clients?  ")
	if cmd == nil {
		t.Fatal("expected a command for a non-empty query")
	}
	if !m.loading {
		t.Error("loading should be set while a request is in flight")
	}

	msgs := m.store.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Role != model.RoleUser {
		t.Errorf("role = %v, want user", msgs[0].Role)
	}
	if msgs[0].Content != "how many clients?" {
		t.Errorf("content = %q, want trimmed query", msgs[0].Content)
	}
}

func TestSendQueryIgnoresBlankInput(t *testing.T) {
	m := newTestModel()

	for _, input := range []string{"", "   ", "\t\n"} {
		if cmd := m.sendQuery(input); cmd != nil {
			t.Errorf("sendQuery(%q) returned a command, want nil", input)
		}
	}
	if m.loading {
		t.Error("blank input must not set loading")
	}
	if len(m.store.Messages()) != 0 {
		t.Error("blank input must not append messages")
	}
}

func TestSendQueryGuardsInFlightRequest(t *testing.T) {
	m := newTestModel()

	if cmd := m.sendQuery("first"); cmd == nil {
		t.Fatal("first query should produce a command")
	}
	if cmd := m.sendQuery("second"); cmd != nil {
		t.Error("second query while loading should be a silent no-op")
	}
	if got := len(m.store.Messages()); got != 1 {
		t.Errorf("messages = %d, want 1 (second query dropped)", got)
	}
}

func TestEnterKeepsInputWhileLoading(t *testing.T) {
	m := newTestModel()

	if cmd := m.sendQuery("first"); cmd == nil {
		t.Fatal("first query should produce a command")
	}

	m.input.SetValue("draft for later")
	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter while loading should be a silent no-op")
	}

	got := updated.(*Model).input.Value()
	if got != "draft for later" {
		t.Errorf("input after no-op enter = %q, want the typed text preserved", got)
	}
	if len(m.store.Messages()) != 1 {
		t.Error("no-op enter must not append messages")
	}
}

func TestEnterClearsInputOnAcceptedSend(t *testing.T) {
	m := newTestModel()

	m.input.SetValue("how many clients?")
	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("accepted send should produce a command")
	}
	if got := updated.(*Model).input.Value(); got != "" {
		t.Errorf("input after accepted send = %q, want empty", got)
	}
}

func TestChatResponseCreatesConversation(t *testing.T) {
	m := newTestModel()
	query := strings.Repeat("x", 60)
	m.sendQuery(query)

	m.handleChatResponse(chatResponseMsg{
		generation: m.generation,
		query:      query,
		resp: &api.ChatResponse{
			ConversationID: "conv-1",
			Response:       "60 rows",
		},
	})

	if m.loading {
		t.Error("loading should reset after a response")
	}
	if m.store.ActiveID() != "conv-1" {
		t.Errorf("active id = %q, want conv-1", m.store.ActiveID())
	}

	convs := m.store.Conversations()
	if len(convs) != 1 {
		t.Fatalf("conversations = %d, want 1", len(convs))
	}
	if convs[0].Title != strings.Repeat("x", 50) {
		t.Errorf("title = %q, want the first 50 characters of the query", convs[0].Title)
	}

	msgs := m.store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want user + assistant", len(msgs))
	}
	if msgs[1].Role != model.RoleAssistant || msgs[1].IsError {
		t.Error("second message should be a normal assistant reply")
	}
}

func TestChatResponseKeepsActiveConversation(t *testing.T) {
	m := newTestModel()
	m.store.Open(model.NewConversation("conv-1", "earlier"))
	m.sendQuery("follow-up")

	m.handleChatResponse(chatResponseMsg{
		generation:     m.generation,
		conversationID: "conv-1",
		query:          "follow-up",
		resp:           &api.ChatResponse{ConversationID: "conv-1", Response: "ok"},
	})

	if got := len(m.store.Conversations()); got != 1 {
		t.Errorf("conversations = %d, want 1 (no duplicate)", got)
	}
}

func TestChatErrorProducesSingleSyntheticMessage(t *testing.T) {
	m := newTestModel()
	m.sendQuery("query")

	m.handleChatResponse(chatResponseMsg{
		generation: m.generation,
		query:      "query",
		err:        errors.New("connection refused"),
	})

	if m.loading {
		t.Error("loading should reset even on failure")
	}
	if m.store.HasActive() {
		t.Error("a failed exchange must not create a conversation")
	}

	msgs := m.store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want user + error", len(msgs))
	}
	last := msgs[1]
	if last.Role != model.RoleAssistant || !last.IsError {
		t.Error("failure should surface as an assistant error message")
	}
	if last.Content != m.tr.ErrorConnection {
		t.Errorf("error text = %q, want the fixed localized message", last.Content)
	}
}

func TestStaleChatResponseIsDiscarded(t *testing.T) {
	m := newTestModel()
	m.sendQuery("query")
	sentGen := m.generation

	// The user resets the session before the response lands.
	m.startNewConversation()

	m.handleChatResponse(chatResponseMsg{
		generation: sentGen,
		query:      "query",
		resp:       &api.ChatResponse{ConversationID: "conv-9", Response: "late"},
	})

	if m.loading {
		t.Error("a stale response still frees the in-flight slot")
	}
	if len(m.store.Messages()) != 0 {
		t.Error("a stale response must not append messages")
	}
	if m.store.HasActive() {
		t.Error("a stale response must not open a conversation")
	}
}

func TestStaleHistoryIsDiscarded(t *testing.T) {
	m := newTestModel()
	m.store.SetConversations([]*model.Conversation{
		model.NewConversation("conv-1", "one"),
		model.NewConversation("conv-2", "two"),
	})

	m.selectConversation("conv-1")
	staleGen := m.generation
	m.selectConversation("conv-2")

	m.handleHistoryLoaded(historyLoadedMsg{
		generation:     staleGen,
		conversationID: "conv-1",
		msgs:           []*model.Message{model.NewUserMessage("old")},
	})

	if len(m.store.Messages()) != 0 {
		t.Error("history for a superseded selection must not be installed")
	}

	m.handleHistoryLoaded(historyLoadedMsg{
		generation:     m.generation,
		conversationID: "conv-2",
		msgs:           []*model.Message{model.NewUserMessage("two")},
	})
	if len(m.store.Messages()) != 1 {
		t.Error("history for the current selection should install")
	}
}

func TestHistoryErrorIsSilent(t *testing.T) {
	m := newTestModel()
	m.selectConversation("conv-1")

	m.handleHistoryLoaded(historyLoadedMsg{
		generation:     m.generation,
		conversationID: "conv-1",
		err:            errors.New("boom"),
	})

	if m.store.ActiveID() != "conv-1" {
		t.Error("a failed history fetch keeps the conversation selected")
	}
	if len(m.store.Messages()) != 0 {
		t.Error("a failed history fetch leaves the transcript empty")
	}
}

func TestStartNewConversationKeepsList(t *testing.T) {
	m := newTestModel()
	m.store.Open(model.NewConversation("conv-1", "one"))
	m.store.Append(model.NewUserMessage("hello"))
	m.expanded["msg-1"] = true

	m.startNewConversation()

	if m.store.HasActive() {
		t.Error("active conversation should clear")
	}
	if len(m.store.Messages()) != 0 {
		t.Error("transcript should clear")
	}
	if len(m.store.Conversations()) != 1 {
		t.Error("conversation list should survive a reset")
	}
	if len(m.expanded) != 0 {
		t.Error("expansion state should reset with the session")
	}
}

func TestToggleExpandKeyedByMessage(t *testing.T) {
	m := newTestModel()

	withRows := model.NewAssistantMessage("rows")
	withRows.Results = &model.ResultSet{
		Columns: []string{"n"},
		Rows:    []model.Row{model.NewRow("n", "1")},
	}
	m.store.Append(withRows)
	m.store.Append(model.NewAssistantMessage("plain"))

	m.toggleExpand()
	if !m.expanded[withRows.ID] {
		t.Error("expansion should target the newest table-bearing message")
	}
	m.toggleExpand()
	if m.expanded[withRows.ID] {
		t.Error("a second toggle should collapse again")
	}
}

func TestToggleAIMode(t *testing.T) {
	m := newTestModel()
	if m.aiMode {
		t.Fatal("aiMode should start off")
	}
	m.toggleAIMode()
	if !m.aiMode {
		t.Error("toggle should enable aiMode")
	}
	m.toggleAIMode()
	if m.aiMode {
		t.Error("toggle should disable aiMode")
	}
}

func TestPassiveLoadErrorsAreSilent(t *testing.T) {
	m := newTestModel()
	m.store.SetConversations([]*model.Conversation{model.NewConversation("c", "t")})
	m.databases = []api.DatabaseInfo{{Name: "crm"}}

	m.handleConversationsLoaded(conversationsLoadedMsg{err: errors.New("down")})
	m.handleDatabasesLoaded(databasesLoadedMsg{err: errors.New("down")})

	if len(m.store.Conversations()) != 1 {
		t.Error("a failed conversation fetch keeps the previous list")
	}
	if len(m.databases) != 1 {
		t.Error("a failed database fetch keeps the previous list")
	}
}
