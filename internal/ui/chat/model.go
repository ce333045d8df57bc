// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/model"
	"github.com/jeranaias/datachat-tui/internal/store"
	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// Model is the Bubble Tea model for the chat session.
type Model struct {
	theme  *styles.Theme
	tr     *i18n.Strings
	client *api.Client
	store  *store.Store

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	width  int
	height int
	ready  bool

	// loading is the single-in-flight chat mutex: while true, sendQuery
	// is a silent no-op.
	loading bool
	aiMode  bool

	// generation increments whenever the session identity changes
	// (conversation switch or reset). Responses from an older generation
	// are discarded.
	generation int

	// expanded tracks per-message table expansion, keyed by message ID.
	// View state only; it never touches the messages themselves.
	expanded map[string]bool

	databases []api.DatabaseInfo
	statusMsg string

	// Conversation picker overlay.
	showConvList bool
	convCursor   int
}

// New creates a chat model wired to the given backend client.
func New(client *api.Client, tr *i18n.Strings, aiMode bool) *Model {
	input := textinput.New()
	input.Placeholder = tr.Placeholder
	input.CharLimit = 2000
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    spinner.Dot.FPS,
	}

	return &Model{
		theme:    styles.NewTheme(),
		tr:       tr,
		client:   client,
		store:    store.New(),
		input:    input,
		spin:     spin,
		aiMode:   aiMode,
		expanded: make(map[string]bool),
	}
}

// Init starts the background loads for the passive lists.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadConversationsCmd(),
		m.loadDatabasesCmd(),
	)
}

// Update routes incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case chatResponseMsg:
		m.handleChatResponse(msg)
		m.refreshViewport()
		return m, nil

	case conversationsLoadedMsg:
		m.handleConversationsLoaded(msg)
		return m, nil

	case historyLoadedMsg:
		m.handleHistoryLoaded(msg)
		m.refreshViewport()
		return m, nil

	case databasesLoadedMsg:
		m.handleDatabasesLoaded(msg)
		m.refreshViewport()
		return m, nil

	case copyDoneMsg:
		if msg.err == nil {
			m.statusMsg = m.tr.Copied
		}
		return m, m.clearStatusCmd()

	case statusClearMsg:
		m.statusMsg = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// =============================================================================
// SESSION CONTROLLER
// =============================================================================

// sendQuery submits a query. Empty input (after trimming) and an
// in-flight request are both silent no-ops; no queueing, no retry.
func (m *Model) sendQuery(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" || m.loading {
		return nil
	}

	m.store.Append(model.NewUserMessage(text))
	m.loading = true
	m.refreshViewport()

	return tea.Batch(
		m.spin.Tick,
		m.sendChatCmd(m.generation, m.store.ActiveID(), text),
	)
}

// handleChatResponse applies a chat outcome to the session.
func (m *Model) handleChatResponse(msg chatResponseMsg) {
	// The in-flight slot frees regardless of what arrived.
	m.loading = false

	// A response for an older session identity lands nowhere. The
	// backend already persisted the exchange; re-selecting that
	// conversation replays it from history.
	if msg.generation != m.generation {
		return
	}

	if msg.err != nil {
		// Exactly one synthetic assistant message with the fixed
		// localized error text. No conversation is created.
		m.store.Append(model.NewErrorMessage(m.tr.ErrorConnection))
		return
	}

	if !m.store.HasActive() && msg.resp.ConversationID != "" {
		m.store.Open(model.NewConversation(msg.resp.ConversationID, msg.query))
	}
	m.store.Append(msg.resp.AssistantMessage())
}

// selectConversation switches to an existing conversation and fetches
// its history.
func (m *Model) selectConversation(id string) tea.Cmd {
	m.generation++
	m.store.Activate(id)
	return m.loadHistoryCmd(m.generation, id)
}

// handleHistoryLoaded installs a replayed history, unless the user has
// moved on since the fetch started.
func (m *Model) handleHistoryLoaded(msg historyLoadedMsg) {
	if msg.generation != m.generation || msg.conversationID != m.store.ActiveID() {
		return
	}
	if msg.err != nil {
		// Passive fetch: the conversation stays selected with an empty
		// transcript rather than surfacing an error.
		return
	}
	m.store.SetMessages(msg.msgs)
}

// startNewConversation resets the session while keeping the known
// conversation list.
func (m *Model) startNewConversation() {
	m.generation++
	m.store.StartNew()
	m.expanded = make(map[string]bool)
}

// toggleAIMode flips OSINT enrichment for subsequent queries.
func (m *Model) toggleAIMode() {
	m.aiMode = !m.aiMode
}

// handleConversationsLoaded reconciles the known list. Failures are
// silent: the previous list (possibly empty) stays.
func (m *Model) handleConversationsLoaded(msg conversationsLoadedMsg) {
	if msg.err != nil {
		return
	}
	m.store.SetConversations(msg.convs)
}

// handleDatabasesLoaded installs the database listing. Failures are
// silent: the welcome screen simply shows no databases.
func (m *Model) handleDatabasesLoaded(msg databasesLoadedMsg) {
	if msg.err != nil {
		return
	}
	m.databases = msg.dbs
}

// =============================================================================
// VIEW STATE HELPERS
// =============================================================================

// lastTableMessage returns the newest message carrying a renderable
// table, if any.
func (m *Model) lastTableMessage() *model.Message {
	msgs := m.store.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].HasResults() {
			return msgs[i]
		}
	}
	return nil
}

// toggleExpand flips table expansion for the newest table message.
func (m *Model) toggleExpand() {
	if msg := m.lastTableMessage(); msg != nil {
		m.expanded[msg.ID] = !m.expanded[msg.ID]
		m.refreshViewport()
	}
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 2
	footerHeight := 4
	vpHeight := maxInt(msg.Height-headerHeight-footerHeight, 3)

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.input.Width = maxInt(msg.Width-8, 20)
	m.refreshViewport()
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
