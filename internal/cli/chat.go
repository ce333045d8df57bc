// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive line-mode chat for datachat CLI.
//
// Handles the "datachat chat" command: a readline-style REPL against
// the backend, with input history persisted under the config directory.
// Conversation state mirrors the TUI session rules: the first
// successful exchange opens a conversation, failed exchanges never do,
// and /new resets the session without touching server state.
//
// Command: chat
// Short:   Interactive chat
//
// Examples:
//   datachat chat
//   datachat chat --ai
//
// Slash commands:
//   /new        Start a new conversation
//   /ai         Toggle OSINT enrichment
//   /expand     Reprint the last result table with all rows
//   /copy       Copy the last result as tab-separated text
//   /databases  List imported databases
//   /help       Show slash commands
//   /quit       Exit
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/peterh/liner"

	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/config"
	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/model"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// chatInput wraps liner with history persistence.
type chatInput struct {
	line        *liner.State
	historyFile string
}

func newChatInput() *chatInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	in := &chatInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	in.loadHistory()
	return in
}

func (c *chatInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// Read reads one line with history navigation. Non-empty input is
// appended to history.
func (c *chatInput) Read(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

func (c *chatInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *chatInput) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// chatSession holds the REPL's session state.
type chatSession struct {
	client *api.Client
	tr     *i18n.Strings

	conversationID string
	aiMode         bool

	// lastResult keeps the newest table-bearing reply for /expand.
	lastResult *model.Message
}

// =============================================================================
// REPL
// =============================================================================

// HandleChat runs the interactive line-mode chat.
func HandleChat(args Args) error {
	client, tr := setup(args)

	session := &chatSession{
		client: client,
		tr:     tr,
		aiMode: args.AIMode,
	}

	input := newChatInput()
	defer input.Close()

	fmt.Println(titleStyle.Render(tr.Title))
	fmt.Println(mutedStyle.Render(tr.Subtitle))
	fmt.Println(mutedStyle.Render("/help " + tr.Footer))
	fmt.Println()

	for {
		text, err := input.Read(promptStyle.Render("datachat> "))
		if err != nil {
			// Ctrl+C or Ctrl+D: leave quietly.
			if err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			fmt.Println()
			return nil
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "/") {
			if quit := session.slashCommand(text, args); quit {
				return nil
			}
			continue
		}
		if strings.EqualFold(text, "exit") || strings.EqualFold(text, "quit") {
			return nil
		}

		session.exchange(text)
	}
}

// exchange sends one query and prints the reply. A transport failure
// prints the fixed localized error; the conversation id moves only on
// success.
func (s *chatSession) exchange(query string) {
	label := s.tr.Searching
	if s.aiMode {
		label = s.tr.OsintSearching
	}
	fmt.Println(mutedStyle.Render(label))

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	var convPtr *string
	if s.conversationID != "" {
		convPtr = &s.conversationID
	}
	resp, err := s.client.Chat(ctx, chatRequest(query, convPtr, s.aiMode))
	if err != nil {
		fmt.Println(errorStyle.Render(s.tr.ErrorConnection))
		return
	}

	if s.conversationID == "" && resp.ConversationID != "" {
		s.conversationID = resp.ConversationID
	}

	msg := resp.AssistantMessage()
	printAssistantMessage(msg, s.tr, false)
	if msg.HasResults() {
		s.lastResult = msg
	}
	fmt.Println()
}

// slashCommand handles a /command line. It returns true when the REPL
// should exit.
func (s *chatSession) slashCommand(text string, args Args) bool {
	cmd := strings.ToLower(strings.Fields(text)[0])

	switch cmd {
	case "/quit", "/exit", "/q":
		return true

	case "/new":
		s.conversationID = ""
		s.lastResult = nil
		fmt.Println(successStyle.Render(s.tr.NewConversation))

	case "/ai", "/osint":
		s.aiMode = !s.aiMode
		if s.aiMode {
			fmt.Println(successStyle.Render(s.tr.AIMode + ": ON"))
		} else {
			fmt.Println(mutedStyle.Render(s.tr.AIMode + ": OFF"))
		}
		// Remember the toggle across sessions.
		cfg := config.Global()
		cfg.Chat.AIMode = s.aiMode
		if err := config.Save(cfg); err != nil {
			fmt.Println(warningStyle.Render(err.Error()))
		}

	case "/expand":
		if s.lastResult == nil {
			fmt.Println(warningStyle.Render("No results to expand."))
			break
		}
		printAssistantMessage(s.lastResult, s.tr, true)

	case "/copy":
		text := ""
		if s.lastResult != nil {
			text = copyTextFor(s.lastResult)
		}
		if text == "" {
			fmt.Println(warningStyle.Render("No results to copy."))
			break
		}
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		fmt.Println(successStyle.Render(s.tr.Copied))

	case "/databases", "/dbs":
		if err := HandleDatabases(args); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
		}

	case "/help":
		fmt.Println(sectionStyle.Render("Commands:"))
		fmt.Println("  /new        " + s.tr.NewConversation)
		fmt.Println("  /ai         " + s.tr.AIDesc)
		fmt.Println("  /expand     Show all rows of the last result")
		fmt.Println("  /copy       Copy the last result as tab-separated text")
		fmt.Println("  /databases  List imported databases")
		fmt.Println("  /quit       Exit")

	default:
		fmt.Println(warningStyle.Render("Unknown command: " + cmd + " (try /help)"))
	}

	return false
}
