// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for datachat CLI.
//
// Handles the "datachat ask" command which sends one question to the
// backend and prints the full reply: answer text, generated SQL, result
// table (all rows, no windowing in one-shot mode), OSINT dossier, and
// the metadata footer.
//
// Command: ask [question]
// Short:   Ask a single question
//
// Examples:
//   datachat ask "how many clients signed up in 2024?"
//   datachat ask --ai "everything about jean.dupont@example.com"
//   datachat --server http://db-host:8000/api ask "list the tables"
//
// Flags:
//   --ai            Enable OSINT enrichment
//   --server URL    Backend base URL
//   --lang LANG     Interface language
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// askTimeout bounds a one-shot exchange. OSINT scans can take a while.
const askTimeout = 120 * time.Second

// HandleAsk sends a single question and prints the reply.
func HandleAsk(args Args) error {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Usage: datachat ask \"question\""))
		return fmt.Errorf("empty query")
	}

	client, tr := setup(args)

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	label := tr.Searching
	if args.AIMode {
		label = tr.OsintSearching
	}
	fmt.Fprintln(os.Stderr, mutedStyle.Render(label))

	resp, err := client.Chat(ctx, chatRequest(query, nil, args.AIMode))
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(tr.ErrorConnection))
		return err
	}

	// One-shot output is not interactive, so the table prints expanded.
	printAssistantMessage(resp.AssistantMessage(), tr, true)
	return nil
}
