// datachat TUI - A terminal interface for chatting with your databases.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/datachat-tui/internal/api"
	"github.com/jeranaias/datachat-tui/internal/cli"
	"github.com/jeranaias/datachat-tui/internal/config"
	"github.com/jeranaias/datachat-tui/internal/i18n"
	"github.com/jeranaias/datachat-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		exitOnError(cli.HandleAsk(args))
	case cli.CmdChat:
		exitOnError(cli.HandleChat(args))
	case cli.CmdDatabases:
		exitOnError(cli.HandleDatabases(args))
	case cli.CmdScan:
		exitOnError(cli.HandleScan(args))
	case cli.CmdImport:
		exitOnError(cli.HandleImport(args))
	case cli.CmdStats:
		exitOnError(cli.HandleStats(args))
	case cli.CmdStatus:
		exitOnError(cli.HandleStatus(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	cfg := config.Global()

	serverURL := cfg.Server.URL
	if args.Server != "" {
		serverURL = args.Server
	}
	lang := cfg.UI.Language
	if args.Lang != "" {
		lang = args.Lang
	}
	aiMode := cfg.Chat.AIMode || args.AIMode

	client := api.NewClient().WithBaseURL(serverURL)
	model := chat.New(client, i18n.Pick(lang), aiMode)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		os.Exit(1)
	}
}
