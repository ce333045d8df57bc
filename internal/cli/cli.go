// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for datachat.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdDatabases
	CmdScan
	CmdImport
	CmdStats
	CmdStatus
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Server string // backend base URL override
	Lang   string // language override: auto, en, fr
	AIMode bool   // enable OSINT enrichment

	// Command-specific
	Query string // ask: the question
	Path  string // import: file path
	Name  string // import: database name override

	// Raw args remaining after the command word
	Raw []string
}

const usageText = `datachat - chat with your databases in plain language

DataChat turns natural-language questions into SQL against the
databases imported on the backend, with optional OSINT enrichment.

Usage:
  datachat                    Start TUI (default)
  datachat ask "question"     Ask a single question
  datachat chat               Interactive chat (line mode)
  datachat databases, dbs     List imported databases
  datachat scan               List importable files found by the backend
  datachat import PATH        Import a file as a queryable database
  datachat stats              Show server statistics
  datachat status             Check backend health
  datachat version            Show version
  datachat help               Show this help

Global flags:
  --server URL    Backend base URL (default http://localhost:8000/api)
  --lang LANG     Interface language: auto, en, fr (default auto)
  --ai            Enable OSINT enrichment for queries

Import flags:
  --name NAME     Database name (default: derived from the file name)

Examples:
  datachat ask "how many clients are in the CRM?"
  datachat ask --ai "everything about jean.dupont@example.com"
  datachat import ./exports/clients.csv --name clients
  datachat databases

Configuration: ~/.datachat/config.toml
Environment:   DATACHAT_SERVER_URL, DATACHAT_LANG, DATACHAT_AI_MODE

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("datachat version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		args.Query = strings.Join(remaining, " ")
		return CmdAsk, args

	case "chat":
		return CmdChat, args

	case "databases", "dbs", "db":
		return CmdDatabases, args

	case "scan":
		return CmdScan, args

	case "import":
		parseImportArgs(&args, remaining)
		return CmdImport, args

	case "stats":
		return CmdStats, args

	case "status", "health":
		return CmdStatus, args

	case "version", "--version", "-v":
		return CmdVersion, args

	case "help", "--help", "-h":
		return CmdHelp, args

	default:
		// An unknown first word is treated as a question, so
		// `datachat how many clients` just works.
		args.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, args
	}
}

// parseGlobalFlags extracts flags valid in any position before the
// command word and returns the remaining arguments.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch {
		case arg == "--server" && i+1 < len(argv):
			args.Server = argv[i+1]
			i += 2
		case strings.HasPrefix(arg, "--server="):
			args.Server = strings.TrimPrefix(arg, "--server=")
			i++
		case arg == "--lang" && i+1 < len(argv):
			args.Lang = argv[i+1]
			i += 2
		case strings.HasPrefix(arg, "--lang="):
			args.Lang = strings.TrimPrefix(arg, "--lang=")
			i++
		case arg == "--ai" || arg == "--osint":
			args.AIMode = true
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	return remaining, args
}

// parseImportArgs reads the import command's positional path and flags.
func parseImportArgs(args *Args, remaining []string) {
	i := 0
	for i < len(remaining) {
		arg := remaining[i]
		switch {
		case arg == "--name" && i+1 < len(remaining):
			args.Name = remaining[i+1]
			i += 2
		case strings.HasPrefix(arg, "--name="):
			args.Name = strings.TrimPrefix(arg, "--name=")
			i++
		default:
			if args.Path == "" {
				args.Path = arg
			}
			i++
		}
	}
}
