// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the datachat command line: argument parsing,
// the one-shot ask command, the line-oriented chat REPL, and the
// database management commands (databases, scan, import, stats).
//
// The full-screen TUI lives in internal/ui/chat; this package covers
// everything reachable without an alternate screen.
package cli
