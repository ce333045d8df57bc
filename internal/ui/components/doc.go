// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable rendering pieces of the
// datachat TUI: message text, SQL blocks, result tables, OSINT dossiers,
// and the welcome screen. Components are pure string renderers over a
// Theme; all state lives in the chat model.
package components
