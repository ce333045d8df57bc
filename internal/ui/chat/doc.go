// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the interactive chat session for the datachat
// TUI.
//
// The Model owns the session state machine: one in-flight chat request at
// a time, optimistic user-message append, conversation bootstrap on the
// first response, and a synthetic assistant message when the backend is
// unreachable. Messages render as ordered blocks (text, SQL, OSINT
// dossier, result table, metadata footer) via the blocks package.
//
// Responses are tagged with the session generation current at send time;
// a response arriving after the user switched or reset the session is
// discarded instead of landing in the wrong conversation.
package chat
