// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing chat conversations, messages, query result sets, and
// OSINT enrichment payloads as returned by the DataChat backend.
//
// # Key Types
//
//   - Conversation: Metadata for a chat session (id, title, creation time)
//   - Message: Single message with role, content, and optional SQL, results,
//     timing, and OSINT attachments
//   - ResultSet: Tabular query results with column order preserved from the
//     wire payload
//   - OsintPayload: Raw OSINT lookup data (email, phone, social profiles,
//     search hits, breaches, directory entries)
//   - Role: Message role enumeration (user, assistant)
//
// # Usage
//
// Create messages for a session:
//
//	user := model.NewUserMessage("show all clients in Paris")
//	reply := model.NewAssistantMessage("Found 12 rows.")
//
// Decode a backend result set while keeping column order:
//
//	var rs model.ResultSet
//	if err := json.Unmarshal(data, &rs); err != nil { ... }
//	cols := rs.ColumnOrder()
package model
