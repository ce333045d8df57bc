// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package osint normalizes raw OSINT payloads into display-ready dossiers.
//
// The backend ships a loosely structured payload where every field is
// optional and several shapes overlap (flat identity fields next to nested
// info blocks). Aggregate flattens that into a Dossier of independent
// sections so the presentation layer never touches the raw payload shape.
package osint
