// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package blocks decomposes messages into ordered renderable blocks.
//
// A message renders as up to five blocks in a fixed order: text, SQL,
// OSINT dossier, result table, metadata footer. The order is a contract
// with the presentation layer; each block appears only when its source
// field is present, and blocks never suppress one another.
package blocks

import (
	"strconv"
	"strings"

	"github.com/jeranaias/datachat-tui/internal/model"
	"github.com/jeranaias/datachat-tui/internal/osint"
	"github.com/jeranaias/datachat-tui/internal/table"
)

// Kind identifies a block's renderer.
type Kind int

const (
	// KindText is the message body: plain for user messages, markdown
	// for assistant messages.
	KindText Kind = iota
	// KindSQL is the verbatim generated query.
	KindSQL
	// KindDossier is the normalized OSINT panel.
	KindDossier
	// KindTable is a windowed result table.
	KindTable
	// KindCount is a bare result count, used for history messages that
	// carry a count but no replayed rows. It occupies the table slot.
	KindCount
	// KindMeta is the metadata footer line.
	KindMeta
)

// Block is one renderable unit of a message. Exactly one payload field is
// set, matching Kind.
type Block struct {
	Kind Kind

	Text string
	// Rich marks text that should go through the markdown renderer.
	Rich bool

	SQL     string
	Dossier *osint.Dossier
	Table   *table.Table
	Count   int
	Meta    *Meta
}

// Meta carries the footer fields. Its parts render in a fixed order:
// elapsed seconds, database name, OSINT tag.
type Meta struct {
	ElapsedSecs float64
	Database    string
	Osint       bool
}

// Footer renders the metadata line with the given separator.
func (m *Meta) Footer(sep string) string {
	var parts []string
	if m.ElapsedSecs > 0 {
		parts = append(parts, strconv.FormatFloat(m.ElapsedSecs, 'f', -1, 64)+"s")
	}
	if m.Database != "" {
		parts = append(parts, m.Database)
	}
	if m.Osint {
		parts = append(parts, "OSINT")
	}
	return strings.Join(parts, sep)
}

// Compose decomposes a message into its ordered block list. The expanded
// flag is the caller's per-message table expansion state.
func Compose(msg *model.Message, expanded bool) []Block {
	out := []Block{{
		Kind: KindText,
		Text: msg.Content,
		Rich: msg.Role == model.RoleAssistant && !msg.IsError,
	}}

	if msg.SQL != "" {
		out = append(out, Block{Kind: KindSQL, SQL: msg.SQL})
	}

	if msg.Osint != nil {
		out = append(out, Block{Kind: KindDossier, Dossier: osint.Aggregate(msg.Osint)})
	}

	if msg.HasResults() {
		out = append(out, Block{Kind: KindTable, Table: table.New(msg.Results, expanded)})
	} else if msg.Results == nil && msg.ResultsCount != nil && *msg.ResultsCount > 0 {
		out = append(out, Block{Kind: KindCount, Count: *msg.ResultsCount})
	}

	if msg.HasMetadata() {
		out = append(out, Block{Kind: KindMeta, Meta: &Meta{
			ElapsedSecs: msg.ElapsedSecs,
			Database:    msg.Database,
			Osint:       msg.Osint != nil,
		}})
	}

	return out
}
