// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"time"

	"github.com/jeranaias/datachat-tui/internal/model"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the payload for a chat exchange. ConversationID is nil
// for the first message of a session; the backend then opens a
// conversation and returns its id.
type ChatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
	AIMode         bool    `json:"ai_mode"`
}

// ChatResponse is the backend's answer to a chat exchange. Everything
// past ConversationID and Response is optional.
type ChatResponse struct {
	ConversationID string              `json:"conversation_id"`
	Response       string              `json:"response"`
	SQL            string              `json:"sql,omitempty"`
	Results        *model.ResultSet    `json:"results,omitempty"`
	ElapsedSecs    float64             `json:"time,omitempty"`
	Database       string              `json:"database,omitempty"`
	Osint          *model.OsintPayload `json:"osint,omitempty"`
}

// AssistantMessage builds the assistant message for this response,
// carrying over whatever attachments the backend produced.
func (r *ChatResponse) AssistantMessage() *model.Message {
	msg := model.NewAssistantMessage(r.Response)
	msg.SQL = r.SQL
	msg.Results = r.Results
	msg.ElapsedSecs = r.ElapsedSecs
	msg.Database = r.Database
	msg.Osint = r.Osint
	return msg
}

// conversationDTO is a conversation listing row.
type conversationDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// historyMessageDTO is a stored message row. Replayed history carries a
// result count rather than the full result set.
type historyMessageDTO struct {
	Role         string `json:"role"`
	Content      string `json:"content"`
	SQLQuery     string `json:"sql_query"`
	ResultsCount *int   `json:"results_count"`
}

// DatabaseInfo describes one imported dataset.
type DatabaseInfo struct {
	Name     string   `json:"name"`
	RowCount int      `json:"row_count"`
	Columns  []string `json:"columns"`
	Status   string   `json:"status,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// ScanEntry describes one importable file found in the backend's data
// directory.
type ScanEntry struct {
	Name     string  `json:"name"`
	Filename string  `json:"filename"`
	Path     string  `json:"path"`
	SizeMB   float64 `json:"size_mb"`
	Type     string  `json:"type"`
	Imported bool    `json:"imported"`
	Status   string  `json:"status"`
}

// ImportRequest asks the backend to import a scanned file.
type ImportRequest struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// ImportResult is the outcome of an import.
type ImportResult struct {
	Success  bool   `json:"success"`
	RowCount int    `json:"row_count"`
	Detail   string `json:"detail,omitempty"`
}

// ServerStats is the backend's aggregate counters.
type ServerStats struct {
	TotalDatabases     int `json:"total_databases"`
	TotalRecords       int `json:"total_records"`
	TotalQueries       int `json:"total_queries"`
	TotalConversations int `json:"total_conversations"`
}

// Health is the backend liveness report.
type Health struct {
	Status    string `json:"status"`
	Databases int    `json:"databases"`
}

// =============================================================================
// ENDPOINTS
// =============================================================================

// Chat sends one exchange. Single attempt: the session layer turns a
// failure into its synthetic error message, never a retry.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.postJSON(ctx, "/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListConversations returns the known conversations, newest first.
func (c *Client) ListConversations(ctx context.Context) ([]*model.Conversation, error) {
	var dtos []conversationDTO
	if err := c.getJSON(ctx, "/conversations", &dtos); err != nil {
		return nil, err
	}

	convs := make([]*model.Conversation, 0, len(dtos))
	for _, dto := range dtos {
		convs = append(convs, &model.Conversation{
			ID:        dto.ID,
			Title:     dto.Title,
			CreatedAt: parseTimestamp(dto.CreatedAt),
		})
	}
	return convs, nil
}

// ConversationMessages returns a conversation's replayed history. Only
// the role, content, generated SQL, and result count survive the round
// trip; full result sets are not replayed.
func (c *Client) ConversationMessages(ctx context.Context, conversationID string) ([]*model.Message, error) {
	var dtos []historyMessageDTO
	if err := c.getJSON(ctx, "/conversations/"+conversationID+"/messages", &dtos); err != nil {
		return nil, err
	}

	msgs := make([]*model.Message, 0, len(dtos))
	for _, dto := range dtos {
		var msg *model.Message
		if dto.Role == string(model.RoleUser) {
			msg = model.NewUserMessage(dto.Content)
		} else {
			msg = model.NewAssistantMessage(dto.Content)
			msg.SQL = dto.SQLQuery
			msg.ResultsCount = dto.ResultsCount
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// ListDatabases returns the imported datasets.
func (c *Client) ListDatabases(ctx context.Context) ([]DatabaseInfo, error) {
	var dbs []DatabaseInfo
	if err := c.getJSON(ctx, "/databases", &dbs); err != nil {
		return nil, err
	}
	return dbs, nil
}

// ScanFiles lists the importable files in the backend's data directory.
func (c *Client) ScanFiles(ctx context.Context) ([]ScanEntry, error) {
	var entries []ScanEntry
	if err := c.getJSON(ctx, "/databases/scan", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ImportDatabase imports a scanned file. Large files take a while; the
// caller should pass a generous context.
func (c *Client) ImportDatabase(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	var result ImportResult
	if err := c.postJSON(ctx, "/databases/import", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats returns the backend's aggregate counters.
func (c *Client) Stats(ctx context.Context) (*ServerStats, error) {
	var stats ServerStats
	if err := c.getJSON(ctx, "/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CheckHealth probes backend liveness.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.getJSON(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// parseTimestamp handles the backend's timestamp formats. The backend
// emits ISO 8601 without a zone; zoned RFC 3339 is accepted too.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
