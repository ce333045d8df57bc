// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTitleFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"short query kept whole", "show all clients", "show all clients"},
		{"exactly fifty chars kept whole", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"long query cut at fifty", strings.Repeat("a", 80), strings.Repeat("a", 50)},
		{"no ellipsis appended", strings.Repeat("b", 51), strings.Repeat("b", 50)},
		{"rune safe", strings.Repeat("é", 60), strings.Repeat("é", 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TitleFromQuery(tc.query)
			if got != tc.want {
				t.Errorf("TitleFromQuery(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestNewConversation(t *testing.T) {
	conv := NewConversation("c1", strings.Repeat("x", 60))
	if conv.ID != "c1" {
		t.Errorf("ID = %q, want %q", conv.ID, "c1")
	}
	if len([]rune(conv.Title)) != 50 {
		t.Errorf("title length = %d, want 50", len([]rune(conv.Title)))
	}
	if conv.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestMessagePreview(t *testing.T) {
	msg := NewUserMessage("line one\nline two that keeps going for quite a while here")
	got := msg.Preview(20)
	if strings.Contains(got, "\n") {
		t.Errorf("preview contains newline: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("preview missing ellipsis: %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	msg := NewErrorMessage("connection error")
	if msg.Role != RoleAssistant {
		t.Errorf("role = %q, want assistant", msg.Role)
	}
	if !msg.IsError {
		t.Error("IsError = false")
	}
}

func TestRowPreservesKeyOrder(t *testing.T) {
	payload := `{"zulu": 1, "alpha": "x", "mike": null, "bravo": 2.5}`
	var row Row
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"zulu", "alpha", "mike", "bravo"}
	got := row.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRowGet(t *testing.T) {
	payload := `{"name": "Durand", "age": 42, "score": 3.14, "active": true, "note": null}`
	var row Row
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	tests := []struct {
		col  string
		want string
	}{
		{"name", "Durand"},
		{"age", "42"},
		{"score", "3.14"},
		{"active", "true"},
		{"note", ""},
		{"missing", ""},
	}

	for _, tc := range tests {
		t.Run(tc.col, func(t *testing.T) {
			if got := row.Get(tc.col); got != tc.want {
				t.Errorf("Get(%q) = %q, want %q", tc.col, got, tc.want)
			}
		})
	}
}

func TestResultSetColumnOrder(t *testing.T) {
	t.Run("explicit columns win", func(t *testing.T) {
		payload := `{"columns": ["b", "a"], "rows": [{"a": 1, "b": 2}]}`
		var rs ResultSet
		if err := json.Unmarshal([]byte(payload), &rs); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		cols := rs.ColumnOrder()
		if len(cols) != 2 || cols[0] != "b" || cols[1] != "a" {
			t.Errorf("columns = %v, want [b a]", cols)
		}
	})

	t.Run("falls back to first row key order", func(t *testing.T) {
		payload := `{"rows": [{"ville": "Lyon", "nom": "Martin"}, {"nom": "?", "ville": "?"}]}`
		var rs ResultSet
		if err := json.Unmarshal([]byte(payload), &rs); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		cols := rs.ColumnOrder()
		if len(cols) != 2 || cols[0] != "ville" || cols[1] != "nom" {
			t.Errorf("columns = %v, want [ville nom]", cols)
		}
	})

	t.Run("empty set has no columns", func(t *testing.T) {
		var rs ResultSet
		if err := json.Unmarshal([]byte(`{"rows": []}`), &rs); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if cols := rs.ColumnOrder(); cols != nil {
			t.Errorf("columns = %v, want nil", cols)
		}
	})
}

func TestResultSetCount(t *testing.T) {
	payload := `{"rows": [{"a": 1}], "count": 250}`
	var rs ResultSet
	if err := json.Unmarshal([]byte(payload), &rs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rs.Count == nil || *rs.Count != 250 {
		t.Errorf("count = %v, want 250", rs.Count)
	}
}

func TestSocialProfileExistsTriState(t *testing.T) {
	payload := `[
		{"platform": "github", "exists": true},
		{"platform": "twitter", "exists": false},
		{"platform": "linkedin"}
	]`
	var profiles []SocialProfile
	if err := json.Unmarshal([]byte(payload), &profiles); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if profiles[0].Exists == nil || !*profiles[0].Exists {
		t.Error("github should decode as checked and found")
	}
	if profiles[1].Exists == nil || *profiles[1].Exists {
		t.Error("twitter should decode as checked and absent")
	}
	if profiles[2].Exists != nil {
		t.Error("linkedin should decode as never checked")
	}
}

func TestGoogleResultsPreservesCategoryOrder(t *testing.T) {
	payload := `{
		"general": [{"title": "g1", "url": "u1"}],
		"social": [{"title": "s1", "url": "u2"}, {"title": "s2", "url": "u3"}],
		"documents": []
	}`
	var g GoogleResults
	if err := json.Unmarshal([]byte(payload), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"general", "social", "documents"}
	got := g.Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(g.Hits("social")) != 2 {
		t.Errorf("social hits = %d, want 2", len(g.Hits("social")))
	}
	if g.IsEmpty() {
		t.Error("set with hits reported empty")
	}
}

func TestOsintPayloadDecode(t *testing.T) {
	payload := `{
		"name": "Jean Martin",
		"email": "jean@gmail.com",
		"city": "Paris",
		"scan_time": 4.2,
		"email_info": {"provider": "Gmail", "username": "jean", "is_personal": true},
		"stats": {"google_hits": 7, "social_found": 2, "social_checked": 9, "breaches": 1}
	}`
	var p OsintPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.EmailInfo == nil || p.EmailInfo.Provider != "Gmail" {
		t.Errorf("email_info = %+v", p.EmailInfo)
	}
	if p.Stats == nil || p.Stats.SocialChecked != 9 {
		t.Errorf("stats = %+v", p.Stats)
	}
	if p.ScanTime != 4.2 {
		t.Errorf("scan_time = %v, want 4.2", p.ScanTime)
	}
}
