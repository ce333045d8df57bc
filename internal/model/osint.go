// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// =============================================================================
// OSINT PAYLOAD
// =============================================================================

// OsintPayload is the raw OSINT lookup result attached to an assistant
// message when the query ran in AI mode. Every field is optional; the
// backend populates whatever its collectors produced.
type OsintPayload struct {
	// Flat identity fields
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	City       string  `json:"city,omitempty"`
	Address    string  `json:"address,omitempty"`
	CodePostal string  `json:"code_postal,omitempty"`
	Username   string  `json:"username,omitempty"`
	ScanTime   float64 `json:"scan_time,omitempty"`

	// Structured sections
	EmailInfo      *EmailInfo       `json:"email_info,omitempty"`
	PhoneInfo      *PhoneInfo       `json:"phone_info,omitempty"`
	SocialProfiles []SocialProfile  `json:"social_profiles,omitempty"`
	GoogleResults  GoogleResults    `json:"google_results,omitempty"`
	Breaches       []Breach         `json:"breaches,omitempty"`
	PagesBlanches  []DirectoryEntry `json:"pages_blanches,omitempty"`
	Stats          *OsintStats      `json:"stats,omitempty"`
}

// EmailInfo describes what the backend derived from an email address.
type EmailInfo struct {
	Provider   string `json:"provider,omitempty"`
	Username   string `json:"username,omitempty"`
	IsPersonal bool   `json:"is_personal,omitempty"`
}

// PhoneInfo describes what the backend derived from a phone number.
type PhoneInfo struct {
	Type     string `json:"type,omitempty"`
	Operator string `json:"operator,omitempty"`
	Region   string `json:"region,omitempty"`
}

// SocialProfile is one checked social platform. Exists is deliberately a
// pointer: nil means the platform was never checked, which is distinct
// from a check that came back negative.
type SocialProfile struct {
	Platform string `json:"platform"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
	Exists   *bool  `json:"exists,omitempty"`
}

// GoogleHit is a single search result within a category.
type GoogleHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Breach is one data-breach record the subject appeared in.
type Breach struct {
	Name      string `json:"name"`
	Date      string `json:"date,omitempty"`
	DataTypes string `json:"data_types,omitempty"`
	Domain    string `json:"domain,omitempty"`
}

// DirectoryEntry is one pages-blanches (French white pages) listing.
type DirectoryEntry struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// OsintStats is the backend's own summary of the scan. It is displayed
// verbatim and never recomputed from the sections it summarizes.
type OsintStats struct {
	GoogleHits    int `json:"google_hits"`
	SocialFound   int `json:"social_found"`
	SocialChecked int `json:"social_checked"`
	Breaches      int `json:"breaches"`
}

// =============================================================================
// GOOGLE RESULTS (ORDERED CATEGORIES)
// =============================================================================

// GoogleResults maps a search category to its hits. Like Row, it remembers
// the order in which categories appeared in the JSON object so flattened
// listings are stable across renders.
type GoogleResults struct {
	categories []string
	hits       map[string][]GoogleHit
}

// NewGoogleResults builds a GoogleResults from ordered category/hit pairs.
// Intended for tests and fixtures.
func NewGoogleResults(categories []string, hits map[string][]GoogleHit) GoogleResults {
	return GoogleResults{categories: categories, hits: hits}
}

// Categories returns the category names in wire order.
func (g GoogleResults) Categories() []string {
	out := make([]string, len(g.categories))
	copy(out, g.categories)
	return out
}

// Hits returns the hits recorded for a category.
func (g GoogleResults) Hits(category string) []GoogleHit {
	return g.hits[category]
}

// IsEmpty reports whether no category holds any hits.
func (g GoogleResults) IsEmpty() bool {
	for _, cat := range g.categories {
		if len(g.hits[cat]) > 0 {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes the category map, recording category order.
func (g *GoogleResults) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("google_results: expected object, got %v", tok)
	}

	g.categories = nil
	g.hits = make(map[string][]GoogleHit)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("google_results: expected string key, got %v", keyTok)
		}
		var hits []GoogleHit
		if err := dec.Decode(&hits); err != nil {
			return err
		}
		if _, seen := g.hits[category]; !seen {
			g.categories = append(g.categories, category)
		}
		g.hits[category] = hits
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the category map in recorded order.
func (g GoogleResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range g.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(cat)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(g.hits[cat])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
