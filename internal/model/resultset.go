// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// =============================================================================
// RESULT SET
// =============================================================================

// ResultSet holds tabular query results as returned by the backend.
//
// Columns may be absent from the payload; in that case the column order is
// the key order of the first row, which Row preserves from the wire bytes.
// Count, when present, is the backend's authoritative row count and may
// differ from len(Rows) when the backend capped the rows it shipped.
type ResultSet struct {
	Columns []string `json:"columns,omitempty"`
	Rows    []Row    `json:"rows"`
	Count   *int     `json:"count,omitempty"`
}

// ColumnOrder returns the display column order: the explicit Columns list
// when the payload provided one, otherwise the first row's keys in the
// order they appeared on the wire.
func (rs *ResultSet) ColumnOrder() []string {
	if len(rs.Columns) > 0 {
		return rs.Columns
	}
	if len(rs.Rows) > 0 {
		return rs.Rows[0].Keys()
	}
	return nil
}

// =============================================================================
// ROW
// =============================================================================

// Row is a single result row. Unlike a plain map it remembers the order in
// which keys appeared in the JSON object, so column order survives payloads
// that omit an explicit column list.
type Row struct {
	keys   []string
	values map[string]any
}

// NewRow builds a row from ordered column/value pairs. Intended for tests
// and fixtures; decoded rows come from UnmarshalJSON.
func NewRow(pairs ...any) Row {
	r := Row{values: make(map[string]any, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		r.keys = append(r.keys, key)
		r.values[key] = pairs[i+1]
	}
	return r
}

// Keys returns the row's column names in wire order.
func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.keys)
}

// Value returns the raw value for a column and whether it was present.
func (r Row) Value(col string) (any, bool) {
	v, ok := r.values[col]
	return v, ok
}

// Get returns the display string for a column. Missing columns and JSON
// nulls render as the empty string. Numbers keep their wire form.
func (r Row) Get(col string) string {
	v, ok := r.values[col]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// UnmarshalJSON decodes a JSON object into the row, recording key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row: expected object, got %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("row: expected string key, got %v", keyTok)
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		if _, seen := r.values[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.values[key] = val
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the row as a JSON object in recorded key order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
