package model

import (
	"database/sql"
	"encoding/json"
)

// ParseStringList parses a JSON array column into a string slice. Corrupt
// values come back as an empty list rather than an error.
func ParseStringList(raw string) []string {
	var items []string
	_ = json.Unmarshal([]byte(raw), &items)
	if items == nil {
		items = []string{}
	}
	return items
}

// NullStringValue returns the string value or empty string.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
