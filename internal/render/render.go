// Package render serializes surface maps into their two artifact forms:
// a human-readable indented text outline and a structured JSON document.
// Both renderers consume the identical forest and summary and are
// content-equivalent; only the syntax differs.
package render

import (
	"fmt"
	"strings"
)

// Format represents the artifact output format.
type Format string

const (
	// FormatText is the indented text outline (default).
	FormatText Format = "text"

	// FormatJSON is the structured JSON artifact.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string into a Format value.
// Accepts "text" and "json", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected text or json)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Extension returns the artifact file extension for the format.
func (f Format) Extension() string {
	if f == FormatJSON {
		return "json"
	}
	return "txt"
}
