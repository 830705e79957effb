package handlers

import (
	"encoding/json"
	"strings"
)

// Admin forms submit ingredients/instructions as one textarea string and
// tags as a comma-separated string, while API clients send arrays. These
// union types normalize both shapes once, at the JSON boundary.

// FlexLines accepts a JSON string (split on newlines, blank lines
// dropped, entries trimmed) or a JSON array of strings (kept verbatim).
type FlexLines []string

func (f *FlexLines) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = splitAndTrim(s, "\n")
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = list
	return nil
}

// FlexCSV accepts a JSON string (split on commas, entries trimmed,
// empties dropped) or a JSON array of strings.
type FlexCSV []string

func (f *FlexCSV) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = splitAndTrim(s, ",")
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = list
	return nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
