package ai

import (
	"encoding/json"
	"strings"
)

// StripFences removes a surrounding markdown code fence, with or without a
// json language tag, from model output.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// DecodeJSON parses model output into out after stripping code fences.
// Callers fall back to a minimal object built from their inputs when it
// fails; generation never brings an endpoint down.
func DecodeJSON(raw string, out any) error {
	return json.Unmarshal([]byte(StripFences(raw)), out)
}
