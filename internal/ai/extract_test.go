package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONFenced(t *testing.T) {
	raw := "```json\n{\"title\": \"Two Sum\", \"difficulty\": \"easy\"}\n```"

	var out struct {
		Title      string `json:"title"`
		Difficulty string `json:"difficulty"`
	}
	require.NoError(t, DecodeJSON(raw, &out))
	assert.Equal(t, "Two Sum", out.Title)
	assert.Equal(t, "easy", out.Difficulty)
}

func TestDecodeJSONBareFence(t *testing.T) {
	raw := "```\n{\"title\": \"Two Sum\"}\n```"

	var out map[string]string
	require.NoError(t, DecodeJSON(raw, &out))
	assert.Equal(t, "Two Sum", out["title"])
}

func TestDecodeJSONPlain(t *testing.T) {
	var out map[string]string
	require.NoError(t, DecodeJSON(`{"a": "b"}`, &out))
	assert.Equal(t, "b", out["a"])
}

func TestDecodeJSONGarbage(t *testing.T) {
	var out map[string]any
	assert.Error(t, DecodeJSON("Sure! Here is your job posting:", &out))
}

func TestFill(t *testing.T) {
	got := Fill("Hello {name}, welcome to {place}. Bye {name}.", map[string]string{
		"name":  "Ada",
		"place": "Go",
	})
	assert.Equal(t, "Hello Ada, welcome to Go. Bye Ada.", got)

	// Unknown placeholders stay in place.
	assert.Equal(t, "Hi {who}", Fill("Hi {who}", map[string]string{"name": "Ada"}))
}

func TestDefaultToolTemplates(t *testing.T) {
	for _, tool := range []string{"resume_review", "cover_letter", "ats_hack", "cold_email"} {
		assert.Contains(t, DefaultToolTemplates, tool)
		assert.NotEmpty(t, DefaultToolTemplates[tool])
	}
}
