package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONStripsFences(t *testing.T) {
	raw := "Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy."
	assert.Equal(t, `{"a": 1}`, extractJSON(raw))
}

func TestExtractJSONPlainObject(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractJSON(`  {"a": 1}  `))
}

func TestRepairMultilineStrings(t *testing.T) {
	raw := "{\"sql\": \"SELECT a\nFROM t\"}"
	repaired := repairMultilineStrings(raw)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &doc))
	assert.Equal(t, "SELECT a\nFROM t", doc["sql"])
}

func TestRepairLeavesValidJSONAlone(t *testing.T) {
	raw := `{"sql": "SELECT a\nFROM t", "n": 1}`
	assert.Equal(t, raw, repairMultilineStrings(raw))
}

func TestScrubControlChars(t *testing.T) {
	raw := "{\"a\": \"x\x00y\x07z\"}"
	scrubbed := scrubControlChars(raw)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(scrubbed), &doc))
	assert.Equal(t, "xyz", doc["a"])
}

func TestParseStructuredValidates(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"request_type"},
		"properties": map[string]any{
			"request_type": map[string]any{"type": "string"},
		},
	}

	out, err := parseStructured("test", `{"request_type": "general_chat"}`, schema)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "general_chat", doc["request_type"])

	_, err = parseStructured("test", `{"other": 1}`, schema)
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, "test", llmErr.Provider)
}

func TestParseStructuredUnparseable(t *testing.T) {
	_, err := parseStructured("test", "not json at all", nil)
	var llmErr *Error
	assert.ErrorAs(t, err, &llmErr)
}

func TestTemperatureFor(t *testing.T) {
	assert.Equal(t, float64(1), temperatureFor("gpt-5-mini"))
	assert.Equal(t, float64(0), temperatureFor("gpt-4o"))
	assert.Equal(t, float64(0), temperatureFor("deepseek-chat"))
}
