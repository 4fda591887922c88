package mcp

import (
	"errors"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
)

func TestDecodeResultPrefersStructuredContent(t *testing.T) {
	res := &mcpsdk.CallToolResult{
		StructuredContent: map[string]any{"tables": []any{"trades"}},
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: "ignored"}},
	}
	assert.Equal(t, map[string]any{"tables": []any{"trades"}}, decodeResult(res))
}

func TestDecodeResultParsesTextJSON(t *testing.T) {
	res := &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: `{"schema": "v2"}`}},
	}
	assert.Equal(t, map[string]any{"schema": "v2"}, decodeResult(res))
}

func TestDecodeResultFallsBackToRawText(t *testing.T) {
	res := &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "not json"}},
	}
	assert.Equal(t, map[string]any{"text": "not json"}, decodeResult(res))
}

func TestExtractTextConcatenates(t *testing.T) {
	res := &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: "one "},
			&mcpsdk.TextContent{Text: "two"},
		},
	}
	assert.Equal(t, "one two", extractText(res))
}

func TestProviderErrorUnwrapsToolFailure(t *testing.T) {
	err := &ProviderError{Provider: "db-meta", Tool: "prompt_items", Err: ErrToolFailed}
	assert.True(t, errors.Is(err, ErrToolFailed))
	assert.Contains(t, err.Error(), "db-meta")
	assert.Contains(t, err.Error(), "prompt_items")
}
