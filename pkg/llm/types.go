// Package llm defines the language model client contract and the provider
// adapters (OpenAI, DeepSeek, Anthropic, Gemini).
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// System creates a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User creates a user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant creates an assistant message.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Client is the capability contract every provider adapter satisfies.
type Client interface {
	// Complete returns a free-text completion.
	Complete(ctx context.Context, messages []Message) (string, error)

	// CompleteStructured returns a JSON object conforming to schema.
	// modelOverride selects a non-default model name; empty uses the
	// adapter's configured model. The reply is validated against schema
	// before being returned.
	CompleteStructured(ctx context.Context, messages []Message, schema map[string]any, modelOverride string) (json.RawMessage, error)
}

// Error wraps a provider failure: transport, refusal, or an unparseable or
// schema-invalid reply.
type Error struct {
	Provider string
	Message  string
	Raw      string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("llm %s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
