package llm

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 8192

// AnthropicClient adapts the Anthropic messages API. System turns are folded
// into the system parameter; replies are streamed and accumulated to avoid
// long-request timeouts.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropicClient creates the Anthropic adapter.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Complete implements Client.
func (c *AnthropicClient) Complete(ctx context.Context, messages []Message) (string, error) {
	return c.complete(ctx, messages, c.model)
}

// CompleteStructured implements Client. Anthropic has no JSON mode; the
// schema rides in a system turn and the reply is cleaned and validated
// locally.
func (c *AnthropicClient) CompleteStructured(ctx context.Context, messages []Message, schema map[string]any, modelOverride string) (json.RawMessage, error) {
	model := c.model
	if modelOverride != "" {
		model = modelOverride
	}

	withSchema := messages
	if schema != nil {
		schemaJSON, err := json.Marshal(schema)
		if err != nil {
			return nil, &Error{Provider: "anthropic", Message: "failed to encode schema", Err: err}
		}
		withSchema = append([]Message{System(
			"Reply with a single JSON object conforming to this JSON schema, with no surrounding prose:\n" + string(schemaJSON),
		)}, messages...)
	}

	raw, err := c.complete(ctx, withSchema, model)
	if err != nil {
		return nil, err
	}
	return parseStructured("anthropic", raw, schema)
}

func (c *AnthropicClient) complete(ctx context.Context, messages []Message, model string) (string, error) {
	system, turns := splitSystem(messages)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: anthropicMaxTokens,
		Messages:  turns,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	message := anthropic.Message{}
	for stream.Next() {
		if err := message.Accumulate(stream.Current()); err != nil {
			return "", &Error{Provider: "anthropic", Message: "failed to accumulate stream", Err: err}
		}
	}
	if err := stream.Err(); err != nil {
		return "", &Error{Provider: "anthropic", Message: "completion failed", Err: err}
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", &Error{Provider: "anthropic", Message: "empty reply"}
	}
	return text, nil
}

// splitSystem folds all system turns into one system string and converts the
// rest into API message params.
func splitSystem(messages []Message) (string, []anthropic.MessageParam) {
	var system string
	turns := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		case RoleAssistant:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return system, turns
}
