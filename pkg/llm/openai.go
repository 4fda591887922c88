package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient adapts the OpenAI chat completions API. With a custom base
// URL it also serves OpenAI-compatible providers (DeepSeek).
type OpenAIClient struct {
	client   openai.Client
	provider string
	model    string
}

// NewOpenAIClient creates an adapter for api.openai.com.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		provider: "openai",
		model:    model,
	}
}

// NewDeepSeekClient creates an adapter for the DeepSeek OpenAI-compatible
// endpoint.
func NewDeepSeekClient(baseURL, apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apiKey),
		),
		provider: "deepseek",
		model:    model,
	}
}

// temperatureFor returns the sampling temperature: gpt-5 models only accept
// the default of 1, everything else runs deterministic.
func temperatureFor(model string) float64 {
	if strings.HasPrefix(model, "gpt-5") {
		return 1
	}
	return 0
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(temperatureFor(c.model)),
	})
	if err != nil {
		return "", &Error{Provider: c.provider, Message: "completion failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Provider: c.provider, Message: "empty reply"}
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteStructured implements Client using JSON mode; the schema itself is
// enforced locally after parsing.
func (c *OpenAIClient) CompleteStructured(ctx context.Context, messages []Message, schema map[string]any, modelOverride string) (json.RawMessage, error) {
	model := c.model
	if modelOverride != "" {
		model = modelOverride
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(temperatureFor(model)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, &Error{Provider: c.provider, Message: "structured completion failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Provider: c.provider, Message: "empty reply"}
	}
	return parseStructured(c.provider, resp.Choices[0].Message.Content, schema)
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
