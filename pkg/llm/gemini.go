package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient adapts the Gemini API on Vertex AI. Structured replies use
// response_schema, with JSON-schema nullable unions normalized to the
// nullable flag Gemini expects.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates the Gemini adapter for the given project.
func NewGeminiClient(ctx context.Context, projectID, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: "us-central1",
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete implements Client.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message) (string, error) {
	system, contents := toGeminiContents(messages)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", &Error{Provider: "gemini", Message: "completion failed", Err: err}
	}
	text := resp.Text()
	if text == "" {
		return "", &Error{Provider: "gemini", Message: "empty reply"}
	}
	return text, nil
}

// CompleteStructured implements Client.
func (c *GeminiClient) CompleteStructured(ctx context.Context, messages []Message, schema map[string]any, modelOverride string) (json.RawMessage, error) {
	model := c.model
	if modelOverride != "" {
		model = modelOverride
	}

	system, contents := toGeminiContents(messages)

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	if schema != nil {
		config.ResponseSchema = toGeminiSchema(schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, &Error{Provider: "gemini", Message: "structured completion failed", Err: err}
	}
	return parseStructured("gemini", resp.Text(), schema)
}

// toGeminiContents extracts system turns into a system instruction and maps
// the rest to API contents.
func toGeminiContents(messages []Message) (string, []*genai.Content) {
	var system string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		case RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}
	return system, contents
}

// toGeminiSchema converts a JSON schema map to the Gemini schema type.
// Union types of the form ["string", "null"] become the base type with the
// nullable flag set.
func toGeminiSchema(schema map[string]any) *genai.Schema {
	out := &genai.Schema{}

	switch t := schema["type"].(type) {
	case string:
		out.Type = geminiType(t)
	case []any:
		for _, entry := range t {
			name, ok := entry.(string)
			if !ok {
				continue
			}
			if name == "null" {
				out.Nullable = genai.Ptr(true)
			} else {
				out.Type = geminiType(name)
			}
		}
	}

	if desc, ok := schema["description"].(string); ok {
		out.Description = desc
	}
	if enum, ok := schema["enum"].([]any); ok {
		for _, v := range enum {
			if s, ok := v.(string); ok {
				out.Enum = append(out.Enum, s)
			}
		}
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if subMap, ok := sub.(map[string]any); ok {
				out.Properties[name] = toGeminiSchema(subMap)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		out.Items = toGeminiSchema(items)
	}
	if required, ok := schema["required"].([]any); ok {
		for _, v := range required {
			if s, ok := v.(string); ok {
				out.Required = append(out.Required, s)
			}
		}
	}
	return out
}

func geminiType(name string) genai.Type {
	switch name {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	}
	return genai.TypeUnspecified
}
