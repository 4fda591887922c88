package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apegpt/queryflow/pkg/config"
	"github.com/apegpt/queryflow/pkg/models"
)

// Registry holds the constructed provider adapters, keyed by model family.
type Registry struct {
	clients map[models.ModelType]Client
}

// NewRegistry builds adapters for every provider with credentials.
func NewRegistry(ctx context.Context, settings *config.Settings) (*Registry, error) {
	clients := make(map[models.ModelType]Client)

	if settings.OpenAIAPIKey != "" {
		clients[models.ModelOpenAI] = NewOpenAIClient(settings.OpenAIAPIKey, settings.OpenAIModel)
	}
	if settings.DeepSeekAPIKey != "" {
		clients[models.ModelDeepSeek] = NewDeepSeekClient(
			settings.DeepSeekAPIURL, settings.DeepSeekAPIKey, settings.DeepSeekModel)
	}
	if settings.AnthropicAPIKey != "" {
		clients[models.ModelAnthropic] = NewAnthropicClient(settings.AnthropicAPIKey, settings.AnthropicModel)
	}
	if settings.GoogleProjectID != "" {
		gemini, err := NewGeminiClient(ctx, settings.GoogleProjectID, settings.GeminiModel)
		if err != nil {
			return nil, err
		}
		clients[models.ModelGemini] = gemini
	}

	if len(clients) == 0 {
		return nil, fmt.Errorf("no LLM providers configured")
	}

	for model := range clients {
		slog.Info("LLM provider registered", "model", model)
	}
	return &Registry{clients: clients}, nil
}

// Get returns the adapter for the model family.
func (r *Registry) Get(model models.ModelType) (Client, error) {
	client, ok := r.clients[model]
	if !ok {
		return nil, fmt.Errorf("no LLM provider configured for model %q", model)
	}
	return client, nil
}
