package mcp

import "context"

// DBRefProvider serves domain reference material (entity names, business
// glossary) from the db-ref MCP server.
type DBRefProvider struct {
	client *Client
}

// NewDBRefProvider creates the db-ref provider for the given SSE endpoint.
func NewDBRefProvider(endpoint string) *DBRefProvider {
	return &DBRefProvider{client: NewClient("db-ref", endpoint)}
}

// Name implements Provider.
func (p *DBRefProvider) Name() string {
	return "db-ref"
}

// VarsForSlot implements Provider via the prompt_items tool.
func (p *DBRefProvider) VarsForSlot(ctx context.Context, slot string, reqCtx map[string]any) (map[string]any, error) {
	args := map[string]any{"slot": slot}
	for k, v := range reqCtx {
		args[k] = v
	}
	return p.client.CallTool(ctx, "prompt_items", args)
}

// Close tears down the underlying session.
func (p *DBRefProvider) Close() error {
	return p.client.Close()
}
