package mcp

import "context"

// DBMetaProvider serves warehouse schema metadata and query analysis from the
// db-meta MCP server.
type DBMetaProvider struct {
	client *Client
}

// NewDBMetaProvider creates the db-meta provider for the given SSE endpoint.
func NewDBMetaProvider(endpoint string) *DBMetaProvider {
	return &DBMetaProvider{client: NewClient("db-meta", endpoint)}
}

// Name implements Provider.
func (p *DBMetaProvider) Name() string {
	return "db-meta"
}

// VarsForSlot implements Provider via the prompt_items tool.
func (p *DBMetaProvider) VarsForSlot(ctx context.Context, slot string, reqCtx map[string]any) (map[string]any, error) {
	args := map[string]any{"slot": slot}
	for k, v := range reqCtx {
		args[k] = v
	}
	return p.client.CallTool(ctx, "prompt_items", args)
}

// AnalyzeQuery implements QueryAnalyzer via the preflight_query tool.
func (p *DBMetaProvider) AnalyzeQuery(ctx context.Context, reqCtx map[string]any, sql string) (map[string]any, error) {
	args := map[string]any{"sql": sql}
	for k, v := range reqCtx {
		args[k] = v
	}
	return p.client.CallTool(ctx, "preflight_query", args)
}

// Close tears down the underlying session.
func (p *DBMetaProvider) Close() error {
	return p.client.Close()
}
