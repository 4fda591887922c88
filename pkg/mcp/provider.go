// Package mcp provides the MCP provider contract and the SSE clients for the
// schema metadata (db-meta) and domain reference (db-ref) servers.
package mcp

import (
	"context"
	"errors"
	"fmt"
)

// Provider is an out-of-band source of prompt variables consulted by the
// assembler during slot rendering.
type Provider interface {
	// Name identifies the provider in manifests and logs.
	Name() string
	// VarsForSlot returns the provider's variables for the named slot.
	VarsForSlot(ctx context.Context, slot string, reqCtx map[string]any) (map[string]any, error)
}

// QueryAnalyzer is implemented by providers that can pre-analyze SQL before
// warehouse execution.
type QueryAnalyzer interface {
	// AnalyzeQuery returns advisory findings for the SQL statement.
	AnalyzeQuery(ctx context.Context, reqCtx map[string]any, sql string) (map[string]any, error)
}

// ErrToolFailed indicates the MCP server reported a tool-level error.
var ErrToolFailed = errors.New("mcp tool call failed")

// ProviderError wraps a provider-level failure with the provider name.
type ProviderError struct {
	Provider string
	Tool     string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: tool %s: %v", e.Provider, e.Tool, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
