package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apegpt/queryflow/pkg/version"
)

const (
	// connectTimeout bounds the initialize handshake.
	connectTimeout = 30 * time.Second
	// operationTimeout bounds a single tool call.
	operationTimeout = 60 * time.Second
	// maxCallElapsed bounds the whole retry loop for one call.
	maxCallElapsed = 2 * time.Minute
)

// Client manages one MCP server session over SSE. Connection is lazy and
// recreated on transport failure; tool calls retry with exponential backoff.
// Thread-safe.
type Client struct {
	name     string
	endpoint string

	mu      sync.Mutex
	session *mcpsdk.ClientSession

	logger *slog.Logger
}

// NewClient creates a client for the named server. No connection is made
// until the first call.
func NewClient(name, endpoint string) *Client {
	return &Client{
		name:     name,
		endpoint: endpoint,
		logger:   slog.With("mcp_server", name),
	}
}

// Connect establishes the session if not already connected.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx)
}

func (c *Client) connectLocked(ctx context.Context) error {
	if c.session != nil {
		return nil
	}

	transport := &mcpsdk.SSEClientTransport{Endpoint: c.endpoint}

	initCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it implements io.Closer to avoid leaking
		// resources on partial failures.
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", c.name, err)
	}

	c.session = session
	c.logger.Info("MCP server connected", "endpoint", c.endpoint)
	return nil
}

// dropSession discards the current session so the next call reconnects.
func (c *Client) dropSession() {
	c.mu.Lock()
	if c.session != nil {
		_ = c.session.Close()
		c.session = nil
	}
	c.mu.Unlock()
}

// CallTool executes a tool call, reconnecting and retrying with exponential
// backoff on transport failures. A tool-level error (IsError result) is not
// retried.
func (c *Client) CallTool(ctx context.Context, toolName string, args map[string]any) (map[string]any, error) {
	var result map[string]any

	operation := func() error {
		res, err := c.callOnce(ctx, toolName, args)
		if err != nil {
			c.logger.Warn("MCP call failed, will retry",
				"tool", toolName, "error", err)
			c.dropSession()
			return err
		}
		if res.IsError {
			return backoff.Permanent(&ProviderError{
				Provider: c.name,
				Tool:     toolName,
				Err:      fmt.Errorf("%w: %s", ErrToolFailed, extractText(res)),
			})
		}
		result = decodeResult(res)
		return nil
	}

	policy := backoff.WithContext(
		backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(maxCallElapsed)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) callOnce(ctx context.Context, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	c.mu.Lock()
	if err := c.connectLocked(ctx); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	session := c.session
	c.mu.Unlock()

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	return session.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
}

// Close tears down the session.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// decodeResult converts a tool result into a variable map: structured content
// when present, otherwise the first text content parsed as JSON, otherwise
// the raw text under "text".
func decodeResult(res *mcpsdk.CallToolResult) map[string]any {
	if res.StructuredContent != nil {
		if m, ok := res.StructuredContent.(map[string]any); ok {
			return m
		}
	}
	text := extractText(res)
	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err == nil {
		return m
	}
	return map[string]any{"text": text}
}

// extractText concatenates all text content items.
func extractText(res *mcpsdk.CallToolResult) string {
	var out string
	for _, content := range res.Content {
		if tc, ok := content.(*mcpsdk.TextContent); ok {
			out += tc.Text
		}
	}
	return out
}
