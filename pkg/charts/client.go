// Package charts talks to the chart rendering service and stores the
// rendered artifacts for serving.
package charts

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// renderTimeout caps one rendering round trip; the service executes the
// plotting code, which can be slow.
const renderTimeout = 60 * time.Second

// Client renders chart code through the external chart service and persists
// the result locally.
type Client struct {
	serviceURL string
	store      *Store
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Client. serviceURL may be empty; rendering then
// fails fast and flows skip the chart.
func NewClient(serviceURL string, store *Store) *Client {
	return &Client{
		serviceURL: serviceURL,
		store:      store,
		httpClient: &http.Client{Timeout: renderTimeout},
		logger:     slog.With("component", "charts"),
	}
}

// RenderCode sends plotting code to the chart service and returns the path
// the rendered image is served under.
func (c *Client) RenderCode(ctx context.Context, code string) (string, error) {
	if c.serviceURL == "" {
		return "", fmt.Errorf("chart service not configured")
	}

	body, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return "", err
	}

	var image []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL+"/render", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("chart service returned %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("chart service rejected code with %d", resp.StatusCode))
		}
		image, err = io.ReadAll(resp.Body)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("chart rendering failed: %w", err)
	}

	name := contentName(image, "png")
	if err := c.store.Save(name, image); err != nil {
		return "", err
	}
	c.logger.Info("Chart rendered", "file", name, "bytes", len(image))
	return "/chart/" + name, nil
}

// RenderHTML stores a self-contained HTML chart without calling the service.
func (c *Client) RenderHTML(ctx context.Context, html string) (string, error) {
	name := contentName([]byte(html), "html")
	if err := c.store.Save(name, []byte(html)); err != nil {
		return "", err
	}
	return "/chart/" + name, nil
}

// contentName derives a stable file name from the content hash, so rendering
// the same chart twice reuses one file.
func contentName(data []byte, ext string) string {
	sum := sha256.Sum256(data)
	return "chart_" + hex.EncodeToString(sum[:8]) + "." + ext
}
