// Package warehouse provides the ClickHouse client: preflight cost
// estimation, windowed pagination, and CSV export.
package warehouse

import (
	"context"
	"crypto/tls"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// csvRowLimit is the cutoff above which inline CSV export is skipped; large
// results are paged through the data endpoint instead.
const csvRowLimit = 1000

// Config holds warehouse connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Secure   bool
	Params   map[string]string

	// Advisory preflight thresholds; estimates beyond these mark the
	// query as too broad.
	MaxRows  int64
	MaxMarks int64
	MaxParts int64
}

// PreflightEstimate is the cost estimate for a statement.
type PreflightEstimate struct {
	Rows     int64 `json:"rows"`
	Parts    int64 `json:"parts"`
	Marks    int64 `json:"marks"`
	TooBroad bool  `json:"too_broad"`
}

// Client executes statements against the warehouse. Connections are recycled
// every few minutes and verified before each operation, matching the original
// deployment's pool behavior behind load balancers that drop idle
// connections.
type Client struct {
	db     *sql.DB
	cfg    Config
	logger *slog.Logger
}

// NewClient opens the warehouse connection pool.
func NewClient(cfg Config) (*Client, error) {
	opts := &clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{},
	}
	if cfg.Secure {
		opts.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	for k, v := range cfg.Params {
		opts.Settings[k] = v
	}

	db := clickhouse.OpenDB(opts)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(6 * time.Minute)

	return &Client{
		db:     db,
		cfg:    cfg,
		logger: slog.With("component", "warehouse"),
	}, nil
}

// Close closes the pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return &Error{Phase: "ping", Err: err}
	}
	return nil
}

// Preflight runs EXPLAIN ESTIMATE and returns the first row's cost figures.
// Estimates beyond the configured thresholds set TooBroad; callers decide
// whether to act on it.
func (c *Client) Preflight(ctx context.Context, query string) (*PreflightEstimate, error) {
	rows, err := c.db.QueryContext(ctx, "EXPLAIN ESTIMATE "+query)
	if err != nil {
		return nil, &Error{Phase: "preflight", Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &Error{Phase: "preflight", Err: err}
	}

	est := &PreflightEstimate{}
	if rows.Next() {
		values := scanTargets(len(cols))
		if err := rows.Scan(values...); err != nil {
			return nil, &Error{Phase: "preflight", Err: err}
		}
		for i, col := range cols {
			v := toInt64(*(values[i].(*any)))
			switch col {
			case "rows":
				est.Rows = v
			case "parts":
				est.Parts = v
			case "marks":
				est.Marks = v
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Phase: "preflight", Err: err}
	}

	est.TooBroad = (c.cfg.MaxRows > 0 && est.Rows > c.cfg.MaxRows) ||
		(c.cfg.MaxMarks > 0 && est.Marks > c.cfg.MaxMarks) ||
		(c.cfg.MaxParts > 0 && est.Parts > c.cfg.MaxParts)
	if est.TooBroad {
		c.logger.Warn("Preflight estimate over thresholds",
			"rows", est.Rows, "marks", est.Marks, "parts", est.Parts)
	}
	return est, nil
}

// Count returns the row count of the statement's result.
func (c *Client) Count(ctx context.Context, query string) (int64, error) {
	var count int64
	wrapped := "SELECT count() FROM (" + query + ") AS t"
	if err := c.db.QueryRowContext(ctx, wrapped).Scan(&count); err != nil {
		return 0, &Error{Phase: "count", Err: err}
	}
	return count, nil
}

// Execute runs the statement with window-counted pagination: one round trip
// returns both the page and the total row count. The synthetic total_count
// column is stripped from the returned rows.
func (c *Client) Execute(ctx context.Context, query string, limit, offset int) ([]map[string]any, int64, error) {
	wrapped := fmt.Sprintf(
		"SELECT t.*, COUNT(*) OVER () AS total_count FROM (%s) AS t LIMIT %d OFFSET %d",
		query, limit, offset,
	)

	rows, err := c.db.QueryContext(ctx, wrapped)
	if err != nil {
		return nil, 0, &Error{Phase: "execute", Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, 0, &Error{Phase: "execute", Err: err}
	}

	var out []map[string]any
	var total int64
	for rows.Next() {
		values := scanTargets(len(cols))
		if err := rows.Scan(values...); err != nil {
			return nil, 0, &Error{Phase: "execute", Err: err}
		}
		row := make(map[string]any, len(cols)-1)
		for i, col := range cols {
			v := *(values[i].(*any))
			if col == "total_count" {
				total = toInt64(v)
				continue
			}
			row[col] = v
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &Error{Phase: "execute", Err: err}
	}
	return out, total, nil
}

// ExecutePreview runs the statement capped at limit rows and returns column
// labels plus stringified rows for inline display.
func (c *Client) ExecutePreview(ctx context.Context, query string, limit int) ([]string, [][]string, error) {
	wrapped := fmt.Sprintf("SELECT * FROM (%s) AS t LIMIT %d", query, limit)

	rows, err := c.db.QueryContext(ctx, wrapped)
	if err != nil {
		return nil, nil, &Error{Phase: "execute", Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, &Error{Phase: "execute", Err: err}
	}

	var data [][]string
	for rows.Next() {
		values := scanTargets(len(cols))
		if err := rows.Scan(values...); err != nil {
			return nil, nil, &Error{Phase: "execute", Err: err}
		}
		record := make([]string, len(cols))
		for i := range cols {
			record[i] = stringify(*(values[i].(*any)))
		}
		data = append(data, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, &Error{Phase: "execute", Err: err}
	}
	return cols, data, nil
}

// ExecuteCSV runs the statement and renders the full result as CSV.
// Returns empty when the result has no rows or more than csvRowLimit rows;
// oversized results are served paginated instead.
func (c *Client) ExecuteCSV(ctx context.Context, query string) (string, error) {
	count, err := c.Count(ctx, query)
	if err != nil {
		return "", err
	}
	if count == 0 || count > csvRowLimit {
		return "", nil
	}

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return "", &Error{Phase: "execute", Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return "", &Error{Phase: "execute", Err: err}
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(cols); err != nil {
		return "", &Error{Phase: "execute", Err: err}
	}
	for rows.Next() {
		values := scanTargets(len(cols))
		if err := rows.Scan(values...); err != nil {
			return "", &Error{Phase: "execute", Err: err}
		}
		record := make([]string, len(cols))
		for i := range cols {
			record[i] = stringify(*(values[i].(*any)))
		}
		if err := w.Write(record); err != nil {
			return "", &Error{Phase: "execute", Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return "", &Error{Phase: "execute", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", &Error{Phase: "execute", Err: err}
	}
	return sb.String(), nil
}

// Exec runs a statement with no result set (intermediate tables in staged
// pipelines).
func (c *Client) Exec(ctx context.Context, query string) error {
	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return &Error{Phase: "execute", Err: err}
	}
	return nil
}

func scanTargets(n int) []any {
	values := make([]any, n)
	for i := range values {
		var v any
		values[i] = &v
	}
	return values
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return tv
	case []byte:
		return string(tv)
	case time.Time:
		return tv.Format(time.RFC3339)
	default:
		return fmt.Sprint(tv)
	}
}

func toInt64(v any) int64 {
	switch tv := v.(type) {
	case int64:
		return tv
	case uint64:
		return int64(tv)
	case int:
		return int64(tv)
	case uint32:
		return int64(tv)
	case int32:
		return int64(tv)
	case float64:
		return int64(tv)
	}
	return 0
}
