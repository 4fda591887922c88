package database

import (
	"context"
	"encoding/json"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/test/util"
)

// newTestClient wraps the shared test database in the package client type.
// Cleanup (schema drop and connection close) is handled by SetupTestDatabase.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))

	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	session, err := client.Session.Create().
		SetUser("u1").
		SetName("Trading").
		Save(ctx)
	require.NoError(t, err)

	req1, err := client.Request.Create().
		SetSessionID(session.ID).
		SetSequenceNumber(1).
		SetUser("u1").
		SetRequest("Top tokens by trading volume on production pools").
		Save(ctx)
	require.NoError(t, err)

	req2, err := client.Request.Create().
		SetSessionID(session.ID).
		SetSequenceNumber(2).
		SetUser("u1").
		SetRequest("Daily active wallets over the last month").
		Save(ctx)
	require.NoError(t, err)

	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT request_id FROM requests
			WHERE to_tsvector('english', request) @@ to_tsquery('english', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		return ids
	}

	results := search("tokens & volume")
	require.Len(t, results, 1)
	assert.Equal(t, req1.ID.String(), results[0])

	results = search("wallets")
	require.Len(t, results, 1)
	assert.Equal(t, req2.ID.String(), results[0])
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_HOST", "")
		t.Setenv("DATABASE_PORT", "")
		t.Setenv("DATABASE_PASSWORD", "secret")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "queryflow", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DATABASE_PORT", "not_a_number")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.example.com",
		Port:     5433,
		User:     "app",
		Password: "secret",
		Database: "queryflow",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 user=app password=secret dbname=queryflow sslmode=require",
		cfg.DSN())
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be fast")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000), "should be milliseconds, not nanoseconds")

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}
