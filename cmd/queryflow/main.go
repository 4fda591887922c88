// QueryFlow server — provides the HTTP API, manages queue workers, and runs
// the request-processing flows.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/apegpt/queryflow/pkg/api"
	"github.com/apegpt/queryflow/pkg/assembler"
	"github.com/apegpt/queryflow/pkg/charts"
	"github.com/apegpt/queryflow/pkg/cleanup"
	"github.com/apegpt/queryflow/pkg/config"
	"github.com/apegpt/queryflow/pkg/database"
	"github.com/apegpt/queryflow/pkg/flows"
	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/mcp"
	"github.com/apegpt/queryflow/pkg/packs"
	"github.com/apegpt/queryflow/pkg/queue"
	"github.com/apegpt/queryflow/pkg/services"
	"github.com/apegpt/queryflow/pkg/version"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// warehouseFromSettings builds the ClickHouse client from the WH_* settings.
func warehouseFromSettings(cfg *config.Settings) (*warehouse.Client, error) {
	return warehouse.NewClient(warehouse.Config{
		Host:     cfg.WHHost,
		Port:     cfg.WHPort,
		User:     cfg.WHUser,
		Password: cfg.WHPassword,
		Database: cfg.WHName,
		Secure:   cfg.WHSecure,
		Params:   cfg.WHParams,

		MaxRows:  cfg.PreflightMaxRows,
		MaxMarks: cfg.PreflightMaxMarks,
		MaxParts: cfg.PreflightMaxParts,
	})
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	ctx := context.Background()
	podID := resolvePodID()

	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	config.SetupLogging(cfg)

	appVersion := cfg.SystemVersion
	if appVersion == "" {
		appVersion = version.Full()
	}

	slog.Info("Starting QueryFlow",
		"version", appVersion,
		"http_port", cfg.HTTPPort,
		"pod_id", podID)

	// 2. Application store (PostgreSQL, runs migrations)
	dbClient, err := database.NewClient(ctx, database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		SSLMode:  cfg.DBSSLMode,

		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Warehouse (ClickHouse)
	warehouseClient, err := warehouseFromSettings(cfg)
	if err != nil {
		slog.Error("Failed to connect to warehouse", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := warehouseClient.Close(); err != nil {
			slog.Error("Error closing warehouse client", "error", err)
		}
	}()
	slog.Info("Connected to ClickHouse warehouse", "host", cfg.WHHost)

	// 5. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	requestService := services.NewRequestService(dbClient.Client)
	queryService := services.NewQueryService(dbClient.Client, warehouseClient)
	slog.Info("Services initialized")

	// 6. LLM provider registry
	registry, err := llm.NewRegistry(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize LLM providers", "error", err)
		os.Exit(1)
	}

	// 7. MCP providers (optional; prompts degrade without them)
	var providers []assembler.Provider
	var analyzer mcp.QueryAnalyzer
	if cfg.DBMetaURL != "" {
		dbMeta := mcp.NewDBMetaProvider(cfg.DBMetaURL)
		defer dbMeta.Close()
		providers = append(providers, dbMeta)
		analyzer = dbMeta
		slog.Info("MCP provider registered", "provider", dbMeta.Name(), "endpoint", cfg.DBMetaURL)
	}
	if cfg.DBRefURL != "" {
		dbRef := mcp.NewDBRefProvider(cfg.DBRefURL)
		defer dbRef.Close()
		providers = append(providers, dbRef)
		slog.Info("MCP provider registered", "provider", dbRef.Name(), "endpoint", cfg.DBRefURL)
	}

	// 8. Prompt packs and assembler
	tree, pack, err := packs.AssembleEffectiveTree(
		cfg.PacksResourcesDir, "fm_app", cfg.ClientID, cfg.Env, "", cfg.SystemVersion)
	if err != nil {
		slog.Error("Failed to assemble prompt pack tree", "error", err)
		os.Exit(1)
	}
	overlayStack := []string{cfg.ClientID, cfg.Env}
	caps := map[string]any{
		"client_id": cfg.ClientID,
		"env":       cfg.Env,
		"version":   appVersion,
	}
	prompts := assembler.New(tree, pack, overlayStack, providers, caps)
	slog.Info("Prompt pack assembled", "pack", pack.Manifest.PackName, "version", pack.Version)

	// 9. Chart store and renderer
	chartStore, err := charts.NewStore(cfg.ChartDir)
	if err != nil {
		slog.Error("Failed to initialize chart store", "dir", cfg.ChartDir, "error", err)
		os.Exit(1)
	}
	chartsClient := charts.NewClient(cfg.ChartServiceURL, chartStore)

	// 10. Flow runner and worker pool (workers start before HTTP)
	runner := flows.NewRunner(flows.Deps{
		Store: flows.Store{
			Sessions: sessionService,
			Requests: requestService,
			Queries:  queryService,
		},
		Models:    registry,
		Warehouse: warehouseClient,
		Prompts:   prompts,
		Charts:    chartsClient,
		Analyzer:  analyzer,
		Broker:    queue.NewBroker(dbClient.Client),
		MaxSteps:  cfg.MaxSteps,
		Version:   appVersion,
	})

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, runner)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)

	// 11. HTTP server
	authenticator, err := api.NewAuthenticator(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize authenticator", "error", err)
		os.Exit(1)
	}

	httpServer := api.NewServer(api.Services{
		Sessions: sessionService,
		Requests: requestService,
		Queries:  queryService,
	}, queue.NewBroker(dbClient.Client), workerPool, chartsClient, chartStore, authenticator, appVersion)
	httpServer.SetDB(dbClient)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("QueryFlow started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: drain workers first, then the HTTP server.
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete requests will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
