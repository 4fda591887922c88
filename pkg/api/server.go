// Package api is the HTTP front end: session, request, query, data and chart
// routes behind two-issuer JWT auth.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/apegpt/queryflow/pkg/charts"
	"github.com/apegpt/queryflow/pkg/database"
	"github.com/apegpt/queryflow/pkg/queue"
	"github.com/apegpt/queryflow/pkg/services"
)

// Services bundles the persistence services the handlers call.
type Services struct {
	Sessions *services.SessionService
	Requests *services.RequestService
	Queries  *services.QueryService
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	svc        Services
	broker     *queue.Broker
	pool       *queue.WorkerPool
	charts     *charts.Client
	chartStore *charts.Store
	auth       *Authenticator
	db         *database.Client
	version    string
	logger     *slog.Logger
}

// SetDB attaches the application store so /health reports connection pool
// statistics.
func (s *Server) SetDB(db *database.Client) {
	s.db = db
}

// NewServer creates a new Server and registers its routes. auth may be nil in
// tests; routes then run unauthenticated.
func NewServer(svc Services, broker *queue.Broker, pool *queue.WorkerPool,
	chartsClient *charts.Client, chartStore *charts.Store, auth *Authenticator, version string) *Server {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:       e,
		svc:        svc,
		broker:     broker,
		pool:       pool,
		charts:     chartsClient,
		chartStore: chartStore,
		auth:       auth,
		version:    version,
		logger:     slog.With("component", "api"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(s.requestLogger)

	e.GET("/health", s.healthHandler)
	e.GET("/chart/:file", s.getChartHandler)
	e.GET("/chart/html/:file", s.getChartHandler)

	v1 := e.Group("")
	if s.auth != nil {
		v1.Use(s.auth.Middleware())
	}

	v1.POST("/session", s.createSessionHandler)
	v1.GET("/session", s.listSessionsHandler)
	v1.GET("/session/:id", s.getSessionHandler)
	v1.PATCH("/session/:id", s.patchSessionHandler)
	v1.POST("/session/:id/linked", s.addLinkedRequestHandler)
	v1.GET("/session/get_requests/:id", s.listRequestsHandler)

	v1.POST("/request/:session_id", s.addRequestHandler)
	v1.POST("/request/:session_id/for_query/:query_id", s.addRequestForQueryHandler)
	v1.POST("/request/:session_id/from_query/:query_id", s.addRequestFromQueryHandler)
	v1.GET("/request/:session_id/:seq", s.getRequestHandler)
	v1.PATCH("/request/:id", s.patchRequestHandler)
	v1.DELETE("/request/:id", s.deleteRequestHandler)

	v1.GET("/admin/sessions", s.adminSessionsHandler, requireScope("admin:sessions"))
	v1.GET("/admin/requests", s.adminRequestsHandler, requireScope("admin:requests"))

	v1.GET("/query", s.listQueriesHandler)
	v1.GET("/query/:id", s.getQueryHandler)
	v1.GET("/data/:query_id", s.getDataHandler)

	v1.POST("/chart", s.postChartHandler)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		s.logger.Info("Request handled",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds())
		return err
	}
}

// healthHandler reports liveness plus the worker pool's view of the queue.
func (s *Server) healthHandler(c echo.Context) error {
	body := map[string]any{
		"status":  "healthy",
		"version": s.version,
	}
	degraded := false
	if s.db != nil {
		dbHealth, err := database.Health(c.Request().Context(), s.db.DB())
		body["database"] = dbHealth
		if err != nil {
			degraded = true
		}
	}
	if s.pool != nil {
		health := s.pool.Health()
		body["queue"] = health
		if !health.IsHealthy {
			degraded = true
		}
	}
	if degraded {
		body["status"] = "degraded"
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	return c.JSON(http.StatusOK, body)
}

// Start begins serving on addr and blocks.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
