package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v4"

	"github.com/apegpt/queryflow/pkg/models"
)

// createSessionRequest is the POST /session body: session fields plus an
// optional parent for manual linking.
type createSessionRequest struct {
	models.CreateSessionRequest
	Parent *uuid.UUID `json:"parent,omitempty"`
}

// createSessionHandler handles POST /session.
func (s *Server) createSessionHandler(c echo.Context) error {
	var body createSessionRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	session, err := s.svc.Sessions.CreateSession(c.Request().Context(), currentUser(c), body.CreateSessionRequest, body.Parent)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// listSessionsHandler handles GET /session.
func (s *Server) listSessionsHandler(c echo.Context) error {
	filters := models.SessionFilters{
		User:   currentUser(c),
		Tags:   c.QueryParam("tags"),
		Limit:  queryInt(c, "limit", 20),
		Offset: queryInt(c, "offset", 0),
	}

	sessions, total, err := s.svc.Sessions.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    total,
	})
}

// getSessionHandler handles GET /session/:id.
func (s *Server) getSessionHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	session, err := s.svc.Sessions.GetSession(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// patchSessionHandler handles PATCH /session/:id.
func (s *Server) patchSessionHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	var patch models.PatchSessionRequest
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	session, err := s.svc.Sessions.PatchSession(c.Request().Context(), currentUser(c), id, patch)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// addLinkedRequestHandler handles POST /session/:id/linked: create a child
// session seeded from the parent's latest query and enqueue its first
// request.
func (s *Server) addLinkedRequestHandler(c echo.Context) error {
	parentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	var body models.AddLinkedRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Request == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request text is required")
	}

	ctx := c.Request().Context()
	user := currentUser(c)

	child, err := s.svc.Sessions.CreateSession(ctx, user, models.CreateSessionRequest{
		Name: body.Name,
		Tags: body.Tags,
		Refs: body.Refs,
	}, &parentID)
	if err != nil {
		return mapServiceError(err)
	}

	// Seed the child with the parent's current query context.
	seed, err := s.svc.Sessions.GetQueryMetadata(ctx, user, parentID)
	if err == nil && seed != nil && seed.SQL != "" {
		if err := s.svc.Sessions.UpdateQueryMetadata(ctx, user, child.ID, seed); err != nil {
			s.logger.Warn("Failed to seed linked session", "session_id", child.ID, "error", err)
		}
	}

	created, err := s.svc.Requests.AddRequest(ctx, user, child.ID, models.AddRequest{
		Request: body.Request,
		Flow:    body.Flow,
		Model:   body.Model,
		DB:      body.DB,
		Refs:    body.Refs,
	})
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.enqueue(c, created, models.AddRequest{
		Request: body.Request,
		Flow:    body.Flow,
		Model:   body.Model,
		DB:      body.DB,
		Refs:    body.Refs,
	}, child.ID, &parentID, seed); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"session": child,
		"request": created,
	})
}

// listRequestsHandler handles GET /session/get_requests/:id.
func (s *Server) listRequestsHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	requests, err := s.svc.Requests.ListRequests(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func queryInt(c echo.Context, name string, fallback int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
