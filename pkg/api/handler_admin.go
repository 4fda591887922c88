package api

import (
	"net/http"

	echo "github.com/labstack/echo/v4"

	"github.com/apegpt/queryflow/pkg/models"
)

// adminSessionsHandler handles GET /admin/sessions: all users' sessions.
func (s *Server) adminSessionsHandler(c echo.Context) error {
	filters := models.SessionFilters{
		User:   c.QueryParam("user"),
		Tags:   c.QueryParam("tags"),
		Limit:  queryInt(c, "limit", 50),
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

// adminRequestsHandler handles GET /admin/requests: all users' requests.
func (s *Server) adminRequestsHandler(c echo.Context) error {
	requests, total, err := s.svc.Requests.ListAllRequests(c.Request().Context(),
		queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"requests": requests,
		"total":    total,
	})
}
