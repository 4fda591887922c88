package api

import (
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v4"

	"github.com/apegpt/queryflow/pkg/models"
)

// listQueriesHandler handles GET /query.
func (s *Server) listQueriesHandler(c echo.Context) error {
	queries, total, err := s.svc.Queries.ListQueries(c.Request().Context(), currentUser(c),
		queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"queries": queries,
		"total":   total,
	})
}

// getQueryHandler handles GET /query/:id.
func (s *Server) getQueryHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query id")
	}

	query, err := s.svc.Queries.GetQueryByID(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, query)
}

// getDataHandler handles GET /data/:query_id. Pages are cacheable: a weak
// ETag over the page identity plus shared-cache directives, varied on the
// caller's token.
func (s *Server) getDataHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("query_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query id")
	}

	var view *models.View
	if sortBy := c.QueryParam("sort_by"); sortBy != "" {
		view = &models.View{
			SortBy:    sortBy,
			SortOrder: c.QueryParam("sort_order"),
		}
	}

	page, err := s.svc.Queries.FetchData(c.Request().Context(), currentUser(c), id,
		queryInt(c, "limit", 0), queryInt(c, "offset", 0), view)
	if err != nil {
		return mapServiceError(err)
	}

	h := c.Response().Header()
	h.Set("ETag", page.ETag)
	h.Set("Cache-Control", "public, max-age=0, s-maxage=600, stale-while-revalidate=1200")
	h.Set("Vary", "Authorization, Accept, Accept-Encoding")

	if c.Request().Header.Get("If-None-Match") == page.ETag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, page)
}
