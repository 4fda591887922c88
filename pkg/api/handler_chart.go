package api

import (
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/apegpt/queryflow/pkg/charts"
)

// postChartBody carries plotting code or a self-contained HTML chart.
type postChartBody struct {
	Code string `json:"code,omitempty"`
	HTML string `json:"html,omitempty"`
}

// postChartHandler handles POST /chart.
func (s *Server) postChartHandler(c echo.Context) error {
	if s.charts == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chart rendering not configured")
	}
	var body postChartBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var (
		url string
		err error
	)
	switch {
	case body.Code != "":
		url, err = s.charts.RenderCode(c.Request().Context(), body.Code)
	case body.HTML != "":
		url, err = s.charts.RenderHTML(c.Request().Context(), body.HTML)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "code or html is required")
	}
	if err != nil {
		s.logger.Error("Chart rendering failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "chart rendering failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// getChartHandler handles GET /chart/:file. Charts are public by URL.
func (s *Server) getChartHandler(c echo.Context) error {
	if s.chartStore == nil {
		return echo.NewHTTPError(http.StatusNotFound, "chart not found")
	}

	name := c.Param("file")
	data, err := s.chartStore.Read(name)
	if err != nil {
		if errors.Is(err, charts.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "chart not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid chart file name")
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(name, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(name, ".html"):
		contentType = "text/html; charset=utf-8"
	case strings.HasSuffix(name, ".svg"):
		contentType = "image/svg+xml"
	}
	return c.Blob(http.StatusOK, contentType, data)
}
