package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v4"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/queue"
)

// enqueue hands a freshly created request to the worker pool.
func (s *Server) enqueue(c echo.Context, created *ent.Request, body models.AddRequest,
	sessionID uuid.UUID, parentSessionID *uuid.UUID, seed *models.QueryMetadata) error {

	payload := models.WorkerRequest{
		SessionID:       sessionID,
		RequestID:       created.ID,
		SequenceNumber:  created.SequenceNumber,
		User:            currentUser(c),
		Request:         body.Request,
		RequestType:     body.RequestType,
		ParentSessionID: parentSessionID,
		Flow:            body.Flow,
		Model:           body.Model,
		DB:              body.DB,
		Refs:            body.Refs,
		Query:           seed,
		Version:         s.version,
	}
	if err := s.broker.Enqueue(c.Request().Context(), queue.TaskProcessRequest, created.ID, payload); err != nil {
		s.logger.Error("Failed to enqueue request", "request_id", created.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to enqueue request")
	}
	return nil
}

// addRequestHandler handles POST /request/:session_id.
func (s *Server) addRequestHandler(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	var body models.AddRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Request == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request text is required")
	}

	created, err := s.svc.Requests.AddRequest(c.Request().Context(), currentUser(c), sessionID, body)
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.enqueue(c, created, body, sessionID, nil, nil); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// addRequestForQueryHandler handles POST /request/:session_id/for_query/:query_id:
// like addRequest, but the worker payload is seeded with the stored query so
// the flow continues from it.
func (s *Server) addRequestForQueryHandler(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	queryID, err := uuid.Parse(c.Param("query_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query id")
	}
	var body models.AddRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Request == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request text is required")
	}

	ctx := c.Request().Context()
	user := currentUser(c)

	query, err := s.svc.Queries.GetQueryByID(ctx, user, queryID)
	if err != nil {
		return mapServiceError(err)
	}

	created, err := s.svc.Requests.AddRequest(ctx, user, sessionID, body)
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.enqueue(c, created, body, sessionID, nil, queryMetadata(query)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// addRequestFromQueryHandler handles POST /request/:session_id/from_query/:query_id:
// materialize a request already answered by the stored query. No task is
// enqueued.
func (s *Server) addRequestFromQueryHandler(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	queryID, err := uuid.Parse(c.Param("query_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query id")
	}

	ctx := c.Request().Context()
	user := currentUser(c)

	query, err := s.svc.Queries.GetQueryByID(ctx, user, queryID)
	if err != nil {
		return mapServiceError(err)
	}

	created, err := s.svc.Requests.AddRequest(ctx, user, sessionID, models.AddRequest{
		Request: query.Request,
	})
	if err != nil {
		return mapServiceError(err)
	}

	done := models.StatusDone
	if err := s.svc.Requests.UpdateRequest(ctx, created.ID, models.UpdateRequestFields{
		Status:   &done,
		SQL:      &query.SQL,
		Response: &query.Summary,
		QueryID:  &query.ID,
	}); err != nil {
		return mapServiceError(err)
	}

	created, err = s.svc.Requests.GetRequestByID(ctx, user, created.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, created)
}

// getRequestHandler handles GET /request/:session_id/:seq.
func (s *Server) getRequestHandler(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sequence number")
	}

	request, err := s.svc.Requests.GetRequest(c.Request().Context(), currentUser(c), sessionID, seq)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, request)
}

// patchRequestBody accepts either a review update or a status change.
type patchRequestBody struct {
	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`
	Status *string `json:"status,omitempty"`
}

// patchRequestHandler handles PATCH /request/:id.
func (s *Server) patchRequestHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}
	var body patchRequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	user := currentUser(c)

	if body.Status != nil {
		if models.RequestStatus(*body.Status) != models.StatusCancelled {
			return echo.NewHTTPError(http.StatusBadRequest, "only cancellation is allowed via status")
		}
		// Verify ownership before touching worker state.
		if _, err := s.svc.Requests.GetRequestByID(ctx, user, id); err != nil {
			return mapServiceError(err)
		}
		if s.pool != nil && s.pool.CancelTask(id) {
			s.logger.Info("Cancelled running task", "request_id", id)
		}
		if err := s.svc.Requests.UpdateStatus(ctx, id, models.StatusCancelled, nil); err != nil {
			return mapServiceError(err)
		}
		request, err := s.svc.Requests.GetRequestByID(ctx, user, id)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, request)
	}

	if body.Rating == nil && body.Review == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	request, err := s.svc.Requests.UpdateReview(ctx, user, id, body.Rating, body.Review)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, request)
}

// deleteRequestHandler handles DELETE /request/:id: revert the session to
// just before this turn.
func (s *Server) deleteRequestHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}

	sessionID, err := s.svc.Requests.DeleteRequestRevert(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"session_id": sessionID})
}

// queryMetadata converts a stored Query row into the worker seed payload.
func queryMetadata(q *ent.QueryRecord) *models.QueryMetadata {
	md := &models.QueryMetadata{
		ID:          q.ID,
		SQL:         q.SQL,
		Summary:     q.Summary,
		Description: q.Description,
		RowCount:    q.RowCount,
		Explanation: q.Explanation,
	}
	for _, p := range q.Parents {
		if id, err := uuid.Parse(p); err == nil {
			md.Parents = append(md.Parents, id)
		}
	}
	return md
}
