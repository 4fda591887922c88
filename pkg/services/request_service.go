package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/request"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/apegpt/queryflow/pkg/models"
)

// RequestService manages request turns within sessions
type RequestService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(client *ent.Client) *RequestService {
	return &RequestService{
		client: client,
		logger: slog.With("service", "requests"),
	}
}

// AddRequest allocates the next sequence number for the session and writes
// the request in state new. The session row is locked for the duration of the
// transaction so concurrent inserts get dense, unique sequence numbers; the
// unique (session_id, sequence_number) index backstops the lock.
func (s *RequestService) AddRequest(ctx context.Context, user string, sessionID uuid.UUID, req models.AddRequest) (*ent.Request, error) {
	if req.Request == "" {
		return nil, NewValidationError("request", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	owner, err := tx.Session.Query().
		Where(session.IDEQ(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	if user != "" && owner.User != user {
		return nil, ErrNotFound
	}

	seq := 1
	last, err := tx.Request.Query().
		Where(request.SessionIDEQ(sessionID)).
		Order(ent.Desc(request.FieldSequenceNumber)).
		First(ctx)
	if err == nil {
		seq = last.SequenceNumber + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read last sequence number: %w", err)
	}

	// The request id doubles as the broker task id.
	builder := tx.Request.Create().
		SetID(uuid.New()).
		SetSessionID(sessionID).
		SetSequenceNumber(seq).
		SetUser(owner.User).
		SetRequest(req.Request).
		SetStatus(request.StatusNew)

	if req.RequestType != "" {
		builder.SetRequestType(string(req.RequestType))
	}
	if req.Flow != "" {
		builder.SetFlow(string(req.Flow))
	}
	if req.Model != "" {
		builder.SetModel(string(req.Model))
	}
	if req.DB != "" {
		builder.SetDb(string(req.DB))
	}
	if req.Refs != nil {
		refs, err := toJSONMap(req.Refs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal refs: %w", err)
		}
		builder.SetRefs(refs)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit request: %w", err)
	}
	return created, nil
}

// GetRequest retrieves a request by session and sequence number.
func (s *RequestService) GetRequest(ctx context.Context, user string, sessionID uuid.UUID, seq int) (*ent.Request, error) {
	query := s.client.Request.Query().
		Where(
			request.SessionIDEQ(sessionID),
			request.SequenceNumberEQ(seq),
		)
	if user != "" {
		query = query.Where(request.UserEQ(user))
	}

	found, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return found, nil
}

// GetRequestByID retrieves a request by id. An empty user skips the
// ownership check.
func (s *RequestService) GetRequestByID(ctx context.Context, user string, requestID uuid.UUID) (*ent.Request, error) {
	found, err := s.client.Request.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if user != "" && found.User != user {
		return nil, ErrNotFound
	}
	return found, nil
}

// ListRequests returns all requests of a session in sequence order.
func (s *RequestService) ListRequests(ctx context.Context, user string, sessionID uuid.UUID) ([]*ent.Request, error) {
	query := s.client.Request.Query().
		Where(request.SessionIDEQ(sessionID))
	if user != "" {
		query = query.Where(request.UserEQ(user))
	}

	requests, err := query.
		Order(ent.Asc(request.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// ListAllRequests lists requests across all sessions, newest first. Admin
// surface.
func (s *RequestService) ListAllRequests(ctx context.Context, limit, offset int) ([]*ent.Request, int, error) {
	query := s.client.Request.Query()

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	requests, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(request.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, totalCount, nil
}

// UpdateStatus moves a request to a new status. Terminal statuses are
// sticky: once a request is done, error or cancelled no further status write
// lands. A missing row is a no-op so tasks racing a revert finish cleanly.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.RequestStatus, errText *string) error {
	if !status.Valid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.StatusNotIn(request.StatusDone, request.StatusError, request.StatusCancelled),
		).
		SetStatus(request.Status(status))
	if errText != nil {
		update.SetErr(*errText)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if n == 0 {
		s.logger.Debug("Status write skipped, request terminal or deleted",
			"request_id", requestID, "status", status)
	}
	return nil
}

// UpdateRequest applies a partial update; nil fields are left unchanged.
// Like UpdateStatus this is a worker-side write: a deleted row is a no-op.
func (s *RequestService) UpdateRequest(ctx context.Context, requestID uuid.UUID, fields models.UpdateRequestFields) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Request.Update().
		Where(request.IDEQ(requestID))

	if fields.Status != nil {
		if !fields.Status.Valid() {
			return NewValidationError("status", fmt.Sprintf("unknown status %q", *fields.Status))
		}
		// Terminal stickiness applies to status writes only.
		update = update.Where(
			request.StatusNotIn(request.StatusDone, request.StatusError, request.StatusCancelled),
		).SetStatus(request.Status(*fields.Status))
	}
	if fields.RequestType != nil {
		update.SetRequestType(string(*fields.RequestType))
	}
	if fields.Err != nil {
		update.SetErr(*fields.Err)
	}
	if fields.Response != nil {
		update.SetResponse(*fields.Response)
	}
	if fields.Intent != nil {
		update.SetIntent(*fields.Intent)
	}
	if fields.Assumptions != nil {
		update.SetAssumptions(*fields.Assumptions)
	}
	if fields.Intro != nil {
		update.SetIntro(*fields.Intro)
	}
	if fields.Outro != nil {
		update.SetOutro(*fields.Outro)
	}
	if fields.SQL != nil {
		update.SetSQL(*fields.SQL)
	}
	if fields.RawDataLabels != nil {
		update.SetRawDataLabels(fields.RawDataLabels)
	}
	if fields.RawDataRows != nil {
		update.SetRawData(fields.RawDataRows)
	}
	if fields.CSV != nil {
		update.SetCsv(*fields.CSV)
	}
	if fields.Chart != nil {
		update.SetChart(*fields.Chart)
	}
	if fields.ChartURL != nil {
		update.SetChartURL(*fields.ChartURL)
	}
	if fields.Refs != nil {
		refs, err := toJSONMap(fields.Refs)
		if err != nil {
			return fmt.Errorf("failed to marshal refs: %w", err)
		}
		update.SetRefs(refs)
	}
	if fields.View != nil {
		view, err := toJSONMap(fields.View)
		if err != nil {
			return fmt.Errorf("failed to marshal view: %w", err)
		}
		update.SetView(view)
	}
	if fields.QueryID != nil {
		update.SetQueryID(*fields.QueryID)
	}
	if fields.LinkedSessionID != nil {
		update.SetLinkedSessionID(*fields.LinkedSessionID)
	}
	if fields.Rating != nil {
		update.SetRating(*fields.Rating)
	}
	if fields.Review != nil {
		update.SetReview(*fields.Review)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}
	if n == 0 {
		s.logger.Debug("Request write skipped, row gone or terminal",
			"request_id", requestID)
	}
	return nil
}

// UpdateReview stores user feedback on a completed request.
func (s *RequestService) UpdateReview(ctx context.Context, user string, requestID uuid.UUID, rating *int, review *string) (*ent.Request, error) {
	found, err := s.GetRequestByID(ctx, user, requestID)
	if err != nil {
		return nil, err
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, NewValidationError("rating", "must be between 1 and 5")
	}

	update := found.Update()
	if rating != nil {
		update.SetRating(*rating)
	}
	if review != nil {
		update.SetReview(*review)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return updated, nil
}

// DeleteRequestRevert deletes the request and every request with a higher
// sequence number in the same session, rolling the conversation back to just
// before this turn. Returns the session id.
func (s *RequestService) DeleteRequestRevert(ctx context.Context, user string, requestID uuid.UUID) (uuid.UUID, error) {
	found, err := s.GetRequestByID(ctx, user, requestID)
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.Request.Delete().
		Where(
			request.SessionIDEQ(found.SessionID),
			request.SequenceNumberGTE(found.SequenceNumber),
		).
		Exec(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to delete request tail: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit revert: %w", err)
	}

	s.logger.Info("Reverted request tail",
		"session_id", found.SessionID, "from_sequence", found.SequenceNumber, "deleted", n)
	return found.SessionID, nil
}

// GetHistory returns the session's turns as chat messages in sequence order.
// When includeResponses is false only user turns are emitted.
func (s *RequestService) GetHistory(ctx context.Context, user string, sessionID uuid.UUID, includeResponses bool) ([]models.HistoryTurn, error) {
	requests, err := s.ListRequests(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}

	history := make([]models.HistoryTurn, 0, len(requests)*2)
	for _, r := range requests {
		history = append(history, models.HistoryTurn{
			Role:    "user",
			Content: r.Request,
		})
		if includeResponses && r.Response != nil && *r.Response != "" {
			history = append(history, models.HistoryTurn{
				Role:    "assistant",
				Content: *r.Response,
			})
		}
	}
	return history, nil
}
