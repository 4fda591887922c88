package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/apegpt/queryflow/pkg/models"
)

// SessionService manages conversation session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new session owned by user. An empty parent means a
// top-level session; linked sessions pass the parent they were spawned from.
func (s *SessionService) CreateSession(ctx context.Context, user string, req models.CreateSessionRequest, parent *uuid.UUID) (*ent.Session, error) {
	if user == "" {
		return nil, NewValidationError("user", "required")
	}

	builder := s.client.Session.Create().
		SetUser(user)

	if req.Name != "" {
		builder.SetName(req.Name)
	}
	if req.Tags != "" {
		builder.SetTags(req.Tags)
	}
	if parent != nil {
		builder.SetParentID(*parent)
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
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetSession retrieves a session by id. An empty user skips the ownership
// check (admin listings).
func (s *SessionService) GetSession(ctx context.Context, user string, sessionID uuid.UUID) (*ent.Session, error) {
	found, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if user != "" && found.User != user {
		return nil, ErrNotFound
	}
	return found, nil
}

// ListSessions lists sessions with filtering and pagination, newest first.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) ([]*ent.Session, int, error) {
	query := s.client.Session.Query()

	if filters.User != "" {
		query = query.Where(session.UserEQ(filters.User))
	}
	if filters.Tags != "" {
		query = query.Where(session.TagsContains(filters.Tags))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, totalCount, nil
}

// PatchSession applies a partial update; nil fields are left unchanged.
func (s *SessionService) PatchSession(ctx context.Context, user string, sessionID uuid.UUID, patch models.PatchSessionRequest) (*ent.Session, error) {
	found, err := s.GetSession(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}

	update := found.Update()
	if patch.Name != nil {
		update.SetName(*patch.Name)
	}
	if patch.Tags != nil {
		update.SetTags(*patch.Tags)
	}
	if patch.Refs != nil {
		refs, err := toJSONMap(patch.Refs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal refs: %w", err)
		}
		update.SetRefs(refs)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to patch session: %w", err)
	}
	return updated, nil
}

// DeleteSession removes a session and, via cascade, its requests and queries.
func (s *SessionService) DeleteSession(ctx context.Context, user string, sessionID uuid.UUID) error {
	if _, err := s.GetSession(ctx, user, sessionID); err != nil {
		return err
	}
	if err := s.client.Session.DeleteOneID(sessionID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UpdateSessionName renames a session. Flows call this with the first query
// summary; a missing session is tolerated as a no-op since the user may have
// reverted the turn mid-flight.
func (s *SessionService) UpdateSessionName(ctx context.Context, user string, sessionID uuid.UUID, name string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetName(name)
	if user != "" {
		query = query.Where(session.UserEQ(user))
	}
	if _, err := query.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to update session name: %w", err)
	}
	return nil
}

// UpdateQueryMetadata stores the session's latest query metadata. Like
// UpdateSessionName this is a worker-side write and tolerates a deleted
// session.
func (s *SessionService) UpdateQueryMetadata(ctx context.Context, user string, sessionID uuid.UUID, metadata *models.QueryMetadata) error {
	md, err := toJSONMap(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal query metadata: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetMetadata(md)
	if user != "" {
		query = query.Where(session.UserEQ(user))
	}
	if _, err := query.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to update session metadata: %w", err)
	}
	return nil
}

// GetQueryMetadata returns the typed metadata stored on a session, or nil
// when the session has none yet.
func (s *SessionService) GetQueryMetadata(ctx context.Context, user string, sessionID uuid.UUID) (*models.QueryMetadata, error) {
	found, err := s.GetSession(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}
	md, err := metadataFromMap(found.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session metadata: %w", err)
	}
	return md, nil
}
