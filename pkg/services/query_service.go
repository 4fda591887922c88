package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/ent"
	entquery "github.com/apegpt/queryflow/ent/queryrecord"
	"github.com/apegpt/queryflow/pkg/models"
)

// PageExecutor runs windowed SQL against the warehouse. Satisfied by
// *warehouse.Client.
type PageExecutor interface {
	Execute(ctx context.Context, query string, limit, offset int) ([]map[string]any, int64, error)
}

// QueryService resolves stored queries to SQL, applies view transforms and
// serves paginated result pages with stable ETags.
type QueryService struct {
	client   *ent.Client
	executor PageExecutor
	logger   *slog.Logger
}

// NewQueryService creates a new QueryService
func NewQueryService(client *ent.Client, executor PageExecutor) *QueryService {
	return &QueryService{
		client:   client,
		executor: executor,
		logger:   slog.With("service", "queries"),
	}
}

// CreateQuery persists a validated query with its metadata and lineage.
func (s *QueryService) CreateQuery(ctx context.Context, f models.CreateQueryFields) (*ent.QueryRecord, error) {
	if f.SQL == "" {
		return nil, NewValidationError("sql", "required")
	}

	builder := s.client.QueryRecord.Create().
		SetSessionID(f.SessionID).
		SetRequestID(f.RequestID).
		SetUser(f.User).
		SetRequest(f.Request).
		SetSQL(f.SQL)

	if f.ID != uuid.Nil {
		builder.SetID(f.ID)
	}
	if f.ParentID != nil {
		builder.SetParentID(*f.ParentID)
	}
	if f.Summary != "" {
		builder.SetSummary(f.Summary)
	}
	if f.Description != "" {
		builder.SetDescription(f.Description)
	}
	if cols := columnsToMaps(f.Columns); cols != nil {
		builder.SetColumns(cols)
	}
	if f.RowCount != nil {
		builder.SetRowCount(*f.RowCount)
	}
	if f.Explanation != nil {
		builder.SetExplanation(f.Explanation)
	}
	if parents := parentsToStrings(f.Parents); parents != nil {
		builder.SetParents(parents)
	}
	if f.Tags != "" {
		builder.SetTags(f.Tags)
	}
	if f.Version != "" {
		builder.SetVersion(f.Version)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create query: %w", err)
	}
	return created, nil
}

// GetQueryByID retrieves a query by id. An empty user skips the ownership
// check.
func (s *QueryService) GetQueryByID(ctx context.Context, user string, queryID uuid.UUID) (*ent.QueryRecord, error) {
	found, err := s.client.QueryRecord.Get(ctx, queryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get query: %w", err)
	}
	if user != "" && found.User != user {
		return nil, ErrNotFound
	}
	return found, nil
}

// LatestQuery returns the session's most recent query, or ErrNotFound.
func (s *QueryService) LatestQuery(ctx context.Context, sessionID uuid.UUID) (*ent.QueryRecord, error) {
	found, err := s.client.QueryRecord.Query().
		Where(entquery.SessionIDEQ(sessionID)).
		Order(ent.Desc(entquery.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest query: %w", err)
	}
	return found, nil
}

// ListQueries lists a user's queries with pagination, newest first.
func (s *QueryService) ListQueries(ctx context.Context, user string, limit, offset int) ([]*ent.QueryRecord, int, error) {
	query := s.client.QueryRecord.Query()
	if user != "" {
		query = query.Where(entquery.UserEQ(user))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count queries: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	queries, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entquery.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list queries: %w", err)
	}
	return queries, totalCount, nil
}

// DataPage is one page of a stored query's results.
type DataPage struct {
	QueryID   uuid.UUID        `json:"query_id"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
	Rows      []map[string]any `json:"rows"`
	TotalRows int64            `json:"total_rows"`
	ETag      string           `json:"-"`
}

// FetchData serves a page of results for the given id. The id may name a
// Query, a Request with a linked query, or a Session whose metadata carries
// SQL; resolution tries them in that order. A supplied view, or a stored one,
// rewrites the ORDER BY before execution and the rewrite is persisted back to
// where the SQL came from.
func (s *QueryService) FetchData(ctx context.Context, user string, id uuid.UUID, limit, offset int, view *models.View) (*DataPage, error) {
	if err := view.Validate(); err != nil {
		return nil, NewValidationError("sort_order", err.Error())
	}
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	src, err := s.resolveSQL(ctx, user, id)
	if err != nil {
		return nil, err
	}

	effective := view
	if effective == nil {
		effective = src.view
	}

	sqlText := src.sql
	if effective != nil && effective.SortBy != "" {
		sqlText = ReplaceOrderBy(sqlText, effective.SortBy, effective.SortOrder)
		if err := src.persist(ctx, sqlText, effective); err != nil {
			s.logger.Warn("Failed to persist rewritten view", "id", id, "error", err)
		}
	}

	rows, total, err := s.executor.Execute(ctx, sqlText, limit, offset)
	if err != nil {
		return nil, err
	}

	return &DataPage{
		QueryID:   id,
		Limit:     limit,
		Offset:    offset,
		Rows:      rows,
		TotalRows: total,
		ETag:      computeETag(id, limit, offset, total, rows),
	}, nil
}

// sqlSource is a resolved SQL statement plus a writeback hook for view
// rewrites.
type sqlSource struct {
	sql     string
	view    *models.View
	persist func(ctx context.Context, sqlText string, view *models.View) error
}

func (s *QueryService) resolveSQL(ctx context.Context, user string, id uuid.UUID) (*sqlSource, error) {
	if q, err := s.client.QueryRecord.Get(ctx, id); err == nil {
		if user != "" && q.User != user {
			return nil, ErrNotFound
		}
		stored, err := viewFromMap(q.View)
		if err != nil {
			return nil, fmt.Errorf("failed to decode query view: %w", err)
		}
		return &sqlSource{
			sql:  q.SQL,
			view: stored,
			persist: func(ctx context.Context, sqlText string, view *models.View) error {
				vm, err := toJSONMap(view)
				if err != nil {
					return err
				}
				return q.Update().SetSQL(sqlText).SetView(vm).Exec(ctx)
			},
		}, nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve query: %w", err)
	}

	if r, err := s.client.Request.Get(ctx, id); err == nil {
		if user != "" && r.User != user {
			return nil, ErrNotFound
		}
		var sqlText string
		if r.QueryID != nil {
			q, err := s.client.QueryRecord.Get(ctx, *r.QueryID)
			if err != nil && !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to resolve linked query: %w", err)
			}
			if err == nil {
				sqlText = q.SQL
			}
		}
		if sqlText == "" && r.SQL != nil {
			sqlText = *r.SQL
		}
		if sqlText == "" {
			return nil, ErrNotFound
		}
		stored, err := viewFromMap(r.View)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request view: %w", err)
		}
		return &sqlSource{
			sql:  sqlText,
			view: stored,
			persist: func(ctx context.Context, sqlText string, view *models.View) error {
				vm, err := toJSONMap(view)
				if err != nil {
					return err
				}
				return r.Update().SetSQL(sqlText).SetView(vm).Exec(ctx)
			},
		}, nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve request: %w", err)
	}

	if sess, err := s.client.Session.Get(ctx, id); err == nil {
		if user != "" && sess.User != user {
			return nil, ErrNotFound
		}
		md, err := metadataFromMap(sess.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to decode session metadata: %w", err)
		}
		if md == nil || md.SQL == "" {
			return nil, ErrNotFound
		}
		return &sqlSource{
			sql:  md.SQL,
			view: md.View,
			persist: func(ctx context.Context, sqlText string, view *models.View) error {
				md.SQL = sqlText
				md.View = view
				mm, err := toJSONMap(md)
				if err != nil {
					return err
				}
				return sess.Update().SetMetadata(mm).Exec(ctx)
			},
		}, nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return nil, ErrNotFound
}

var (
	// An ORDER BY whose expression stays outside parentheses, up to the
	// trailing LIMIT/OFFSET/FETCH or end of statement. Subquery ORDER BYs
	// sit before a closing paren and never match.
	orderByRe = regexp.MustCompile(`(?is)\bORDER\s+BY\s+[^)]+?(\bLIMIT\b|\bOFFSET\b|\bFETCH\b|$)`)

	// A trailing clause not inside parentheses, used as the insertion point
	// when the statement has no ORDER BY yet.
	trailingClauseRe = regexp.MustCompile(`(?is)\b(?:LIMIT|OFFSET|FETCH)\b[^)]*$`)
)

// ReplaceOrderBy rewrites the statement's top-level ORDER BY to sort by the
// given column, inserting one before any trailing LIMIT/OFFSET/FETCH when the
// statement has none. The rewrite is idempotent.
func ReplaceOrderBy(query, sortBy, sortOrder string) string {
	if sortBy == "" {
		return query
	}
	order := strings.ToUpper(sortOrder)
	if order != "DESC" {
		order = "ASC"
	}
	clause := fmt.Sprintf("ORDER BY %s %s", sortBy, order)

	if loc := orderByRe.FindStringSubmatchIndex(query); loc != nil {
		head := strings.TrimRight(query[:loc[0]], " \t\r\n")
		terminator := query[loc[2]:loc[3]]
		rest := query[loc[3]:]
		if terminator == "" {
			return head + " " + clause
		}
		return head + " " + clause + " " + terminator + rest
	}

	if loc := trailingClauseRe.FindStringIndex(query); loc != nil {
		head := strings.TrimRight(query[:loc[0]], " \t\r\n")
		return head + " " + clause + " " + query[loc[0]:]
	}

	return strings.TrimRight(query, " \t\r\n;") + " " + clause
}

// computeETag derives a weak ETag from the page identity and a fingerprint of
// the first and last row. Unchanged data yields an identical tag.
func computeETag(queryID uuid.UUID, limit, offset int, total int64, rows []map[string]any) string {
	fp := sha256.New()
	if len(rows) > 0 {
		first, _ := json.Marshal(rows[0])
		last, _ := json.Marshal(rows[len(rows)-1])
		fp.Write(first)
		fp.Write(last)
	}

	payload, _ := json.Marshal(map[string]any{
		"query_id":   queryID.String(),
		"limit":      limit,
		"offset":     offset,
		"total_rows": total,
		"rows_fp":    hex.EncodeToString(fp.Sum(nil)),
	})
	sum := sha256.Sum256(payload)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}
