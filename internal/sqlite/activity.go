package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
)

// ActivityRepository implements the domain activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an entry to the feed and fills in its assigned ID
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO activity_feed (workspace_id, actor_id, kind, subject_id, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.WorkspaceID, entry.ActorID, entry.Kind, entry.SubjectID, entry.Summary, createdAt)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}
	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// List returns feed entries newest first
func (r *ActivityRepository) List(ctx context.Context, workspaceID string, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, workspace_id, actor_id, kind, subject_id, summary, created_at
		FROM activity_feed
		WHERE workspace_id = ?
	`
	args := []any{workspaceID}

	if opts.Kind != nil {
		query += ` AND kind = ?`
		args = append(args, *opts.Kind)
	}

	query += ` ORDER BY id DESC`

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		var subjectID sql.NullString
		if err := rows.Scan(&e.ID, &e.WorkspaceID, &e.ActorID, &e.Kind, &subjectID, &e.Summary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		if subjectID.Valid {
			e.SubjectID = &subjectID.String
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity entries: %w", err)
	}

	return entries, nil
}
