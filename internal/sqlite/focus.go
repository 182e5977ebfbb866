package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fplanhq/fplan/internal/domain/focus"
	"github.com/fplanhq/fplan/internal/repository"
)

// FocusSessionRepository implements focus.SessionRepository for SQLite
type FocusSessionRepository struct {
	db *DB
}

// NewFocusSessionRepository creates a new FocusSessionRepository
func NewFocusSessionRepository(db *DB) *FocusSessionRepository {
	return &FocusSessionRepository{db: db}
}

// Insert stores a new session
func (r *FocusSessionRepository) Insert(ctx context.Context, sess *focus.Session) error {
	query := `
		INSERT INTO focus_sessions (id, user_id, workspace_id, task_id, plan_id, goal_id,
			started_at, ended_at, duration_minutes, planned_duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID, sess.UserID, sess.WorkspaceID, sess.TaskID, sess.PlanID, sess.GoalID,
		sess.StartedAt, sess.EndedAt, sess.DurationMinutes, sess.PlannedDurationMinutes)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert focus session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID
func (r *FocusSessionRepository) Get(ctx context.Context, id string) (*focus.Session, error) {
	query := sessionSelect + ` WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get focus session: %w", err)
	}
	return sess, nil
}

// Update persists the end-of-session fields
func (r *FocusSessionRepository) Update(ctx context.Context, sess *focus.Session) error {
	query := `
		UPDATE focus_sessions
		SET ended_at = ?, duration_minutes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, sess.EndedAt, sess.DurationMinutes, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to update focus session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a session
func (r *FocusSessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM focus_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete focus session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// FindActiveByUser returns the user's running session in a workspace
func (r *FocusSessionRepository) FindActiveByUser(ctx context.Context, userID, workspaceID string) (*focus.Session, error) {
	query := sessionSelect + `
		WHERE user_id = ? AND workspace_id = ? AND ended_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, userID, workspaceID)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}
	return sess, nil
}

// FindCompletedInRange returns completed sessions started within [from, to]
func (r *FocusSessionRepository) FindCompletedInRange(ctx context.Context, userID, workspaceID string, from, to time.Time) ([]focus.Session, error) {
	query := sessionSelect + `
		WHERE user_id = ? AND workspace_id = ? AND ended_at IS NOT NULL
			AND started_at >= ? AND started_at <= ?
		ORDER BY started_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find completed sessions: %w", err)
	}
	defer rows.Close()

	var sessions []focus.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan focus session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating focus sessions: %w", err)
	}

	return sessions, nil
}

const sessionSelect = `
	SELECT id, user_id, workspace_id, task_id, plan_id, goal_id,
		started_at, ended_at, duration_minutes, planned_duration_minutes
	FROM focus_sessions
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*focus.Session, error) {
	var sess focus.Session
	var taskID, planID, goalID sql.NullString
	var endedAt sql.NullTime
	var duration, planned sql.NullInt64

	err := row.Scan(&sess.ID, &sess.UserID, &sess.WorkspaceID, &taskID, &planID, &goalID,
		&sess.StartedAt, &endedAt, &duration, &planned)
	if err != nil {
		return nil, err
	}

	if taskID.Valid {
		sess.TaskID = &taskID.String
	}
	if planID.Valid {
		sess.PlanID = &planID.String
	}
	if goalID.Valid {
		sess.GoalID = &goalID.String
	}
	if endedAt.Valid {
		sess.EndedAt = &endedAt.Time
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		sess.DurationMinutes = &minutes
	}
	if planned.Valid {
		minutes := int(planned.Int64)
		sess.PlannedDurationMinutes = &minutes
	}

	return &sess, nil
}
