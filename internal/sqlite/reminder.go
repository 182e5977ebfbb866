package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/repository"
)

// ReminderRepository implements calendar.ReminderRepository for SQLite
type ReminderRepository struct {
	db *DB
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository(db *DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create creates a new reminder
func (r *ReminderRepository) Create(ctx context.Context, rem *calendar.Reminder) error {
	query := `
		INSERT INTO reminders (id, workspace_id, title, remind_at, repeat_rule, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rem.ID, rem.WorkspaceID, rem.Title, rem.RemindAt, rem.Repeat, rem.CreatedAt, rem.ModifiedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// Get retrieves a reminder by ID
func (r *ReminderRepository) Get(ctx context.Context, workspaceID, id string) (*calendar.Reminder, error) {
	query := `
		SELECT id, workspace_id, title, remind_at, repeat_rule, created_at, modified_at
		FROM reminders
		WHERE id = ? AND workspace_id = ?
	`

	var rem calendar.Reminder
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&rem.ID, &rem.WorkspaceID, &rem.Title, &rem.RemindAt, &rem.Repeat, &rem.CreatedAt, &rem.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return &rem, nil
}

// Update updates a reminder
func (r *ReminderRepository) Update(ctx context.Context, rem *calendar.Reminder) error {
	query := `
		UPDATE reminders
		SET title = ?, remind_at = ?, repeat_rule = ?, modified_at = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rem.Title, rem.RemindAt, rem.Repeat, rem.ModifiedAt, rem.ID, rem.WorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
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

// Delete removes a reminder
func (r *ReminderRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM reminders WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
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

// ListByWorkspace returns all stored reminder rows for a workspace
func (r *ReminderRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]calendar.Reminder, error) {
	query := `
		SELECT id, workspace_id, title, remind_at, repeat_rule, created_at, modified_at
		FROM reminders
		WHERE workspace_id = ?
		ORDER BY remind_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []calendar.Reminder
	for rows.Next() {
		var rem calendar.Reminder
		if err := rows.Scan(&rem.ID, &rem.WorkspaceID, &rem.Title, &rem.RemindAt,
			&rem.Repeat, &rem.CreatedAt, &rem.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}

	return reminders, nil
}
