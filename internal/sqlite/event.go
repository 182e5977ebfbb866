package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/repository"
)

// EventRepository implements calendar.EventRepository for SQLite
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, ev *calendar.Event) error {
	query := `
		INSERT INTO events (id, workspace_id, title, description, starts_at, ends_at, repeat_rule, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.WorkspaceID, ev.Title, ev.Description,
		ev.StartsAt, ev.EndsAt, ev.Repeat, ev.CreatedAt, ev.ModifiedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Get retrieves an event by ID
func (r *EventRepository) Get(ctx context.Context, workspaceID, id string) (*calendar.Event, error) {
	query := `
		SELECT id, workspace_id, title, description, starts_at, ends_at, repeat_rule, created_at, modified_at
		FROM events
		WHERE id = ? AND workspace_id = ?
	`

	var ev calendar.Event
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&ev.ID, &ev.WorkspaceID, &ev.Title, &description,
		&ev.StartsAt, &ev.EndsAt, &ev.Repeat, &ev.CreatedAt, &ev.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	ev.Description = description.String

	return &ev, nil
}

// Update updates an event
func (r *EventRepository) Update(ctx context.Context, ev *calendar.Event) error {
	query := `
		UPDATE events
		SET title = ?, description = ?, starts_at = ?, ends_at = ?, repeat_rule = ?, modified_at = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		ev.Title, ev.Description, ev.StartsAt, ev.EndsAt, ev.Repeat, ev.ModifiedAt,
		ev.ID, ev.WorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
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

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM events WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
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

// ListByWorkspace returns all stored event rows for a workspace
func (r *EventRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]calendar.Event, error) {
	query := `
		SELECT id, workspace_id, title, description, starts_at, ends_at, repeat_rule, created_at, modified_at
		FROM events
		WHERE workspace_id = ?
		ORDER BY starts_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		var ev calendar.Event
		var description sql.NullString
		if err := rows.Scan(&ev.ID, &ev.WorkspaceID, &ev.Title, &description,
			&ev.StartsAt, &ev.EndsAt, &ev.Repeat, &ev.CreatedAt, &ev.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Description = description.String
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
