package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fplanhq/fplan/internal/domain/workspace"
	"github.com/fplanhq/fplan/internal/repository"
)

// WorkspaceRepository implements the domain workspace.Repository for SQLite
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, description, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, ws.ID, ws.Name, ws.Description, ws.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}

// Get retrieves a workspace by ID
func (r *WorkspaceRepository) Get(ctx context.Context, id string) (*workspace.Workspace, error) {
	query := `
		SELECT id, name, description, created_at
		FROM workspaces
		WHERE id = ?
	`

	var ws workspace.Workspace
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ws.ID, &ws.Name, &description, &ws.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	ws.Description = description.String

	return &ws, nil
}

// GetDefault returns the oldest workspace
func (r *WorkspaceRepository) GetDefault(ctx context.Context) (*workspace.Workspace, error) {
	query := `
		SELECT id, name, description, created_at
		FROM workspaces
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	var ws workspace.Workspace
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query).Scan(&ws.ID, &ws.Name, &description, &ws.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default workspace: %w", err)
	}
	ws.Description = description.String

	return &ws, nil
}

// List returns workspace summaries with plan and goal counts
func (r *WorkspaceRepository) List(ctx context.Context) ([]workspace.Summary, error) {
	query := `
		SELECT
			w.id, w.name, w.description, w.created_at,
			(SELECT COUNT(*) FROM plans p WHERE p.workspace_id = w.id) AS plan_count,
			(SELECT COUNT(*) FROM goals g WHERE g.workspace_id = w.id) AS goal_count
		FROM workspaces w
		ORDER BY w.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var summaries []workspace.Summary
	for rows.Next() {
		var s workspace.Summary
		var description sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &description, &s.CreatedAt, &s.PlanCount, &s.GoalCount); err != nil {
			return nil, fmt.Errorf("failed to scan workspace summary: %w", err)
		}
		s.Description = description.String
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspaces: %w", err)
	}

	return summaries, nil
}
