package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fplanhq/fplan/internal/domain/goal"
	"github.com/fplanhq/fplan/internal/repository"
)

// GoalRepository implements the domain goal.Repository for SQLite
type GoalRepository struct {
	db *DB
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (id, workspace_id, title, description, target_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.WorkspaceID, g.Title, g.Description, g.TargetDate, g.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// Get retrieves a goal with its linked plan IDs
func (r *GoalRepository) Get(ctx context.Context, workspaceID, id string) (*goal.Goal, error) {
	query := `
		SELECT id, workspace_id, title, description, target_date, created_at
		FROM goals
		WHERE id = ? AND workspace_id = ?
	`

	var g goal.Goal
	var description sql.NullString
	var targetDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&g.ID, &g.WorkspaceID, &g.Title, &description, &targetDate, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	g.Description = description.String
	if targetDate.Valid {
		g.TargetDate = &targetDate.Time
	}

	planIDs, err := r.linkedPlanIDs(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	g.PlanIDs = planIDs

	return &g, nil
}

// Update updates a goal
func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET title = ?, description = ?, target_date = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		g.Title, g.Description, g.TargetDate, g.ID, g.WorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
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

// Delete removes a goal; plan links cascade
func (r *GoalRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
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

// List returns a workspace's goals with linked plan IDs
func (r *GoalRepository) List(ctx context.Context, workspaceID string) ([]goal.Goal, error) {
	query := `
		SELECT id, workspace_id, title, description, target_date, created_at
		FROM goals
		WHERE workspace_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		var g goal.Goal
		var description sql.NullString
		var targetDate sql.NullTime
		if err := rows.Scan(&g.ID, &g.WorkspaceID, &g.Title, &description, &targetDate, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		g.Description = description.String
		if targetDate.Valid {
			g.TargetDate = &targetDate.Time
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	for i := range goals {
		planIDs, err := r.linkedPlanIDs(ctx, goals[i].ID)
		if err != nil {
			return nil, err
		}
		goals[i].PlanIDs = planIDs
	}

	return goals, nil
}

// LinkPlan attaches a plan to a goal; linking twice is a no-op
func (r *GoalRepository) LinkPlan(ctx context.Context, goalID, planID string) error {
	query := `
		INSERT INTO goal_plans (goal_id, plan_id)
		VALUES (?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, goalID, planID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to link plan: %w", err)
	}
	return nil
}

// UnlinkPlan detaches a plan from a goal
func (r *GoalRepository) UnlinkPlan(ctx context.Context, goalID, planID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM goal_plans WHERE goal_id = ? AND plan_id = ?`, goalID, planID)
	if err != nil {
		return fmt.Errorf("failed to unlink plan: %w", err)
	}
	return nil
}

func (r *GoalRepository) linkedPlanIDs(ctx context.Context, goalID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT plan_id FROM goal_plans WHERE goal_id = ? ORDER BY created_at ASC`, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get linked plans: %w", err)
	}
	defer rows.Close()

	var planIDs []string
	for rows.Next() {
		var planID string
		if err := rows.Scan(&planID); err != nil {
			return nil, fmt.Errorf("failed to scan plan link: %w", err)
		}
		planIDs = append(planIDs, planID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan links: %w", err)
	}

	return planIDs, nil
}
