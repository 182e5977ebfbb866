package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fplanhq/fplan/internal/domain/plan"
	"github.com/fplanhq/fplan/internal/repository"
)

// PlanRepository implements the domain plan.Repository for SQLite
type PlanRepository struct {
	db *DB
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create creates a new plan
func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	query := `
		INSERT INTO plans (id, workspace_id, title, description, status, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.WorkspaceID, p.Title, p.Description, p.Status, p.CreatedAt, p.ModifiedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// Get retrieves a plan by ID within a workspace
func (r *PlanRepository) Get(ctx context.Context, workspaceID, id string) (*plan.Plan, error) {
	query := `
		SELECT id, workspace_id, title, description, status, created_at, modified_at
		FROM plans
		WHERE id = ? AND workspace_id = ?
	`

	var p plan.Plan
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&p.ID, &p.WorkspaceID, &p.Title, &description, &p.Status, &p.CreatedAt, &p.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	p.Description = description.String

	return &p, nil
}

// Update updates a plan
func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	query := `
		UPDATE plans
		SET title = ?, description = ?, status = ?, modified_at = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Description, p.Status, p.ModifiedAt, p.ID, p.WorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
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

// Delete removes a plan; stages and tasks cascade via foreign keys
func (r *PlanRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM plans WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
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

// List returns plan summaries for a workspace
func (r *PlanRepository) List(ctx context.Context, workspaceID string) ([]plan.PlanSummary, error) {
	query := `
		SELECT
			p.id, p.title, p.status, p.created_at,
			(SELECT COUNT(*) FROM tasks t WHERE t.plan_id = p.id) AS task_count,
			(SELECT COUNT(*) FROM tasks t WHERE t.plan_id = p.id AND t.status = 'done') AS done_tasks
		FROM plans p
		WHERE p.workspace_id = ?
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var summaries []plan.PlanSummary
	for rows.Next() {
		var s plan.PlanSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Status, &s.CreatedAt, &s.TaskCount, &s.DoneTasks); err != nil {
			return nil, fmt.Errorf("failed to scan plan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	return summaries, nil
}

// CreateStage creates a new stage
func (r *PlanRepository) CreateStage(ctx context.Context, st *plan.Stage) error {
	query := `
		INSERT INTO stages (id, plan_id, title, position, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, st.ID, st.PlanID, st.Title, st.Position, st.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create stage: %w", err)
	}
	return nil
}

// ListStages returns a plan's stages in position order
func (r *PlanRepository) ListStages(ctx context.Context, planID string) ([]plan.Stage, error) {
	query := `
		SELECT id, plan_id, title, position, created_at
		FROM stages
		WHERE plan_id = ?
		ORDER BY position ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	defer rows.Close()

	var stages []plan.Stage
	for rows.Next() {
		var st plan.Stage
		if err := rows.Scan(&st.ID, &st.PlanID, &st.Title, &st.Position, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stages: %w", err)
	}

	return stages, nil
}

// DeleteStage removes a stage; its tasks get stage_id = NULL via the FK
func (r *PlanRepository) DeleteStage(ctx context.Context, planID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM stages WHERE id = ? AND plan_id = ?`, id, planID)
	if err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
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

// CreateTask creates a new task
func (r *PlanRepository) CreateTask(ctx context.Context, t *plan.Task) error {
	query := `
		INSERT INTO tasks (id, plan_id, stage_id, title, status, due_at, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.PlanID, t.StageID, t.Title, t.Status, t.DueAt, t.CreatedAt, t.ModifiedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetTask retrieves a task by ID within a plan
func (r *PlanRepository) GetTask(ctx context.Context, planID, id string) (*plan.Task, error) {
	query := `
		SELECT id, plan_id, stage_id, title, status, due_at, created_at, modified_at
		FROM tasks
		WHERE id = ? AND plan_id = ?
	`

	var t plan.Task
	var stageID sql.NullString
	var dueAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id, planID).Scan(
		&t.ID, &t.PlanID, &stageID, &t.Title, &t.Status, &dueAt, &t.CreatedAt, &t.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if stageID.Valid {
		t.StageID = &stageID.String
	}
	if dueAt.Valid {
		t.DueAt = &dueAt.Time
	}

	return &t, nil
}

// UpdateTask updates a task
func (r *PlanRepository) UpdateTask(ctx context.Context, t *plan.Task) error {
	query := `
		UPDATE tasks
		SET stage_id = ?, title = ?, status = ?, due_at = ?, modified_at = ?
		WHERE id = ? AND plan_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.StageID, t.Title, t.Status, t.DueAt, t.ModifiedAt, t.ID, t.PlanID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update task: %w", err)
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

// DeleteTask removes a task
func (r *PlanRepository) DeleteTask(ctx context.Context, planID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND plan_id = ?`, id, planID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
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

// ListTasks returns a plan's tasks
func (r *PlanRepository) ListTasks(ctx context.Context, planID string) ([]plan.Task, error) {
	query := `
		SELECT id, plan_id, stage_id, title, status, due_at, created_at, modified_at
		FROM tasks
		WHERE plan_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []plan.Task
	for rows.Next() {
		var t plan.Task
		var stageID sql.NullString
		var dueAt sql.NullTime
		if err := rows.Scan(&t.ID, &t.PlanID, &stageID, &t.Title, &t.Status, &dueAt, &t.CreatedAt, &t.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if stageID.Valid {
			t.StageID = &stageID.String
		}
		if dueAt.Valid {
			t.DueAt = &dueAt.Time
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// CountTasks returns done and total task counts for a plan
func (r *PlanRepository) CountTasks(ctx context.Context, planID string) (int, int, error) {
	query := `
		SELECT
			COUNT(CASE WHEN status = 'done' THEN 1 END),
			COUNT(*)
		FROM tasks
		WHERE plan_id = ?
	`

	var done, total int
	if err := r.db.QueryRowContext(ctx, query, planID).Scan(&done, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return done, total, nil
}
