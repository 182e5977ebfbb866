package plan

import (
	"context"

	"github.com/fplanhq/fplan/internal/domain/activity"
)

// Repository provides persistence for the plan aggregate: plans, their
// stages, and their tasks.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	Get(ctx context.Context, workspaceID, id string) (*Plan, error)
	Update(ctx context.Context, p *Plan) error
	// Delete removes a plan; stages and tasks cascade at the data layer.
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]PlanSummary, error)

	CreateStage(ctx context.Context, st *Stage) error
	ListStages(ctx context.Context, planID string) ([]Stage, error)
	DeleteStage(ctx context.Context, planID, id string) error

	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, planID, id string) (*Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	DeleteTask(ctx context.Context, planID, id string) error
	ListTasks(ctx context.Context, planID string) ([]Task, error)
	// CountTasks returns done and total task counts for a plan.
	CountTasks(ctx context.Context, planID string) (done, total int, err error)
}

// ActivityRepository logs plan activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
