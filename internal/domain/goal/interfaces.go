package goal

import (
	"context"

	"github.com/fplanhq/fplan/internal/domain/activity"
)

// Repository provides persistence for goals and their plan links.
type Repository interface {
	Create(ctx context.Context, g *Goal) error
	Get(ctx context.Context, workspaceID, id string) (*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]Goal, error)
	LinkPlan(ctx context.Context, goalID, planID string) error
	UnlinkPlan(ctx context.Context, goalID, planID string) error
}

// PlanRepository provides task counts for progress derivation.
type PlanRepository interface {
	CountTasks(ctx context.Context, planID string) (done, total int, err error)
}

// ActivityRepository logs goal activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
