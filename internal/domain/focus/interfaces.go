package focus

import (
	"context"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
)

// SessionRepository provides persistence for focus sessions.
type SessionRepository interface {
	Insert(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
	// FindActiveByUser returns the user's active session in a workspace, or
	// repository.ErrNotFound when none exists.
	FindActiveByUser(ctx context.Context, userID, workspaceID string) (*Session, error)
	// FindCompletedInRange returns completed sessions whose StartedAt falls
	// within [from, to].
	FindCompletedInRange(ctx context.Context, userID, workspaceID string, from, to time.Time) ([]Session, error)
}

// ActivityRepository logs focus activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
