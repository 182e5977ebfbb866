package calendar

import (
	"context"

	"github.com/fplanhq/fplan/internal/domain/activity"
)

// EventRepository provides persistence for events.
type EventRepository interface {
	Create(ctx context.Context, ev *Event) error
	Get(ctx context.Context, workspaceID, id string) (*Event, error)
	Update(ctx context.Context, ev *Event) error
	Delete(ctx context.Context, workspaceID, id string) error
	ListByWorkspace(ctx context.Context, workspaceID string) ([]Event, error)
}

// ReminderRepository provides persistence for reminders.
type ReminderRepository interface {
	Create(ctx context.Context, rem *Reminder) error
	Get(ctx context.Context, workspaceID, id string) (*Reminder, error)
	Update(ctx context.Context, rem *Reminder) error
	Delete(ctx context.Context, workspaceID, id string) error
	ListByWorkspace(ctx context.Context, workspaceID string) ([]Reminder, error)
}

// ActivityRepository logs calendar activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
