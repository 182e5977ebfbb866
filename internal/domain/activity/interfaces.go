package activity

import "context"

// Repository provides persistence operations for feed entries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	List(ctx context.Context, workspaceID string, opts ListOptions) ([]Entry, error)
}
