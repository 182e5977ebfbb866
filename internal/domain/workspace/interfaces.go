package workspace

import "context"

// Repository provides persistence for workspaces.
type Repository interface {
	Create(ctx context.Context, ws *Workspace) error
	Get(ctx context.Context, id string) (*Workspace, error)
	GetDefault(ctx context.Context) (*Workspace, error)
	List(ctx context.Context) ([]Summary, error)
}
