package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fplanhq/fplan/internal/repository"
	"github.com/google/uuid"
)

// Service handles workspace operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new workspace service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines workspace creation inputs.
type CreateRequest struct {
	ID          string
	Name        string
	Description string
}

// Create creates a new workspace.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Workspace, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	ws := &Workspace{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	return ws, nil
}

// Get fetches a workspace by ID.
func (s *Service) Get(ctx context.Context, id string) (*Workspace, error) {
	ws, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return ws, nil
}

// GetDefault returns the oldest workspace, creating one if none exist.
func (s *Service) GetDefault(ctx context.Context) (*Workspace, error) {
	ws, err := s.repo.GetDefault(ctx)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("getting default workspace: %w", err)
	}

	return s.Create(ctx, CreateRequest{Name: "Personal"})
}

// List returns workspace summaries.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}
