package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles activity feed operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Log appends a feed entry, stamping CreatedAt if missing.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.WorkspaceID == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// Recent lists feed entries for a workspace, newest first.
func (s *Service) Recent(ctx context.Context, workspaceID string, opts ListOptions) ([]Entry, error) {
	if workspaceID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, workspaceID, opts)
}
