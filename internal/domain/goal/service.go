package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/google/uuid"
)

// Service handles goal operations.
type Service struct {
	repo       Repository
	plans      PlanRepository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new goal service.
func NewService(repo Repository, plans PlanRepository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, plans: plans, activities: activities, logger: logger}
}

// CreateRequest describes a goal creation request.
type CreateRequest struct {
	WorkspaceID string
	Title       string
	Description string
	TargetDate  *time.Time
	PlanIDs     []string
}

// UpdateRequest describes a goal update. Nil fields are unchanged.
type UpdateRequest struct {
	ID          string
	Title       *string
	Description *string
	TargetDate  *time.Time
}

// Create creates a new goal and links any given plans.
func (s *Service) Create(ctx context.Context, actorID string, req CreateRequest) (*Goal, error) {
	if strings.TrimSpace(req.WorkspaceID) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}

	g := &Goal{
		ID:          uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	for _, planID := range req.PlanIDs {
		if err := s.repo.LinkPlan(ctx, g.ID, planID); err != nil {
			return nil, fmt.Errorf("linking plan: %w", err)
		}
		g.PlanIDs = append(g.PlanIDs, planID)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: g.WorkspaceID,
			ActorID:     actorID,
			Kind:        activity.KindGoalCreated,
			SubjectID:   &g.ID,
			Summary:     fmt.Sprintf("created goal %q", g.Title),
		})
	}

	return g, nil
}

// Get fetches a goal with its linked plan IDs.
func (s *Service) Get(ctx context.Context, workspaceID, id string) (*Goal, error) {
	g, err := s.repo.Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("getting goal: %w", err)
	}
	return g, nil
}

// Update modifies a goal.
func (s *Service) Update(ctx context.Context, workspaceID string, req UpdateRequest) (*Goal, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	g, err := s.Get(ctx, workspaceID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		g.Title = *req.Title
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.TargetDate != nil {
		g.TargetDate = req.TargetDate
	}

	if err := s.repo.Update(ctx, g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	return g, nil
}

// Delete removes a goal; plan links cascade.
func (s *Service) Delete(ctx context.Context, workspaceID, id string) error {
	if err := s.repo.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

// List returns a workspace's goals.
func (s *Service) List(ctx context.Context, workspaceID string) ([]Goal, error) {
	return s.repo.List(ctx, workspaceID)
}

// LinkPlan attaches a plan to a goal.
func (s *Service) LinkPlan(ctx context.Context, workspaceID, goalID, planID string) error {
	if _, err := s.Get(ctx, workspaceID, goalID); err != nil {
		return err
	}
	if err := s.repo.LinkPlan(ctx, goalID, planID); err != nil {
		return fmt.Errorf("linking plan: %w", err)
	}
	return nil
}

// UnlinkPlan detaches a plan from a goal.
func (s *Service) UnlinkPlan(ctx context.Context, workspaceID, goalID, planID string) error {
	if _, err := s.Get(ctx, workspaceID, goalID); err != nil {
		return err
	}
	if err := s.repo.UnlinkPlan(ctx, goalID, planID); err != nil {
		return fmt.Errorf("unlinking plan: %w", err)
	}
	return nil
}

// Progress sums done and total task counts across a goal's linked plans.
func (s *Service) Progress(ctx context.Context, workspaceID, goalID string) (*Progress, error) {
	g, err := s.Get(ctx, workspaceID, goalID)
	if err != nil {
		return nil, err
	}

	var progress Progress
	for _, planID := range g.PlanIDs {
		done, total, err := s.plans.CountTasks(ctx, planID)
		if err != nil {
			return nil, fmt.Errorf("counting tasks: %w", err)
		}
		progress.DoneTasks += done
		progress.TotalTasks += total
	}
	return &progress, nil
}
