package plan

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

// Service handles plan, stage, and task operations.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new plan service.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// CreateRequest describes a plan creation request.
type CreateRequest struct {
	WorkspaceID string
	Title       string
	Description string
}

// UpdateRequest describes a plan update. Nil fields are unchanged.
type UpdateRequest struct {
	ID          string
	Title       *string
	Description *string
	Status      *PlanStatus
}

// CreateTaskRequest describes a task creation request.
type CreateTaskRequest struct {
	PlanID  string
	StageID *string
	Title   string
	DueAt   *time.Time
}

// UpdateTaskRequest describes a task update. Nil fields are unchanged.
type UpdateTaskRequest struct {
	PlanID  string
	ID      string
	Title   *string
	StageID *string
	DueAt   *time.Time
}

// Create creates a new plan in active status.
func (s *Service) Create(ctx context.Context, actorID string, req CreateRequest) (*Plan, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Plan{
		ID:          uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusActive,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: p.WorkspaceID,
			ActorID:     actorID,
			Kind:        activity.KindPlanCreated,
			SubjectID:   &p.ID,
			Summary:     fmt.Sprintf("created plan %q", p.Title),
		})
	}

	return p, nil
}

// Get fetches a plan by ID.
func (s *Service) Get(ctx context.Context, workspaceID, id string) (*Plan, error) {
	p, err := s.repo.Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("getting plan: %w", err)
	}
	return p, nil
}

// Update modifies a plan.
func (s *Service) Update(ctx context.Context, actorID, workspaceID string, req UpdateRequest) (*Plan, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	p, err := s.Get(ctx, workspaceID, req.ID)
	if err != nil {
		return nil, err
	}

	completed := false
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		switch *req.Status {
		case StatusActive, StatusCompleted, StatusArchived:
		default:
			return nil, ErrInvalidInput
		}
		completed = *req.Status == StatusCompleted && p.Status != StatusCompleted
		p.Status = *req.Status
	}
	p.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("updating plan: %w", err)
	}

	if completed && s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: p.WorkspaceID,
			ActorID:     actorID,
			Kind:        activity.KindPlanCompleted,
			SubjectID:   &p.ID,
			Summary:     fmt.Sprintf("completed plan %q", p.Title),
		})
	}

	return p, nil
}

// Delete removes a plan together with its stages and tasks.
func (s *Service) Delete(ctx context.Context, workspaceID, id string) error {
	if err := s.repo.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

// List returns plan summaries for a workspace.
func (s *Service) List(ctx context.Context, workspaceID string) ([]PlanSummary, error) {
	return s.repo.List(ctx, workspaceID)
}

// AddStage appends a stage to a plan.
func (s *Service) AddStage(ctx context.Context, workspaceID, planID, title string, position int) (*Stage, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.Get(ctx, workspaceID, planID); err != nil {
		return nil, err
	}

	st := &Stage{
		ID:        uuid.NewString(),
		PlanID:    planID,
		Title:     title,
		Position:  position,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateStage(ctx, st); err != nil {
		return nil, fmt.Errorf("creating stage: %w", err)
	}
	return st, nil
}

// ListStages returns a plan's stages in position order.
func (s *Service) ListStages(ctx context.Context, planID string) ([]Stage, error) {
	return s.repo.ListStages(ctx, planID)
}

// DeleteStage removes a stage; its tasks become stageless.
func (s *Service) DeleteStage(ctx context.Context, planID, id string) error {
	if err := s.repo.DeleteStage(ctx, planID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStageNotFound
		}
		return fmt.Errorf("deleting stage: %w", err)
	}
	return nil
}

// CreateTask adds a task to a plan.
func (s *Service) CreateTask(ctx context.Context, actorID, workspaceID string, req CreateTaskRequest) (*Task, error) {
	if strings.TrimSpace(req.Title) == "" || req.PlanID == "" {
		return nil, ErrInvalidInput
	}
	p, err := s.Get(ctx, workspaceID, req.PlanID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Task{
		ID:         uuid.NewString(),
		PlanID:     req.PlanID,
		StageID:    req.StageID,
		Title:      req.Title,
		Status:     TaskTodo,
		DueAt:      req.DueAt,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: p.WorkspaceID,
			ActorID:     actorID,
			Kind:        activity.KindTaskCreated,
			SubjectID:   &t.ID,
			Summary:     fmt.Sprintf("added task %q", t.Title),
		})
	}

	return t, nil
}

// UpdateTask modifies a task's title, stage, or due date.
func (s *Service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*Task, error) {
	if req.ID == "" || req.PlanID == "" {
		return nil, ErrInvalidInput
	}
	t, err := s.getTask(ctx, req.PlanID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		t.Title = *req.Title
	}
	if req.StageID != nil {
		if *req.StageID == "" {
			t.StageID = nil
		} else {
			t.StageID = req.StageID
		}
	}
	if req.DueAt != nil {
		t.DueAt = req.DueAt
	}
	t.ModifiedAt = time.Now()

	if err := s.repo.UpdateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return t, nil
}

// TransitionTask moves a task through the todo/doing/done workflow.
func (s *Service) TransitionTask(ctx context.Context, actorID, workspaceID, planID, taskID string, to TaskStatus) (*Task, error) {
	t, err := s.getTask(ctx, planID, taskID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTaskTransition(t.Status, to); err != nil {
		return nil, err
	}

	t.Status = to
	t.ModifiedAt = time.Now()
	if err := s.repo.UpdateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	if to == TaskDone && s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: workspaceID,
			ActorID:     actorID,
			Kind:        activity.KindTaskCompleted,
			SubjectID:   &t.ID,
			Summary:     fmt.Sprintf("completed task %q", t.Title),
		})
	}

	return t, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, planID, id string) error {
	if err := s.repo.DeleteTask(ctx, planID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// ListTasks returns a plan's tasks.
func (s *Service) ListTasks(ctx context.Context, planID string) ([]Task, error) {
	return s.repo.ListTasks(ctx, planID)
}

func (s *Service) getTask(ctx context.Context, planID, id string) (*Task, error) {
	t, err := s.repo.GetTask(ctx, planID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}
