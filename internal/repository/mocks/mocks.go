package mocks

import (
	"context"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/domain/focus"
	"github.com/fplanhq/fplan/internal/domain/goal"
	"github.com/fplanhq/fplan/internal/domain/plan"
	"github.com/fplanhq/fplan/internal/domain/workspace"
	"github.com/stretchr/testify/mock"
)

// WorkspaceRepository is a mock for the domain workspace.Repository.
type WorkspaceRepository struct {
	mock.Mock
}

func (m *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *WorkspaceRepository) Get(ctx context.Context, id string) (*workspace.Workspace, error) {
	args := m.Called(ctx, id)
	if ws, ok := args.Get(0).(*workspace.Workspace); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkspaceRepository) GetDefault(ctx context.Context) (*workspace.Workspace, error) {
	args := m.Called(ctx)
	if ws, ok := args.Get(0).(*workspace.Workspace); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkspaceRepository) List(ctx context.Context) ([]workspace.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]workspace.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PlanRepository is a mock for the domain plan.Repository.
type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PlanRepository) Get(ctx context.Context, workspaceID, id string) (*plan.Plan, error) {
	args := m.Called(ctx, workspaceID, id)
	if p, ok := args.Get(0).(*plan.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PlanRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *PlanRepository) List(ctx context.Context, workspaceID string) ([]plan.PlanSummary, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]plan.PlanSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlanRepository) CreateStage(ctx context.Context, st *plan.Stage) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *PlanRepository) ListStages(ctx context.Context, planID string) ([]plan.Stage, error) {
	args := m.Called(ctx, planID)
	if list, ok := args.Get(0).([]plan.Stage); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlanRepository) DeleteStage(ctx context.Context, planID, id string) error {
	args := m.Called(ctx, planID, id)
	return args.Error(0)
}

func (m *PlanRepository) CreateTask(ctx context.Context, t *plan.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *PlanRepository) GetTask(ctx context.Context, planID, id string) (*plan.Task, error) {
	args := m.Called(ctx, planID, id)
	if t, ok := args.Get(0).(*plan.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlanRepository) UpdateTask(ctx context.Context, t *plan.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *PlanRepository) DeleteTask(ctx context.Context, planID, id string) error {
	args := m.Called(ctx, planID, id)
	return args.Error(0)
}

func (m *PlanRepository) ListTasks(ctx context.Context, planID string) ([]plan.Task, error) {
	args := m.Called(ctx, planID)
	if list, ok := args.Get(0).([]plan.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlanRepository) CountTasks(ctx context.Context, planID string) (int, int, error) {
	args := m.Called(ctx, planID)
	return args.Int(0), args.Int(1), args.Error(2)
}

// GoalRepository is a mock for the domain goal.Repository.
type GoalRepository struct {
	mock.Mock
}

func (m *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *GoalRepository) Get(ctx context.Context, workspaceID, id string) (*goal.Goal, error) {
	args := m.Called(ctx, workspaceID, id)
	if g, ok := args.Get(0).(*goal.Goal); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *GoalRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *GoalRepository) List(ctx context.Context, workspaceID string) ([]goal.Goal, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]goal.Goal); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GoalRepository) LinkPlan(ctx context.Context, goalID, planID string) error {
	args := m.Called(ctx, goalID, planID)
	return args.Error(0)
}

func (m *GoalRepository) UnlinkPlan(ctx context.Context, goalID, planID string) error {
	args := m.Called(ctx, goalID, planID)
	return args.Error(0)
}

// EventRepository is a mock for calendar.EventRepository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, ev *calendar.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *EventRepository) Get(ctx context.Context, workspaceID, id string) (*calendar.Event, error) {
	args := m.Called(ctx, workspaceID, id)
	if ev, ok := args.Get(0).(*calendar.Event); ok {
		return ev, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, ev *calendar.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *EventRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]calendar.Event, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]calendar.Event); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReminderRepository is a mock for calendar.ReminderRepository.
type ReminderRepository struct {
	mock.Mock
}

func (m *ReminderRepository) Create(ctx context.Context, rem *calendar.Reminder) error {
	args := m.Called(ctx, rem)
	return args.Error(0)
}

func (m *ReminderRepository) Get(ctx context.Context, workspaceID, id string) (*calendar.Reminder, error) {
	args := m.Called(ctx, workspaceID, id)
	if rem, ok := args.Get(0).(*calendar.Reminder); ok {
		return rem, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReminderRepository) Update(ctx context.Context, rem *calendar.Reminder) error {
	args := m.Called(ctx, rem)
	return args.Error(0)
}

func (m *ReminderRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *ReminderRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]calendar.Reminder, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]calendar.Reminder); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// FocusSessionRepository is a mock for focus.SessionRepository.
type FocusSessionRepository struct {
	mock.Mock
}

func (m *FocusSessionRepository) Insert(ctx context.Context, sess *focus.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *FocusSessionRepository) Get(ctx context.Context, id string) (*focus.Session, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(*focus.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FocusSessionRepository) Update(ctx context.Context, sess *focus.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *FocusSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FocusSessionRepository) FindActiveByUser(ctx context.Context, userID, workspaceID string) (*focus.Session, error) {
	args := m.Called(ctx, userID, workspaceID)
	if sess, ok := args.Get(0).(*focus.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FocusSessionRepository) FindCompletedInRange(ctx context.Context, userID, workspaceID string, from, to time.Time) ([]focus.Session, error) {
	args := m.Called(ctx, userID, workspaceID, from, to)
	if list, ok := args.Get(0).([]focus.Session); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for the domain activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, workspaceID string, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
