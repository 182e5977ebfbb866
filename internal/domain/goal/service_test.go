package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fplanhq/fplan/internal/domain/goal"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/fplanhq/fplan/internal/repository/mocks"
)

func newGoalService(repo *mocks.GoalRepository, plans *mocks.PlanRepository) *goal.Service {
	activities := &mocks.ActivityRepository{}
	activities.On("Log", mock.Anything, mock.Anything).Return(nil).Maybe()
	return goal.NewService(repo, plans, activities, nil)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.GoalRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)
	repo.On("LinkPlan", ctx, mock.Anything, "plan1").Return(nil)

	svc := newGoalService(repo, &mocks.PlanRepository{})
	target := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	g, err := svc.Create(ctx, "user1", goal.CreateRequest{
		WorkspaceID: "ws1",
		Title:       "Run a marathon",
		TargetDate:  &target,
		PlanIDs:     []string{"plan1"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, g.ID)
	require.Equal(t, []string{"plan1"}, g.PlanIDs)
	repo.AssertExpectations(t)
}

func TestCreate_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService(&mocks.GoalRepository{}, &mocks.PlanRepository{})

	_, err := svc.Create(ctx, "user1", goal.CreateRequest{WorkspaceID: "ws1"})
	require.ErrorIs(t, err, goal.ErrInvalidInput)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.GoalRepository{}
	repo.On("Get", ctx, "ws1", "missing").Return((*goal.Goal)(nil), repository.ErrNotFound)

	svc := newGoalService(repo, &mocks.PlanRepository{})
	_, err := svc.Get(ctx, "ws1", "missing")
	require.ErrorIs(t, err, goal.ErrGoalNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.GoalRepository{}
	repo.On("Get", ctx, "ws1", "goal1").Return(&goal.Goal{
		ID: "goal1", WorkspaceID: "ws1", Title: "Run a marathon",
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newGoalService(repo, &mocks.PlanRepository{})
	newTitle := "Run a half marathon"
	g, err := svc.Update(ctx, "ws1", goal.UpdateRequest{ID: "goal1", Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Run a half marathon", g.Title)
}

func TestLinkPlan_GoalMissing(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.GoalRepository{}
	repo.On("Get", ctx, "ws1", "missing").Return((*goal.Goal)(nil), repository.ErrNotFound)

	svc := newGoalService(repo, &mocks.PlanRepository{})
	err := svc.LinkPlan(ctx, "ws1", "missing", "plan1")
	require.ErrorIs(t, err, goal.ErrGoalNotFound)
	repo.AssertNotCalled(t, "LinkPlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.GoalRepository{}
	repo.On("Get", ctx, "ws1", "goal1").Return(&goal.Goal{
		ID: "goal1", WorkspaceID: "ws1", Title: "Run a marathon",
		PlanIDs: []string{"plan1", "plan2"},
	}, nil)

	plans := &mocks.PlanRepository{}
	plans.On("CountTasks", ctx, "plan1").Return(2, 5, nil)
	plans.On("CountTasks", ctx, "plan2").Return(1, 3, nil)

	svc := newGoalService(repo, plans)
	progress, err := svc.Progress(ctx, "ws1", "goal1")
	require.NoError(t, err)
	require.Equal(t, 3, progress.DoneTasks)
	require.Equal(t, 8, progress.TotalTasks)
}

func TestProgress_NoPlans(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.GoalRepository{}
	repo.On("Get", ctx, "ws1", "goal1").Return(&goal.Goal{
		ID: "goal1", WorkspaceID: "ws1", Title: "Unlinked",
	}, nil)

	svc := newGoalService(repo, &mocks.PlanRepository{})
	progress, err := svc.Progress(ctx, "ws1", "goal1")
	require.NoError(t, err)
	require.Equal(t, 0, progress.TotalTasks)
}
