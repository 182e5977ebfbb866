package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fplanhq/fplan/internal/domain/plan"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/fplanhq/fplan/internal/repository/mocks"
)

func newPlanService(repo *mocks.PlanRepository) *plan.Service {
	activities := &mocks.ActivityRepository{}
	activities.On("Log", mock.Anything, mock.Anything).Return(nil).Maybe()
	return plan.NewService(repo, activities, nil)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := newPlanService(repo)
	p, err := svc.Create(ctx, "user1", plan.CreateRequest{WorkspaceID: "ws1", Title: "Ship v1"})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, plan.StatusActive, p.Status)
	repo.AssertExpectations(t)
}

func TestCreate_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newPlanService(&mocks.PlanRepository{})

	_, err := svc.Create(ctx, "user1", plan.CreateRequest{WorkspaceID: "ws1", Title: "  "})
	require.ErrorIs(t, err, plan.ErrInvalidInput)

	_, err = svc.Create(ctx, "user1", plan.CreateRequest{Title: "No workspace"})
	require.ErrorIs(t, err, plan.ErrInvalidInput)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Get", ctx, "ws1", "missing").Return((*plan.Plan)(nil), repository.ErrNotFound)

	svc := newPlanService(repo)
	_, err := svc.Get(ctx, "ws1", "missing")
	require.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestUpdate_Status(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Get", ctx, "ws1", "plan1").Return(&plan.Plan{
		ID: "plan1", WorkspaceID: "ws1", Title: "Ship v1", Status: plan.StatusActive,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newPlanService(repo)
	completed := plan.StatusCompleted
	p, err := svc.Update(ctx, "user1", "ws1", plan.UpdateRequest{ID: "plan1", Status: &completed})
	require.NoError(t, err)
	require.Equal(t, plan.StatusCompleted, p.Status)
	repo.AssertExpectations(t)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Get", ctx, "ws1", "plan1").Return(&plan.Plan{
		ID: "plan1", WorkspaceID: "ws1", Title: "Ship v1", Status: plan.StatusActive,
	}, nil)

	svc := newPlanService(repo)
	bogus := plan.PlanStatus("paused")
	_, err := svc.Update(ctx, "user1", "ws1", plan.UpdateRequest{ID: "plan1", Status: &bogus})
	require.ErrorIs(t, err, plan.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddStage(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Get", ctx, "ws1", "plan1").Return(&plan.Plan{ID: "plan1", WorkspaceID: "ws1"}, nil)
	repo.On("CreateStage", ctx, mock.Anything).Return(nil)

	svc := newPlanService(repo)
	st, err := svc.AddStage(ctx, "ws1", "plan1", "Design", 0)
	require.NoError(t, err)
	require.Equal(t, "plan1", st.PlanID)
	require.Equal(t, "Design", st.Title)
}

func TestAddStage_PlanMissing(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Get", ctx, "ws1", "missing").Return((*plan.Plan)(nil), repository.ErrNotFound)

	svc := newPlanService(repo)
	_, err := svc.AddStage(ctx, "ws1", "missing", "Design", 0)
	require.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("Get", ctx, "ws1", "plan1").Return(&plan.Plan{ID: "plan1", WorkspaceID: "ws1"}, nil)
	repo.On("CreateTask", ctx, mock.Anything).Return(nil)

	svc := newPlanService(repo)
	task, err := svc.CreateTask(ctx, "user1", "ws1", plan.CreateTaskRequest{PlanID: "plan1", Title: "Write docs"})
	require.NoError(t, err)
	require.Equal(t, plan.TaskTodo, task.Status)
	repo.AssertExpectations(t)
}

func TestTransitionTask(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("GetTask", ctx, "plan1", "task1").Return(&plan.Task{
		ID: "task1", PlanID: "plan1", Title: "Write docs", Status: plan.TaskTodo,
	}, nil)
	repo.On("UpdateTask", ctx, mock.Anything).Return(nil)

	svc := newPlanService(repo)
	task, err := svc.TransitionTask(ctx, "user1", "ws1", "plan1", "task1", plan.TaskDoing)
	require.NoError(t, err)
	require.Equal(t, plan.TaskDoing, task.Status)
}

func TestTransitionTask_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PlanRepository{}
	repo.On("GetTask", ctx, "plan1", "task1").Return(&plan.Task{
		ID: "task1", PlanID: "plan1", Status: plan.TaskDone,
	}, nil)

	svc := newPlanService(repo)
	// Done can only reopen to todo
	_, err := svc.TransitionTask(ctx, "user1", "ws1", "plan1", "task1", plan.TaskDoing)
	require.ErrorIs(t, err, plan.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
}

func TestUpdateTask_ClearStage(t *testing.T) {
	ctx := context.Background()
	stageID := "stage1"
	repo := &mocks.PlanRepository{}
	repo.On("GetTask", ctx, "plan1", "task1").Return(&plan.Task{
		ID: "task1", PlanID: "plan1", Title: "Write docs", StageID: &stageID, Status: plan.TaskTodo,
	}, nil)
	repo.On("UpdateTask", ctx, mock.Anything).Return(nil)

	svc := newPlanService(repo)
	empty := ""
	task, err := svc.UpdateTask(ctx, plan.UpdateTaskRequest{PlanID: "plan1", ID: "task1", StageID: &empty})
	require.NoError(t, err)
	require.Nil(t, task.StageID)
}

func TestValidateTaskTransition(t *testing.T) {
	require.NoError(t, plan.ValidateTaskTransition(plan.TaskTodo, plan.TaskDoing))
	require.NoError(t, plan.ValidateTaskTransition(plan.TaskTodo, plan.TaskDone))
	require.NoError(t, plan.ValidateTaskTransition(plan.TaskDoing, plan.TaskTodo))
	require.NoError(t, plan.ValidateTaskTransition(plan.TaskDone, plan.TaskTodo))
	require.ErrorIs(t, plan.ValidateTaskTransition(plan.TaskTodo, plan.TaskTodo), plan.ErrInvalidTransition)
	require.ErrorIs(t, plan.ValidateTaskTransition(plan.TaskDone, plan.TaskDone), plan.ErrInvalidTransition)
}
