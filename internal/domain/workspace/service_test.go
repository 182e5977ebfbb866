package workspace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fplanhq/fplan/internal/domain/workspace"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/fplanhq/fplan/internal/repository/mocks"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.WorkspaceRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.Create(ctx, workspace.CreateRequest{Name: "Work"})
	require.NoError(t, err)
	require.NotEmpty(t, ws.ID)
	require.Equal(t, "Work", ws.Name)
	repo.AssertExpectations(t)
}

func TestCreate_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc := workspace.NewService(&mocks.WorkspaceRepository{}, nil)

	_, err := svc.Create(ctx, workspace.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, workspace.ErrInvalidInput)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.WorkspaceRepository{}
	repo.On("Get", ctx, "missing").Return((*workspace.Workspace)(nil), repository.ErrNotFound)

	svc := workspace.NewService(repo, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)
}

func TestGetDefault_CreatesWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.WorkspaceRepository{}
	repo.On("GetDefault", ctx).Return((*workspace.Workspace)(nil), repository.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.GetDefault(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ws.ID)
	require.Equal(t, "Personal", ws.Name)
	repo.AssertExpectations(t)
}

func TestGetDefault_ReturnsExisting(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.WorkspaceRepository{}
	repo.On("GetDefault", ctx).Return(&workspace.Workspace{ID: "ws1", Name: "Work"}, nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "ws1", ws.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
