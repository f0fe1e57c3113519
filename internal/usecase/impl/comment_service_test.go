package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/mocks"
	"taskhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	taskRepo    *mocks.TaskRepository
	commentRepo *mocks.CommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	t.Helper()

	fixtures := commentServiceFixtures{
		taskRepo:    new(mocks.TaskRepository),
		commentRepo: new(mocks.CommentRepository),
	}
	fixtures.service = NewCommentService(CommentServiceParams{
		TaskRepo:    fixtures.taskRepo,
		CommentRepo: fixtures.commentRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

func TestCommentService_Add_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("Create", ctx, mock.MatchedBy(func(comment *entity.Comment) bool {
		return comment.Content == "looks good" && comment.TaskID == 31 && comment.UserID == 9
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Comment).ID = 88
	}).Return(nil)
	fx.commentRepo.On("FindByID", ctx, uint(88), uint(31)).Return(&entity.Comment{
		ID: 88, Content: "looks good", TaskID: 31, UserID: 9, Username: "alice",
	}, nil)

	view, err := fx.service.Add(ctx, 9, 31, &usecase.CommentInput{Content: "looks good"})

	require.NoError(t, err)
	assert.Equal(t, uint(88), view.ID)
	assert.Equal(t, "alice", view.Username)
}

func TestCommentService_Add_TaskNotOwned(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(44)).Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.Add(ctx, 9, 44, &usecase.CommentInput{Content: "hi"})

	require.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	fx.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Update_RequiresAuthorship(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	// A comment exists on the task but the caller did not write it, so the
	// tri-key lookup misses.
	fx.commentRepo.On("FindForAuthor", ctx, uint(88), uint(31), uint(9)).Return(nil, repository.ErrCommentNotFound)

	err := fx.service.Update(ctx, 9, 31, 88, &usecase.CommentInput{Content: "edited"})

	require.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	fx.commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommentService_Update_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := &entity.Comment{ID: 88, Content: "draft", CreatedAt: created, UpdatedAt: created, TaskID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("FindForAuthor", ctx, uint(88), uint(31), uint(9)).Return(stored, nil)
	fx.commentRepo.On("Update", ctx, mock.MatchedBy(func(comment *entity.Comment) bool {
		return comment.Content == "final" && comment.UpdatedAt.After(created)
	})).Return(nil)

	err := fx.service.Update(ctx, 9, 31, 88, &usecase.CommentInput{Content: "final"})

	require.NoError(t, err)
	fx.commentRepo.AssertExpectations(t)
}

func TestCommentService_Delete_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("Delete", ctx, uint(88), uint(31), uint(9)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 9, 31, 88))
}

func TestCommentService_Delete_NotAuthor(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("Delete", ctx, uint(88), uint(31), uint(9)).Return(repository.ErrCommentNotFound)

	err := fx.service.Delete(ctx, 9, 31, 88)

	require.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestCommentService_List_EmptyWhenTaskNotOwned(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(44)).Return(nil, repository.ErrTaskNotFound)

	views, err := fx.service.List(ctx, 9, 44)

	// Listing comments on an unreachable task is an empty result, not an
	// error.
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
	fx.commentRepo.AssertNotCalled(t, "ListByTask", mock.Anything, mock.Anything)
}

func TestCommentService_List_NewestFirst(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}
	stored := []*entity.Comment{
		{ID: 90, Content: "second", Username: "bob"},
		{ID: 88, Content: "first", Username: "alice"},
	}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("ListByTask", ctx, uint(31)).Return(stored, nil)

	views, err := fx.service.List(ctx, 9, 31)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint(90), views[0].ID)
	assert.Equal(t, "bob", views[0].Username)
}

func TestCommentService_Get_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("FindByID", ctx, uint(88), uint(31)).Return(&entity.Comment{ID: 88, Username: "alice"}, nil)

	view, err := fx.service.Get(ctx, 9, 31, 88)

	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
}

func TestCommentService_Get_UnknownComment(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	task := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(task, nil)
	fx.commentRepo.On("FindByID", ctx, uint(99), uint(31)).Return(nil, repository.ErrCommentNotFound)

	_, err := fx.service.Get(ctx, 9, 31, 99)

	require.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}
