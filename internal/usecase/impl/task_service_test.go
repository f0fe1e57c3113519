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

// taskServiceFixtures holds all test dependencies for task service tests.
// The transaction manager routes callbacks to the same repository mocks, so
// expectations cover both direct and transactional paths.
type taskServiceFixtures struct {
	service   usecase.TaskUsecase
	taskRepo  *mocks.TaskRepository
	tagRepo   *mocks.TagRepository
	txManager *mocks.TransactionManager
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	t.Helper()

	taskRepo := new(mocks.TaskRepository)
	tagRepo := new(mocks.TagRepository)
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{
			TaskRepository: taskRepo,
			TagRepository:  tagRepo,
		},
	}

	service := NewTaskService(TaskServiceParams{
		TxManager: txManager,
		TaskRepo:  taskRepo,
		TagRepo:   tagRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return taskServiceFixtures{
		service:   service,
		taskRepo:  taskRepo,
		tagRepo:   tagRepo,
		txManager: txManager,
	}
}

func expectTransaction(txManager *mocks.TransactionManager) {
	txManager.On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
}

func TestTaskService_List_PassesQueryThrough(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	dueBefore := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	query := repository.TaskQuery{
		Status:    "active",
		DueBefore: &dueBefore,
		Tag:       "urgent",
		SortBy:    "dueDate",
		Order:     "desc",
	}

	stored := []*entity.Task{
		{ID: 2, Title: "pay rent", UserID: 9, Tags: []string{"urgent"}},
		{ID: 1, Title: "file taxes", UserID: 9, Tags: nil},
	}
	fx.taskRepo.On("List", ctx, uint(9), query).Return(stored, nil)

	views, err := fx.service.List(ctx, 9, query)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "pay rent", views[0].Title)
	// A task without tags serializes as an empty list, not null.
	assert.NotNil(t, views[1].Tags)
	assert.Empty(t, views[1].Tags)
}

func TestTaskService_Get_NotOwnedBehavesAsAbsent(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(44)).Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.Get(ctx, 9, 44)

	require.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_Create_ResolvesAndAttachesTags(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	input := &usecase.CreateTaskInput{
		Title:   "plan trip",
		DueDate: &due,
		Tags:    []string{"travel", "family", "travel"},
	}

	expectTransaction(fx.txManager)
	fx.taskRepo.On("Create", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.Title == "plan trip" && task.UserID == 9
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Task).ID = 31
	}).Return(nil)

	// "travel" already exists; "family" is created on the fly.
	fx.tagRepo.On("FindByName", ctx, "travel").Return(&entity.Tag{ID: 5, Name: "travel"}, nil)
	fx.tagRepo.On("FindByName", ctx, "family").Return(nil, repository.ErrTagNotFound)
	fx.tagRepo.On("Create", ctx, mock.MatchedBy(func(tag *entity.Tag) bool {
		return tag.Name == "family"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Tag).ID = 6
	}).Return(nil)
	fx.taskRepo.On("AttachTag", ctx, uint(31), uint(5)).Return(nil).Once()
	fx.taskRepo.On("AttachTag", ctx, uint(31), uint(6)).Return(nil).Once()

	view, err := fx.service.Create(ctx, 9, input)

	require.NoError(t, err)
	assert.Equal(t, uint(31), view.ID)
	// The duplicate "travel" in the input collapses to a single link.
	assert.Equal(t, []string{"travel", "family"}, view.Tags)
	fx.taskRepo.AssertExpectations(t)
	fx.tagRepo.AssertExpectations(t)
}

func TestTaskService_Create_TagRaceFallsBackToReRead(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	expectTransaction(fx.txManager)
	fx.taskRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Task).ID = 31
	}).Return(nil)

	// A concurrent writer wins the insert race; the row is re-read.
	fx.tagRepo.On("FindByName", ctx, "travel").Return(nil, repository.ErrTagNotFound).Once()
	fx.tagRepo.On("Create", ctx, mock.Anything).Return(repository.ErrTagExists)
	fx.tagRepo.On("FindByName", ctx, "travel").Return(&entity.Tag{ID: 5, Name: "travel"}, nil).Once()
	fx.taskRepo.On("AttachTag", ctx, uint(31), uint(5)).Return(nil)

	_, err := fx.service.Create(ctx, 9, &usecase.CreateTaskInput{Title: "plan trip", Tags: []string{"travel"}})

	require.NoError(t, err)
	fx.tagRepo.AssertExpectations(t)
}

func TestTaskService_Update_PartialFields(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := &entity.Task{ID: 31, Title: "old title", Description: "keep me", DueDate: &due, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.taskRepo.On("Update", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.Title == "new title" && task.Description == "keep me" && task.DueDate.Equal(due)
	})).Return(nil)

	newTitle := "new title"
	err := fx.service.Update(ctx, 9, 31, &usecase.UpdateTaskInput{Title: &newTitle})

	require.NoError(t, err)
	fx.taskRepo.AssertExpectations(t)
}

func TestTaskService_Update_PointerToZeroClearsField(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	stored := &entity.Task{ID: 31, Title: "title", Description: "stale notes", UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.taskRepo.On("Update", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.Description == ""
	})).Return(nil)

	empty := ""
	err := fx.service.Update(ctx, 9, 31, &usecase.UpdateTaskInput{Description: &empty})

	require.NoError(t, err)
}

func TestTaskService_Update_NilInputIsNoOp(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := &entity.Task{ID: 31, Title: "title", Description: "notes", DueDate: &due, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.taskRepo.On("Update", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.Title == "title" && task.Description == "notes" && task.DueDate.Equal(due)
	})).Return(nil)

	// An update carrying no fields at all must succeed without touching
	// anything, not blow up.
	require.NoError(t, fx.service.Update(ctx, 9, 31, nil))
	fx.taskRepo.AssertExpectations(t)
}

func TestTaskService_Delete_RunsInTransaction(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	expectTransaction(fx.txManager)
	fx.taskRepo.On("Delete", ctx, uint(9), uint(31)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 9, 31))
	fx.txManager.AssertExpectations(t)
	fx.taskRepo.AssertExpectations(t)
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	expectTransaction(fx.txManager)
	fx.taskRepo.On("Delete", ctx, uint(9), uint(44)).Return(repository.ErrTaskNotFound)

	err := fx.service.Delete(ctx, 9, 44)

	require.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_Complete_AlreadyCompletedSucceeds(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	stored := &entity.Task{ID: 31, Title: "done already", IsCompleted: true, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.taskRepo.On("Update", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.IsCompleted
	})).Return(nil)

	require.NoError(t, fx.service.Complete(ctx, 9, 31))
}

func TestTaskService_Reopen_SetsIncomplete(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	stored := &entity.Task{ID: 31, IsCompleted: true, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.taskRepo.On("Update", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return !task.IsCompleted
	})).Return(nil)

	require.NoError(t, fx.service.Reopen(ctx, 9, 31))
}

func TestTaskService_ExtendDeadline_AcceptsEarlierDate(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	oldDue := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	newDue := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := &entity.Task{ID: 31, DueDate: &oldDue, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.taskRepo.On("Update", ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.DueDate != nil && task.DueDate.Equal(newDue)
	})).Return(nil)

	err := fx.service.ExtendDeadline(ctx, 9, 31, &usecase.ExtendDeadlineInput{NewDueDate: newDue})

	require.NoError(t, err)
}

func TestTaskService_AddTags_SkipsAlreadyLinked(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	stored := &entity.Task{ID: 31, UserID: 9, Tags: []string{"travel"}}

	expectTransaction(fx.txManager)
	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.tagRepo.On("FindByName", ctx, "family").Return(&entity.Tag{ID: 6, Name: "family"}, nil)
	fx.taskRepo.On("AttachTag", ctx, uint(31), uint(6)).Return(nil).Once()

	err := fx.service.AddTags(ctx, 9, 31, &usecase.AddTagsInput{Tags: []string{"travel", "family"}})

	require.NoError(t, err)
	// "travel" was already linked, so only "family" is resolved.
	fx.tagRepo.AssertNotCalled(t, "FindByName", mock.Anything, "travel")
	fx.taskRepo.AssertExpectations(t)
}

func TestTaskService_RemoveTag_UnknownTag(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	stored := &entity.Task{ID: 31, UserID: 9, Tags: []string{"travel"}}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.tagRepo.On("FindByName", ctx, "nope").Return(nil, repository.ErrTagNotFound)

	err := fx.service.RemoveTag(ctx, 9, 31, "nope")

	require.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}

func TestTaskService_RemoveTag_NotLinked(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	stored := &entity.Task{ID: 31, UserID: 9}

	fx.taskRepo.On("FindByID", ctx, uint(9), uint(31)).Return(stored, nil)
	fx.tagRepo.On("FindByName", ctx, "travel").Return(&entity.Tag{ID: 5, Name: "travel"}, nil)
	fx.taskRepo.On("DetachTag", ctx, uint(31), uint(5)).Return(repository.ErrTagNotLinked)

	err := fx.service.RemoveTag(ctx, 9, 31, "travel")

	require.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}
