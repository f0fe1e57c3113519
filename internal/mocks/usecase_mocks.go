package mocks

import (
	"context"

	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// AuthUsecase is a mock of usecase.AuthUsecase.
type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// TaskUsecase is a mock of usecase.TaskUsecase.
type TaskUsecase struct {
	mock.Mock
}

func (m *TaskUsecase) List(ctx context.Context, userID uint, query repository.TaskQuery) ([]*usecase.TaskView, error) {
	args := m.Called(ctx, userID, query)
	if views, ok := args.Get(0).([]*usecase.TaskView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TaskUsecase) Get(ctx context.Context, userID, taskID uint) (*usecase.TaskView, error) {
	args := m.Called(ctx, userID, taskID)
	if view, ok := args.Get(0).(*usecase.TaskView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TaskUsecase) Create(ctx context.Context, userID uint, input *usecase.CreateTaskInput) (*usecase.TaskView, error) {
	args := m.Called(ctx, userID, input)
	if view, ok := args.Get(0).(*usecase.TaskView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TaskUsecase) Update(ctx context.Context, userID, taskID uint, input *usecase.UpdateTaskInput) error {
	return m.Called(ctx, userID, taskID, input).Error(0)
}

func (m *TaskUsecase) Delete(ctx context.Context, userID, taskID uint) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *TaskUsecase) Complete(ctx context.Context, userID, taskID uint) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *TaskUsecase) Reopen(ctx context.Context, userID, taskID uint) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *TaskUsecase) ExtendDeadline(ctx context.Context, userID, taskID uint, input *usecase.ExtendDeadlineInput) error {
	return m.Called(ctx, userID, taskID, input).Error(0)
}

func (m *TaskUsecase) AddTags(ctx context.Context, userID, taskID uint, input *usecase.AddTagsInput) error {
	return m.Called(ctx, userID, taskID, input).Error(0)
}

func (m *TaskUsecase) RemoveTag(ctx context.Context, userID, taskID uint, tagName string) error {
	return m.Called(ctx, userID, taskID, tagName).Error(0)
}

// CommentUsecase is a mock of usecase.CommentUsecase.
type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Add(ctx context.Context, userID, taskID uint, input *usecase.CommentInput) (*usecase.CommentView, error) {
	args := m.Called(ctx, userID, taskID, input)
	if view, ok := args.Get(0).(*usecase.CommentView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentUsecase) Update(ctx context.Context, userID, taskID, commentID uint, input *usecase.CommentInput) error {
	return m.Called(ctx, userID, taskID, commentID, input).Error(0)
}

func (m *CommentUsecase) Delete(ctx context.Context, userID, taskID, commentID uint) error {
	return m.Called(ctx, userID, taskID, commentID).Error(0)
}

func (m *CommentUsecase) List(ctx context.Context, userID, taskID uint) ([]*usecase.CommentView, error) {
	args := m.Called(ctx, userID, taskID)
	if views, ok := args.Get(0).([]*usecase.CommentView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentUsecase) Get(ctx context.Context, userID, taskID, commentID uint) (*usecase.CommentView, error) {
	args := m.Called(ctx, userID, taskID, commentID)
	if view, ok := args.Get(0).(*usecase.CommentView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

// ProfileUsecase is a mock of usecase.ProfileUsecase.
type ProfileUsecase struct {
	mock.Mock
}

func (m *ProfileUsecase) GetProfile(ctx context.Context, userID uint) (*usecase.UserProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*usecase.UserProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProfileUsecase) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) (*usecase.UserProfile, error) {
	args := m.Called(ctx, userID, input)
	if profile, ok := args.Get(0).(*usecase.UserProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}
