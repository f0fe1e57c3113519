// Package mocks provides testify doubles for the domain interfaces used in
// service tests.
package mocks

import (
	"context"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) EmailInUseByOther(ctx context.Context, email string, userID uint) (bool, error) {
	args := m.Called(ctx, email, userID)

	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// TaskRepository is a mock of repository.TaskRepository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	args := m.Called(ctx, userID, taskID)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context, userID uint, query repository.TaskQuery) ([]*entity.Task, error) {
	args := m.Called(ctx, userID, query)
	if tasks, ok := args.Get(0).([]*entity.Task); ok {
		return tasks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *TaskRepository) AttachTag(ctx context.Context, taskID, tagID uint) error {
	return m.Called(ctx, taskID, tagID).Error(0)
}

func (m *TaskRepository) DetachTag(ctx context.Context, taskID, tagID uint) error {
	return m.Called(ctx, taskID, tagID).Error(0)
}

// TagRepository is a mock of repository.TagRepository.
type TagRepository struct {
	mock.Mock
}

func (m *TagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	args := m.Called(ctx, name)
	if tag, ok := args.Get(0).(*entity.Tag); ok {
		return tag, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

// CommentRepository is a mock of repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *CommentRepository) FindForAuthor(ctx context.Context, commentID, taskID, userID uint) (*entity.Comment, error) {
	args := m.Called(ctx, commentID, taskID, userID)
	if comment, ok := args.Get(0).(*entity.Comment); ok {
		return comment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentRepository) FindByID(ctx context.Context, commentID, taskID uint) (*entity.Comment, error) {
	args := m.Called(ctx, commentID, taskID)
	if comment, ok := args.Get(0).(*entity.Comment); ok {
		return comment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentRepository) ListByTask(ctx context.Context, taskID uint) ([]*entity.Comment, error) {
	args := m.Called(ctx, taskID)
	if comments, ok := args.Get(0).([]*entity.Comment); ok {
		return comments, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, commentID, taskID, userID uint) error {
	return m.Called(ctx, commentID, taskID, userID).Error(0)
}
