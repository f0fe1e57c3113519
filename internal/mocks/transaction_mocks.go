package mocks

import (
	"context"

	"taskhub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// RepositoryFactory hands out the repository mocks it was built with,
// standing in for a transaction-bound factory.
type RepositoryFactory struct {
	UserRepository    *UserRepository
	TaskRepository    *TaskRepository
	TagRepository     *TagRepository
	CommentRepository *CommentRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository { return f.UserRepository }

func (f *RepositoryFactory) TaskRepo() repository.TaskRepository { return f.TaskRepository }

func (f *RepositoryFactory) TagRepo() repository.TagRepository { return f.TagRepository }

func (f *RepositoryFactory) CommentRepo() repository.CommentRepository { return f.CommentRepository }

// TransactionManager is a mock of repository.TransactionManager. It runs the
// callback against the configured factory, so tests exercise the real
// transactional flow without a database.
type TransactionManager struct {
	mock.Mock

	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}
