package repository

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/domain/entity"
)

// ErrTaskNotFound covers both an absent task and a task owned by another
// user; callers cannot tell the two apart.
var ErrTaskNotFound = errors.New("task not found")

// ErrTagNotLinked is returned when detaching a tag that is not attached to the task.
var ErrTagNotLinked = errors.New("tag not linked to task")

// TaskQuery is the declarative filter/sort expression for listing tasks.
// Zero values mean "no constraint".
type TaskQuery struct {
	// Status filters by completion: "completed", "active", or anything else
	// for no filter.
	Status string

	// DueBefore keeps only tasks with a non-null due date at or before the
	// given instant.
	DueBefore *time.Time

	// Tag keeps only tasks carrying a tag with this exact name.
	Tag string

	// SortBy is "dueDate" for due-date ordering; anything else sorts by
	// creation time descending.
	SortBy string

	// Order is "desc" (case-insensitive) for descending due-date order.
	Order string
}

// TaskRepository owns task rows and their tag links, always scoped by the
// owning user.
type TaskRepository interface {
	// FindByID retrieves a task with its tag names, or ErrTaskNotFound.
	FindByID(ctx context.Context, userID, taskID uint) (*entity.Task, error)

	// List returns the user's tasks matching the query, tags included.
	List(ctx context.Context, userID uint, query TaskQuery) ([]*entity.Task, error)

	// Create persists a new task row and backfills ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// Update overwrites the task's scalar fields (title, description, due
	// date, completion).
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task together with its tag links and comments.
	// Callers wrap it in a transaction to keep the cascade atomic.
	Delete(ctx context.Context, userID, taskID uint) error

	// AttachTag links a tag to a task. Attaching an already-linked tag is a
	// no-op.
	AttachTag(ctx context.Context, taskID, tagID uint) error

	// DetachTag removes the link only, never the shared tag row. Returns
	// ErrTagNotLinked when no link exists.
	DetachTag(ctx context.Context, taskID, tagID uint) error
}
