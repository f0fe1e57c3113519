package usecase

import (
	"context"
	"time"

	"taskhub/internal/domain/repository"
)

// TaskView is the task representation returned to clients.
type TaskView struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
}

// CreateTaskInput carries the creation payload. Tags are attached through
// get-or-create; duplicates within the list collapse to one link.
type CreateTaskInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
}

// UpdateTaskInput is a partial update: a nil field means "leave unchanged",
// a pointer to the zero value means "set to empty".
type UpdateTaskInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// ExtendDeadlineInput overwrites the due date unconditionally; the new date
// is deliberately not required to be later than the old one.
type ExtendDeadlineInput struct {
	NewDueDate time.Time `json:"newDueDate" validate:"required"`
}

// AddTagsInput lists tag names to attach; names already on the task are
// skipped.
type AddTagsInput struct {
	Tags []string `json:"tags" validate:"required,min=1"`
}

// TaskUsecase is the task query and mutation engine. Every operation is
// scoped by the calling user; tasks owned by others behave as absent.
type TaskUsecase interface {
	// List returns the user's tasks matching the filter/sort query.
	List(ctx context.Context, userID uint, query repository.TaskQuery) ([]*TaskView, error)

	// Get fetches a single task.
	Get(ctx context.Context, userID, taskID uint) (*TaskView, error)

	// Create persists a task and links its tags atomically.
	Create(ctx context.Context, userID uint, input *CreateTaskInput) (*TaskView, error)

	// Update applies a partial update to title, description, and due date.
	Update(ctx context.Context, userID, taskID uint, input *UpdateTaskInput) error

	// Delete removes the task and cascades its tag links and comments.
	Delete(ctx context.Context, userID, taskID uint) error

	// Complete marks the task done; completing a done task is a no-op success.
	Complete(ctx context.Context, userID, taskID uint) error

	// Reopen marks the task not done; idempotent like Complete.
	Reopen(ctx context.Context, userID, taskID uint) error

	// ExtendDeadline overwrites the due date.
	ExtendDeadline(ctx context.Context, userID, taskID uint, input *ExtendDeadlineInput) error

	// AddTags attaches the listed tags, resolving or creating each name.
	AddTags(ctx context.Context, userID, taskID uint, input *AddTagsInput) error

	// RemoveTag detaches one tag from the task, never deleting the shared
	// tag row.
	RemoveTag(ctx context.Context, userID, taskID uint, tagName string) error
}
