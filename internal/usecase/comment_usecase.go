package usecase

import (
	"context"
	"time"
)

// CommentView is the comment representation returned to clients, annotated
// with the author's username.
type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `json:"userId"`
	Username  string    `json:"username"`
}

// CommentInput carries the content for creating or editing a comment.
type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

// CommentUsecase manages the comment sub-resource. Reaching a comment always
// re-validates that the parent task belongs to the caller; editing and
// deleting additionally require authorship.
type CommentUsecase interface {
	// Add creates a comment on a task the caller owns.
	Add(ctx context.Context, userID, taskID uint, input *CommentInput) (*CommentView, error)

	// Update edits a comment matching all of (commentID, taskID, userID).
	Update(ctx context.Context, userID, taskID, commentID uint, input *CommentInput) error

	// Delete removes a comment under the same tri-key match.
	Delete(ctx context.Context, userID, taskID, commentID uint) error

	// List returns the task's comments newest first, or an empty list when
	// the task is not owned by the caller.
	List(ctx context.Context, userID, taskID uint) ([]*CommentView, error)

	// Get fetches one comment on a task the caller owns.
	Get(ctx context.Context, userID, taskID, commentID uint) (*CommentView, error)
}
