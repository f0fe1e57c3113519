package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrCommentNotFound is returned when a comment lookup misses, including
// tri-key mismatches on edit and delete.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository persists comments attached to tasks. Read operations
// annotate each comment with the author's username.
type CommentRepository interface {
	// Create persists a new comment and backfills ID and timestamps.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindForAuthor retrieves a comment matching all of (commentID, taskID,
	// userID); only the author sees a hit.
	FindForAuthor(ctx context.Context, commentID, taskID, userID uint) (*entity.Comment, error)

	// FindByID retrieves a comment by (commentID, taskID) with the author's
	// username resolved.
	FindByID(ctx context.Context, commentID, taskID uint) (*entity.Comment, error)

	// ListByTask returns all comments for the task, newest first, each with
	// the author's username resolved.
	ListByTask(ctx context.Context, taskID uint) ([]*entity.Comment, error)

	// Update overwrites content and updatedAt of an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment matching all of (commentID, taskID, userID).
	Delete(ctx context.Context, commentID, taskID, userID uint) error
}
