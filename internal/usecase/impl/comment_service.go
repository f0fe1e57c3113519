package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface. Every entry point
// first resolves the parent task under the caller's ownership scope.
type commentService struct {
	taskRepo    repository.TaskRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TaskRepo    repository.TaskRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		taskRepo:    params.TaskRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add creates a comment on a task the caller owns and returns it with the
// author's username resolved.
func (srv *commentService) Add(ctx context.Context, userID, taskID uint, input *usecase.CommentInput) (*usecase.CommentView, error) {
	task, err := srv.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &entity.Comment{
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
		TaskID:    task.ID,
		UserID:    userID,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to persist comment")
	}

	srv.log(ctx).Info("Comment added",
		slog.Uint64("taskID", uint64(taskID)), slog.Uint64("commentID", uint64(comment.ID)))

	// Re-read to pick up the author's username for the response.
	created, err := srv.commentRepo.FindByID(ctx, comment.ID, task.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created comment")
	}

	return toCommentView(created), nil
}

// Update edits a comment; only the author on their own task gets a match.
func (srv *commentService) Update(ctx context.Context, userID, taskID, commentID uint, input *usecase.CommentInput) error {
	if _, err := srv.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	comment, err := srv.commentRepo.FindForAuthor(ctx, commentID, taskID, userID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domainerrors.ErrCommentNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load comment")
	}

	comment.Content = input.Content
	comment.UpdatedAt = time.Now().UTC()
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return errors.Wrap(err, "failed to update comment")
	}

	return nil
}

// Delete removes a comment under the same authorship match as Update.
func (srv *commentService) Delete(ctx context.Context, userID, taskID, commentID uint) error {
	if _, err := srv.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	err := srv.commentRepo.Delete(ctx, commentID, taskID, userID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domainerrors.ErrCommentNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}

// List returns the task's comments newest first. A task that does not exist
// under the caller's scope yields an empty list, not an error.
func (srv *commentService) List(ctx context.Context, userID, taskID uint) ([]*usecase.CommentView, error) {
	_, err := srv.taskRepo.FindByID(ctx, userID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return []*usecase.CommentView{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load task")
	}

	comments, err := srv.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	views := make([]*usecase.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, toCommentView(comment))
	}

	return views, nil
}

// Get fetches one comment on a task the caller owns.
func (srv *commentService) Get(ctx context.Context, userID, taskID, commentID uint) (*usecase.CommentView, error) {
	if _, err := srv.ownedTask(ctx, userID, taskID); err != nil {
		return nil, err
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID, taskID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return nil, domainerrors.ErrCommentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comment")
	}

	return toCommentView(comment), nil
}

func (srv *commentService) ownedTask(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, userID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, domainerrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load task")
	}

	return task, nil
}

func toCommentView(comment *entity.Comment) *usecase.CommentView {
	return &usecase.CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		UserID:    comment.UserID,
		Username:  comment.Username,
	}
}
