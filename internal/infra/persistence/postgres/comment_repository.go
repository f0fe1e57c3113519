package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment and backfills ID and timestamps.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseError(err, "invalid task or author reference")
		}

		return domainerrors.NewDatabaseError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindForAuthor retrieves a comment matching all of (commentID, taskID, userID).
func (repo *commentRepository) FindForAuthor(ctx context.Context, commentID, taskID, userID uint) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND task_id = ? AND user_id = ?", commentID, taskID, userID).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment for author")
	}

	return toCommentDomain(&commentM), nil
}

// FindByID retrieves a comment by (commentID, taskID) with its author's username.
func (repo *commentRepository) FindByID(ctx context.Context, commentID, taskID uint) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND task_id = ?", commentID, taskID).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListByTask returns all comments for the task, newest first.
func (repo *commentRepository) ListByTask(ctx context.Context, taskID uint) ([]*entity.Comment, error) {
	var commentMs []model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&commentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for i := range commentMs {
		comments = append(comments, toCommentDomain(&commentMs[i]))
	}

	return comments, nil
}

// Update overwrites the comment's content; GORM refreshes updated_at.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ? AND task_id = ? AND user_id = ?", comment.ID, comment.TaskID, comment.UserID).
		Updates(map[string]any{
			"content":    comment.Content,
			"updated_at": comment.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment matching all of (commentID, taskID, userID).
func (repo *commentRepository) Delete(ctx context.Context, commentID, taskID, userID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND task_id = ? AND user_id = ?", commentID, taskID, userID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		TaskID:    data.TaskID,
		UserID:    data.UserID,
	}
	if data.User != nil {
		comment.Username = data.User.Username
	}

	return comment
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		TaskID:    data.TaskID,
		UserID:    data.UserID,
	}
}
