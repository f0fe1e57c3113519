package postgres

import (
	"context"
	"strings"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByID retrieves a task scoped by its owner, with tag names preloaded.
func (repo *taskRepository) FindByID(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).
		Preload("TaskTags.Tag").
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&taskM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// List returns the user's tasks matching the declarative query.
func (repo *taskRepository) List(ctx context.Context, userID uint, query repository.TaskQuery) ([]*entity.Task, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Preload("TaskTags.Tag").
		Where("user_id = ?", userID)

	switch query.Status {
	case "completed":
		tx = tx.Where("is_completed = ?", true)
	case "active":
		tx = tx.Where("is_completed = ?", false)
	}

	if query.DueBefore != nil {
		tx = tx.Where("due_date IS NOT NULL AND due_date <= ?", *query.DueBefore)
	}

	if query.Tag != "" {
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM task_tags tt JOIN tags tg ON tg.id = tt.tag_id WHERE tt.task_id = tasks.id AND tg.name = ?)",
			query.Tag,
		)
	}

	// Null due dates sort last ascending and first descending, pinning the
	// otherwise store-dependent convention.
	if query.SortBy == "dueDate" {
		if strings.EqualFold(query.Order, "desc") {
			tx = tx.Order("due_date DESC NULLS FIRST")
		} else {
			tx = tx.Order("due_date ASC NULLS LAST")
		}
	} else {
		tx = tx.Order("created_at DESC")
	}

	var taskMs []model.TaskModel
	if err := tx.Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

// Create persists a new task row and backfills ID and timestamps.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseError(err, "invalid owner reference")
		}

		return domainerrors.NewDatabaseError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update overwrites the task's scalar fields, scoped by the owner. A map is
// used so zero values (cleared due date, reopened task) are written too.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":        task.Title,
			"description":  task.Description,
			"is_completed": task.IsCompleted,
			"due_date":     task.DueDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes the task with its tag links and comments. The caller wraps
// this in a transaction; the three deletes stay atomic there.
func (repo *taskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	tx := repo.db.WithContext(ctx)

	var count int64
	if err := tx.Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check task ownership")
	}
	if count == 0 {
		return repository.ErrTaskNotFound
	}

	if err := tx.Where("task_id = ?", taskID).Delete(&model.TaskTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseError(err, "failed to delete task tag links")
	}

	if err := tx.Where("task_id = ?", taskID).Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseError(err, "failed to delete task comments")
	}

	if err := tx.Where("id = ? AND user_id = ?", taskID, userID).Delete(&model.TaskModel{}).Error; err != nil {
		return domainerrors.NewDatabaseError(err, "failed to delete task")
	}

	return nil
}

// AttachTag links a tag to a task; the composite primary key plus DO NOTHING
// makes re-attaching a no-op.
func (repo *taskRepository) AttachTag(ctx context.Context, taskID, tagID uint) error {
	linkM := model.TaskTagModel{TaskID: taskID, TagID: tagID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&linkM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseError(err, "failed to attach tag")
	}

	return nil
}

// DetachTag removes the link row only; the shared tag row stays.
func (repo *taskRepository) DetachTag(ctx context.Context, taskID, tagID uint) error {
	result := repo.db.WithContext(ctx).
		Where("task_id = ? AND tag_id = ?", taskID, tagID).
		Delete(&model.TaskTagModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseError(result.Error, "failed to detach tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTagNotLinked
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	tags := make([]string, 0, len(data.TaskTags))
	for _, link := range data.TaskTags {
		if link.Tag != nil {
			tags = append(tags, link.Tag.Name)
		}
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DueDate:     data.DueDate,
		UserID:      data.UserID,
		Tags:        tags,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel. Tag
// links are managed separately through AttachTag/DetachTag.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		DueDate:     data.DueDate,
		UserID:      data.UserID,
	}
}
