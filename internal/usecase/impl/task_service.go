package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	tagRepo   repository.TagRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	TagRepo   repository.TagRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		tagRepo:   params.TagRepo,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the caller's tasks matching the filter and sort query.
func (srv *taskService) List(ctx context.Context, userID uint, query repository.TaskQuery) ([]*usecase.TaskView, error) {
	tasks, err := srv.taskRepo.List(ctx, userID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	views := make([]*usecase.TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, toTaskView(task))
	}

	return views, nil
}

// Get fetches one task owned by the caller.
func (srv *taskService) Get(ctx context.Context, userID, taskID uint) (*usecase.TaskView, error) {
	task, err := srv.findOwned(ctx, srv.taskRepo, userID, taskID)
	if err != nil {
		return nil, err
	}

	return toTaskView(task), nil
}

// Create persists the task and links its tags in one transaction, so a
// failed tag resolution never leaves a half-tagged task behind.
func (srv *taskService) Create(ctx context.Context, userID uint, input *usecase.CreateTaskInput) (*usecase.TaskView, error) {
	srv.log(ctx).Info("Creating task", slog.Uint64("userID", uint64(userID)))

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		UserID:      userID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()
		if err := taskRepo.Create(ctx, task); err != nil {
			return errors.Wrap(err, "failed to persist task")
		}

		return srv.attachTagNames(ctx, repoFactory, task, input.Tags)
	})
	if err != nil {
		return nil, err
	}

	return toTaskView(task), nil
}

// Update applies a partial update: absent fields keep their stored value,
// present fields overwrite it, even with the zero value.
func (srv *taskService) Update(ctx context.Context, userID, taskID uint, input *usecase.UpdateTaskInput) error {
	// A nil input means no fields were provided; that is a valid no-op update.
	if input == nil {
		input = &usecase.UpdateTaskInput{}
	}

	task, err := srv.findOwned(ctx, srv.taskRepo, userID, taskID)
	if err != nil {
		return err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return srv.mapTaskErr(err, "failed to update task")
	}

	return nil
}

// Delete removes the task with its tag links and comments atomically.
func (srv *taskService) Delete(ctx context.Context, userID, taskID uint) error {
	srv.log(ctx).Info("Deleting task", slog.Uint64("userID", uint64(userID)), slog.Uint64("taskID", uint64(taskID)))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TaskRepo().Delete(ctx, userID, taskID); err != nil {
			return srv.mapTaskErr(err, "failed to delete task")
		}

		return nil
	})
}

// Complete marks the task done. Completing an already-done task succeeds.
func (srv *taskService) Complete(ctx context.Context, userID, taskID uint) error {
	return srv.setCompletion(ctx, userID, taskID, true)
}

// Reopen marks the task not done. Reopening an active task succeeds.
func (srv *taskService) Reopen(ctx context.Context, userID, taskID uint) error {
	return srv.setCompletion(ctx, userID, taskID, false)
}

func (srv *taskService) setCompletion(ctx context.Context, userID, taskID uint, completed bool) error {
	task, err := srv.findOwned(ctx, srv.taskRepo, userID, taskID)
	if err != nil {
		return err
	}

	task.IsCompleted = completed
	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return srv.mapTaskErr(err, "failed to update completion")
	}

	return nil
}

// ExtendDeadline overwrites the due date. Earlier dates are accepted; the
// operation name describes the intent, not a constraint.
func (srv *taskService) ExtendDeadline(ctx context.Context, userID, taskID uint, input *usecase.ExtendDeadlineInput) error {
	task, err := srv.findOwned(ctx, srv.taskRepo, userID, taskID)
	if err != nil {
		return err
	}

	due := input.NewDueDate
	task.DueDate = &due
	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return srv.mapTaskErr(err, "failed to extend deadline")
	}

	return nil
}

// AddTags attaches each listed tag, creating missing tags on the fly. Names
// already on the task are skipped, so the operation is idempotent.
func (srv *taskService) AddTags(ctx context.Context, userID, taskID uint, input *usecase.AddTagsInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		task, err := srv.findOwned(ctx, repoFactory.TaskRepo(), userID, taskID)
		if err != nil {
			return err
		}

		linked := make(map[string]bool, len(task.Tags))
		for _, name := range task.Tags {
			linked[name] = true
		}

		var missing []string
		for _, name := range input.Tags {
			if !linked[name] {
				missing = append(missing, name)
			}
		}

		return srv.attachTagNames(ctx, repoFactory, task, missing)
	})
}

// RemoveTag detaches one tag from the task. The tag row itself survives for
// other tasks still carrying it.
func (srv *taskService) RemoveTag(ctx context.Context, userID, taskID uint, tagName string) error {
	task, err := srv.findOwned(ctx, srv.taskRepo, userID, taskID)
	if err != nil {
		return err
	}

	tag, err := srv.tagRepo.FindByName(ctx, tagName)
	if errors.Is(err, repository.ErrTagNotFound) {
		return domainerrors.ErrTagNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up tag")
	}

	err = srv.taskRepo.DetachTag(ctx, task.ID, tag.ID)
	if errors.Is(err, repository.ErrTagNotLinked) {
		return domainerrors.ErrTagNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to detach tag")
	}

	return nil
}

// attachTagNames resolves each name through get-or-create and links it to
// the task, de-duplicating within the list. Runs inside the caller's
// transaction.
func (srv *taskService) attachTagNames(ctx context.Context, repoFactory repository.RepositoryFactory, task *entity.Task, names []string) error {
	taskRepo := repoFactory.TaskRepo()
	tagRepo := repoFactory.TagRepo()

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := srv.resolveOrCreateTag(ctx, tagRepo, name)
		if err != nil {
			return err
		}

		if err := taskRepo.AttachTag(ctx, task.ID, tag.ID); err != nil {
			return errors.Wrapf(err, "failed to attach tag %q", name)
		}
		task.Tags = append(task.Tags, name)
	}

	return nil
}

// resolveOrCreateTag implements get-or-create on the tag name. A concurrent
// creator losing the race surfaces as ErrTagExists, in which case the row is
// simply re-read.
func (srv *taskService) resolveOrCreateTag(ctx context.Context, tagRepo repository.TagRepository, name string) (*entity.Tag, error) {
	tag, err := tagRepo.FindByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, repository.ErrTagNotFound) {
		return nil, errors.Wrapf(err, "failed to look up tag %q", name)
	}

	tag = &entity.Tag{Name: name}
	err = tagRepo.Create(ctx, tag)
	if errors.Is(err, repository.ErrTagExists) {
		return tagRepo.FindByName(ctx, name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create tag %q", name)
	}

	return tag, nil
}

// findOwned fetches a task scoped to its owner, translating absence (or
// someone else's task) into the domain not-found error.
func (srv *taskService) findOwned(ctx context.Context, taskRepo repository.TaskRepository, userID, taskID uint) (*entity.Task, error) {
	task, err := taskRepo.FindByID(ctx, userID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, domainerrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load task")
	}

	return task, nil
}

func (srv *taskService) mapTaskErr(err error, msg string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound
	}

	return errors.Wrap(err, msg)
}

func toTaskView(task *entity.Task) *usecase.TaskView {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	return &usecase.TaskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		DueDate:     task.DueDate,
		Tags:        tags,
	}
}
