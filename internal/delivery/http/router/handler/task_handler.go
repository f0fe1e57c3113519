package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers. Every route it
// serves sits behind the auth middleware, so the user ID is always present.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/tasks with optional filter and sort query params.
func (h *TaskHandler) List(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	query := repository.TaskQuery{
		Status: c.QueryParam("status"),
		Tag:    c.QueryParam("tag"),
		SortBy: c.QueryParam("sortBy"),
		Order:  c.QueryParam("order"),
	}
	if raw := c.QueryParam("dueBefore"); raw != "" {
		dueBefore, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "dueBefore must be an RFC 3339 timestamp")
		}
		query.DueBefore = &dueBefore
	}

	tasks, err := h.uc.List(c.Request().Context(), userID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}

// Get handles GET /api/tasks/:taskID.
func (h *TaskHandler) Get(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	task, err := h.uc.Get(c.Request().Context(), userID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "")
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var input *usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	location := fmt.Sprintf("/api/tasks/%d", task.ID)

	return response.Created(c, location, task, "Task created")
}

// Update handles PUT /api/tasks/:taskID with partial field semantics.
func (h *TaskHandler) Update(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	var input *usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	// Echo skips body binding entirely on an empty body, leaving input nil.
	if input == nil {
		input = &usecase.UpdateTaskInput{}
	}

	if err := h.uc.Update(c.Request().Context(), userID, taskID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Delete handles DELETE /api/tasks/:taskID.
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Complete handles PATCH /api/tasks/:taskID/complete.
func (h *TaskHandler) Complete(c echo.Context) error {
	return h.setCompletion(c, h.uc.Complete)
}

// Reopen handles PATCH /api/tasks/:taskID/reopen.
func (h *TaskHandler) Reopen(c echo.Context) error {
	return h.setCompletion(c, h.uc.Reopen)
}

func (h *TaskHandler) setCompletion(c echo.Context, op func(ctx context.Context, userID, taskID uint) error) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	if err := op(c.Request().Context(), userID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ExtendDeadline handles PATCH /api/tasks/:taskID/extend-deadline.
func (h *TaskHandler) ExtendDeadline(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	var input *usecase.ExtendDeadlineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deadline input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ExtendDeadline(c.Request().Context(), userID, taskID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// AddTags handles POST /api/tasks/:taskID/tags.
func (h *TaskHandler) AddTags(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	var input *usecase.AddTagsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tags input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddTags(c.Request().Context(), userID, taskID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// RemoveTag handles DELETE /api/tasks/:taskID/tags/:tagName.
func (h *TaskHandler) RemoveTag(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	// Path params arrive percent-encoded; decode so "my%20tag" finds "my tag".
	tagName, unescapeErr := url.PathUnescape(c.Param("tagName"))
	if unescapeErr != nil || tagName == "" {
		return domainerrors.ErrTagNotFound
	}

	if err := h.uc.RemoveTag(c.Request().Context(), userID, taskID, tagName); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
