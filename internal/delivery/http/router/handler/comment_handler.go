package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/tasks/:taskID/comments.
func (h *CommentHandler) List(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	comments, err := h.uc.List(c.Request().Context(), userID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// Get handles GET /api/tasks/:taskID/comments/:commentID.
func (h *CommentHandler) Get(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentID", domainerrors.ErrCommentNotFound)
	if err != nil {
		return err
	}

	comment, err := h.uc.Get(c.Request().Context(), userID, taskID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "")
}

// Add handles POST /api/tasks/:taskID/comments.
func (h *CommentHandler) Add(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	var input *usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.Add(c.Request().Context(), userID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	location := fmt.Sprintf("/api/tasks/%d/comments/%d", taskID, comment.ID)

	return response.Created(c, location, comment, "Comment added")
}

// Update handles PUT /api/tasks/:taskID/comments/:commentID.
func (h *CommentHandler) Update(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentID", domainerrors.ErrCommentNotFound)
	if err != nil {
		return err
	}

	var input *usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Update(c.Request().Context(), userID, taskID, commentID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Delete handles DELETE /api/tasks/:taskID/comments/:commentID.
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	taskID, err := pathID(c, "taskID", domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentID", domainerrors.ErrCommentNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, taskID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
