// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	CommentHandler *handler.CommentHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	taskHandler    *handler.TaskHandler
	commentHandler *handler.CommentHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		taskHandler:    params.TaskHandler,
		commentHandler: params.CommentHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes, the only unauthenticated part of the API
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Profile routes
	userGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PUT("/me", r.userHandler.UpdateMe)
	}

	// Task routes with the comment sub-resource
	taskGroup := api.Group("/tasks", r.authMiddleware.Authenticate)
	{
		taskGroup.GET("", r.taskHandler.List)
		taskGroup.POST("", r.taskHandler.Create)
		taskGroup.GET("/:taskID", r.taskHandler.Get)
		taskGroup.PUT("/:taskID", r.taskHandler.Update)
		taskGroup.DELETE("/:taskID", r.taskHandler.Delete)
		taskGroup.PATCH("/:taskID/complete", r.taskHandler.Complete)
		taskGroup.PATCH("/:taskID/reopen", r.taskHandler.Reopen)
		taskGroup.PATCH("/:taskID/extend-deadline", r.taskHandler.ExtendDeadline)
		taskGroup.POST("/:taskID/tags", r.taskHandler.AddTags)
		taskGroup.DELETE("/:taskID/tags/:tagName", r.taskHandler.RemoveTag)

		taskGroup.GET("/:taskID/comments", r.commentHandler.List)
		taskGroup.POST("/:taskID/comments", r.commentHandler.Add)
		taskGroup.GET("/:taskID/comments/:commentID", r.commentHandler.Get)
		taskGroup.PUT("/:taskID/comments/:commentID", r.commentHandler.Update)
		taskGroup.DELETE("/:taskID/comments/:commentID", r.commentHandler.Delete)
	}
}
