package http

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/session"
)

func Register(e *echo.Echo, h *Handler, sessions session.Store, rateLimitPerMinute int) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log.Default()))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute, middleware.SessionOrIPKey))
	e.Use(middleware.Session(sessions))

	e.GET("/healthz", h.Health)
	e.GET("/", h.ListTasks)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)

	tasks := e.Group("/tasks", middleware.RequireLogin)
	tasks.POST("", h.SubmitTask)
	tasks.GET("/add", h.NewTask)
	tasks.GET("/cancel", h.CancelTask)
	tasks.GET("/:id", h.EditTask)
	tasks.POST("/:id", h.SubmitTask)
	tasks.POST("/:id/reset", h.ResetTask)
	tasks.POST("/:id/delete", h.DeleteTask)
}
