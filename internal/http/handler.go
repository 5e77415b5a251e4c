package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/api"
	apperrors "taskboard.com/taskboard/internal/errors"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/http/validators"
	"taskboard.com/taskboard/internal/session"
	"taskboard.com/taskboard/internal/views"
)

type Handler struct {
	tasks    views.TaskAPI
	sessions session.Store
	guard    *views.SubmitGuard
	cookies  CookieOptions
}

func NewHandler(tasks views.TaskAPI, sessions session.Store, cookies CookieOptions) *Handler {
	return &Handler{
		tasks:    tasks,
		sessions: sessions,
		guard:    views.NewSubmitGuard(),
		cookies:  cookies,
	}
}

// requestContext attaches a collector so notices raised by API calls are
// shown on the page being rendered.
func requestContext(c echo.Context) (context.Context, *api.Collector) {
	collector := &api.Collector{}
	return api.WithNotifier(c.Request().Context(), collector), collector
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) ListTasks(c echo.Context) error {
	state := middleware.SessionState(c)
	if !state.LoggedIn {
		return c.Render(http.StatusOK, "login", loginPage{pageData: pageData{Title: "Login"}})
	}

	ctx, notices := requestContext(c)
	view := views.NewCollection(state, h.tasks)
	defer view.Close()

	err := view.Load(ctx)
	if errors.Is(err, views.ErrViewClosed) {
		return err
	}

	return h.renderList(c, view, notices, err != nil)
}

// DeleteTask removes a task and redirects to the list, so a reload of the
// result page never re-posts the delete.
func (h *Handler) DeleteTask(c echo.Context) error {
	state := middleware.SessionState(c)
	id := c.Param("id")

	ctx, notices := requestContext(c)
	view := views.NewCollection(state, h.tasks)
	defer view.Close()

	if err := view.Delete(ctx, id); err != nil {
		if errors.Is(err, views.ErrViewClosed) {
			return err
		}
		log.Warn("delete task failed", "id", id, "err", err)
	}

	h.setFlash(c, notices.Notices())
	return c.Redirect(http.StatusSeeOther, views.RouteCollection)
}

func (h *Handler) renderList(c echo.Context, view *views.Collection, notices *api.Collector, failed bool) error {
	layout := views.DateLayout(c.Request().Header.Get("Accept-Language"))
	shown := append(h.takeFlash(c), notices.Notices()...)
	return c.Render(http.StatusOK, "tasks", listPage{
		pageData:   pageData{Title: "Tasks", LoggedIn: true, Notices: shown},
		LoadFailed: failed,
		Count:      view.Count(),
		Cards:      view.Cards(layout),
	})
}

func (h *Handler) newEditor(c echo.Context) *views.Editor {
	return views.NewEditor(middleware.SessionState(c), h.tasks, c.Param("id"), views.WithSubmitGuard(h.guard))
}

func (h *Handler) NewTask(c echo.Context) error {
	editor := h.newEditor(c)
	defer editor.Close()

	_, notices := requestContext(c)
	return h.renderForm(c, http.StatusOK, editor, notices)
}

func (h *Handler) EditTask(c echo.Context) error {
	editor := h.newEditor(c)
	defer editor.Close()

	ctx, notices := requestContext(c)
	if err := editor.Load(ctx); err != nil {
		return err
	}

	return h.renderForm(c, http.StatusOK, editor, notices)
}

func (h *Handler) SubmitTask(c echo.Context) error {
	form, snapshot, err := validators.BindTaskForm(c)
	if err != nil {
		return err
	}

	editor := h.newEditor(c)
	defer editor.Close()
	editor.Hydrate(form, snapshot)

	ctx, notices := requestContext(c)
	next, err := editor.Submit(ctx)
	switch {
	case err == nil:
		h.setFlash(c, notices.Notices())
		return c.Redirect(http.StatusSeeOther, next)
	case errors.Is(err, views.ErrViewClosed):
		return err
	case errors.Is(err, views.ErrInvalidForm):
		return h.renderForm(c, http.StatusUnprocessableEntity, editor, notices)
	default:
		return h.renderForm(c, apperrors.StatusCode(err), editor, notices)
	}
}

func (h *Handler) ResetTask(c echo.Context) error {
	form, snapshot, err := validators.BindTaskForm(c)
	if err != nil {
		return err
	}

	editor := h.newEditor(c)
	defer editor.Close()
	editor.Hydrate(form, snapshot)

	if err := editor.Reset(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to reset")
	}

	_, notices := requestContext(c)
	return h.renderForm(c, http.StatusOK, editor, notices)
}

func (h *Handler) CancelTask(c echo.Context) error {
	editor := h.newEditor(c)
	defer editor.Close()
	return c.Redirect(http.StatusSeeOther, editor.Cancel())
}

func (h *Handler) renderForm(c echo.Context, status int, editor *views.Editor, notices *api.Collector) error {
	form := editor.Form()
	page := formPage{
		pageData:    pageData{Title: editor.Heading(), LoggedIn: true, Notices: notices.Notices()},
		Heading:     editor.Heading(),
		SubmitLabel: editor.SubmitLabel(),
		Action:      editor.Action(),
		Form:        form,
		Errors:      editor.Errors(),
		Snapshot:    validators.EncodeSnapshot(editor.Snapshot()),
		Priorities:  views.PriorityOptions(form.Priority),
		Statuses:    views.StatusOptions(form.Status),
	}
	if editor.Mode() == views.ModeUpdate {
		page.ShowReset = true
		page.ResetAction = editor.Action() + "/reset"
	}
	return c.Render(status, "task_form", page)
}
