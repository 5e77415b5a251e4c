// Package views holds the state and operations behind the task list and the
// task editor pages. The views never own data: the tasks API is the source
// of truth, and every mutation is followed by a full reload instead of a
// local patch.
package views

import (
	"context"
	"errors"
	"net/url"
	"sync/atomic"

	model "taskboard.com/taskboard/internal/models"
)

const (
	RouteCollection = "/"
	RouteAdd        = "/tasks/add"
)

var (
	ErrViewClosed     = errors.New("view is no longer active")
	ErrInvalidForm    = errors.New("task form is invalid")
	ErrUnknownField   = errors.New("unknown task field")
	ErrNothingToReset = errors.New("nothing to reset")
)

// EditRoute is the editor route for one task.
func EditRoute(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

// TaskAPI is the subset of the tasks API the views call.
type TaskAPI interface {
	ListTasks(ctx context.Context, token string) ([]model.Task, error)
	GetTask(ctx context.Context, token, id string) (*model.Task, error)
	CreateTask(ctx context.Context, token string, form model.TaskForm) error
	UpdateTask(ctx context.Context, token, id string, form model.TaskForm) error
	DeleteTask(ctx context.Context, token, id string) error
}

// fetcher mirrors the executor's loading flag for one view.
type fetcher struct {
	loading atomic.Bool
}

func (f *fetcher) track(fn func() error) error {
	f.loading.Store(true)
	defer f.loading.Store(false)
	return fn()
}

func (f *fetcher) Loading() bool {
	return f.loading.Load()
}

// lifecycle drops results that arrive after the view was closed or its
// request went away.
type lifecycle struct {
	closed atomic.Bool
}

func (l *lifecycle) Close() {
	l.closed.Store(true)
}

func (l *lifecycle) active(ctx context.Context) error {
	if l.closed.Load() || ctx.Err() != nil {
		return ErrViewClosed
	}
	return nil
}
