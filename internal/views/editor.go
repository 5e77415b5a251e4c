package views

import (
	"context"
	"sync"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/session"
)

type Mode string

const (
	ModeAdd    Mode = "add"
	ModeUpdate Mode = "update"
)

// Editor is the shared create/edit form. The mode is fixed at construction
// by whether a task id was given.
type Editor struct {
	state session.State
	tasks TaskAPI
	id    string
	mode  Mode
	guard *SubmitGuard

	mu       sync.Mutex
	form     model.TaskForm
	errs     FormErrors
	snapshot *model.Task

	fetch fetcher
	life  lifecycle
}

type EditorOption func(*Editor)

// WithSubmitGuard shares a duplicate-submission guard between editors.
func WithSubmitGuard(g *SubmitGuard) EditorOption {
	return func(e *Editor) {
		e.guard = g
	}
}

func NewEditor(state session.State, tasks TaskAPI, id string, opts ...EditorOption) *Editor {
	mode := ModeUpdate
	if id == "" {
		mode = ModeAdd
	}

	e := &Editor{
		state: state,
		tasks: tasks,
		id:    id,
		mode:  mode,
		form:  model.NewTaskForm(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Mode() Mode { return e.mode }
func (e *Editor) ID() string { return e.id }

func (e *Editor) Heading() string {
	if e.mode == ModeAdd {
		return "Add New Task"
	}
	return "Edit Task"
}

func (e *Editor) SubmitLabel() string {
	if e.mode == ModeAdd {
		return "Add Task"
	}
	return "Update Task"
}

// Action is the route the form posts to.
func (e *Editor) Action() string {
	if e.mode == ModeAdd {
		return "/tasks"
	}
	return EditRoute(e.id)
}

func (e *Editor) Loading() bool {
	return e.fetch.Loading()
}

func (e *Editor) Form() model.TaskForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

func (e *Editor) Errors() FormErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs
}

// Snapshot returns the last task loaded from the API, or nil.
func (e *Editor) Snapshot() *model.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.snapshot == nil {
		return nil
	}
	snap := *e.snapshot
	return &snap
}

// Load fetches the task in update mode and fills the form from it. The
// loaded task is kept as the snapshot Reset restores from.
func (e *Editor) Load(ctx context.Context) error {
	if e.mode != ModeUpdate {
		return nil
	}

	var task *model.Task
	err := e.fetch.track(func() error {
		var err error
		task, err = e.tasks.GetTask(ctx, e.state.Token, e.id)
		return err
	})
	if closed := e.life.active(ctx); closed != nil {
		return closed
	}
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	snap := *task
	e.snapshot = &snap
	e.form = model.FormFromTask(snap)
	return nil
}

// Hydrate restores an editor from a posted form and the snapshot that was
// rendered with it, without calling the API.
func (e *Editor) Hydrate(form model.TaskForm, snapshot *model.Task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form = form
	if snapshot != nil && e.mode == ModeUpdate {
		snap := *snapshot
		e.snapshot = &snap
	}
}

// SetField replaces one field and leaves the others untouched.
func (e *Editor) SetField(name, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch name {
	case model.FieldTitle:
		e.form.Title = value
	case model.FieldDescription:
		e.form.Description = value
	case model.FieldPriority:
		e.form.Priority = model.ParsePriority(value)
	case model.FieldStatus:
		e.form.Status = model.ParseStatus(value)
	case model.FieldDueDate:
		e.form.DueDate = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Reset discards edits and restores every field from the snapshot. It never
// re-fetches.
func (e *Editor) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeUpdate || e.snapshot == nil {
		return ErrNothingToReset
	}
	e.form = model.FormFromTask(*e.snapshot)
	e.errs = FormErrors{}
	return nil
}

// Submit validates the form and sends it as a create or a full update. Only
// the first failing rule is reported, and no request is made when the form
// is invalid. On success it returns the route to navigate to.
func (e *Editor) Submit(ctx context.Context) (string, error) {
	e.mu.Lock()
	e.errs = FormErrors{}
	form := e.form
	e.mu.Unlock()

	if errs := Validate(form).First(); !errs.Empty() {
		e.mu.Lock()
		e.errs = errs
		e.mu.Unlock()
		return "", ErrInvalidForm
	}
	if !e.state.LoggedIn {
		return "", apperrors.ErrNotLoggedIn
	}

	send := func() error {
		if e.mode == ModeAdd {
			return e.tasks.CreateTask(ctx, e.state.Token, form)
		}
		return e.tasks.UpdateTask(ctx, e.state.Token, e.id, form)
	}

	err := e.fetch.track(func() error {
		if e.guard == nil {
			return send()
		}
		_, err := e.guard.Do(submitKey(e.state.Token, e.mode, e.id, form), send)
		return err
	})
	if closed := e.life.active(ctx); closed != nil {
		return "", closed
	}
	if err != nil {
		return "", err
	}
	return RouteCollection, nil
}

// Cancel abandons the form without a prompt.
func (e *Editor) Cancel() string {
	return RouteCollection
}

func (e *Editor) Close() {
	e.life.Close()
}
