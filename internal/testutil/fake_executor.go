package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"taskboard.com/taskboard/internal/api"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

// Call is one request seen by FakeExecutor.
type Call struct {
	Request api.Request
	Options api.Options
}

// Key returns "METHOD /path", the form used for error injection.
func (c Call) Key() string {
	return strings.ToUpper(c.Request.Method) + " " + c.Request.URL
}

// FakeExecutor is an in-memory stand-in for the tasks API. It answers the
// five task routes and records every call in order.
type FakeExecutor struct {
	mu     sync.Mutex
	tasks  []model.Task
	calls  []Call
	nextID int

	// Errors maps "METHOD /path" to the error returned for that call.
	Errors map[string]error
	// Before runs ahead of every call, outside the lock. Tests use it to
	// block or to cancel a view mid-flight.
	Before func(ctx context.Context, req api.Request)
}

func NewFakeExecutor(tasks ...model.Task) *FakeExecutor {
	f := &FakeExecutor{Errors: make(map[string]error)}
	f.tasks = append(f.tasks, tasks...)
	return f
}

// Calls returns a copy of the recorded calls.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Keys returns the recorded calls as "METHOD /path" strings.
func (f *FakeExecutor) Keys() []string {
	calls := f.Calls()
	keys := make([]string, len(calls))
	for i, c := range calls {
		keys[i] = c.Key()
	}
	return keys
}

// Tasks returns a copy of the stored tasks.
func (f *FakeExecutor) Tasks() []model.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

func (f *FakeExecutor) Do(ctx context.Context, req api.Request, opts api.Options, out any) error {
	if f.Before != nil {
		f.Before(ctx, req)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Request: req, Options: opts}
	f.calls = append(f.calls, call)
	if err := f.Errors[call.Key()]; err != nil {
		return err
	}

	resp, err := f.route(req)
	if err != nil {
		return err
	}
	if out == nil || resp == nil {
		return nil
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *FakeExecutor) route(req api.Request) (any, error) {
	parts := strings.Split(strings.Trim(req.URL, "/"), "/")
	if parts[0] != "tasks" || len(parts) > 2 {
		return nil, apperrors.New(http.StatusNotFound, "route not found")
	}

	method := strings.ToUpper(req.Method)
	if len(parts) == 1 {
		switch method {
		case http.MethodGet:
			return map[string]any{"tasks": f.tasks}, nil
		case http.MethodPost:
			form, err := decodeForm(req.Data)
			if err != nil {
				return nil, err
			}
			f.nextID++
			task := applyForm(model.Task{ID: fmt.Sprintf("task-%d", f.nextID)}, form)
			f.tasks = append(f.tasks, task)
			return map[string]any{"task": task, "msg": "Task created successfully"}, nil
		}
		return nil, apperrors.New(http.StatusMethodNotAllowed, "")
	}

	idx := f.indexOf(parts[1])
	if idx < 0 {
		return nil, apperrors.New(http.StatusNotFound, "Task with given id not found")
	}

	switch method {
	case http.MethodGet:
		return map[string]any{"task": f.tasks[idx]}, nil
	case http.MethodPut:
		form, err := decodeForm(req.Data)
		if err != nil {
			return nil, err
		}
		f.tasks[idx] = applyForm(model.Task{ID: f.tasks[idx].ID}, form)
		return map[string]any{"task": f.tasks[idx], "msg": "Task updated successfully"}, nil
	case http.MethodDelete:
		f.tasks = append(f.tasks[:idx], f.tasks[idx+1:]...)
		return map[string]any{"msg": "Task deleted successfully"}, nil
	}
	return nil, apperrors.New(http.StatusMethodNotAllowed, "")
}

func (f *FakeExecutor) indexOf(id string) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func decodeForm(data any) (model.TaskForm, error) {
	var form model.TaskForm
	raw, err := json.Marshal(data)
	if err != nil {
		return form, err
	}
	err = json.Unmarshal(raw, &form)
	return form, err
}

func applyForm(t model.Task, form model.TaskForm) model.Task {
	t.Title = form.Title
	t.Description = form.Description
	t.Priority = form.Priority
	t.Status = form.Status
	if form.DueDate != "" {
		t.DueDate = form.DueDate + "T00:00:00.000Z"
	}
	return t
}
