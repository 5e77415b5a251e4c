package views

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard.com/taskboard/internal/api"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/services"
	"taskboard.com/taskboard/internal/session"
	"taskboard.com/taskboard/internal/testutil"
)

func storedTask() model.Task {
	return model.Task{
		ID:          "t9",
		Title:       "Renew passport",
		Description: "bring photos",
		Priority:    model.PriorityHigh,
		Status:      model.StatusInProgress,
		DueDate:     "2024-03-15T00:00:00.000Z",
	}
}

func TestEditor_ModeFollowsID(t *testing.T) {
	svc := services.NewTaskService(testutil.NewFakeExecutor())

	add := NewEditor(loggedIn, svc, "")
	assert.Equal(t, ModeAdd, add.Mode())
	assert.Equal(t, "Add New Task", add.Heading())
	assert.Equal(t, "Add Task", add.SubmitLabel())
	assert.Equal(t, "/tasks", add.Action())
	assert.Equal(t, model.NewTaskForm(), add.Form())

	edit := NewEditor(loggedIn, svc, "t9")
	assert.Equal(t, ModeUpdate, edit.Mode())
	assert.Equal(t, "Edit Task", edit.Heading())
	assert.Equal(t, "Update Task", edit.SubmitLabel())
	assert.Equal(t, "/tasks/t9", edit.Action())
}

func TestEditor_LoadPopulatesFormWithDatePortion(t *testing.T) {
	exec := testutil.NewFakeExecutor(storedTask())
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")

	require.NoError(t, editor.Load(context.Background()))

	assert.Equal(t, model.TaskForm{
		Title:       "Renew passport",
		Description: "bring photos",
		Priority:    model.PriorityHigh,
		Status:      model.StatusInProgress,
		DueDate:     "2024-03-15",
	}, editor.Form())
	require.NotNil(t, editor.Snapshot())
	assert.Equal(t, storedTask(), *editor.Snapshot())
	assert.Equal(t, []string{"GET /tasks/t9"}, exec.Keys())
}

func TestEditor_LoadWithoutDueDate(t *testing.T) {
	task := storedTask()
	task.DueDate = ""
	exec := testutil.NewFakeExecutor(task)
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")

	require.NoError(t, editor.Load(context.Background()))
	assert.Equal(t, "", editor.Form().DueDate)
}

func TestEditor_LoadInAddModeIsNoop(t *testing.T) {
	exec := testutil.NewFakeExecutor(storedTask())
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "")

	require.NoError(t, editor.Load(context.Background()))
	assert.Empty(t, exec.Calls())
	assert.Nil(t, editor.Snapshot())
}

func TestEditor_SetFieldReplacesOnlyThatField(t *testing.T) {
	exec := testutil.NewFakeExecutor(storedTask())
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")
	require.NoError(t, editor.Load(context.Background()))
	before := editor.Form()

	require.NoError(t, editor.SetField(model.FieldTitle, "Renew ID card"))

	after := editor.Form()
	assert.Equal(t, "Renew ID card", after.Title)
	after.Title = before.Title
	assert.Equal(t, before, after)

	require.NoError(t, editor.SetField(model.FieldPriority, "bogus"))
	assert.Equal(t, model.PriorityMedium, editor.Form().Priority)

	assert.True(t, errors.Is(editor.SetField("owner", "x"), ErrUnknownField))
}

func TestEditor_ResetRestoresSnapshotWithoutFetching(t *testing.T) {
	exec := testutil.NewFakeExecutor(storedTask())
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")
	require.NoError(t, editor.Load(context.Background()))
	loaded := editor.Form()

	require.NoError(t, editor.SetField(model.FieldTitle, ""))
	require.NoError(t, editor.SetField(model.FieldStatus, "done"))
	require.NoError(t, editor.SetField(model.FieldDueDate, "2025-01-01"))

	require.NoError(t, editor.Reset())

	assert.Equal(t, loaded, editor.Form())
	assert.NotEqual(t, model.NewTaskForm(), editor.Form())
	assert.Equal(t, []string{"GET /tasks/t9"}, exec.Keys())
}

func TestEditor_ResetInAddMode(t *testing.T) {
	editor := NewEditor(loggedIn, services.NewTaskService(testutil.NewFakeExecutor()), "")
	assert.True(t, errors.Is(editor.Reset(), ErrNothingToReset))
}

func TestEditor_SubmitEmptyTitle(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "")
	require.NoError(t, editor.SetField(model.FieldTitle, "   "))

	next, err := editor.Submit(context.Background())

	assert.True(t, errors.Is(err, ErrInvalidForm))
	assert.Empty(t, next)
	assert.Equal(t, FormErrors{Title: "Title is required"}, editor.Errors())
	assert.Empty(t, exec.Calls())
}

func TestEditor_SubmitEmptyDescription(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "")
	require.NoError(t, editor.SetField(model.FieldTitle, "Plan trip"))

	_, err := editor.Submit(context.Background())

	assert.True(t, errors.Is(err, ErrInvalidForm))
	assert.Equal(t, FormErrors{Description: "Description is required"}, editor.Errors())
	assert.Empty(t, exec.Calls())
}

func TestEditor_SubmitClearsPreviousErrors(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "")

	_, err := editor.Submit(context.Background())
	require.True(t, errors.Is(err, ErrInvalidForm))

	require.NoError(t, editor.SetField(model.FieldTitle, "Plan trip"))
	require.NoError(t, editor.SetField(model.FieldDescription, "book flights"))

	next, err := editor.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RouteCollection, next)
	assert.True(t, editor.Errors().Empty())
}

func TestEditor_SubmitAddIssuesSingleCreate(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "")
	require.NoError(t, editor.SetField(model.FieldTitle, "Plan trip"))
	require.NoError(t, editor.SetField(model.FieldDescription, "book flights"))
	require.NoError(t, editor.SetField(model.FieldDueDate, "2024-06-01"))

	next, err := editor.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/", next)
	calls := exec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "POST /tasks", calls[0].Key())
	assert.Equal(t, editor.Form(), calls[0].Request.Data)
	assert.Equal(t, "tok", calls[0].Request.Headers["Authorization"])
}

func TestEditor_SubmitUpdateIssuesSingleReplace(t *testing.T) {
	exec := testutil.NewFakeExecutor(storedTask())
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")
	require.NoError(t, editor.Load(context.Background()))
	require.NoError(t, editor.SetField(model.FieldStatus, "done"))

	_, err := editor.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"GET /tasks/t9", "PUT /tasks/t9"}, exec.Keys())
	assert.Equal(t, model.StatusDone, exec.Tasks()[0].Status)
	assert.Equal(t, "t9", exec.Tasks()[0].ID)
}

func TestEditor_SubmitFailureIsReturned(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	exec.Errors["POST /tasks"] = apperrors.New(http.StatusBadRequest, "title too long")
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "")
	editor.Hydrate(model.TaskForm{Title: "a", Description: "b"}, nil)

	next, err := editor.Submit(context.Background())

	assert.Empty(t, next)
	assert.Equal(t, "title too long", err.Error())
	assert.True(t, editor.Errors().Empty())
}

func TestEditor_SubmitRequiresLogin(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	editor := NewEditor(session.State{}, services.NewTaskService(exec), "")
	editor.Hydrate(model.TaskForm{Title: "a", Description: "b"}, nil)

	_, err := editor.Submit(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrNotLoggedIn))
	assert.Empty(t, exec.Calls())
}

func TestEditor_HydrateKeepsSnapshotForReset(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")
	snap := storedTask()

	editor.Hydrate(model.TaskForm{Title: "edited"}, &snap)
	require.NoError(t, editor.Reset())

	assert.Equal(t, model.FormFromTask(snap), editor.Form())
	assert.Empty(t, exec.Calls())
}

func TestEditor_LateLoadAfterCloseIsDiscarded(t *testing.T) {
	exec := testutil.NewFakeExecutor(storedTask())
	editor := NewEditor(loggedIn, services.NewTaskService(exec), "t9")
	exec.Before = func(context.Context, api.Request) { editor.Close() }

	err := editor.Load(context.Background())

	assert.True(t, errors.Is(err, ErrViewClosed))
	assert.Equal(t, model.NewTaskForm(), editor.Form())
	assert.Nil(t, editor.Snapshot())
}

func TestEditor_Cancel(t *testing.T) {
	editor := NewEditor(loggedIn, services.NewTaskService(testutil.NewFakeExecutor()), "t9")
	assert.Equal(t, "/", editor.Cancel())
}

func TestEditor_DuplicateSubmitsCollapse(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	exec.Before = func(_ context.Context, req api.Request) {
		if req.Method == http.MethodPost {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
		}
	}

	svc := services.NewTaskService(exec)
	guard := NewSubmitGuard()
	form := model.TaskForm{Title: "Plan trip", Description: "book flights", Priority: model.PriorityMedium, Status: model.StatusTodo}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	submit := func(i int) {
		defer wg.Done()
		editor := NewEditor(loggedIn, svc, "", WithSubmitGuard(guard))
		editor.Hydrate(form, nil)
		_, errs[i] = editor.Submit(context.Background())
	}

	wg.Add(1)
	go submit(0)
	<-started

	wg.Add(1)
	go submit(1)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, []string{"POST /tasks"}, exec.Keys())
}

func TestSubmitGuard_DifferentFormsRunSeparately(t *testing.T) {
	exec := testutil.NewFakeExecutor()
	svc := services.NewTaskService(exec)
	guard := NewSubmitGuard()

	for _, title := range []string{"one", "two"} {
		editor := NewEditor(loggedIn, svc, "", WithSubmitGuard(guard))
		editor.Hydrate(model.TaskForm{Title: title, Description: "d"}, nil)
		_, err := editor.Submit(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"POST /tasks", "POST /tasks"}, exec.Keys())
}
