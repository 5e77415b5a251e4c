package views

import (
	"context"
	"sync"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/session"
)

// Collection is the task list of the logged-in user.
type Collection struct {
	state session.State
	tasks TaskAPI

	mu    sync.RWMutex
	items []model.Task

	fetch fetcher
	life  lifecycle
}

// TaskCard is the display form of one task in the list.
type TaskCard struct {
	ID            string
	Title         string
	Description   string
	Status        model.Status
	Priority      model.Priority
	PriorityLabel string
	StatusClass   string
	PriorityClass string
	Due           string
	EditURL       string
	DeleteURL     string
}

func NewCollection(state session.State, tasks TaskAPI) *Collection {
	return &Collection{
		state: state,
		tasks: tasks,
	}
}

// Load replaces the displayed tasks with the API's current list. It does
// nothing for a logged-out session.
func (c *Collection) Load(ctx context.Context) error {
	if !c.state.LoggedIn {
		return nil
	}

	var tasks []model.Task
	err := c.fetch.track(func() error {
		var err error
		tasks, err = c.tasks.ListTasks(ctx, c.state.Token)
		return err
	})
	if closed := c.life.active(ctx); closed != nil {
		return closed
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.items = tasks
	c.mu.Unlock()
	return nil
}

// Delete removes a task on the API and then reloads the list. The task stays
// in the list until that reload completes.
func (c *Collection) Delete(ctx context.Context, id string) error {
	if !c.state.LoggedIn {
		return apperrors.ErrNotLoggedIn
	}

	err := c.fetch.track(func() error {
		return c.tasks.DeleteTask(ctx, c.state.Token, id)
	})
	if closed := c.life.active(ctx); closed != nil {
		return closed
	}
	if err != nil {
		return err
	}

	return c.Load(ctx)
}

func (c *Collection) Close() {
	c.life.Close()
}

func (c *Collection) Loading() bool {
	return c.fetch.Loading()
}

func (c *Collection) Tasks() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Task, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection) Empty() bool {
	return c.Count() == 0
}

// Cards renders the tasks for display, with due dates in the given layout.
func (c *Collection) Cards(dateLayout string) []TaskCard {
	tasks := c.Tasks()
	cards := make([]TaskCard, 0, len(tasks))
	for _, t := range tasks {
		cards = append(cards, TaskCard{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Status:        t.Status,
			Priority:      t.Priority,
			PriorityLabel: string(t.Priority) + " priority",
			StatusClass:   StatusClass(t.Status),
			PriorityClass: PriorityClass(t.Priority),
			Due:           FormatDueDate(t.DueDate, dateLayout),
			EditURL:       EditRoute(t.ID),
			DeleteURL:     EditRoute(t.ID) + "/delete",
		})
	}
	return cards
}
