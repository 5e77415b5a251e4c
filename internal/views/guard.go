package views

import (
	"strings"

	"golang.org/x/sync/singleflight"

	model "taskboard.com/taskboard/internal/models"
)

// SubmitGuard collapses identical submissions that are in flight at the
// same time, so a double click issues one create or update request.
type SubmitGuard struct {
	group singleflight.Group
}

func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{}
}

// Do runs fn unless an identical submission is already running, in which
// case it waits for that one and shares its result.
func (g *SubmitGuard) Do(key string, fn func() error) (shared bool, err error) {
	_, err, shared = g.group.Do(key, func() (any, error) {
		return nil, fn()
	})
	return shared, err
}

func submitKey(token string, mode Mode, id string, form model.TaskForm) string {
	return strings.Join([]string{
		token,
		string(mode),
		id,
		form.Title,
		form.Description,
		string(form.Priority),
		string(form.Status),
		form.DueDate,
	}, "\x00")
}
