package model

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Priorities lists the selectable priorities in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Statuses lists the selectable statuses in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParsePriority maps unknown or empty input to PriorityMedium.
func ParsePriority(raw string) Priority {
	switch p := Priority(raw); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	}
	return PriorityMedium
}

// ParseStatus maps unknown or empty input to StatusTodo.
func ParseStatus(raw string) Status {
	switch s := Status(raw); s {
	case StatusTodo, StatusInProgress, StatusDone:
		return s
	}
	return StatusTodo
}

// Task is a snapshot of a task as returned by the tasks API. The API is the
// only source of truth; nothing here is reconciled locally.
type Task struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	DueDate     string   `json:"dueDate,omitempty"`
}

// DatePortion drops the time-of-day from an ISO-8601-like timestamp.
// "2024-03-15T00:00:00.000Z" becomes "2024-03-15".
func DatePortion(raw string) string {
	date, _, _ := strings.Cut(raw, "T")
	return date
}
