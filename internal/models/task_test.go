package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority("high"))
	assert.Equal(t, PriorityLow, ParsePriority("low"))
	assert.Equal(t, PriorityMedium, ParsePriority(""))
	assert.Equal(t, PriorityMedium, ParsePriority("urgent"))
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusInProgress, ParseStatus("in-progress"))
	assert.Equal(t, StatusDone, ParseStatus("done"))
	assert.Equal(t, StatusTodo, ParseStatus("in_progress"))
	assert.Equal(t, StatusTodo, ParseStatus(""))
}

func TestDatePortion(t *testing.T) {
	assert.Equal(t, "2024-03-15", DatePortion("2024-03-15T00:00:00.000Z"))
	assert.Equal(t, "2024-03-15", DatePortion("2024-03-15"))
	assert.Equal(t, "", DatePortion(""))
}

func TestFormFromTask(t *testing.T) {
	form := FormFromTask(Task{
		ID:          "t1",
		Title:       "Write report",
		Description: "quarterly",
		Priority:    PriorityHigh,
		Status:      StatusDone,
		DueDate:     "2024-03-15T10:30:00.000Z",
	})

	assert.Equal(t, TaskForm{
		Title:       "Write report",
		Description: "quarterly",
		Priority:    PriorityHigh,
		Status:      StatusDone,
		DueDate:     "2024-03-15",
	}, form)

	assert.Equal(t, "", FormFromTask(Task{Title: "x"}).DueDate)
}

func TestNewTaskFormDefaults(t *testing.T) {
	form := NewTaskForm()
	assert.Equal(t, PriorityMedium, form.Priority)
	assert.Equal(t, StatusTodo, form.Status)
	assert.Empty(t, form.Title)
	assert.Empty(t, form.Description)
	assert.Empty(t, form.DueDate)
}
