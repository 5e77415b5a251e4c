package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "taskboard.com/taskboard/internal/models"
)

func TestPriorityClass(t *testing.T) {
	tests := map[model.Priority]string{
		model.PriorityHigh:   "bg-red-100 text-red-600",
		model.PriorityMedium: "bg-yellow-100 text-yellow-600",
		model.PriorityLow:    "bg-green-100 text-green-600",
		"":                   "bg-gray-100 text-gray-600",
		"urgent":             "bg-gray-100 text-gray-600",
		"HIGH":               "bg-gray-100 text-gray-600",
	}
	for in, want := range tests {
		assert.Equal(t, want, PriorityClass(in), "priority %q", in)
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[model.Status]string{
		model.StatusTodo:       "bg-gray-100 text-gray-600",
		model.StatusInProgress: "bg-blue-100 text-blue-600",
		model.StatusDone:       "bg-green-100 text-green-600",
		"":                     "bg-gray-100 text-gray-600",
		"archived":             "bg-gray-100 text-gray-600",
	}
	for in, want := range tests {
		assert.Equal(t, want, StatusClass(in), "status %q", in)
	}
}
