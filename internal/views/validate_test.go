package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "taskboard.com/taskboard/internal/models"
)

func TestValidateReportsEveryFailingField(t *testing.T) {
	errs := Validate(model.NewTaskForm())

	assert.Equal(t, []string{model.FieldTitle, model.FieldDescription}, errs.Fields())
	assert.Equal(t, "Title is required", errs.For(model.FieldTitle))
	assert.Equal(t, "Description is required", errs.For(model.FieldDescription))
	assert.Equal(t, "", errs.For(model.FieldPriority))
}

func TestValidateTreatsWhitespaceAsEmpty(t *testing.T) {
	errs := Validate(model.TaskForm{Title: "  \t", Description: "ok"})
	assert.Equal(t, []string{model.FieldTitle}, errs.Fields())
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	errs := Validate(model.TaskForm{Title: "a", Description: "b"})
	assert.True(t, errs.Empty())
	assert.Nil(t, errs.Fields())
}

func TestFormErrorsFirst(t *testing.T) {
	both := FormErrors{Title: "Title is required", Description: "Description is required"}
	assert.Equal(t, FormErrors{Title: "Title is required"}, both.First())

	desc := FormErrors{Description: "Description is required"}
	assert.Equal(t, desc, desc.First())

	assert.True(t, FormErrors{}.First().Empty())
}
