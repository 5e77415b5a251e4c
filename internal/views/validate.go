package views

import (
	"strings"

	model "taskboard.com/taskboard/internal/models"
)

const (
	msgTitleRequired       = "Title is required"
	msgDescriptionRequired = "Description is required"
)

// FormErrors holds one optional message per validated field.
type FormErrors struct {
	Title       string
	Description string
}

// Validate checks every rule and reports all failing fields.
func Validate(form model.TaskForm) FormErrors {
	var errs FormErrors
	if strings.TrimSpace(form.Title) == "" {
		errs.Title = msgTitleRequired
	}
	if strings.TrimSpace(form.Description) == "" {
		errs.Description = msgDescriptionRequired
	}
	return errs
}

func (e FormErrors) Empty() bool {
	return e == FormErrors{}
}

// Fields lists the failing fields in rule order.
func (e FormErrors) Fields() []string {
	var fields []string
	if e.Title != "" {
		fields = append(fields, model.FieldTitle)
	}
	if e.Description != "" {
		fields = append(fields, model.FieldDescription)
	}
	return fields
}

// First keeps only the first failing rule. Title is checked before
// description.
func (e FormErrors) First() FormErrors {
	switch {
	case e.Title != "":
		return FormErrors{Title: e.Title}
	case e.Description != "":
		return FormErrors{Description: e.Description}
	}
	return FormErrors{}
}

func (e FormErrors) For(field string) string {
	switch field {
	case model.FieldTitle:
		return e.Title
	case model.FieldDescription:
		return e.Description
	}
	return ""
}
