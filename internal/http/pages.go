package http

import (
	"taskboard.com/taskboard/internal/api"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/views"
)

type pageData struct {
	Title    string
	LoggedIn bool
	Notices  []api.Notice
}

type listPage struct {
	pageData
	LoadFailed bool
	Count      int
	Cards      []views.TaskCard
}

type formPage struct {
	pageData
	Heading     string
	SubmitLabel string
	Action      string
	ResetAction string
	ShowReset   bool
	Form        model.TaskForm
	Errors      views.FormErrors
	Snapshot    string
	Priorities  []views.Option
	Statuses    []views.Option
}

type loginPage struct {
	pageData
	Error string
}

type errorPage struct {
	pageData
	Code    int
	Message string
}
