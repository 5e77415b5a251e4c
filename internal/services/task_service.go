package services

import (
	"context"
	"net/http"
	"net/url"

	"taskboard.com/taskboard/internal/api"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

const tasksPath = "/tasks"

// TaskService builds the tasks API requests used by the views. The token is
// sent as the Authorization header exactly as stored in the session.
type TaskService struct {
	executor api.Executor
}

type listTasksResponse struct {
	Tasks []model.Task `json:"tasks"`
}

type getTaskResponse struct {
	Task model.Task `json:"task"`
}

func NewTaskService(executor api.Executor) *TaskService {
	return &TaskService{
		executor: executor,
	}
}

// ListTasks refreshes silently: no success notice is raised.
func (s *TaskService) ListTasks(ctx context.Context, token string) ([]model.Task, error) {
	var resp listTasksResponse
	req := api.Request{
		URL:     tasksPath,
		Method:  http.MethodGet,
		Headers: authHeader(token),
	}
	if err := s.executor.Do(ctx, req, api.Silent(), &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, token, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	var resp getTaskResponse
	req := api.Request{
		URL:     taskPath(id),
		Method:  http.MethodGet,
		Headers: authHeader(token),
	}
	if err := s.executor.Do(ctx, req, api.Silent(), &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, token string, form model.TaskForm) error {
	req := api.Request{
		URL:     tasksPath,
		Method:  http.MethodPost,
		Data:    form,
		Headers: authHeader(token),
	}
	return s.executor.Do(ctx, req, api.DefaultOptions(), nil)
}

// UpdateTask replaces every editable field of the task.
func (s *TaskService) UpdateTask(ctx context.Context, token, id string, form model.TaskForm) error {
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	req := api.Request{
		URL:     taskPath(id),
		Method:  http.MethodPut,
		Data:    form,
		Headers: authHeader(token),
	}
	return s.executor.Do(ctx, req, api.DefaultOptions(), nil)
}

func (s *TaskService) DeleteTask(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	req := api.Request{
		URL:     taskPath(id),
		Method:  http.MethodDelete,
		Headers: authHeader(token),
	}
	return s.executor.Do(ctx, req, api.DefaultOptions(), nil)
}

func taskPath(id string) string {
	return tasksPath + "/" + url.PathEscape(id)
}

// authHeader passes the session token through verbatim.
func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": token}
}
