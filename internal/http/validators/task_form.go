package validators

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	model "taskboard.com/taskboard/internal/models"
)

// TaskFormRequest is the posted editor form.
type TaskFormRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Priority    string `form:"priority"`
	Status      string `form:"status"`
	DueDate     string `form:"dueDate"`
	Snapshot    string `form:"snapshot"`
}

// BindTaskForm reads the editor form. Enum fields fall back to their
// defaults and a malformed due date is dropped, so the result is always a
// well-formed form. Required-field checks are left to the editor.
func BindTaskForm(c echo.Context) (model.TaskForm, *model.Task, error) {
	var req TaskFormRequest
	if err := c.Bind(&req); err != nil {
		return model.TaskForm{}, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	form := model.TaskForm{
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.ParsePriority(req.Priority),
		Status:      model.ParseStatus(req.Status),
		DueDate:     NormalizeDueDate(req.DueDate),
	}

	return form, DecodeSnapshot(req.Snapshot), nil
}

// NormalizeDueDate keeps a YYYY-MM-DD date and turns anything else into "".
func NormalizeDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	date := model.DatePortion(raw)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ""
	}
	return date
}

// DecodeSnapshot parses the hidden snapshot field. A missing or unreadable
// snapshot yields nil.
func DecodeSnapshot(raw string) *model.Task {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var task model.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil || task.ID == "" {
		return nil
	}
	return &task
}

// EncodeSnapshot is the inverse of DecodeSnapshot.
func EncodeSnapshot(task *model.Task) string {
	if task == nil {
		return ""
	}
	data, err := json.Marshal(task)
	if err != nil {
		return ""
	}
	return string(data)
}
