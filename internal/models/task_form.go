package model

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldDueDate     = "dueDate"
)

// TaskForm is the editable part of a Task. It is also the request body for
// create and update calls, so the JSON names follow the API.
type TaskForm struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	DueDate     string   `json:"dueDate"`
}

// NewTaskForm returns the blank form used in add mode.
func NewTaskForm() TaskForm {
	return TaskForm{
		Priority: PriorityMedium,
		Status:   StatusTodo,
	}
}

// FormFromTask copies a loaded task into a form, truncating the due date to
// its calendar date.
func FormFromTask(t Task) TaskForm {
	return TaskForm{
		Title:       t.Title,
		Description: t.Description,
		Priority:    ParsePriority(string(t.Priority)),
		Status:      ParseStatus(string(t.Status)),
		DueDate:     DatePortion(t.DueDate),
	}
}
