package views

import model "taskboard.com/taskboard/internal/models"

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

var (
	priorityLabels = map[model.Priority]string{
		model.PriorityLow:    "Low",
		model.PriorityMedium: "Medium",
		model.PriorityHigh:   "High",
	}
	statusLabels = map[model.Status]string{
		model.StatusTodo:       "To Do",
		model.StatusInProgress: "In Progress",
		model.StatusDone:       "Done",
	}
)

func PriorityOptions(selected model.Priority) []Option {
	opts := make([]Option, 0, len(model.Priorities))
	for _, p := range model.Priorities {
		opts = append(opts, Option{Value: string(p), Label: priorityLabels[p], Selected: p == selected})
	}
	return opts
}

func StatusOptions(selected model.Status) []Option {
	opts := make([]Option, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		opts = append(opts, Option{Value: string(s), Label: statusLabels[s], Selected: s == selected})
	}
	return opts
}
