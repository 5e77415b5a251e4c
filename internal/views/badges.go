package views

import model "taskboard.com/taskboard/internal/models"

const (
	badgeGray   = "bg-gray-100 text-gray-600"
	badgeRed    = "bg-red-100 text-red-600"
	badgeYellow = "bg-yellow-100 text-yellow-600"
	badgeGreen  = "bg-green-100 text-green-600"
	badgeBlue   = "bg-blue-100 text-blue-600"
)

// PriorityClass maps a priority to its badge style. Anything unknown is gray.
func PriorityClass(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return badgeRed
	case model.PriorityMedium:
		return badgeYellow
	case model.PriorityLow:
		return badgeGreen
	default:
		return badgeGray
	}
}

// StatusClass maps a status to its badge style. Anything unknown is gray.
func StatusClass(s model.Status) string {
	switch s {
	case model.StatusInProgress:
		return badgeBlue
	case model.StatusDone:
		return badgeGreen
	default:
		return badgeGray
	}
}
