package task

import (
	"fmt"
	"strings"
)

// Recurrence names how a new task fans out across the calendar. The zero
// value means a one-off task.
type Recurrence string

const (
	None    Recurrence = ""
	Daily   Recurrence = "daily"
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
)

// ParseRecurrence converts user input to a Recurrence. "none" and the
// empty string both mean no recurrence.
func ParseRecurrence(raw string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return None, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return None, fmt.Errorf("task: unknown recurrence %q", raw)
	}
}
