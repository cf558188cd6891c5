package task

import (
	"strings"
)

const (
	// DefaultTimeSlot is stored when the caller gives no time slot.
	DefaultTimeSlot = "N/A"
	// DefaultCategory is stored when the caller gives no category.
	DefaultCategory = "General"
)

// Task is a single planner entry. The JSON shape matches the persisted
// planner blob, so stored data stays readable by older snapshots.
type Task struct {
	TimeSlot     string     `json:"time_slot"`
	Detail       string     `json:"task_detail"`
	Category     string     `json:"category"`
	Status       Status     `json:"status"`
	Note         string     `json:"note,omitempty"`
	Recurrence   Recurrence `json:"recurrence,omitempty"`
	RecurrenceID string     `json:"recurrenceId,omitempty"`
}

// New builds a task from a draft, applying the add-time defaults. The
// caller is responsible for rejecting blank details first.
func New(d Draft) Task {
	t := Task{
		TimeSlot:   strings.TrimSpace(d.TimeSlot),
		Detail:     strings.TrimSpace(d.Detail),
		Category:   strings.TrimSpace(d.Category),
		Status:     Pending,
		Note:       d.Note,
		Recurrence: d.Recurrence,
	}
	if t.TimeSlot == "" {
		t.TimeSlot = DefaultTimeSlot
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	return t
}

// Draft is the input for creating a task.
type Draft struct {
	Detail     string
	TimeSlot   string
	Category   string
	Note       string
	Recurrence Recurrence
}

// Edit is a partial update. Nil fields are left untouched; status, note,
// recurrence and the recurrence group id are never editable this way.
type Edit struct {
	Detail   *string
	TimeSlot *string
	Category *string
}

// Apply writes the non-nil fields of the edit onto the task.
func (e Edit) Apply(t *Task) {
	if e.Detail != nil {
		t.Detail = *e.Detail
	}
	if e.TimeSlot != nil {
		t.TimeSlot = *e.TimeSlot
	}
	if e.Category != nil {
		t.Category = *e.Category
	}
}

// Parsed is one item produced by the external capture/transcription flow,
// addressed by day name rather than day index.
type Parsed struct {
	Day      string `json:"day"`
	TimeSlot string `json:"time_slot"`
	Detail   string `json:"task_detail"`
	Category string `json:"category"`
	Status   string `json:"status,omitempty"`
}

// Task converts the parsed item into a planner task. Unknown or empty
// status strings fall back to Pending.
func (p Parsed) Task() Task {
	return Task{
		TimeSlot: p.TimeSlot,
		Detail:   p.Detail,
		Category: p.Category,
		Status:   ParseStatus(p.Status),
	}
}
