// Package reorder resolves drag-and-drop style task moves inside one
// week: same-day reordering and cross-day moves, addressed either by a
// concrete task position or by a bare day (append at the end).
package reorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/task"
)

// ErrMissingCoordinate is returned when a drop event lacks a required
// index.
var ErrMissingCoordinate = errors.New("reorder: missing coordinate in drop event")

// Position addresses a task inside a week.
type Position struct {
	Day  int
	Task int
}

// DropTarget is the destination of a drop: either a task position
// (OntoTask true) or a bare day meaning "append to that day".
type DropTarget struct {
	Day      int
	Task     int
	OntoTask bool
}

// FormatDayID renders the droppable id of a day container.
func FormatDayID(day int) string {
	return fmt.Sprintf("day-%d", day)
}

// FormatTaskID renders the droppable id of a task.
func FormatTaskID(day, task int) string {
	return fmt.Sprintf("task-%d-%d", day, task)
}

// ParseDropID parses "day-<d>" and "task-<d>-<t>" ids back into a target.
func ParseDropID(id string) (DropTarget, error) {
	parts := strings.Split(strings.TrimSpace(id), "-")
	switch {
	case len(parts) == 2 && parts[0] == "day":
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			return DropTarget{}, fmt.Errorf("reorder: bad drop id %q: %w", id, err)
		}
		return DropTarget{Day: day}, nil
	case len(parts) == 3 && parts[0] == "task":
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			return DropTarget{}, fmt.Errorf("reorder: bad drop id %q: %w", id, err)
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return DropTarget{}, fmt.Errorf("reorder: bad drop id %q: %w", id, err)
		}
		return DropTarget{Day: day, Task: index, OntoTask: true}, nil
	default:
		return DropTarget{}, fmt.Errorf("reorder: bad drop id %q", id)
	}
}

// Resolve validates the source position and turns the drop target into a
// concrete destination. A bare-day target appends at the end of that
// day's current list.
func Resolve(days []schedule.Day, src Position, target DropTarget) (Position, error) {
	if src.Day < 0 || src.Task < 0 || target.Day < 0 {
		return Position{}, ErrMissingCoordinate
	}
	if src.Day >= len(days) || target.Day >= len(days) {
		return Position{}, fmt.Errorf("reorder: day index out of range")
	}
	if src.Task >= len(days[src.Day].Tasks) {
		return Position{}, fmt.Errorf("reorder: no task at %s", FormatTaskID(src.Day, src.Task))
	}
	if target.OntoTask {
		if target.Task < 0 {
			return Position{}, ErrMissingCoordinate
		}
		return Position{Day: target.Day, Task: target.Task}, nil
	}
	return Position{Day: target.Day, Task: len(days[target.Day].Tasks)}, nil
}

// Move removes the task at src and inserts it at dest, uniformly for
// same-day and cross-day moves. Dropping a task onto its own position is
// a no-op. The insert index is interpreted against the list after
// removal and clamped to its length.
func Move(days []schedule.Day, src, dest Position) error {
	if src == dest {
		return nil
	}
	if src.Day < 0 || src.Day >= len(days) || dest.Day < 0 || dest.Day >= len(days) {
		return fmt.Errorf("reorder: day index out of range")
	}
	source := days[src.Day].Tasks
	if src.Task < 0 || src.Task >= len(source) {
		return fmt.Errorf("reorder: no task at %s", FormatTaskID(src.Day, src.Task))
	}

	moved := source[src.Task]
	days[src.Day].Tasks = append(source[:src.Task], source[src.Task+1:]...)

	targetTasks := days[dest.Day].Tasks
	at := dest.Task
	if at > len(targetTasks) {
		at = len(targetTasks)
	}
	if at < 0 {
		at = 0
	}
	updated := make([]task.Task, 0, len(targetTasks)+1)
	updated = append(updated, targetTasks[:at]...)
	updated = append(updated, moved)
	updated = append(updated, targetTasks[at:]...)
	days[dest.Day].Tasks = updated
	return nil
}
