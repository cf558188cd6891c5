package reorder

import (
	"testing"

	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/task"
)

func week(counts ...int) []schedule.Day {
	days := schedule.NewDayTemplate()
	for di, count := range counts {
		for ti := 0; ti < count; ti++ {
			days[di].Tasks = append(days[di].Tasks, task.Task{Detail: FormatTaskID(di, ti)})
		}
	}
	return days
}

func order(days []schedule.Day, di int) []string {
	out := make([]string, 0, len(days[di].Tasks))
	for _, t := range days[di].Tasks {
		out = append(out, t.Detail)
	}
	return out
}

func TestParseDropID(t *testing.T) {
	target, err := ParseDropID("day-3")
	if err != nil {
		t.Fatalf("day id: %v", err)
	}
	if target.Day != 3 || target.OntoTask {
		t.Fatalf("unexpected target %+v", target)
	}

	target, err = ParseDropID("task-2-5")
	if err != nil {
		t.Fatalf("task id: %v", err)
	}
	if target.Day != 2 || target.Task != 5 || !target.OntoTask {
		t.Fatalf("unexpected target %+v", target)
	}

	for _, bad := range []string{"", "bogus", "day-x", "task-1", "task-a-b", "week-1-2"} {
		if _, err := ParseDropID(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestResolveDayTargetAppends(t *testing.T) {
	days := week(2, 3)

	dest, err := Resolve(days, Position{Day: 0, Task: 0}, DropTarget{Day: 1})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dest.Day != 1 || dest.Task != 3 {
		t.Fatalf("expected append position (1,3), got %+v", dest)
	}
}

func TestResolveMissingCoordinates(t *testing.T) {
	days := week(2)

	if _, err := Resolve(days, Position{Day: -1, Task: 0}, DropTarget{Day: 0}); err == nil {
		t.Error("expected error for missing source day")
	}
	if _, err := Resolve(days, Position{Day: 0, Task: 0}, DropTarget{Day: -1}); err == nil {
		t.Error("expected error for missing target day")
	}
	if _, err := Resolve(days, Position{Day: 0, Task: 5}, DropTarget{Day: 0}); err == nil {
		t.Error("expected error for out-of-range source task")
	}
}

func TestMoveSameDayRestoresOrder(t *testing.T) {
	days := week(3)
	original := order(days, 0)

	// Move task 0 after task 1, then move it back.
	if err := Move(days, Position{Day: 0, Task: 0}, Position{Day: 0, Task: 1}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := order(days, 0); got[0] != "task-0-1" || got[1] != "task-0-0" {
		t.Fatalf("unexpected order after move: %v", got)
	}
	if err := Move(days, Position{Day: 0, Task: 1}, Position{Day: 0, Task: 0}); err != nil {
		t.Fatalf("move back: %v", err)
	}
	got := order(days, 0)
	for i := range original {
		if got[i] != original[i] {
			t.Fatalf("order not restored: %v vs %v", got, original)
		}
	}
}

func TestMoveIdenticalPositionIsNoop(t *testing.T) {
	days := week(2)
	before := order(days, 0)

	if err := Move(days, Position{Day: 0, Task: 1}, Position{Day: 0, Task: 1}); err != nil {
		t.Fatalf("move: %v", err)
	}
	after := order(days, 0)
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("no-op move changed order: %v vs %v", after, before)
		}
	}
}

func TestMoveAcrossDays(t *testing.T) {
	days := week(2, 1)

	if err := Move(days, Position{Day: 0, Task: 0}, Position{Day: 1, Task: 0}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(days[0].Tasks) != 1 || len(days[1].Tasks) != 2 {
		t.Fatalf("unexpected lengths %d/%d", len(days[0].Tasks), len(days[1].Tasks))
	}
	if days[1].Tasks[0].Detail != "task-0-0" {
		t.Fatalf("moved task not inserted first: %v", order(days, 1))
	}
}

func TestMoveSameDayAppendClamps(t *testing.T) {
	days := week(3)

	// Appending within the same day: the pre-removal length (3) must be
	// clamped to the post-removal list.
	if err := Move(days, Position{Day: 0, Task: 0}, Position{Day: 0, Task: 3}); err != nil {
		t.Fatalf("move: %v", err)
	}
	got := order(days, 0)
	if got[2] != "task-0-0" {
		t.Fatalf("expected task appended at the end, got %v", got)
	}
}
