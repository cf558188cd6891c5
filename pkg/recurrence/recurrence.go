// Package recurrence decides where a recurring task fans out to, and
// finds the members of an existing recurrence group.
package recurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/task"
)

// Target addresses one day that should receive a copy of a new task.
type Target struct {
	MonthKey string
	Week     int
	Day      int
}

// NewGroupID returns a process-unique recurrence group id, combining a
// high-resolution timestamp with a random component.
func NewGroupID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString())
}

// Expand computes every location a copy of the task must be appended to,
// excluding the origin itself.
//
//	daily   — every other day of the origin week
//	weekly  — the origin day in every other week of the origin month
//	monthly — the origin day in every week of every other month of the
//	          origin's year; other years are never touched
func Expand(col schedule.Collection, origin Target, rule task.Recurrence) []Target {
	targets := make([]Target, 0)
	weeks, ok := col[origin.MonthKey]
	if !ok {
		return targets
	}

	switch rule {
	case task.Daily:
		if origin.Week < 0 || origin.Week >= len(weeks) {
			return targets
		}
		for day := range weeks[origin.Week].Days {
			if day != origin.Day {
				targets = append(targets, Target{MonthKey: origin.MonthKey, Week: origin.Week, Day: day})
			}
		}
	case task.Weekly:
		for week := range weeks {
			if week != origin.Week {
				targets = append(targets, Target{MonthKey: origin.MonthKey, Week: week, Day: origin.Day})
			}
		}
	case task.Monthly:
		_, year, err := schedule.ParseMonthKey(origin.MonthKey)
		if err != nil {
			return targets
		}
		for _, key := range col.MonthKeysForYear(year) {
			if key == origin.MonthKey {
				continue
			}
			for week := range col[key] {
				if origin.Day < 0 || origin.Day >= len(col[key][week].Days) {
					continue
				}
				targets = append(targets, Target{MonthKey: key, Week: week, Day: origin.Day})
			}
		}
	}
	return targets
}

// Occurrence is one group member found by Collect.
type Occurrence struct {
	MonthKey string
	Week     int
	Day      int
	Index    int
	Task     task.Task
}

// Collect scans the whole collection for tasks sharing the group id.
func Collect(col schedule.Collection, groupID string) []Occurrence {
	found := make([]Occurrence, 0)
	if groupID == "" {
		return found
	}
	for key, weeks := range col {
		for wi := range weeks {
			for di := range weeks[wi].Days {
				for ti, t := range weeks[wi].Days[di].Tasks {
					if t.RecurrenceID == groupID {
						found = append(found, Occurrence{MonthKey: key, Week: wi, Day: di, Index: ti, Task: t})
					}
				}
			}
		}
	}
	return found
}

// DeleteGroup removes every task carrying the group id from the whole
// collection and reports how many were removed.
func DeleteGroup(col schedule.Collection, groupID string) int {
	if groupID == "" {
		return 0
	}
	removed := 0
	for _, weeks := range col {
		for wi := range weeks {
			for di := range weeks[wi].Days {
				tasks := weeks[wi].Days[di].Tasks
				kept := tasks[:0]
				for _, t := range tasks {
					if t.RecurrenceID == groupID {
						removed++
						continue
					}
					kept = append(kept, t)
				}
				weeks[wi].Days[di].Tasks = kept
			}
		}
	}
	return removed
}
