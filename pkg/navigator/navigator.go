// Package navigator tracks the current planner selection (user, year,
// month key, week) and computes the valid transitions between them. It
// holds no planner data of its own; bounds always come from the store.
package navigator

import (
	"fmt"
	"time"
)

// Bounds is the read surface the navigator needs from the planner store.
type Bounds interface {
	HasUser(userID string) bool
	Years(userID string) []int
	MonthKeys(userID string, year int) []string
	WeekCount(userID, monthKey string) int
}

// Selection is the current pointer. It persists across user switches, so
// after switching it may point outside the new user's populated range;
// that is accepted behavior.
type Selection struct {
	UserID   string `json:"userId"`
	Year     int    `json:"year"`
	MonthKey string `json:"monthKey"`
	Week     int    `json:"weekIndex"`
}

// Initial derives the starting selection from the wall clock: the current
// month key and the week holding today, capped at week 4.
func Initial(now time.Time, userID string) Selection {
	week := (now.Day() - 1) / 7
	if week > 3 {
		week = 3
	}
	return Selection{
		UserID:   userID,
		Year:     now.Year(),
		MonthKey: fmt.Sprintf("%s %d", now.Month().String(), now.Year()),
		Week:     week,
	}
}

// Navigator applies transitions to a selection within the given bounds.
type Navigator struct {
	Bounds    Bounds
	Selection Selection
}

// NotFoundError reports a switch to an unknown user.
type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("navigator: unknown user %q", e.UserID)
}

// PreviousYear moves to the previous year in the user's sorted year set,
// resetting to January week 1. It clamps at the first year.
func (n *Navigator) PreviousYear() bool {
	return n.shiftYear(-1)
}

// NextYear moves to the next year, resetting to January week 1. It clamps
// at the last year.
func (n *Navigator) NextYear() bool {
	return n.shiftYear(+1)
}

func (n *Navigator) shiftYear(delta int) bool {
	years := n.Bounds.Years(n.Selection.UserID)
	at := -1
	for i, y := range years {
		if y == n.Selection.Year {
			at = i
			break
		}
	}
	next := at + delta
	if at < 0 || next < 0 || next >= len(years) {
		return false
	}
	n.Selection.Year = years[next]
	n.Selection.MonthKey = fmt.Sprintf("January %d", years[next])
	n.Selection.Week = 0
	return true
}

// PreviousMonth cycles backward through the months of the current year
// and resets the week.
func (n *Navigator) PreviousMonth() {
	n.shiftMonth(-1)
}

// NextMonth cycles forward through the months of the current year and
// resets the week.
func (n *Navigator) NextMonth() {
	n.shiftMonth(+1)
}

func (n *Navigator) shiftMonth(delta int) {
	keys := n.Bounds.MonthKeys(n.Selection.UserID, n.Selection.Year)
	if len(keys) == 0 {
		return
	}
	at := 0
	for i, key := range keys {
		if key == n.Selection.MonthKey {
			at = i
			break
		}
	}
	n.Selection.MonthKey = keys[(at+delta+len(keys))%len(keys)]
	n.Selection.Week = 0
}

// PreviousWeek cycles backward through the weeks of the current month.
func (n *Navigator) PreviousWeek() {
	n.shiftWeek(-1)
}

// NextWeek cycles forward through the weeks of the current month.
func (n *Navigator) NextWeek() {
	n.shiftWeek(+1)
}

func (n *Navigator) shiftWeek(delta int) {
	count := n.Bounds.WeekCount(n.Selection.UserID, n.Selection.MonthKey)
	if count <= 0 {
		return
	}
	n.Selection.Week = (n.Selection.Week + delta + count) % count
}

// SwitchUser changes the current user. Year, month and week pointers are
// deliberately left alone.
func (n *Navigator) SwitchUser(userID string) error {
	if !n.Bounds.HasUser(userID) {
		return &NotFoundError{UserID: userID}
	}
	n.Selection.UserID = userID
	return nil
}
