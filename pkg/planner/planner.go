// Package planner owns the in-memory multi-user planner state and every
// mutation path into it. Each mutation validates first, applies, then
// pushes the whole state through the persistence boundary; a failed save
// surfaces as a warning, never as a rollback.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/semana/pkg/recurrence"
	"tableflip.dev/semana/pkg/reorder"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
)

// Coords addresses a day or a single task inside a user's planner.
type Coords struct {
	User     string
	MonthKey string
	Week     int
	Day      int
	Task     int
}

func (c Coords) String() string {
	return fmt.Sprintf("%s/%s/week %d/day %d/task %d", c.User, c.MonthKey, c.Week, c.Day, c.Task)
}

// Service wraps the full UserData state with its mutation surface.
type Service struct {
	Persistence store.Persistence

	data schedule.UserData
}

// New returns a service bound to a persistence backend.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

// Load pulls the persisted state. When nothing has been persisted yet it
// seeds the demo accounts and immediately asks for them to be saved.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("planner: no persistence configured")
	}
	data, err := s.Persistence.Load(ctx)
	if errors.Is(err, store.ErrAbsent) {
		s.data = schedule.Seed()
		return s.save(ctx)
	}
	if err != nil {
		return fmt.Errorf("planner: load: %w", err)
	}
	s.data = data
	return nil
}

// Data exposes the raw state. Callers treat it as read-only.
func (s *Service) Data() schedule.UserData {
	return s.data
}

// Users returns all users sorted by id.
func (s *Service) Users() []schedule.User {
	users := make([]schedule.User, 0, len(s.data))
	for _, account := range s.data {
		users = append(users, account.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// HasUser reports whether the user id exists.
func (s *Service) HasUser(userID string) bool {
	_, ok := s.data[userID]
	return ok
}

// Account resolves a user id.
func (s *Service) Account(userID string) (*schedule.Account, error) {
	account, ok := s.data[userID]
	if !ok {
		return nil, &NotFoundError{Kind: "user", Ref: userID}
	}
	return account, nil
}

// Years returns the sorted years present in the user's month keys.
func (s *Service) Years(userID string) []int {
	account, ok := s.data[userID]
	if !ok {
		return nil
	}
	return account.Planner.Years()
}

// MonthKeys returns the user's month keys of one year in calendar order.
func (s *Service) MonthKeys(userID string, year int) []string {
	account, ok := s.data[userID]
	if !ok {
		return nil
	}
	return account.Planner.MonthKeysForYear(year)
}

// WeekCount returns how many weeks the month key holds, zero when the
// coordinates do not resolve.
func (s *Service) WeekCount(userID, monthKey string) int {
	account, ok := s.data[userID]
	if !ok {
		return 0
	}
	return len(account.Planner[monthKey])
}

// MonthWeeks returns all weeks of a month for read access.
func (s *Service) MonthWeeks(userID, monthKey string) ([]schedule.Week, error) {
	return s.weeks(userID, monthKey)
}

// Week returns one week for read access.
func (s *Service) Week(userID, monthKey string, week int) (schedule.Week, error) {
	weeks, err := s.weeks(userID, monthKey)
	if err != nil {
		return schedule.Week{}, err
	}
	if week < 0 || week >= len(weeks) {
		return schedule.Week{}, &NotFoundError{Kind: "week", Ref: fmt.Sprintf("%s week %d", monthKey, week)}
	}
	return weeks[week], nil
}

// ToggleStatus cycles the status of the addressed task.
func (s *Service) ToggleStatus(ctx context.Context, c Coords) (task.Task, error) {
	t, err := s.taskAt(c)
	if err != nil {
		return task.Task{}, err
	}
	t.Status = t.Status.Next()
	return *t, s.save(ctx)
}

// AddTask appends a new task at the addressed day. A blank detail is
// rejected before anything changes. A recurrence rule fans identical
// value copies out across the calendar first; the original and every
// copy share one freshly generated group id.
func (s *Service) AddTask(ctx context.Context, c Coords, draft task.Draft) (task.Task, error) {
	if strings.TrimSpace(draft.Detail) == "" {
		return task.Task{}, &ValidationError{Field: "task_detail", Reason: "must not be blank"}
	}
	day, err := s.day(c)
	if err != nil {
		return task.Task{}, err
	}

	t := task.New(draft)
	if t.Recurrence != task.None {
		t.RecurrenceID = recurrence.NewGroupID()
		col := s.data[c.User].Planner
		origin := recurrence.Target{MonthKey: c.MonthKey, Week: c.Week, Day: c.Day}
		for _, target := range recurrence.Expand(col, origin, t.Recurrence) {
			sibling := &col[target.MonthKey][target.Week].Days[target.Day]
			sibling.Tasks = append(sibling.Tasks, t)
		}
	}
	day.Tasks = append(day.Tasks, t)
	return t, s.save(ctx)
}

// EditTask applies a partial update to a single task instance. Sibling
// copies in the same recurrence group are deliberately left alone.
func (s *Service) EditTask(ctx context.Context, c Coords, edit task.Edit) (task.Task, error) {
	if edit.Detail != nil && strings.TrimSpace(*edit.Detail) == "" {
		return task.Task{}, &ValidationError{Field: "task_detail", Reason: "must not be blank"}
	}
	t, err := s.taskAt(c)
	if err != nil {
		return task.Task{}, err
	}
	edit.Apply(t)
	return *t, s.save(ctx)
}

// SetNote replaces the note of the addressed task. An empty note clears it.
func (s *Service) SetNote(ctx context.Context, c Coords, note string) (task.Task, error) {
	t, err := s.taskAt(c)
	if err != nil {
		return task.Task{}, err
	}
	t.Note = note
	return *t, s.save(ctx)
}

// DeleteTask removes the addressed task. With cascade set and a task
// that belongs to a recurrence group, every member of the group across
// the user's whole collection goes with it. Returns how many tasks were
// removed.
func (s *Service) DeleteTask(ctx context.Context, c Coords, cascade bool) (int, error) {
	t, err := s.taskAt(c)
	if err != nil {
		return 0, err
	}
	if cascade && t.RecurrenceID != "" {
		removed := recurrence.DeleteGroup(s.data[c.User].Planner, t.RecurrenceID)
		return removed, s.save(ctx)
	}
	day, err := s.day(c)
	if err != nil {
		return 0, err
	}
	day.Tasks = append(day.Tasks[:c.Task], day.Tasks[c.Task+1:]...)
	return 1, s.save(ctx)
}

// Group returns every task sharing the recurrence group of the addressed
// task.
func (s *Service) Group(c Coords) ([]recurrence.Occurrence, error) {
	t, err := s.taskAt(c)
	if err != nil {
		return nil, err
	}
	return recurrence.Collect(s.data[c.User].Planner, t.RecurrenceID), nil
}

// ApplyParsed appends externally captured tasks to the addressed week as
// one batch. Items are matched to days by accent- and case-insensitive
// name; items with unknown day names are dropped without affecting the
// rest. Returns how many were applied.
func (s *Service) ApplyParsed(ctx context.Context, userID, monthKey string, week int, items []task.Parsed) (int, error) {
	weeks, err := s.weeks(userID, monthKey)
	if err != nil {
		return 0, err
	}
	if week < 0 || week >= len(weeks) {
		return 0, &NotFoundError{Kind: "week", Ref: fmt.Sprintf("%s week %d", monthKey, week)}
	}
	days := weeks[week].Days
	added := 0
	for _, item := range items {
		di, ok := schedule.DayIndex(item.Day)
		if !ok {
			continue
		}
		days[di].Tasks = append(days[di].Tasks, item.Task())
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.save(ctx)
}

// MoveTask resolves a drop target and moves one task within the
// addressed week, possibly across days. Dropping onto the identical
// position is a no-op and skips the save.
func (s *Service) MoveTask(ctx context.Context, userID, monthKey string, week int, src reorder.Position, target reorder.DropTarget) error {
	weeks, err := s.weeks(userID, monthKey)
	if err != nil {
		return err
	}
	if week < 0 || week >= len(weeks) {
		return &NotFoundError{Kind: "week", Ref: fmt.Sprintf("%s week %d", monthKey, week)}
	}
	days := weeks[week].Days
	dest, err := reorder.Resolve(days, src, target)
	if err != nil {
		return err
	}
	if dest == src {
		return nil
	}
	if err := reorder.Move(days, src, dest); err != nil {
		return err
	}
	return s.save(ctx)
}

func (s *Service) weeks(userID, monthKey string) ([]schedule.Week, error) {
	account, ok := s.data[userID]
	if !ok {
		return nil, &NotFoundError{Kind: "user", Ref: userID}
	}
	weeks, ok := account.Planner[monthKey]
	if !ok {
		return nil, &NotFoundError{Kind: "month", Ref: monthKey}
	}
	return weeks, nil
}

func (s *Service) day(c Coords) (*schedule.Day, error) {
	weeks, err := s.weeks(c.User, c.MonthKey)
	if err != nil {
		return nil, err
	}
	if c.Week < 0 || c.Week >= len(weeks) {
		return nil, &NotFoundError{Kind: "week", Ref: fmt.Sprintf("%s week %d", c.MonthKey, c.Week)}
	}
	if c.Day < 0 || c.Day >= len(weeks[c.Week].Days) {
		return nil, &NotFoundError{Kind: "day", Ref: fmt.Sprintf("%s week %d day %d", c.MonthKey, c.Week, c.Day)}
	}
	return &weeks[c.Week].Days[c.Day], nil
}

func (s *Service) taskAt(c Coords) (*task.Task, error) {
	day, err := s.day(c)
	if err != nil {
		return nil, err
	}
	if c.Task < 0 || c.Task >= len(day.Tasks) {
		return nil, &NotFoundError{Kind: "task", Ref: c.String()}
	}
	return &day.Tasks[c.Task], nil
}

// save pushes the whole state through the persistence boundary. Failures
// come back as a PersistenceWarning so callers can report without
// treating the mutation as failed.
func (s *Service) save(ctx context.Context) error {
	if err := s.Persistence.Save(ctx, s.data); err != nil {
		return &PersistenceWarning{Err: err}
	}
	return nil
}
