package planner

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/semana/pkg/navigator"
	"tableflip.dev/semana/pkg/reorder"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
)

type memoryPersistence struct {
	data      schedule.UserData
	selection *navigator.Selection
	saves     int
	failSave  bool
}

func (m *memoryPersistence) Load(_ context.Context) (schedule.UserData, error) {
	if m.data == nil {
		return nil, store.ErrAbsent
	}
	return cloneData(m.data), nil
}

func (m *memoryPersistence) Save(_ context.Context, data schedule.UserData) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.saves++
	m.data = cloneData(data)
	return nil
}

func (m *memoryPersistence) LoadSelection(_ context.Context) (navigator.Selection, error) {
	if m.selection == nil {
		return navigator.Selection{}, store.ErrAbsent
	}
	return *m.selection, nil
}

func (m *memoryPersistence) SaveSelection(_ context.Context, sel navigator.Selection) error {
	m.selection = &sel
	return nil
}

// cloneData round-trips through JSON so the fake never shares storage
// with the service under test.
func cloneData(data schedule.UserData) schedule.UserData {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	out := make(schedule.UserData)
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func newTestService(t *testing.T) (*Service, *memoryPersistence) {
	t.Helper()
	mp := &memoryPersistence{data: singleUser()}
	svc := New(mp)
	require.NoError(t, svc.Load(context.Background()))
	return svc, mp
}

func singleUser() schedule.UserData {
	return schedule.UserData{
		"user-1": {
			User:    schedule.User{ID: "user-1", Name: "Katherine", Avatar: "👩‍💻"},
			Planner: schedule.Generate(schedule.DefaultYears()...),
		},
	}
}

func at(month string, week, day, index int) Coords {
	return Coords{User: "user-1", MonthKey: month, Week: week, Day: day, Task: index}
}

func TestLoadSeedsWhenAbsent(t *testing.T) {
	mp := &memoryPersistence{}
	svc := New(mp)

	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.HasUser("user-1"))
	assert.True(t, svc.HasUser("user-2"))
	assert.Equal(t, 1, mp.saves, "freshly seeded state must be saved immediately")
}

func TestToggleStatusCycles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	coords := at("January 2024", 0, 0, -1)
	_, err := svc.AddTask(ctx, coords, task.Draft{Detail: "Standup"})
	require.NoError(t, err)

	coords.Task = 0
	for _, want := range []task.Status{task.InProgress, task.Completed, task.Pending} {
		got, err := svc.ToggleStatus(ctx, coords)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}
}

func TestToggleStatusNotFound(t *testing.T) {
	svc, mp := newTestService(t)
	saves := mp.saves

	_, err := svc.ToggleStatus(context.Background(), at("January 2024", 0, 0, 0))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, saves, mp.saves, "failed toggle must not save")

	_, err = svc.ToggleStatus(context.Background(), at("January 2024", 9, 0, 0))
	assert.True(t, IsNotFound(err))

	_, err = svc.ToggleStatus(context.Background(), Coords{User: "nobody", MonthKey: "January 2024"})
	assert.True(t, IsNotFound(err))
}

func TestAddTaskValidatesDetail(t *testing.T) {
	svc, mp := newTestService(t)
	saves := mp.saves

	_, err := svc.AddTask(context.Background(), at("January 2024", 0, 0, -1), task.Draft{Detail: "   "})
	assert.True(t, IsValidation(err))
	assert.Equal(t, saves, mp.saves, "rejected add must not mutate or save")

	week, err := svc.Week("user-1", "January 2024", 0)
	require.NoError(t, err)
	assert.Empty(t, week.Days[0].Tasks)
}

func TestAddTaskDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.AddTask(context.Background(), at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup"})
	require.NoError(t, err)
	assert.Equal(t, task.DefaultTimeSlot, got.TimeSlot)
	assert.Equal(t, task.DefaultCategory, got.Category)
	assert.Equal(t, task.Pending, got.Status)
	assert.Empty(t, got.RecurrenceID, "one-off tasks carry no group id")
}

func TestAddTaskDailyRecurrence(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.AddTask(context.Background(), at("January 2024", 1, 2, -1), task.Draft{
		Detail: "Stretch", Recurrence: task.Daily,
	})
	require.NoError(t, err)
	require.NotEmpty(t, got.RecurrenceID)

	week, err := svc.Week("user-1", "January 2024", 1)
	require.NoError(t, err)
	for di, d := range week.Days {
		require.Len(t, d.Tasks, 1, "day %d", di)
		assert.Equal(t, got.RecurrenceID, d.Tasks[0].RecurrenceID)
	}

	// No other week received a copy.
	for _, wi := range []int{0, 2, 3} {
		w, err := svc.Week("user-1", "January 2024", wi)
		require.NoError(t, err)
		for _, d := range w.Days {
			assert.Empty(t, d.Tasks)
		}
	}
}

func TestAddTaskWeeklyRecurrence(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.AddTask(context.Background(), at("January 2024", 0, 0, -1), task.Draft{
		Detail: "Standup", TimeSlot: "09:00", Category: "Meeting", Recurrence: task.Weekly,
	})
	require.NoError(t, err)

	for wi := 0; wi < schedule.WeeksPerMonth; wi++ {
		week, err := svc.Week("user-1", "January 2024", wi)
		require.NoError(t, err)
		require.Len(t, week.Days[0].Tasks, 1, "week %d Monday", wi)
		sibling := week.Days[0].Tasks[0]
		assert.Equal(t, "Standup", sibling.Detail)
		assert.Equal(t, got.RecurrenceID, sibling.RecurrenceID)
		for di := 1; di < schedule.DaysPerWeek; di++ {
			assert.Empty(t, week.Days[di].Tasks)
		}
	}

	// February is unaffected.
	feb, err := svc.Week("user-1", "February 2024", 0)
	require.NoError(t, err)
	for _, d := range feb.Days {
		assert.Empty(t, d.Tasks)
	}
}

func TestAddTaskMonthlyRecurrenceStaysInYear(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.AddTask(context.Background(), at("March 2024", 1, 4, -1), task.Draft{
		Detail: "Invoices", Recurrence: task.Monthly,
	})
	require.NoError(t, err)

	data := svc.Data()["user-1"].Planner
	for key, weeks := range data {
		_, year, err := schedule.ParseMonthKey(key)
		require.NoError(t, err)
		for wi, w := range weeks {
			for di, d := range w.Days {
				switch {
				case year != 2024:
					assert.Empty(t, d.Tasks, "%s must be untouched", key)
				case key == "March 2024":
					if wi == 1 && di == 4 {
						require.Len(t, d.Tasks, 1)
						assert.Equal(t, got.RecurrenceID, d.Tasks[0].RecurrenceID)
					} else {
						assert.Empty(t, d.Tasks)
					}
				case di == 4:
					require.Len(t, d.Tasks, 1, "%s week %d", key, wi)
					assert.Equal(t, got.RecurrenceID, d.Tasks[0].RecurrenceID)
				default:
					assert.Empty(t, d.Tasks)
				}
			}
		}
	}
}

func TestRecurrenceCopiesDoNotAlias(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup", Recurrence: task.Weekly})
	require.NoError(t, err)

	// Diverge one sibling; the others must keep their state.
	_, err = svc.SetNote(ctx, at("January 2024", 1, 0, 0), "only week 2")
	require.NoError(t, err)
	_, err = svc.ToggleStatus(ctx, at("January 2024", 1, 0, 0))
	require.NoError(t, err)

	w0, _ := svc.Week("user-1", "January 2024", 0)
	assert.Empty(t, w0.Days[0].Tasks[0].Note)
	assert.Equal(t, task.Pending, w0.Days[0].Tasks[0].Status)
}

func TestEditTaskIsLocalToInstance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup", Recurrence: task.Weekly})
	require.NoError(t, err)

	detail := "Standup (moved)"
	edited, err := svc.EditTask(ctx, at("January 2024", 0, 0, 0), task.Edit{Detail: &detail})
	require.NoError(t, err)
	assert.Equal(t, detail, edited.Detail)
	assert.NotEmpty(t, edited.RecurrenceID, "edit must keep the group id")

	// Siblings keep the original detail but stay in the group.
	w1, _ := svc.Week("user-1", "January 2024", 1)
	assert.Equal(t, "Standup", w1.Days[0].Tasks[0].Detail)
	assert.Equal(t, edited.RecurrenceID, w1.Days[0].Tasks[0].RecurrenceID)
}

func TestSetNoteAndClear(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup"})
	require.NoError(t, err)

	got, err := svc.SetNote(ctx, at("January 2024", 0, 0, 0), "bring slides")
	require.NoError(t, err)
	assert.Equal(t, "bring slides", got.Note)

	got, err = svc.SetNote(ctx, at("January 2024", 0, 0, 0), "")
	require.NoError(t, err)
	assert.Empty(t, got.Note)
}

func TestDeleteSingleLeavesSiblings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	added, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup", Recurrence: task.Weekly})
	require.NoError(t, err)

	removed, err := svc.DeleteTask(ctx, at("January 2024", 1, 0, 0), false)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	group, err := svc.Group(at("January 2024", 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, group, 3, "three siblings survive a single delete")
	for _, occ := range group {
		assert.Equal(t, added.RecurrenceID, occ.Task.RecurrenceID, "surviving siblings keep their inert group id")
	}
}

func TestDeleteCascadeRemovesWholeGroup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup", Recurrence: task.Weekly})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "Unrelated"})
	require.NoError(t, err)

	removed, err := svc.DeleteTask(ctx, at("January 2024", 2, 0, 0), true)
	require.NoError(t, err)
	assert.Equal(t, 4, removed)

	for wi := 0; wi < schedule.WeeksPerMonth; wi++ {
		week, err := svc.Week("user-1", "January 2024", wi)
		require.NoError(t, err)
		for _, d := range week.Days {
			for _, item := range d.Tasks {
				assert.NotEqual(t, "Standup", item.Detail)
			}
		}
	}

	// The unrelated task survives.
	w0, _ := svc.Week("user-1", "January 2024", 0)
	require.Len(t, w0.Days[0].Tasks, 1)
	assert.Equal(t, "Unrelated", w0.Days[0].Tasks[0].Detail)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.DeleteTask(context.Background(), at("January 2024", 0, 0, 3), false)
	assert.True(t, IsNotFound(err))
}

func TestApplyParsedMatchesAccents(t *testing.T) {
	svc, _ := newTestService(t)

	added, err := svc.ApplyParsed(context.Background(), "user-1", "January 2024", 0, []task.Parsed{
		{Day: "miércoles", Detail: "Repaso", TimeSlot: "10:00", Category: "Study"},
		{Day: "miercoles", Detail: "Lectura", TimeSlot: "11:00", Category: "Study"},
		{Day: "Notaday", Detail: "Lost", TimeSlot: "12:00", Category: "Nowhere"},
		{Day: "DOMINGO", Detail: "Descanso", TimeSlot: "", Category: "", Status: "In Progress"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	week, err := svc.Week("user-1", "January 2024", 0)
	require.NoError(t, err)
	require.Len(t, week.Days[2].Tasks, 2, "both spellings land on Miércoles")
	assert.Equal(t, "Repaso", week.Days[2].Tasks[0].Detail)
	require.Len(t, week.Days[6].Tasks, 1)
	assert.Equal(t, task.InProgress, week.Days[6].Tasks[0].Status)
}

func TestApplyParsedAllDroppedSkipsSave(t *testing.T) {
	svc, mp := newTestService(t)
	saves := mp.saves

	added, err := svc.ApplyParsed(context.Background(), "user-1", "January 2024", 0, []task.Parsed{
		{Day: "Notaday", Detail: "Lost"},
	})
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, saves, mp.saves)
}

func TestMoveTaskAcrossDays(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "A"})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "B"})
	require.NoError(t, err)

	err = svc.MoveTask(ctx, "user-1", "January 2024", 0,
		reorder.Position{Day: 0, Task: 0}, reorder.DropTarget{Day: 4})
	require.NoError(t, err)

	week, _ := svc.Week("user-1", "January 2024", 0)
	require.Len(t, week.Days[0].Tasks, 1)
	assert.Equal(t, "B", week.Days[0].Tasks[0].Detail)
	require.Len(t, week.Days[4].Tasks, 1)
	assert.Equal(t, "A", week.Days[4].Tasks[0].Detail)
}

func TestMoveTaskToOwnPositionSkipsSave(t *testing.T) {
	svc, mp := newTestService(t)
	ctx := context.Background()
	_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: "A"})
	require.NoError(t, err)
	saves := mp.saves

	err = svc.MoveTask(ctx, "user-1", "January 2024", 0,
		reorder.Position{Day: 0, Task: 0}, reorder.DropTarget{Day: 0, Task: 0, OntoTask: true})
	require.NoError(t, err)
	assert.Equal(t, saves, mp.saves, "dropping onto itself is a no-op")
}

func TestMoveThereAndBackRestoresOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	for _, detail := range []string{"A", "B", "C"} {
		_, err := svc.AddTask(ctx, at("January 2024", 0, 0, -1), task.Draft{Detail: detail})
		require.NoError(t, err)
	}

	err := svc.MoveTask(ctx, "user-1", "January 2024", 0,
		reorder.Position{Day: 0, Task: 0}, reorder.DropTarget{Day: 0, Task: 1, OntoTask: true})
	require.NoError(t, err)
	err = svc.MoveTask(ctx, "user-1", "January 2024", 0,
		reorder.Position{Day: 0, Task: 1}, reorder.DropTarget{Day: 0, Task: 0, OntoTask: true})
	require.NoError(t, err)

	week, _ := svc.Week("user-1", "January 2024", 0)
	got := []string{week.Days[0].Tasks[0].Detail, week.Days[0].Tasks[1].Detail, week.Days[0].Tasks[2].Detail}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestPersistenceWarningKeepsMutation(t *testing.T) {
	svc, mp := newTestService(t)
	mp.failSave = true

	got, err := svc.AddTask(context.Background(), at("January 2024", 0, 0, -1), task.Draft{Detail: "Standup"})
	require.Error(t, err)
	assert.True(t, IsPersistenceWarning(err))
	assert.Equal(t, "Standup", got.Detail)

	// The in-memory state holds the task despite the failed save.
	week, werr := svc.Week("user-1", "January 2024", 0)
	require.NoError(t, werr)
	require.Len(t, week.Days[0].Tasks, 1)
}

func TestWeekCountAndBounds(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t, 4, svc.WeekCount("user-1", "January 2024"))
	assert.Zero(t, svc.WeekCount("user-1", "January 1999"))
	assert.Zero(t, svc.WeekCount("nobody", "January 2024"))

	years := svc.Years("user-1")
	assert.Equal(t, []int{2023, 2024, 2025}, years)

	_, err := svc.Week("user-1", "January 2024", 9)
	assert.True(t, IsNotFound(err))
}
