package add

import (
	"context"

	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
)

type Add struct {
	Day        string
	Detail     string
	TimeSlot   string
	Category   string
	Note       string
	Recurrence string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	day, err := schedule.ResolveDay(n.Day)
	if err != nil {
		return err
	}
	rule, err := task.ParseRecurrence(n.Recurrence)
	if err != nil {
		return err
	}

	coords := sess.Coords(day, -1)
	_, err = sess.Service.AddTask(ctx, coords, task.Draft{
		Detail:     n.Detail,
		TimeSlot:   n.TimeSlot,
		Category:   n.Category,
		Note:       n.Note,
		Recurrence: rule,
	})
	if err = session.Mutated(err); err != nil {
		return err
	}

	week, err := sess.Service.Week(coords.User, coords.MonthKey, coords.Week)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowNotes: true}
	pp.Header(week)
	pp.Day(day, week.Days[day])
	return nil
}
