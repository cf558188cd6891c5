package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
)

type Edit struct {
	Day  string
	Task int

	// Nil means leave the field alone.
	Detail   *string
	TimeSlot *string
	Category *string

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Detail == nil && n.TimeSlot == nil && n.Category == nil {
		return errors.New("nothing to edit, set at least one of --detail, --time, --category")
	}
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	day, err := schedule.ResolveDay(n.Day)
	if err != nil {
		return err
	}

	t, err := sess.Service.EditTask(ctx, sess.Coords(day, n.Task), task.Edit{
		Detail:   n.Detail,
		TimeSlot: n.TimeSlot,
		Category: n.Category,
	})
	if err = session.Mutated(err); err != nil {
		return err
	}
	fmt.Printf("updated %q (%s, %s)\n", t.Detail, t.TimeSlot, t.Category)
	return nil
}
