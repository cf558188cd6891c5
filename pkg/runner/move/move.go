package move

import (
	"context"
	"fmt"

	"tableflip.dev/semana/pkg/reorder"
	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
)

type Move struct {
	Day    string
	Task   int
	Target string // "day-<d>" or "task-<d>-<t>"

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	day, err := schedule.ResolveDay(n.Day)
	if err != nil {
		return err
	}
	target, err := reorder.ParseDropID(n.Target)
	if err != nil {
		return err
	}

	sel := sess.Nav.Selection
	src := reorder.Position{Day: day, Task: n.Task}
	err = sess.Service.MoveTask(ctx, sel.UserID, sel.MonthKey, sel.Week, src, target)
	if err = session.Mutated(err); err != nil {
		return err
	}
	fmt.Printf("moved %s to %s\n", reorder.FormatTaskID(day, n.Task), n.Target)
	return nil
}
