package del

import (
	"context"
	"fmt"

	"tableflip.dev/semana/pkg/planner"
	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
)

type Delete struct {
	Day     string
	Task    int
	Cascade bool

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	day, err := schedule.ResolveDay(n.Day)
	if err != nil {
		return err
	}

	removed, err := sess.Service.DeleteTask(ctx, sess.Coords(day, n.Task), n.Cascade)
	if planner.IsNotFound(err) {
		// Nothing at those coordinates; deleting is already done.
		return nil
	}
	if err = session.Mutated(err); err != nil {
		return err
	}
	switch removed {
	case 1:
		fmt.Println("deleted 1 task")
	default:
		fmt.Printf("deleted %d recurring tasks\n", removed)
	}
	return nil
}
