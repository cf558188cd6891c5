package toggle

import (
	"context"
	"fmt"

	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
)

type Toggle struct {
	Day  string
	Task int

	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	day, err := schedule.ResolveDay(n.Day)
	if err != nil {
		return err
	}

	t, err := sess.Service.ToggleStatus(ctx, sess.Coords(day, n.Task))
	if err = session.Mutated(err); err != nil {
		return err
	}
	fmt.Printf("%s → %s\n", t.Detail, t.Status)
	return nil
}
