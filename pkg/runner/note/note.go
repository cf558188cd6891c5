package note

import (
	"context"
	"fmt"

	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/store"
)

type Note struct {
	Day  string
	Task int
	Note string

	Persistence store.Persistence
}

func (n *Note) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	day, err := schedule.ResolveDay(n.Day)
	if err != nil {
		return err
	}

	t, err := sess.Service.SetNote(ctx, sess.Coords(day, n.Task), n.Note)
	if err = session.Mutated(err); err != nil {
		return err
	}
	if n.Note == "" {
		fmt.Printf("cleared note on %q\n", t.Detail)
	} else {
		fmt.Printf("noted %q on %q\n", n.Note, t.Detail)
	}
	return nil
}
