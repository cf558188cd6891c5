package nav

import (
	"context"
	"fmt"

	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/store"
)

// Nav steps the stored selection by one year, month or week.
type Nav struct {
	Unit string // "year", "month" or "week"
	Back bool

	Persistence store.Persistence
}

func (n *Nav) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}

	switch n.Unit {
	case "year":
		moved := false
		if n.Back {
			moved = sess.Nav.PreviousYear()
		} else {
			moved = sess.Nav.NextYear()
		}
		if !moved {
			fmt.Println("already at the edge of the planner years")
			return nil
		}
	case "month":
		if n.Back {
			sess.Nav.PreviousMonth()
		} else {
			sess.Nav.NextMonth()
		}
	case "week":
		if n.Back {
			sess.Nav.PreviousWeek()
		} else {
			sess.Nav.NextWeek()
		}
	default:
		return fmt.Errorf("unknown unit %q, want year, month or week", n.Unit)
	}

	if err := sess.SaveSelection(ctx); err != nil {
		session.Warn(err)
	}
	sel := sess.Nav.Selection
	fmt.Printf("now at %s, week %d\n", sel.MonthKey, sel.Week+1)
	return nil
}

// Switch changes the current user.
type Switch struct {
	UserID string

	Persistence store.Persistence
}

func (n *Switch) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	if err := sess.Nav.SwitchUser(n.UserID); err != nil {
		return err
	}
	if err := sess.SaveSelection(ctx); err != nil {
		session.Warn(err)
	}
	account, err := sess.Service.Account(n.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("switched to %s %s\n", account.User.Avatar, account.User.Name)
	return nil
}

// Users lists the known users.
type Users struct {
	Persistence store.Persistence
}

func (n *Users) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Users(sess.Service.Users(), sess.Nav.Selection.UserID)
	return nil
}
