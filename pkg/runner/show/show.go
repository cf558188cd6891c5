package show

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/store"
)

type Show struct {
	Month     bool
	ShowNotes bool

	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	sel := sess.Nav.Selection

	account, err := sess.Service.Account(sel.UserID)
	if err != nil {
		return err
	}
	header := color.New(color.Faint)
	_, _ = header.Printf("%s %s  ·  %s\n\n", account.User.Avatar, account.User.Name, sel.MonthKey)

	pp := printers.PrettyPrint{ShowNotes: n.ShowNotes}
	if n.Month {
		weeks, err := sess.Service.MonthWeeks(sel.UserID, sel.MonthKey)
		if err != nil {
			return err
		}
		pp.Month(sel.MonthKey, weeks)
		return nil
	}

	week, err := sess.Service.Week(sel.UserID, sel.MonthKey, sel.Week)
	if err != nil {
		return fmt.Errorf("no planner data for the current selection: %w", err)
	}
	pp.Week(week)
	return nil
}
