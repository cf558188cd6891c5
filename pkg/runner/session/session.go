// Package session wires a runner to the loaded planner state and the
// persisted selection pointer.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/semana/pkg/navigator"
	"tableflip.dev/semana/pkg/planner"
	"tableflip.dev/semana/pkg/store"
)

// Session bundles the loaded planner service with the current selection.
type Session struct {
	Service     *planner.Service
	Nav         navigator.Navigator
	Persistence store.Persistence
}

// Open loads planner state (seeding on first run) and the stored
// selection, deriving a fresh one from the clock when none exists.
func Open(ctx context.Context, p store.Persistence) (*Session, error) {
	svc := planner.New(p)
	if err := svc.Load(ctx); err != nil {
		if !planner.IsPersistenceWarning(err) {
			return nil, err
		}
		Warn(err)
	}

	sel, err := p.LoadSelection(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrAbsent) {
			return nil, err
		}
		userID := ""
		if users := svc.Users(); len(users) > 0 {
			userID = users[0].ID
		}
		sel = navigator.Initial(time.Now(), userID)
	}

	return &Session{
		Service:     svc,
		Nav:         navigator.Navigator{Bounds: svc, Selection: sel},
		Persistence: p,
	}, nil
}

// Coords addresses a task in the currently selected week.
func (s *Session) Coords(day, task int) planner.Coords {
	sel := s.Nav.Selection
	return planner.Coords{
		User:     sel.UserID,
		MonthKey: sel.MonthKey,
		Week:     sel.Week,
		Day:      day,
		Task:     task,
	}
}

// SaveSelection persists the navigator pointer.
func (s *Session) SaveSelection(ctx context.Context) error {
	return s.Persistence.SaveSelection(ctx, s.Nav.Selection)
}

// Warn prints a non-fatal warning to stderr.
func Warn(err error) {
	fmt.Fprintf(os.Stderr, "warning: %s\n", err)
}

// Mutated filters a mutation result: persistence warnings are reported
// and swallowed, anything else is returned as-is.
func Mutated(err error) error {
	if err == nil {
		return nil
	}
	if planner.IsPersistenceWarning(err) {
		Warn(err)
		return nil
	}
	return err
}
