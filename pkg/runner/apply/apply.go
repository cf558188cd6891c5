package apply

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tableflip.dev/semana/pkg/runner/session"
	"tableflip.dev/semana/pkg/store"
	"tableflip.dev/semana/pkg/task"
)

// Apply commits a batch of externally captured tasks (the output of the
// AI capture flow) into the currently selected week.
type Apply struct {
	File string

	Persistence store.Persistence
}

func (n *Apply) Do(ctx context.Context) error {
	raw, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("reading parsed tasks: %w", err)
	}
	var items []task.Parsed
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decoding parsed tasks: %w", err)
	}

	sess, err := session.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	sel := sess.Nav.Selection
	added, err := sess.Service.ApplyParsed(ctx, sel.UserID, sel.MonthKey, sel.Week, items)
	if err = session.Mutated(err); err != nil {
		return err
	}
	if dropped := len(items) - added; dropped > 0 {
		session.Warn(fmt.Errorf("%d item(s) had no matching day and were dropped", dropped))
	}
	fmt.Printf("applied %d task(s) to %s week %d\n", added, sel.MonthKey, sel.Week+1)
	return nil
}
