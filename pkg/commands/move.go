package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/move"
	"tableflip.dev/semana/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <day> <task-index> <target>",
		Short: "Move a task within the current week.",
		Long: `Move a task to another position, possibly on another day. The target
is either task-<day>-<index> to drop before that task, or day-<day> to
append at the end of that day.`,
		Example: `
semana move lunes 0 task-0-2
semana move 0 1 day-4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if _, _, err := taskArgs(args); err != nil {
				return err
			}
			if len(args) < 3 {
				return errors.New("expected <day> <task-index> <target>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day, index, err := taskArgs(args)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				Day:         day,
				Task:        index,
				Target:      args[2],
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
