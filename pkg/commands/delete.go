package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/del"
	"tableflip.dev/semana/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cascade := false

	cmd := &cobra.Command{
		Use:     "delete <day> <task-index>",
		Aliases: []string{"rm"},
		Short:   "Delete a task, optionally with its whole recurrence group.",
		Example: `
semana delete lunes 0
semana delete lunes 0 --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			_, _, err := taskArgs(args)
			return err
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
			s := del.Delete{
				Day:         day,
				Task:        index,
				Cascade:     cascade,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&cascade, "all", false, "Also delete every task in the same recurrence group.")

	topLevel.AddCommand(cmd)
}
