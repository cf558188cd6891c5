package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/edit"
	"tableflip.dev/semana/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <day> <task-index>",
		Short: "Edit a task's detail, time slot or category.",
		Long: `Edit a single task instance. Status, note and recurrence are not
editable here, and recurring siblings of the task are never touched.`,
		Example: `
semana edit lunes 0 --detail "Standup (moved)" --time "09:30"
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
			s := edit.Edit{
				Day:         day,
				Task:        index,
				Persistence: p,
			}
			if cmd.Flags().Changed("detail") {
				s.Detail = &eo.Detail
			}
			if cmd.Flags().Changed("time") {
				s.TimeSlot = &eo.TimeSlot
			}
			if cmd.Flags().Changed("category") {
				s.Category = &eo.Category
			}
			return s.Do(context.Background())
		},
	}

	options.AddEditArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
