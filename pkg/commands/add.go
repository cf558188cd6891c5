package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/add"
	"tableflip.dev/semana/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	day := ""

	cmd := &cobra.Command{
		Use:   "add <detail>...",
		Short: "Add a task to a day of the current week.",
		Example: `
semana add --day lunes Standup meeting --time "09:00" --category Meeting
semana add --day 2 Deep work block --recur weekly
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("task detail required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Day:         day,
				Detail:      strings.Join(args, " "),
				TimeSlot:    to.TimeSlot,
				Category:    to.Category,
				Note:        to.Note,
				Recurrence:  to.Recurrence,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day of the week, by name or 0-based index.")
	_ = cmd.MarkFlagRequired("day")
	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
