package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/apply"
	"tableflip.dev/semana/pkg/store"
)

func addApply(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Apply a batch of captured tasks to the current week.",
		Long: `Apply a JSON file of captured tasks, each addressed by day name, as
produced by the task-capture assistant. Day names are matched ignoring
case and accents; items with unknown day names are dropped.`,
		Example: `
semana apply captured.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := apply.Apply{
				File:        args[0],
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
