package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/runner/show"
	"tableflip.dev/semana/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the currently selected week or month.",
		Example: `
semana show
semana show --notes
semana show --month
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				Month:       oo.Month,
				ShowNotes:   oo.ShowNotes,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOutputArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
