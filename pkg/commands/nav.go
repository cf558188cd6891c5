package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/nav"
	"tableflip.dev/semana/pkg/store"
)

func addNav(topLevel *cobra.Command) {
	addStep(topLevel, "next", false)
	addStep(topLevel, "prev", true)
	addSwitch(topLevel)
}

func addStep(topLevel *cobra.Command, verb string, back bool) {
	cmd := &cobra.Command{
		Use:       verb + " <year|month|week>",
		Short:     "Move the current selection " + verb + " by one year, month or week.",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"year", "month", "week"},
		Example: `
semana ` + verb + ` week
semana ` + verb + ` month
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := nav.Nav{
				Unit:        args[0],
				Back:        back,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addSwitch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "switch <user-id>",
		Short: "Switch the current user.",
		Example: `
semana switch user-2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := nav.Switch{
				UserID:      args[0],
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
