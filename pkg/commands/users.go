package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/nav"
	"tableflip.dev/semana/pkg/store"
)

func addUsers(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the planner users.",
		Example: `
semana users
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := nav.Users{
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
