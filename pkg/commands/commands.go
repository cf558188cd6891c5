package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "semana",
		Short: "Weekly and monthly task planning on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addAdd(topLevel)
	addToggle(topLevel)
	addNote(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addApply(topLevel)
	addNav(topLevel)
	addUsers(topLevel)
	addVersion(topLevel)
}
