package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/toggle"
	"tableflip.dev/semana/pkg/store"
)

// taskArgs validates the shared "<day> <task-index>" positional pair.
func taskArgs(args []string) (day string, index int, err error) {
	if len(args) < 2 {
		return "", 0, errors.New("expected <day> <task-index>")
	}
	index, err = strconv.Atoi(args[1])
	if err != nil {
		return "", 0, errors.New("task index must be a number")
	}
	return args[0], index, nil
}

func addToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <day> <task-index>",
		Short: "Cycle a task through Pending, In Progress and Completed.",
		Example: `
semana toggle lunes 0
semana toggle 3 2
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
			s := toggle.Toggle{
				Day:         day,
				Task:        index,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
