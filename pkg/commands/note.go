package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/runner/note"
	"tableflip.dev/semana/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note <day> <task-index> [note]...",
		Short: "Set or clear the note on a task.",
		Example: `
semana note lunes 0 bring the slides
semana note lunes 0
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
			s := note.Note{
				Day:         day,
				Task:        index,
				Note:        strings.Join(args[2:], " "),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
