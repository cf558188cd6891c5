package options

import (
	"github.com/spf13/cobra"
)

// OutputOptions controls what show prints.
type OutputOptions struct {
	Month     bool
	ShowNotes bool
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false, "Show the whole month as a per-week summary.")
	cmd.Flags().BoolVar(&o.ShowNotes, "notes", false, "Show task notes.")
}
