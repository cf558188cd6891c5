package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions carries the task field flags shared by add and edit.
type TaskOptions struct {
	TimeSlot   string
	Category   string
	Note       string
	Recurrence string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.TimeSlot, "time", "t", "", "Time slot label, free text.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "", "Category, free text. Defaults to General.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "", "Optional note.")
	cmd.Flags().StringVarP(&o.Recurrence, "recur", "r", "none", "Recurrence: none, daily, weekly or monthly.")
}

// EditOptions carries the partial-update flags for edit.
type EditOptions struct {
	Detail   string
	TimeSlot string
	Category string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Detail, "detail", "d", "", "New task detail.")
	cmd.Flags().StringVarP(&o.TimeSlot, "time", "t", "", "New time slot label.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "", "New category.")
}
