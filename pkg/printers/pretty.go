package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/semana/pkg/glyph"
	"tableflip.dev/semana/pkg/schedule"
	"tableflip.dev/semana/pkg/task"
)

type PrettyPrint struct {
	ShowNotes bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Header prints the week title and its period label.
func (pp *PrettyPrint) Header(w schedule.Week) {
	pp.Title(w.Title)
	c := color.New(color.Faint)
	_, _ = c.Println(w.Period)
}

// Week prints all seven days of a week.
func (pp *PrettyPrint) Week(w schedule.Week) {
	pp.Header(w)
	fmt.Println("")
	for di, d := range w.Days {
		pp.Day(di, d)
	}
}

// Day prints one day's focus and task list.
func (pp *PrettyPrint) Day(index int, d schedule.Day) {
	t := color.New(color.Bold)
	f := color.New(color.Faint, color.Italic)
	_, _ = t.Printf("%s", d.Name)
	_, _ = f.Printf("  %s\n", d.Focus)

	if len(d.Tasks) == 0 {
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for ti, item := range d.Tasks {
		tbl.AddRow(
			fmt.Sprintf("  %d", ti),
			statusGlyph(item.Status),
			item.TimeSlot,
			detail(item),
			item.Category,
		)
		if pp.ShowNotes && item.Note != "" {
			tbl.AddRow("", glyph.ForKey("note").String(), "", item.Note, "")
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Month prints a per-week summary of a whole month.
func (pp *PrettyPrint) Month(monthKey string, weeks []schedule.Week) {
	pp.Title(monthKey)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Week"), glyph.Bold("Period"), glyph.Bold("Tasks"), glyph.Bold("Done"))
	for wi, w := range weeks {
		total := 0
		done := 0
		for _, d := range w.Days {
			total += len(d.Tasks)
			for _, item := range d.Tasks {
				if item.Status == task.Completed {
					done++
				}
			}
		}
		tbl.AddRow(fmt.Sprintf("%d", wi+1), w.Period, fmt.Sprintf("%d", total), fmt.Sprintf("%d", done))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Users prints the known users and marks the current one.
func (pp *PrettyPrint) Users(users []schedule.User, currentID string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, u := range users {
		marker := " "
		if u.ID == currentID {
			marker = "*"
		}
		tbl.AddRow(marker, u.Avatar, u.ID, u.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func statusGlyph(s task.Status) string {
	return glyph.ForKey(strings.ToLower(s.String())).String()
}

func detail(t task.Task) string {
	d := t.Detail
	if t.Status == task.Completed {
		d = glyph.Strike(d)
	}
	if t.Recurrence != task.None {
		d = fmt.Sprintf("%s %s", d, glyph.ForKey("recurring").String())
	}
	return d
}
