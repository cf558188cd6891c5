// Package schedule generates and addresses the fixed planner calendar:
// three years of month keys, four weeks per month, seven named days per
// week. Only task lists inside the skeleton ever change.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"tableflip.dev/semana/pkg/task"
)

const (
	// WeeksPerMonth is fixed: every month key holds exactly four weeks.
	WeeksPerMonth = 4
	// DaysPerWeek is fixed: every week holds Monday through Sunday.
	DaysPerWeek = 7

	monthKeyFormat = "January 2006"
)

// MonthNames lists the twelve month names in calendar order, as used in
// month keys.
var MonthNames = []string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

// Day is one weekday column: a localized name, a descriptive focus label
// and the ordered task list. Task order is display order.
type Day struct {
	Name  string      `json:"day"`
	Focus string      `json:"focus"`
	Tasks []task.Task `json:"tasks"`
}

// Week is one of the four week rows of a month.
type Week struct {
	Title  string `json:"week_title"`
	Period string `json:"week_period"`
	Days   []Day  `json:"days"`
}

// Collection maps month keys ("January 2024") to their four weeks.
type Collection map[string][]Week

var dayTemplate = []Day{
	{Name: "Lunes", Focus: "Inicio de Semana"},
	{Name: "Martes", Focus: "Reuniones y Colaboración"},
	{Name: "Miércoles", Focus: "Desarrollo y Aprendizaje"},
	{Name: "Jueves", Focus: "Seguimiento"},
	{Name: "Viernes", Focus: "Cierre Semanal"},
	{Name: "Sábado", Focus: "Proyectos Personales"},
	{Name: "Domingo", Focus: "Descanso y Reflexión"},
}

// NewDayTemplate returns a fresh copy of the seven-day template with empty
// task lists. Copies never alias each other.
func NewDayTemplate() []Day {
	days := make([]Day, len(dayTemplate))
	for i, d := range dayTemplate {
		d.Tasks = make([]task.Task, 0)
		days[i] = d
	}
	return days
}

// DayNames returns the seven day names in week order.
func DayNames() []string {
	names := make([]string, len(dayTemplate))
	for i, d := range dayTemplate {
		names[i] = d.Name
	}
	return names
}

// DefaultYears is the year span pre-populated for every new user.
func DefaultYears() []int {
	return []int{2023, 2024, 2025}
}

// Generate builds the empty skeleton for the given years. Week i covers
// days (i-1)*7+1 through (i-1)*7+7 of the month; no real calendar length
// validation is applied, week 4 always claims days 22-28.
func Generate(years ...int) Collection {
	col := make(Collection, len(years)*len(MonthNames))
	for _, year := range years {
		for _, month := range MonthNames {
			weeks := make([]Week, 0, WeeksPerMonth)
			for i := 1; i <= WeeksPerMonth; i++ {
				start := (i-1)*DaysPerWeek + 1
				end := start + DaysPerWeek - 1
				weeks = append(weeks, Week{
					Title:  fmt.Sprintf("Planificación Semanal - Semana %d", i),
					Period: fmt.Sprintf("%s %d - %d, %d", month, start, end, year),
					Days:   NewDayTemplate(),
				})
			}
			col[MonthKey(month, year)] = weeks
		}
	}
	return col
}

// MonthKey formats the "<MonthName> <Year>" identifier.
func MonthKey(month string, year int) string {
	return fmt.Sprintf("%s %d", month, year)
}

// ParseMonthKey splits a month key back into its parts.
func ParseMonthKey(key string) (month string, year int, err error) {
	t, err := time.Parse(monthKeyFormat, key)
	if err != nil {
		return "", 0, fmt.Errorf("schedule: bad month key %q: %w", key, err)
	}
	return t.Month().String(), t.Year(), nil
}

// IsMonthKey reports whether value looks like "October 2025".
func IsMonthKey(key string) bool {
	_, _, err := ParseMonthKey(key)
	return err == nil
}

// Years returns the sorted distinct years present in the collection.
func (c Collection) Years() []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for key := range c {
		_, year, err := ParseMonthKey(key)
		if err != nil || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// MonthKeysForYear returns the month keys of one year in calendar order.
func (c Collection) MonthKeysForYear(year int) []string {
	keys := make([]string, 0, len(MonthNames))
	for _, month := range MonthNames {
		key := MonthKey(month, year)
		if _, ok := c[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeDayName lowercases and strips combining accents, so
// "Miércoles", "miercoles" and "MIERCOLES" all compare equal.
func NormalizeDayName(name string) string {
	folded, _, err := transform.String(foldAccents, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ResolveDay accepts either a 0-based day index or a day name.
func ResolveDay(arg string) (int, error) {
	if i, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		if i < 0 || i >= DaysPerWeek {
			return 0, fmt.Errorf("schedule: day index %d out of range", i)
		}
		return i, nil
	}
	if i, ok := DayIndex(arg); ok {
		return i, nil
	}
	return 0, fmt.Errorf("schedule: unknown day %q", arg)
}

// DayIndex resolves a day name to its index in the week, accent- and
// case-insensitively. The second return is false for unknown names.
func DayIndex(name string) (int, bool) {
	want := NormalizeDayName(name)
	for i, d := range dayTemplate {
		if NormalizeDayName(d.Name) == want {
			return i, true
		}
	}
	return 0, false
}
