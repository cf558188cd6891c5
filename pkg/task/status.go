package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the tri-state task status.
type Status int

const (
	Pending Status = iota
	InProgress
	Completed
)

var statusNames = map[Status]string{
	Pending:    "Pending",
	InProgress: "In Progress",
	Completed:  "Completed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Pending]
}

// Next cycles Pending → In Progress → Completed → Pending.
func (s Status) Next() Status {
	switch s {
	case Pending:
		return InProgress
	case InProgress:
		return Completed
	default:
		return Pending
	}
}

// ParseStatus is lenient: it trims, ignores case and accepts a few common
// spellings. Anything unrecognised becomes Pending so free-form input from
// the capture flow never fails.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in progress", "in-progress", "inprogress":
		return InProgress
	case "completed", "complete", "done":
		return Completed
	default:
		return Pending
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("task: status: %w", err)
	}
	*s = ParseStatus(raw)
	return nil
}
