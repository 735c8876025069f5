// Package task defines the todo record model, its JSON encoding, ID
// generation, and the filtering/sorting used for listing.
package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh Priority = "High"
	PriorityMed  Priority = "Med"
	PriorityLow  Priority = "Low"
)

// Rank returns the ordering weight for a priority. High sorts first,
// unset priority last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMed:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ParsePriority validates a priority string supplied on the CLI.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMed, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q, must be one of: Low, Med, High", s)
}

// Task represents a single todo record. ID and CreatedAt are assigned
// at creation and never change afterwards.
type Task struct {
	ID          string
	CreatedAt   time.Time
	Completed   bool
	Category    []string
	Description string   // empty means never supplied
	Priority    Priority // empty means unset
	DueDate     *time.Time
	Folder      string // directory associated with the record, usually the data dir
}

// DecodeError reports a stored record that cannot be decoded: a missing
// required field or an unparseable timestamp.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// dueDateLayout is the calendar-date encoding used for due dates.
const dueDateLayout = "2006-01-02"

// timestampLayouts are accepted on decode. Stores written by older
// versions carry zone-less isoformat timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	dueDateLayout,
}

func parseTimestamp(field, value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, &DecodeError{Field: field, Err: fmt.Errorf("unparseable timestamp %q", value)}
}

// taskJSON is the wire form of a Task. Absent optional fields encode as
// explicit nulls so a stored record keeps its meaning on reload.
type taskJSON struct {
	ID          string   `json:"id"`
	CreatedAt   string   `json:"created_at"`
	Completed   bool     `json:"completed"`
	Category    []string `json:"category"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	DueDate     *string  `json:"due_date"`
	Folder      string   `json:"folder,omitempty"`
}

// MarshalJSON encodes the task with RFC 3339 created_at and a
// date-only due_date.
func (t Task) MarshalJSON() ([]byte, error) {
	w := taskJSON{
		ID:        t.ID,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		Completed: t.Completed,
		Category:  t.Category,
		Folder:    t.Folder,
	}
	if w.Category == nil {
		w.Category = []string{}
	}
	if t.Description != "" {
		desc := t.Description
		w.Description = &desc
	}
	if t.Priority != "" {
		p := string(t.Priority)
		w.Priority = &p
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(dueDateLayout)
		w.DueDate = &due
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a stored record. Missing optional fields fall
// back to their defaults; missing id/created_at or a bad timestamp
// yields a *DecodeError.
func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return &DecodeError{Err: err}
	}
	if w.ID == "" {
		return &DecodeError{Field: "id", Err: fmt.Errorf("missing required field")}
	}
	if w.CreatedAt == "" {
		return &DecodeError{Field: "created_at", Err: fmt.Errorf("missing required field")}
	}

	createdAt, err := parseTimestamp("created_at", w.CreatedAt)
	if err != nil {
		return err
	}

	var dueDate *time.Time
	if w.DueDate != nil && *w.DueDate != "" {
		due, err := parseTimestamp("due_date", *w.DueDate)
		if err != nil {
			return err
		}
		dueDate = &due
	}

	category := w.Category
	if category == nil {
		category = []string{}
	}

	var description string
	if w.Description != nil {
		description = *w.Description
	}
	var priority Priority
	if w.Priority != nil {
		priority = Priority(*w.Priority)
	}

	*t = Task{
		ID:          w.ID,
		CreatedAt:   createdAt,
		Completed:   w.Completed,
		Category:    category,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Folder:      w.Folder,
	}
	return nil
}
