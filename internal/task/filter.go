package task

import (
	"sort"
	"time"
)

// Filter is a predicate narrowing the task collection for listing.
// Zero-value fields are inactive. Completed and Pending are mutually
// exclusive at the CLI; if both are set here anyway, Completed is
// checked first and Pending second, which matches nothing.
type Filter struct {
	Completed bool
	Pending   bool
	Category  string
	Priority  Priority
}

// Apply returns the tasks matching f, preserving input order.
func Apply(tasks []Task, f Filter) []Task {
	var matched []Task
	for _, t := range tasks {
		if f.Category != "" && !hasCategory(t, f.Category) {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Completed && !t.Completed {
			continue
		}
		if f.Pending && t.Completed {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func hasCategory(t Task, category string) bool {
	for _, c := range t.Category {
		if c == category {
			return true
		}
	}
	return false
}

// Sort returns a copy of tasks ordered by priority rank (High first,
// unset last), then by due date ascending with undated tasks after all
// dated ones. The sort is stable: equal keys keep their input order.
func Sort(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return dueBefore(a.DueDate, b.DueDate)
	})
	return sorted
}

// dueBefore orders due dates ascending, treating an unset date as the
// maximum possible date.
func dueBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}
