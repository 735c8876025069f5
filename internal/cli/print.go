package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmcd/todo/internal/task"
)

var (
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	medStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return highStyle
	case task.PriorityMed:
		return medStyle
	case task.PriorityLow:
		return lowStyle
	}
	return lipgloss.NewStyle()
}

// formatTask renders one numbered list line for a task, with the index
// colored by priority.
func formatTask(t task.Task, n int) string {
	status := "[ ]"
	if t.Completed {
		status = "[x]"
	}
	desc := t.Description
	if desc == "" {
		desc = "(no description)"
	}

	var b strings.Builder
	b.WriteString(priorityStyle(t.Priority).Render(strconv.Itoa(n)))
	fmt.Fprintf(&b, ".%s %s: %s", status, t.ID, desc)
	if len(t.Category) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(t.Category, ", "))
	}
	if t.DueDate != nil {
		fmt.Fprintf(&b, " (Due: %s)", t.DueDate.Format("2006-01-02"))
	}
	return b.String()
}
