// Package ui provides the optional terminal task browser.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmcd/todo/internal/store"
	"github.com/kmcd/todo/internal/task"
)

// filterMode selects which tasks the browser shows.
type filterMode int

const (
	filterAll filterMode = iota
	filterPending
	filterCompleted
)

func (f filterMode) label() string {
	switch f {
	case filterPending:
		return "pending"
	case filterCompleted:
		return "completed"
	default:
		return "all"
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	noticeStyle   = lipgloss.NewStyle().Faint(true)
	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	medStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Run starts the task browser against the given store.
func Run(ctx context.Context, st *store.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	program := tea.NewProgram(newModel(st), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*browserModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

type browserModel struct {
	st           *store.Store
	tasks        []task.Task
	visible      []task.Task
	cursor       int
	filter       filterMode
	loadErr      error
	fatalErr     error
	notice       string
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newModel(st *store.Store) *browserModel {
	return &browserModel{
		st:           st,
		tickInterval: time.Second,
	}
}

func (m *browserModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		case "0":
			m.filter = filterAll
			m.applyFilter()
			return m, nil
		case "1":
			m.filter = filterPending
			m.applyFilter()
			return m, nil
		case "2":
			m.filter = filterCompleted
			m.applyFilter()
			return m, nil
		case "x":
			m.completeSelected()
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo") + "\n")
	b.WriteString(strings.Repeat("=", 4) + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.filter != filterAll {
		fmt.Fprintf(&b, "Filter: %s (0 to clear)\n\n", m.filter.label())
	}
	if m.loadErr != nil {
		b.WriteString("Error loading store:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if len(m.visible) == 0 {
		b.WriteString("No tasks found.\n\n")
	} else {
		for i, t := range m.visible {
			line := formatLine(t)
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n\n")
	}
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reloads the collection from disk and re-applies the filter.
func (m *browserModel) refresh() {
	tasks, err := m.st.Load()
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		m.visible = nil
		return
	}
	m.loadErr = nil
	m.tasks = task.Sort(tasks)
	m.applyFilter()
}

func (m *browserModel) applyFilter() {
	f := task.Filter{}
	switch m.filter {
	case filterPending:
		f.Pending = true
	case filterCompleted:
		f.Completed = true
	}
	m.visible = task.Apply(m.tasks, f)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// completeSelected marks the task under the cursor completed.
func (m *browserModel) completeSelected() {
	if len(m.visible) == 0 {
		return
	}
	id := m.visible[m.cursor].ID
	found, err := m.st.MarkCompleted(id)
	if err != nil {
		m.fatalErr = err
		return
	}
	if found {
		m.notice = fmt.Sprintf("Marked %s as completed", id)
	}
	m.refresh()
}

func formatLine(t task.Task) string {
	status := "[ ]"
	if t.Completed {
		status = "[x]"
	}
	desc := t.Description
	if desc == "" {
		desc = "(no description)"
	}
	line := fmt.Sprintf("  %s %s %s: %s", priorityMark(t.Priority), status, t.ID, desc)
	if t.DueDate != nil {
		line += fmt.Sprintf(" (Due: %s)", t.DueDate.Format("2006-01-02"))
	}
	return line
}

func priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return highStyle.Render("!")
	case task.PriorityMed:
		return medStyle.Render("-")
	case task.PriorityLow:
		return lowStyle.Render(".")
	}
	return " "
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  x            Mark selected task completed\n")
	b.WriteString("  1            Show pending tasks\n")
	b.WriteString("  2            Show completed tasks\n")
	b.WriteString("  0            Show all tasks\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s\n", interval))
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
