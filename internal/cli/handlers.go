package cli

import (
	"fmt"
	"time"

	"github.com/kmcd/todo/internal/task"
)

// handleAdd creates a new task and persists it. An invalid due date is
// recovered locally: the task is added without one.
func (a *App) handleAdd(opts *Options) error {
	var due *time.Time
	if opts.Due != "" {
		parsed, err := time.ParseInLocation("2006-01-02", opts.Due, time.Local)
		if err != nil {
			a.Logger.Warn("Invalid due date format. Use YYYY-MM-DD.", "due", opts.Due)
		} else {
			due = &parsed
		}
	}

	category := []string{}
	if opts.Category != "" {
		category = []string{opts.Category}
	}

	t := task.Task{
		ID:          task.GenerateID(a.Cfg.IDPrefix),
		CreatedAt:   time.Now(),
		Category:    category,
		Description: opts.Add,
		Priority:    opts.Priority,
		DueDate:     due,
		Folder:      a.Store.Root(),
	}

	if err := a.Store.Add(t); err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	a.Logger.Info("Added new task", "id", t.ID, "description", t.Description)
	return nil
}

// handleList prints the filtered, sorted task collection.
func (a *App) handleList(opts *Options) error {
	tasks, err := a.Store.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if len(tasks) == 0 {
		a.Logger.Info("No tasks found.")
		return nil
	}

	switch {
	case opts.Completed:
		a.Logger.Info("Listing completed tasks")
	case opts.Pending:
		a.Logger.Info("Listing pending tasks")
	case opts.Category != "":
		a.Logger.Info("Listing tasks in category", "category", opts.Category)
	default:
		a.Logger.Info("Listing all tasks")
	}

	matched := task.Apply(tasks, task.Filter{
		Completed: opts.Completed,
		Pending:   opts.Pending,
		Category:  opts.Category,
		Priority:  opts.Priority,
	})
	if len(matched) == 0 {
		a.Logger.Info("No tasks found.")
		return nil
	}

	for i, t := range task.Sort(matched) {
		fmt.Fprintln(a.Out, formatTask(t, i+1))
	}
	return nil
}

// handleComplete marks a task completed by ID. Not-found is reported,
// not an error.
func (a *App) handleComplete(id string) error {
	found, err := a.Store.MarkCompleted(id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if !found {
		a.Logger.Warn("Task not found", "id", id)
		return nil
	}
	a.Logger.Info("Marked task as completed", "id", id)
	return nil
}

// handleDelete removes a task by ID. Not-found is reported, not an
// error.
func (a *App) handleDelete(id string) error {
	found, err := a.Store.Remove(id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if !found {
		a.Logger.Warn("Task not found", "id", id)
		return nil
	}
	a.Logger.Info("Deleted task", "id", id)
	return nil
}
