// Package store owns the on-disk JSON file holding the full task
// collection.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmcd/todo/internal/task"
)

// StorageError reports a store file that cannot be read, written, or
// parsed as a JSON array.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store manages persistence of tasks in a single JSON file. Every
// operation is a full load-modify-save cycle over the whole file; the
// store assumes a single process and does not lock the file. Duplicate
// IDs are not rejected on Add; the generator is the only uniqueness
// guarantee.
type Store struct {
	root string
	path string
}

// Open returns a Store for an existing location without touching the
// file system.
func Open(root, filename string) *Store {
	return &Store{root: root, path: filepath.Join(root, filename)}
}

// New ensures root and the store file exist and returns the Store.
// A fresh store file contains an empty JSON array. Idempotent.
func New(root, filename string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, &StorageError{Path: root, Err: err}
	}
	s := Open(root, filename)
	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, &StorageError{Path: s.path, Err: err}
		}
		if err := os.WriteFile(s.path, []byte("[]"), 0644); err != nil {
			return nil, &StorageError{Path: s.path, Err: err}
		}
	}
	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Root returns the directory holding the store file.
func (s *Store) Root() string {
	return s.root
}

// Load reads and decodes the full task collection. An empty-array file
// yields an empty slice.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StorageError{Path: s.path, Err: fmt.Errorf("not a JSON array: %w", err)}
	}

	tasks := make([]task.Task, 0, len(raw))
	for i, item := range raw {
		var t task.Task
		if err := json.Unmarshal(item, &t); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save serializes the full collection with 2-space indentation and
// atomically replaces the store file, so an interrupted write never
// leaves a truncated store behind.
func (s *Store) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.root, ".todo-*.json")
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &StorageError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &StorageError{Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return &StorageError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &StorageError{Path: s.path, Err: err}
	}
	return nil
}

// Add appends t to the collection and persists.
func (s *Store) Add(t task.Task) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}
	tasks = append(tasks, t)
	return s.Save(tasks)
}

// Remove deletes the task with the given ID and reports whether one was
// removed. The file is rewritten only when something changed.
func (s *Store) Remove(id string) (bool, error) {
	tasks, err := s.Load()
	if err != nil {
		return false, err
	}
	filtered := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == len(tasks) {
		return false, nil
	}
	if err := s.Save(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the task with the given ID, or nil if not found.
func (s *Store) Get(id string) (*task.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// MarkCompleted sets completed=true on the task with the given ID and
// persists. Reports whether the task was found.
func (s *Store) MarkCompleted(id string) (bool, error) {
	tasks, err := s.Load()
	if err != nil {
		return false, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = true
			if err := s.Save(tasks); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
