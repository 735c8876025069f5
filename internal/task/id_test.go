package task

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateIDFormat(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 30, 45, 0, time.Local)

	tests := []struct {
		prefix string
		want   string
	}{
		{"todo", "todo_20240601_153045"},
		{"task", "task_20240601_153045"},
		{"", "todo_20240601_153045"},
	}

	for _, tt := range tests {
		if got := generateID(tt.prefix, now); got != tt.want {
			t.Errorf("generateID(%q): got %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestGenerateIDPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^todo_\d{8}_\d{6}$`)
	if got := GenerateID("todo"); !pattern.MatchString(got) {
		t.Errorf("GenerateID: %q does not match %s", got, pattern)
	}
}
