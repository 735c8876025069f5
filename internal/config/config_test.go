package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the cwd to dir and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir failed: %v", err)
		}
	})
}

// isolate points HOME and the cwd at empty temp dirs so no real config
// files leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	work := t.TempDir()
	chdir(t, work)
	return work
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreFile != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, DefaultStoreFile)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, DefaultDataDir)
	}
	if cfg.IDPrefix != DefaultIDPrefix {
		t.Errorf("IDPrefix: got %q, want %q", cfg.IDPrefix, DefaultIDPrefix)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.Debug {
		t.Error("Debug: got true, want false")
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_FILE", "other.json")
	t.Setenv("TODO_DATA_DIR", "/tmp/todo-data")
	t.Setenv("TODO_ID_PREFIX", "task")
	t.Setenv("TODO_LOG_LEVEL", "debug")
	t.Setenv("TODO_DEBUG", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreFile != "other.json" {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, "other.json")
	}
	if cfg.DataDir != "/tmp/todo-data" {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, "/tmp/todo-data")
	}
	if cfg.IDPrefix != "task" {
		t.Errorf("IDPrefix: got %q, want %q", cfg.IDPrefix, "task")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.Debug {
		t.Error("Debug: got false, want true")
	}
}

func TestProjectConfigFile(t *testing.T) {
	work := isolate(t)
	content := []byte("store_file = \"project.json\"\nid_prefix = \"proj\"\nlog_level = \"warn\"\n")
	if err := os.WriteFile(filepath.Join(work, "todo.toml"), content, 0644); err != nil {
		t.Fatalf("writing project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreFile != "project.json" {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, "project.json")
	}
	if cfg.IDPrefix != "proj" {
		t.Errorf("IDPrefix: got %q, want %q", cfg.IDPrefix, "proj")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("DataDir: got %q, want default %q", cfg.DataDir, DefaultDataDir)
	}
}

func TestEnvBeatsProjectConfig(t *testing.T) {
	work := isolate(t)
	if err := os.WriteFile(filepath.Join(work, "todo.toml"), []byte("store_file = \"from-file.json\"\n"), 0644); err != nil {
		t.Fatalf("writing project config: %v", err)
	}
	t.Setenv("TODO_FILE", "from-env.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != "from-env.json" {
		t.Errorf("StoreFile: got %q, want env override", cfg.StoreFile)
	}
}

func TestUserConfigFile(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".todo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating user config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "todo.toml"), []byte("id_prefix = \"home\"\n"), 0644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.IDPrefix != "home" {
		t.Errorf("IDPrefix: got %q, want %q", cfg.IDPrefix, "home")
	}
}

func TestFinalizeBareFilename(t *testing.T) {
	cfg := &Config{StoreFile: "todo.json", DataDir: "/srv/todo"}
	cfg.Finalize()

	want := filepath.Join("/srv/todo", "todo.json")
	if cfg.StorePath != want {
		t.Errorf("StorePath: got %q, want %q", cfg.StorePath, want)
	}
	if cfg.StoreDir != "/srv/todo" {
		t.Errorf("StoreDir: got %q, want %q", cfg.StoreDir, "/srv/todo")
	}
}

func TestFinalizeExplicitPath(t *testing.T) {
	cfg := &Config{StoreFile: "/var/lib/todo/list.json", DataDir: "data"}
	cfg.Finalize()

	if cfg.StorePath != "/var/lib/todo/list.json" {
		t.Errorf("StorePath: got %q, want path kept as-is", cfg.StorePath)
	}
	if cfg.StoreDir != "/var/lib/todo" {
		t.Errorf("StoreDir: got %q, want %q", cfg.StoreDir, "/var/lib/todo")
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{" true ", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		if got := boolFromString(tt.in); got != tt.want {
			t.Errorf("boolFromString(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandPath("~/notes"); got != filepath.Join(home, "notes") {
		t.Errorf("expandPath(~/notes): got %q", got)
	}
	if got := expandPath("~"); got != home {
		t.Errorf("expandPath(~): got %q, want %q", got, home)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath(/abs/path): got %q", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath(empty): got %q", got)
	}
}
