// Package logging builds the console logger used for CLI feedback.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kmcd/todo/internal/config"
)

// New returns a logger configured from cfg, writing to w. The debug
// flag forces debug level regardless of the configured level.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	level := parseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       parseFormatter(cfg.LogFormat),
		ReportTimestamp: cfg.LogTimestamps,
		Prefix:          "todo",
	})
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormatter(s string) log.Formatter {
	switch strings.ToLower(s) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
