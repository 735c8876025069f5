package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kmcd/todo/internal/config"
	"github.com/kmcd/todo/internal/logging"
	"github.com/kmcd/todo/internal/store"
)

// App carries the per-invocation context handed to every handler:
// configuration, logger, the open store, and the output stream for
// task listings.
type App struct {
	Cfg       *config.Config
	Logger    *log.Logger
	Store     *store.Store
	Out       io.Writer
	StartTime time.Time
}

// newApp loads config, applies flag overrides, and opens the store.
func newApp(opts *Options) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts != nil {
		if opts.File != "" {
			cfg.StoreFile = opts.File
		}
		if opts.Debug {
			cfg.Debug = true
		}
	}
	cfg.Finalize()

	logger := logging.New(os.Stderr, cfg)
	st, err := store.New(cfg.StoreDir, filepath.Base(cfg.StorePath))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("Using store file", "path", st.Path())

	return &App{
		Cfg:       cfg,
		Logger:    logger,
		Store:     st,
		Out:       os.Stdout,
		StartTime: time.Now(),
	}, nil
}

// runAction dispatches the parsed options to a handler. Add wins over
// list, list over complete, complete over delete, matching the original
// flag precedence.
func (a *App) runAction(opts *Options) error {
	switch {
	case opts.Add != "":
		return a.handleAdd(opts)
	case opts.List || opts.Completed || opts.Pending:
		return a.handleList(opts)
	case opts.Complete != "":
		return a.handleComplete(opts.Complete)
	case opts.Delete != "":
		return a.handleDelete(opts.Delete)
	default:
		a.Logger.Warn("No action specified. Use 'todo help' for usage info.")
		return nil
	}
}

// Uptime returns the time elapsed since the invocation started.
func (a *App) Uptime() time.Duration {
	return time.Since(a.StartTime)
}
