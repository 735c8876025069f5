package cli

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/kmcd/todo/internal/config"
	"github.com/kmcd/todo/internal/store"
	"github.com/kmcd/todo/internal/ui"
)

// tuiCommand launches the terminal task browser.
func tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todo tui", flag.ContinueOnError)
	file := fs.String("f", "", "Path to storage file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *file != "" {
		cfg.StoreFile = *file
	}
	cfg.Finalize()

	st, err := store.New(cfg.StoreDir, filepath.Base(cfg.StorePath))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	return ui.Run(ctx, st)
}
