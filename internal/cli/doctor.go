package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmcd/todo/internal/config"
	"github.com/kmcd/todo/internal/store"
)

// doctorCommand checks config and store file health.
func doctorCommand(args []string) error {
	fs := flag.NewFlagSet("todo doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
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

	fmt.Println("Todo Doctor")
	fmt.Println("===========")
	fmt.Println()

	allOK := true

	fmt.Printf("Data directory: %s\n", cfg.StoreDir)
	if info, err := os.Stat(cfg.StoreDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first use)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Println("  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	fmt.Printf("Store file: %s\n", cfg.StorePath)
	info, err := os.Stat(cfg.StorePath)
	switch {
	case os.IsNotExist(err):
		fmt.Println("  ⚠️  Not found (will be created on first use)")
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Println("  ✅ OK")
		if !checkStore(cfg, *verbose) {
			allOK = false
		}
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// checkStore loads and schema-validates an existing store file.
func checkStore(cfg *config.Config, verbose bool) bool {
	st := store.Open(cfg.StoreDir, filepath.Base(cfg.StorePath))

	ok := true
	tasks, err := st.Load()
	if err != nil {
		fmt.Printf("  ❌ Load error: %v\n", err)
		ok = false
	} else if verbose {
		fmt.Printf("  Tasks: %d\n", len(tasks))
		for i, t := range tasks {
			fmt.Printf("    %s\n", formatTask(t, i+1))
		}
	}

	result, err := st.Validate()
	if err != nil {
		fmt.Printf("  ❌ Validation error: %v\n", err)
		return false
	}
	if result.Valid {
		fmt.Println("  ✅ Valid")
		return ok
	}
	fmt.Println("  ❌ Validation failed:")
	for _, e := range result.Errors {
		fmt.Printf("     - %v\n", e)
	}
	return false
}
