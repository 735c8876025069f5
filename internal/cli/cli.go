// Package cli implements the command-line surface for todo.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kmcd/todo/internal/task"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Options is the parsed set of CLI options handed to the handlers. The
// handlers only consume these already-validated values; they never look
// at os.Args themselves.
type Options struct {
	Add       string
	List      bool
	Complete  string
	Delete    string
	Category  string
	Priority  task.Priority
	Due       string
	Completed bool
	Pending   bool
	File      string
	Debug     bool
}

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	// Subcommands carry their own flag sets; anything starting with a
	// dash is the flag-driven default action.
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "tui":
			return tuiCommand(ctx, args[1:])
		case "doctor":
			return doctorCommand(args[1:])
		case "version":
			return versionCommand()
		case "help":
			printUsage(os.Stdout)
			return nil
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			printUsage(os.Stderr)
			return fmt.Errorf("unknown command: %s", args[0])
		}
	}

	opts, showVersion, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if showVersion {
		return versionCommand()
	}

	app, err := newApp(opts)
	if err != nil {
		return err
	}
	return app.runAction(opts)
}

// parseArgs parses the default-action flags into an Options bag.
func parseArgs(args []string, errW io.Writer) (*Options, bool, error) {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.Usage = func() {
		printUsage(errW)
	}

	opts := &Options{}
	fs.StringVar(&opts.Add, "a", "", "Add a new task (provide description)")
	fs.StringVar(&opts.Add, "add", "", "Add a new task (provide description)")
	fs.BoolVar(&opts.List, "l", false, "List all tasks")
	fs.BoolVar(&opts.List, "list", false, "List all tasks")
	fs.StringVar(&opts.Complete, "c", "", "Mark a task as completed by ID")
	fs.StringVar(&opts.Complete, "complete", "", "Mark a task as completed by ID")
	fs.StringVar(&opts.Delete, "d", "", "Delete a task by ID")
	fs.StringVar(&opts.Delete, "delete", "", "Delete a task by ID")
	fs.StringVar(&opts.Category, "C", "", "Filter or assign category")
	fs.StringVar(&opts.Category, "category", "", "Filter or assign category")
	priority := fs.String("p", "", "Priority for a new task or filter (Low|Med|High)")
	fs.StringVar(priority, "priority", "", "Priority for a new task or filter (Low|Med|High)")
	fs.StringVar(&opts.Due, "due", "", "Due date (format: YYYY-MM-DD)")
	fs.BoolVar(&opts.Completed, "completed", false, "Show only completed tasks")
	fs.BoolVar(&opts.Pending, "pending", false, "Show only pending tasks")
	fs.StringVar(&opts.File, "f", "", "Path to storage file")
	fs.StringVar(&opts.File, "file", "", "Path to storage file")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug mode")
	showVersion := fs.Bool("v", false, "Show version information")
	fs.BoolVar(showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, false, fmt.Errorf("unexpected arguments: %v", rest)
	}
	if opts.Completed && opts.Pending {
		return nil, false, fmt.Errorf("cannot use -completed and -pending filters together")
	}
	if *priority != "" {
		p, err := task.ParsePriority(*priority)
		if err != nil {
			return nil, false, err
		}
		opts.Priority = p
	}
	return opts, *showVersion, nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("todo version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Todo - A single-user command-line task manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui           Launch the terminal task browser")
	fmt.Fprintln(w, "  doctor        Check config and store file health")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -a, -add string")
	fmt.Fprintln(w, "        Add a new task (provide description)")
	fmt.Fprintln(w, "  -l, -list")
	fmt.Fprintln(w, "        List all tasks")
	fmt.Fprintln(w, "  -c, -complete string")
	fmt.Fprintln(w, "        Mark a task as completed by ID")
	fmt.Fprintln(w, "  -d, -delete string")
	fmt.Fprintln(w, "        Delete a task by ID")
	fmt.Fprintln(w, "  -C, -category string")
	fmt.Fprintln(w, "        Filter or assign category")
	fmt.Fprintln(w, "  -p, -priority string")
	fmt.Fprintln(w, "        Priority for a new task or filter (Low|Med|High)")
	fmt.Fprintln(w, "  -due string")
	fmt.Fprintln(w, "        Due date (format: YYYY-MM-DD)")
	fmt.Fprintln(w, "  -completed")
	fmt.Fprintln(w, "        Show only completed tasks")
	fmt.Fprintln(w, "  -pending")
	fmt.Fprintln(w, "        Show only pending tasks")
	fmt.Fprintln(w, "  -f, -file string")
	fmt.Fprintln(w, "        Path to storage file")
	fmt.Fprintln(w, "  -debug")
	fmt.Fprintln(w, "        Enable debug mode")
	fmt.Fprintln(w, "  -v, -version")
	fmt.Fprintln(w, "        Show version information")
}
