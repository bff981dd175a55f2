// Package cmd implements the CLI command structure for ldr.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/ldr-go/internal/config"
	"github.com/nibzard/ldr-go/internal/ldrdir"
	"github.com/nibzard/ldr-go/internal/logging"
	"github.com/nibzard/ldr-go/internal/todo"
	"github.com/nibzard/ldr-go/internal/ui"
	"github.com/nibzard/ldr-go/internal/utils"
)

// Version is set via ldflags at build time.
var Version = "dev"

const dateLayout = "2006-01-02"

// usageError marks command-line misuse. main exits 2 for these
// instead of 1.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// IsUsage reports whether err came from command-line misuse.
func IsUsage(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// parseArgs runs fs.Parse and folds its failure modes into ours:
// -h prints the flag set's usage and ends the command, anything else
// is a usage error.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &usageError{msg: err.Error()}
	}
	return nil
}

// app carries what every subcommand needs: the resolved
// configuration, the stderr diagnostic logger, and the stdout styles.
type app struct {
	cfg     *config.Config
	sources map[string]config.ConfigSource
	logger  *log.Logger
	styles  ui.Styles
}

// Run executes the ldr CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ldr", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags are registered and parsed by the config loader.
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}
	cfg := cws.Config

	a := &app{
		cfg:     cfg,
		sources: cws.Sources,
		logger:  logging.FromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller),
		styles:  ui.NewStyles(cfg.Color),
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stderr)
		return usageErrorf("missing command")
	}
	subcommand := remaining[0]
	remaining = remaining[1:]

	switch subcommand {
	case "add", "a", "prepend":
		return a.withDataDir(func() error { return a.addCommand(remaining) })
	case "ls", "l", "list":
		return a.withDataDir(func() error { return a.lsCommand(remaining) })
	case "up", "u", "prioritize":
		return a.withDataDir(func() error { return a.upCommand(remaining) })
	case "do", "d", "done", "finish", "check":
		return a.withDataDir(func() error { return a.completeCommand("do", remaining, true) })
	case "rm", "remove", "delete", "destroy", "forget":
		return a.withDataDir(func() error { return a.completeCommand("rm", remaining, false) })
	case "review", "r", "scan":
		return a.withDataDir(func() error { return a.reviewCommand(ctx, remaining) })
	case "edit", "e":
		return a.withDataDir(func() error { return a.editCommand(remaining) })
	case "export":
		return a.withDataDir(func() error { return a.exportCommand(remaining) })
	case "import":
		return a.withDataDir(func() error { return a.importCommand(remaining) })
	case "config":
		return a.configCommand(remaining)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return usageErrorf("unknown command: %s", subcommand)
	}
}

// withDataDir makes sure the data directory exists and the legacy
// plain-text layout is migrated before a command touches the files.
func (a *app) withDataDir(run func() error) error {
	if err := ldrdir.Ensure(a.cfg.DataDir); err != nil {
		return err
	}
	result, err := ldrdir.MigrateLegacy(a.cfg.DataDir, time.Now().Format(dateLayout))
	if result != nil {
		if result.TodoMigrated {
			a.logger.Info("migrated legacy note.txt", "tasks", result.TodoTasks)
		}
		if result.ArchiveMigrated {
			a.logger.Info("migrated legacy archive.txt", "items", result.ArchiveItems)
		}
	}
	if err != nil {
		return err
	}
	return run()
}

// loadTodo reads and parses the todo file, logging any parser
// warnings. A missing file returns (nil, nil); each command decides
// what an absent file means.
func (a *app) loadTodo() (*todo.File, error) {
	f, warnings, err := todo.Load(a.cfg.TodoFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	for _, w := range warnings {
		a.logger.Warn(w)
	}
	a.logger.Debug("loaded todo file", "path", a.cfg.TodoFile, "tasks", f.TaskCount())
	return f, nil
}

// loadArchive reads the archive file, or starts an empty archive when
// the file does not exist yet.
func (a *app) loadArchive() (*todo.Archive, error) {
	archive, err := todo.LoadArchive(a.cfg.ArchiveFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return todo.NewArchive(), nil
		}
		return nil, err
	}
	a.logger.Debug("loaded archive file", "path", a.cfg.ArchiveFile, "entries", archive.EntryCount())
	return archive, nil
}

func (a *app) addCommand(args []string) error {
	fs := flag.NewFlagSet("ldr add", flag.ContinueOnError)
	under := fs.Int("under", 0, "Add as subtask under this task number")
	list := fs.String("list", "", "Target list (only \"Default\" is supported)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return usageErrorf("add: missing task text")
	}
	if len(rest) > 1 {
		return usageErrorf("add: unexpected arguments: %v (quote the task text)", rest[1:])
	}
	text := rest[0]

	if *list != "" && *list != todo.DefaultList {
		return fmt.Errorf("list %q not supported: items can only go to the %q list", *list, todo.DefaultList)
	}

	underSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "under" {
			underSet = true
		}
	})

	f, err := a.loadTodo()
	if err != nil {
		return err
	}
	if f == nil {
		f = todo.NewFile(todo.DefaultTitle)
	}

	if underSet {
		if err := f.AddUnder(*under, text); err != nil {
			return err
		}
	} else {
		if err := f.Add(text); err != nil {
			return err
		}
	}

	if err := f.Save(a.cfg.TodoFile); err != nil {
		return err
	}

	if underSet {
		fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Added subtask to task %d: %s", *under, text)))
	} else {
		fmt.Println(a.styles.Success.Render("✓ Added: " + text))
	}
	return nil
}

func (a *app) lsCommand(args []string) error {
	fs := flag.NewFlagSet("ldr ls", flag.ContinueOnError)
	num := fs.Int("n", a.cfg.ListLimit, "Number of items to show")
	fs.IntVar(num, "num", a.cfg.ListLimit, "Number of items to show")
	all := fs.Bool("a", false, "Show all items")
	fs.BoolVar(all, "all", false, "Show all items")
	if err := parseArgs(fs, args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return usageErrorf("ls: unexpected arguments: %v (quote the filter text)", rest[1:])
	}
	filter := ""
	if len(rest) == 1 {
		filter = rest[0]
	}

	f, err := a.loadTodo()
	if err != nil {
		return err
	}
	if f == nil {
		fmt.Println(a.styles.Notice.Render("No notes yet."))
		return nil
	}

	opts := ui.ListOptions{Limit: *num, All: *all, Filter: filter}
	fmt.Print(ui.RenderList(f, opts, a.styles))
	return nil
}

func (a *app) upCommand(args []string) error {
	fs := flag.NewFlagSet("ldr up", flag.ContinueOnError)
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) == 0 {
		return usageErrorf("up: at least one task reference required")
	}

	f, err := a.loadTodo()
	if err != nil {
		return err
	}
	if f == nil || f.IsEmpty() {
		fmt.Println(a.styles.Notice.Render("No notes found."))
		return nil
	}

	refs, err := todo.ParseRefs(fs.Args())
	if err != nil {
		return err
	}
	moved, err := f.Prioritize(refs)
	if err != nil {
		return err
	}
	if err := f.Save(a.cfg.TodoFile); err != nil {
		return err
	}

	fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Prioritized %d task(s)", len(moved))))
	for _, task := range moved {
		fmt.Println("  " + a.styles.Accent.Render(task.Text))
	}
	return nil
}

// completeCommand is shared by do and rm: both take items out of the
// todo file, do additionally writes them to the archive.
func (a *app) completeCommand(name string, args []string, archive bool) error {
	fs := flag.NewFlagSet("ldr "+name, flag.ContinueOnError)
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) == 0 {
		return usageErrorf("%s: at least one task reference required", name)
	}

	action := "remove"
	if archive {
		action = "archive"
	}

	f, err := a.loadTodo()
	if err != nil {
		return err
	}
	if f == nil {
		fmt.Println(a.styles.Notice.Render("No notes found."))
		return nil
	}
	if f.IsEmpty() {
		fmt.Println(a.styles.Notice.Render(fmt.Sprintf("No notes to %s.", action)))
		return nil
	}

	refs, err := todo.ParseRefs(fs.Args())
	if err != nil {
		return err
	}
	removal, err := f.Remove(refs)
	if err != nil {
		return err
	}

	// The archive is written before the todo file so a failure in
	// between duplicates items instead of losing them.
	if archive && removal.Count() > 0 {
		archiveDoc, err := a.loadArchive()
		if err != nil {
			return err
		}
		archiveDoc.AddItemsForDate(time.Now().Format(dateLayout), todo.DefaultList, removal.Items())
		if err := archiveDoc.Save(a.cfg.ArchiveFile); err != nil {
			return err
		}
	}
	if err := f.Save(a.cfg.TodoFile); err != nil {
		return err
	}

	verb := "Removed"
	if archive {
		verb = "Archived"
	}
	fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ %s %d item(s)", verb, removal.Count())))
	for _, task := range removal.Captured {
		fmt.Println("  " + a.styles.Danger.Render(task.Text))
	}
	for _, task := range removal.Cascaded {
		fmt.Println("  " + a.styles.Accent.Render(task.Text+" (auto-completed - all subtasks done)"))
	}
	return nil
}

func (a *app) editCommand(args []string) error {
	fs := flag.NewFlagSet("ldr edit", flag.ContinueOnError)
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return usageErrorf("edit: unexpected arguments: %v", fs.Args())
	}

	// Seed a canonical empty file so the editor always opens valid
	// markdown.
	if _, err := os.Stat(a.cfg.TodoFile); errors.Is(err, os.ErrNotExist) {
		f := todo.NewFile(todo.DefaultTitle)
		if err := f.Save(a.cfg.TodoFile); err != nil {
			return err
		}
	}

	editor := a.cfg.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = config.DefaultEditor
	}

	parts := utils.SplitAndTrim(editor, " ")
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], a.cfg.TodoFile)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", parts[0], err)
	}
	return nil
}

func (a *app) configCommand(args []string) error {
	fs := flag.NewFlagSet("ldr config", flag.ContinueOnError)
	initFile := fs.Bool("init", false, "Write a commented example config file")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return usageErrorf("config: unexpected arguments: %v", fs.Args())
	}

	if *initFile {
		return a.initConfigFile()
	}

	rows := []struct {
		key   string
		value string
	}{
		{"data_dir", a.cfg.DataDir},
		{"todo_file", a.cfg.TodoFile},
		{"archive_file", a.cfg.ArchiveFile},
		{"editor", a.cfg.Editor},
		{"list_limit", fmt.Sprintf("%d", a.cfg.ListLimit)},
		{"color", a.cfg.Color},
		{"log_level", a.cfg.LogLevel},
		{"log_format", a.cfg.LogFormat},
		{"log_timestamps", fmt.Sprintf("%t", a.cfg.LogTimestamps)},
		{"log_caller", fmt.Sprintf("%t", a.cfg.LogCaller)},
	}
	for _, row := range rows {
		source := a.sources[row.key]
		fmt.Printf("%-15s %-40s (%s)\n", row.key, row.value, source)
	}
	return nil
}

func (a *app) initConfigFile() error {
	path := config.UserConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine the user config directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Println(a.styles.Success.Render("✓ Wrote " + path))
	return nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("ldr version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Ldr - Log, Do, Review: a simple todo system")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ldr [global options] <command> [options] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <text>     Add a new item at the top (a, prepend)")
	fmt.Fprintln(w, "  ls [filter]    List the top items (l, list)")
	fmt.Fprintln(w, "  up <refs...>   Move items to the top (u, prioritize)")
	fmt.Fprintln(w, "  do <refs...>   Archive completed items (d, done, finish, check)")
	fmt.Fprintln(w, "  rm <refs...>   Remove items without archiving (remove, delete, destroy, forget)")
	fmt.Fprintln(w, "  review         Review items one at a time (r, scan)")
	fmt.Fprintln(w, "  edit           Open the todo file in your editor (e)")
	fmt.Fprintln(w, "  export         Write a JSON snapshot of both files")
	fmt.Fprintln(w, "  import <file>  Replace both files from a JSON snapshot")
	fmt.Fprintln(w, "  config         Show the resolved configuration")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Items are referenced by number, subtasks by number plus letter:")
	fmt.Fprintln(w, "  ldr do 3       archives task 3")
	fmt.Fprintln(w, "  ldr do 3a      archives the first subtask of task 3")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options:")
	fmt.Fprintln(w, "  -under int")
	fmt.Fprintln(w, "        Add as subtask under this task number")
	fmt.Fprintln(w, "  -list string")
	fmt.Fprintln(w, "        Target list (only \"Default\" is supported)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -n, -num int")
	fmt.Fprintln(w, "        Number of items to show (default from config)")
	fmt.Fprintln(w, "  -a, -all")
	fmt.Fprintln(w, "        Show all items")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export Options:")
	fmt.Fprintln(w, "  -o string")
	fmt.Fprintln(w, "        Write the snapshot to a file instead of stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Import Options:")
	fmt.Fprintln(w, "  -f    Overwrite existing files without confirmation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -init")
	fmt.Fprintln(w, "        Write a commented example config file")
}
