package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/ldr-go/internal/todo"
)

// exportCommand writes a JSON snapshot of both documents. Missing
// files export as empty documents so a fresh install still produces a
// valid snapshot.
func (a *app) exportCommand(args []string) error {
	fs := flag.NewFlagSet("ldr export", flag.ContinueOnError)
	out := fs.String("o", "", "Write the snapshot to a file instead of stdout")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return usageErrorf("export: unexpected arguments: %v", fs.Args())
	}

	f, err := a.loadTodo()
	if err != nil {
		return err
	}
	if f == nil {
		f = todo.NewFile(todo.DefaultTitle)
	}
	archive, err := a.loadArchive()
	if err != nil {
		return err
	}

	data, err := todo.NewSnapshot(f, archive).Encode()
	if err != nil {
		return err
	}

	if *out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Println(a.styles.Success.Render("✓ Exported snapshot to " + *out))
	return nil
}

// importCommand validates a JSON snapshot and replaces both
// documents with its contents.
func (a *app) importCommand(args []string) error {
	fs := flag.NewFlagSet("ldr import", flag.ContinueOnError)
	force := fs.Bool("f", false, "Overwrite existing files without confirmation")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return usageErrorf("import: exactly one snapshot file required")
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	snapshot, err := todo.DecodeSnapshot(data)
	if err != nil {
		return err
	}

	if !*force && (fileExists(a.cfg.TodoFile) || fileExists(a.cfg.ArchiveFile)) {
		ok, err := confirm(fmt.Sprintf("Overwrite %s and %s?", a.cfg.TodoFile, a.cfg.ArchiveFile))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(a.styles.Notice.Render("Import cancelled."))
			return nil
		}
	}

	if err := snapshot.Todo.Save(a.cfg.TodoFile); err != nil {
		return err
	}
	if err := snapshot.Archive.Save(a.cfg.ArchiveFile); err != nil {
		return err
	}

	fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Imported %d task(s) and %d archive day(s)",
		snapshot.Todo.TaskCount(), snapshot.Archive.EntryCount())))
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm asks a yes/no question on stdin. EOF counts as no, so a
// piped import without -f is refused instead of hanging.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
