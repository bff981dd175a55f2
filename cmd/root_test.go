// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nibzard/ldr-go/internal/config"
	"github.com/nibzard/ldr-go/internal/logging"
	"github.com/nibzard/ldr-go/internal/ui"
)

// testApp builds an app rooted in a temp directory with quiet
// logging and plain output.
func testApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DataDir:     dir,
		TodoFile:    filepath.Join(dir, "todos.md"),
		ArchiveFile: filepath.Join(dir, "archive.md"),
		ListLimit:   config.DefaultListLimit,
		Color:       "never",
	}
	return &app{
		cfg:    cfg,
		logger: logging.NewWithWriter(io.Discard, logging.DefaultOptions()),
		styles: ui.NewStyles("never"),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

func seedTodo(t *testing.T, a *app, content string) {
	t.Helper()
	if err := os.WriteFile(a.cfg.TodoFile, []byte(content), 0o644); err != nil {
		t.Fatalf("seeding todo file: %v", err)
	}
}

func TestAddCommandCreatesFile(t *testing.T) {
	a := testApp(t)

	if err := a.addCommand([]string{"Buy milk"}); err != nil {
		t.Fatalf("addCommand() error = %v", err)
	}

	want := "# TODOs\n\n- Buy milk\n"
	if got := readFile(t, a.cfg.TodoFile); got != want {
		t.Errorf("todo file = %q, want %q", got, want)
	}
}

func TestAddCommandPrepends(t *testing.T) {
	a := testApp(t)

	for _, text := range []string{"first", "second"} {
		if err := a.addCommand([]string{text}); err != nil {
			t.Fatalf("addCommand(%q) error = %v", text, err)
		}
	}

	want := "# TODOs\n\n- second\n- first\n"
	if got := readFile(t, a.cfg.TodoFile); got != want {
		t.Errorf("todo file = %q, want %q", got, want)
	}
}

func TestAddCommandUnder(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- parent\n")

	if err := a.addCommand([]string{"-under", "1", "child"}); err != nil {
		t.Fatalf("addCommand() error = %v", err)
	}

	want := "# TODOs\n\n- parent\n  - child\n"
	if got := readFile(t, a.cfg.TodoFile); got != want {
		t.Errorf("todo file = %q, want %q", got, want)
	}
}

func TestAddCommandUnderMissingTask(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- only\n")

	err := a.addCommand([]string{"-under", "5", "child"})
	if err == nil || !strings.Contains(err.Error(), "Invalid task number") {
		t.Errorf("expected invalid task number error, got %v", err)
	}
}

func TestAddCommandEmptyText(t *testing.T) {
	a := testApp(t)

	err := a.addCommand([]string{"   "})
	if err == nil || !strings.Contains(err.Error(), "Cannot add empty task") {
		t.Errorf("expected empty task error, got %v", err)
	}
}

func TestAddCommandMissingTextIsUsage(t *testing.T) {
	a := testApp(t)

	err := a.addCommand(nil)
	if !IsUsage(err) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestAddCommandRejectsOtherLists(t *testing.T) {
	a := testApp(t)

	err := a.addCommand([]string{"-list", "Work", "text"})
	if err == nil || !strings.Contains(err.Error(), "Default") {
		t.Errorf("expected error naming the Default list, got %v", err)
	}
	if IsUsage(err) {
		t.Error("list rejection is validation, not usage")
	}
}

func TestLsCommandMissingFile(t *testing.T) {
	a := testApp(t)

	if err := a.lsCommand(nil); err != nil {
		t.Errorf("lsCommand() on missing file should not fail, got %v", err)
	}
}

func TestUpCommandMovesTasks(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- alpha\n- beta\n- gamma\n")

	if err := a.upCommand([]string{"3"}); err != nil {
		t.Fatalf("upCommand() error = %v", err)
	}

	want := "# TODOs\n\n- gamma\n- alpha\n- beta\n"
	if got := readFile(t, a.cfg.TodoFile); got != want {
		t.Errorf("todo file = %q, want %q", got, want)
	}
}

func TestUpCommandInvalidRef(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- alpha\n")

	err := a.upCommand([]string{"abc"})
	if err == nil || !strings.Contains(err.Error(), "Invalid task reference") {
		t.Errorf("expected invalid reference error, got %v", err)
	}
	if IsUsage(err) {
		t.Error("bad references are validation errors, not usage errors")
	}
}

func TestUpCommandNoRefsIsUsage(t *testing.T) {
	a := testApp(t)

	if err := a.upCommand(nil); !IsUsage(err) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestUpCommandMissingFile(t *testing.T) {
	a := testApp(t)

	if err := a.upCommand([]string{"1"}); err != nil {
		t.Errorf("upCommand() on missing file should print a notice, got %v", err)
	}
}

func TestDoCommandArchives(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- done task\n- keep task\n")

	if err := a.completeCommand("do", []string{"1"}, true); err != nil {
		t.Fatalf("completeCommand() error = %v", err)
	}

	wantTodo := "# TODOs\n\n- keep task\n"
	if got := readFile(t, a.cfg.TodoFile); got != wantTodo {
		t.Errorf("todo file = %q, want %q", got, wantTodo)
	}

	today := time.Now().Format(dateLayout)
	archive := readFile(t, a.cfg.ArchiveFile)
	if !strings.Contains(archive, "## "+today+"\n") {
		t.Errorf("archive missing today's entry, got %q", archive)
	}
	if !strings.Contains(archive, "- done task\n") {
		t.Errorf("archive missing the task, got %q", archive)
	}
}

func TestDoCommandCascade(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- Main\n  - S1\n  - S2\n")

	if err := a.completeCommand("do", []string{"1a", "1b"}, true); err != nil {
		t.Fatalf("completeCommand() error = %v", err)
	}

	wantTodo := "# TODOs\n"
	if got := readFile(t, a.cfg.TodoFile); got != wantTodo {
		t.Errorf("todo file = %q, want %q", got, wantTodo)
	}

	archive := readFile(t, a.cfg.ArchiveFile)
	for _, text := range []string{"- S1\n", "- S2\n", "- Main\n"} {
		if !strings.Contains(archive, text) {
			t.Errorf("archive missing %q, got %q", text, archive)
		}
	}
}

func TestRmCommandDoesNotArchive(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- unwanted\n")

	if err := a.completeCommand("rm", []string{"1"}, false); err != nil {
		t.Fatalf("completeCommand() error = %v", err)
	}

	if _, err := os.Stat(a.cfg.ArchiveFile); !os.IsNotExist(err) {
		t.Error("rm must not create an archive file")
	}
	if got := readFile(t, a.cfg.TodoFile); got != "# TODOs\n" {
		t.Errorf("todo file = %q, want %q", got, "# TODOs\n")
	}
}

func TestDoCommandAppendsToExistingEntry(t *testing.T) {
	a := testApp(t)
	today := time.Now().Format(dateLayout)
	archiveContent := "# Archive\n\n## " + today + "\n- earlier\n"
	if err := os.WriteFile(a.cfg.ArchiveFile, []byte(archiveContent), 0o644); err != nil {
		t.Fatalf("seeding archive: %v", err)
	}
	seedTodo(t, a, "# TODOs\n\n- later\n")

	if err := a.completeCommand("do", []string{"1"}, true); err != nil {
		t.Fatalf("completeCommand() error = %v", err)
	}

	want := "# Archive\n\n## " + today + "\n- earlier\n- later\n"
	if got := readFile(t, a.cfg.ArchiveFile); got != want {
		t.Errorf("archive = %q, want %q", got, want)
	}
}

func TestDoCommandEmptyFileNotice(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n")

	if err := a.completeCommand("do", []string{"1"}, true); err != nil {
		t.Errorf("empty file should print a notice, got %v", err)
	}
	if _, err := os.Stat(a.cfg.ArchiveFile); !os.IsNotExist(err) {
		t.Error("nothing should be archived from an empty file")
	}
}

func TestReviewCommandEmptyFile(t *testing.T) {
	a := testApp(t)

	if err := a.reviewCommand(context.Background(), nil); err != nil {
		t.Errorf("review on missing file should print a notice, got %v", err)
	}
}

func TestEditCommandSeedsFile(t *testing.T) {
	if _, err := os.Stat("/usr/bin/true"); err != nil {
		t.Skip("needs /usr/bin/true")
	}
	a := testApp(t)
	a.cfg.Editor = "/usr/bin/true"

	if err := a.editCommand(nil); err != nil {
		t.Fatalf("editCommand() error = %v", err)
	}

	if got := readFile(t, a.cfg.TodoFile); got != "# TODOs\n" {
		t.Errorf("seeded file = %q, want %q", got, "# TODOs\n")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	a := testApp(t)
	seedTodo(t, a, "# TODOs\n\n- task one\n  - sub\n- task two\n")
	archiveContent := "# Archive\n\n## 2026-08-01\n- old task\n"
	if err := os.WriteFile(a.cfg.ArchiveFile, []byte(archiveContent), 0o644); err != nil {
		t.Fatalf("seeding archive: %v", err)
	}

	snapshotPath := filepath.Join(a.cfg.DataDir, "snapshot.json")
	if err := a.exportCommand([]string{"-o", snapshotPath}); err != nil {
		t.Fatalf("exportCommand() error = %v", err)
	}

	seedTodo(t, a, "# TODOs\n\n- clobbered\n")
	if err := a.importCommand([]string{"-f", snapshotPath}); err != nil {
		t.Fatalf("importCommand() error = %v", err)
	}

	want := "# TODOs\n\n- task one\n  - sub\n- task two\n"
	if got := readFile(t, a.cfg.TodoFile); got != want {
		t.Errorf("todo file = %q, want %q", got, want)
	}
	if got := readFile(t, a.cfg.ArchiveFile); got != archiveContent {
		t.Errorf("archive file = %q, want %q", got, archiveContent)
	}
}

func TestImportRejectsInvalidSnapshot(t *testing.T) {
	a := testApp(t)
	badPath := filepath.Join(a.cfg.DataDir, "bad.json")
	bad := `{"version": 1, "todo": {"title": "T", "tasks": [{"text": ""}]}, "archive": {"title": "A", "entries": []}}`
	if err := os.WriteFile(badPath, []byte(bad), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	err := a.importCommand([]string{"-f", badPath})
	if err == nil {
		t.Fatal("expected schema validation to fail")
	}
	if _, statErr := os.Stat(a.cfg.TodoFile); !os.IsNotExist(statErr) {
		t.Error("a rejected import must not write any file")
	}
}

func TestImportRequiresFileArgument(t *testing.T) {
	a := testApp(t)

	if err := a.importCommand(nil); !IsUsage(err) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestConfigCommandPrintsSources(t *testing.T) {
	a := testApp(t)
	a.sources = map[string]config.ConfigSource{"color": config.SourceDefault}

	if err := a.configCommand(nil); err != nil {
		t.Errorf("configCommand() error = %v", err)
	}
}

func TestRun(t *testing.T) {
	setEnv := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		t.Setenv("LDR_DATA_DIR", dir)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
		return dir
	}

	t.Run("shows help with --help flag", func(t *testing.T) {
		setEnv(t)
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows version with -v flag", func(t *testing.T) {
		setEnv(t)
		if err := Run(context.Background(), []string{"-v"}); err != nil {
			t.Errorf("expected no error with -v, got %v", err)
		}
	})

	t.Run("help command", func(t *testing.T) {
		setEnv(t)
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("missing command is usage error", func(t *testing.T) {
		setEnv(t)
		err := Run(context.Background(), nil)
		if !IsUsage(err) {
			t.Errorf("expected usage error, got %v", err)
		}
	})

	t.Run("unknown command returns usage error", func(t *testing.T) {
		setEnv(t)
		err := Run(context.Background(), []string{"unknown-command"})
		if !IsUsage(err) {
			t.Errorf("expected usage error, got %v", err)
		}
		if err == nil || !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' in error, got %v", err)
		}
	})

	t.Run("add then aliases operate on the data dir", func(t *testing.T) {
		dir := setEnv(t)
		ctx := context.Background()

		if err := Run(ctx, []string{"add", "from the cli"}); err != nil {
			t.Fatalf("Run(add) error = %v", err)
		}
		if err := Run(ctx, []string{"a", "second"}); err != nil {
			t.Fatalf("Run(a) error = %v", err)
		}

		want := "# TODOs\n\n- second\n- from the cli\n"
		if got := readFile(t, filepath.Join(dir, "todos.md")); got != want {
			t.Errorf("todo file = %q, want %q", got, want)
		}

		if err := Run(ctx, []string{"done", "1"}); err != nil {
			t.Fatalf("Run(done) error = %v", err)
		}
		archive := readFile(t, filepath.Join(dir, "archive.md"))
		if !strings.Contains(archive, "- second\n") {
			t.Errorf("archive missing archived task, got %q", archive)
		}
	})

	t.Run("legacy files migrate before the command runs", func(t *testing.T) {
		dir := setEnv(t)
		if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("old one\nold two\n"), 0o644); err != nil {
			t.Fatalf("seeding legacy file: %v", err)
		}

		if err := Run(context.Background(), []string{"ls"}); err != nil {
			t.Fatalf("Run(ls) error = %v", err)
		}

		want := "# TODOs\n\n- old one\n- old two\n"
		if got := readFile(t, filepath.Join(dir, "todos.md")); got != want {
			t.Errorf("migrated todo file = %q, want %q", got, want)
		}
		if _, err := os.Stat(filepath.Join(dir, "note.txt.bak")); err != nil {
			t.Errorf("legacy file should be renamed to .bak: %v", err)
		}
	})
}

func TestUsageErrorHelpers(t *testing.T) {
	err := usageErrorf("bad %s", "input")
	if !IsUsage(err) {
		t.Error("usageErrorf must produce a usage error")
	}
	if err.Error() != "bad input" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad input")
	}
	if IsUsage(os.ErrNotExist) {
		t.Error("unrelated errors are not usage errors")
	}
}
