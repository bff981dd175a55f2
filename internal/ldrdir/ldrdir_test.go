package ldrdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-data", "ldr") {
		t.Errorf("DataDir() = %q, want /tmp/xdg-data/ldr", dir)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	want := filepath.Join(home, ".local", "share", "ldr")
	if dir != want {
		t.Errorf("DataDir() = %q, want %q", dir, want)
	}
}

func TestPaths(t *testing.T) {
	if got := TodoPath("/data"); got != filepath.Join("/data", "todos.md") {
		t.Errorf("TodoPath() = %q", got)
	}
	if got := ArchivePath("/data"); got != filepath.Join("/data", "archive.md") {
		t.Errorf("ArchivePath() = %q", got)
	}
}

func TestEnsureCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "ldr")
	if err := Ensure(dir); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Stat() = %v, %v, want directory", info, err)
	}
	// Idempotent.
	if err := Ensure(dir); err != nil {
		t.Errorf("second Ensure() error = %v", err)
	}
}

func TestMigrateLegacy(t *testing.T) {
	dir := t.TempDir()
	legacyTodo := "buy milk\ncall dentist\n\nwrite report\n"
	legacyArchive := "finished long ago\nanother done thing\n"
	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte(legacyTodo), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "archive.txt"), []byte(legacyArchive), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateLegacy(dir, "2026-08-22")
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	if !result.TodoMigrated || result.TodoTasks != 3 {
		t.Errorf("todo migration = %+v", result)
	}
	if !result.ArchiveMigrated || result.ArchiveItems != 2 {
		t.Errorf("archive migration = %+v", result)
	}

	data, err := os.ReadFile(TodoPath(dir))
	if err != nil {
		t.Fatalf("migrated todo missing: %v", err)
	}
	want := "# TODOs\n\n- buy milk\n- call dentist\n- write report\n"
	if string(data) != want {
		t.Errorf("migrated todo = %q, want %q", data, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "note.txt.bak")); err != nil {
		t.Errorf("legacy backup missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "note.txt")); !os.IsNotExist(err) {
		t.Error("legacy file still present after migration")
	}

	archiveData, err := os.ReadFile(ArchivePath(dir))
	if err != nil {
		t.Fatalf("migrated archive missing: %v", err)
	}
	wantArchive := "# Archive\n\n## 2026-08-22\n- finished long ago\n- another done thing\n"
	if string(archiveData) != wantArchive {
		t.Errorf("migrated archive = %q, want %q", archiveData, wantArchive)
	}
}

func TestMigrateLegacyKeepsMarkdownLookingLinesLiteral(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("- not a bullet\n  indented note\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateLegacy(dir, "2026-08-22")
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	if result.TodoTasks != 2 {
		t.Errorf("TodoTasks = %d, want 2", result.TodoTasks)
	}

	data, _ := os.ReadFile(TodoPath(dir))
	want := "# TODOs\n\n- - not a bullet\n- indented note\n"
	if string(data) != want {
		t.Errorf("migrated todo = %q, want %q", data, want)
	}
}

func TestMigrateLegacyNothingToDo(t *testing.T) {
	result, err := MigrateLegacy(t.TempDir(), "2026-08-22")
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	if !result.Empty() {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestMigrateLegacySkipsWhenNewFileExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(TodoPath(dir), []byte("# TODOs\n\n- current\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateLegacy(dir, "2026-08-22")
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	if result.TodoMigrated {
		t.Error("migration overwrote an existing todos.md")
	}
	data, _ := os.ReadFile(TodoPath(dir))
	if !strings.Contains(string(data), "current") {
		t.Errorf("todos.md = %q, want untouched content", data)
	}
}

func TestMigrateLegacyMigratesFilesIndependently(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "archive.txt"), []byte("only the archive\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateLegacy(dir, "2026-08-22")
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	if result.TodoMigrated {
		t.Error("no note.txt, yet a todo migration was reported")
	}
	if !result.ArchiveMigrated || result.ArchiveItems != 1 {
		t.Errorf("archive migration = %+v", result)
	}
	if _, err := os.Stat(TodoPath(dir)); !os.IsNotExist(err) {
		t.Error("no todos.md should appear without a note.txt")
	}
}

func TestMigrateLegacyEmptyArchiveFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "archive.txt"), []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := MigrateLegacy(dir, "2026-08-22")
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	if !result.ArchiveMigrated || result.ArchiveItems != 0 {
		t.Errorf("result = %+v, want migrated with zero items", result)
	}
	data, _ := os.ReadFile(ArchivePath(dir))
	if string(data) != "# Archive\n" {
		t.Errorf("archive.md = %q, want empty canonical form", data)
	}
}
