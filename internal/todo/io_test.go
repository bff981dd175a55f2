package todo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.md")

	file := NewFile("TODOs")
	file.AppendTask(Task{Text: "Ship release", Subtasks: []string{"Tag version"}})
	file.AppendTask(NewTask("Water plants"))

	if err := file.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != GenerateFile(file) {
		t.Errorf("on-disk bytes = %q, want canonical form %q", data, GenerateFile(file))
	}

	back, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Load() warnings = %v, want none", warnings)
	}
	assertTexts(t, taskTexts(back), []string{"Ship release", "Water plants"})
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadArchiveMissingFile(t *testing.T) {
	_, err := LoadArchive(filepath.Join(t.TempDir(), "absent.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadArchive() error = %v, want fs.ErrNotExist", err)
	}
}

func TestSaveLoadArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.md")

	archive := NewArchive()
	archive.AddItemsForDate("2026-08-22", DefaultList, []Task{NewTask("done")})

	if err := archive.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	back, err := LoadArchive(path)
	if err != nil {
		t.Fatalf("LoadArchive() error = %v", err)
	}
	if back.EntryCount() != 1 || back.Entries[0].Date != "2026-08-22" {
		t.Errorf("entries = %+v", back.Entries)
	}
}

func TestLoadArchiveCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.md")
	if err := os.WriteFile(path, []byte("## 2026-08-22\ngarbage\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadArchive(path)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("LoadArchive() error = %v, want *FormatError", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.md")
	first := fileWith("one", "two")
	if err := first.Save(path); err != nil {
		t.Fatal(err)
	}
	second := fileWith("only")
	if err := second.Save(path); err != nil {
		t.Fatal(err)
	}
	back, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, taskTexts(back), []string{"only"})
}
