// Package ldrdir resolves where ldr keeps its state on disk and
// migrates legacy layouts into it.
package ldrdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Dir is the name of the ldr state directory inside the XDG data
	// home.
	Dir = "ldr"

	// DefaultTodoFile is the todo file name (inside the data dir).
	DefaultTodoFile = "todos.md"

	// DefaultArchiveFile is the archive file name (inside the data dir).
	DefaultArchiveFile = "archive.md"

	legacyTodoFile    = "note.txt"
	legacyArchiveFile = "archive.txt"
	legacyBackupExt   = ".bak"
)

// DataDir returns the default state directory: $XDG_DATA_HOME/ldr, or
// ~/.local/share/ldr when the variable is unset. The config layer may
// override it.
func DataDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, Dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", Dir), nil
}

// TodoPath returns the full path to the todo file within a data directory.
func TodoPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultTodoFile)
}

// ArchivePath returns the full path to the archive file within a data directory.
func ArchivePath(dataDir string) string {
	return filepath.Join(dataDir, DefaultArchiveFile)
}

// Ensure creates the data directory if it does not exist.
func Ensure(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
