package ldrdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nibzard/ldr-go/internal/todo"
)

// MigrationResult reports what MigrateLegacy did. Zero values mean
// there was nothing to migrate.
type MigrationResult struct {
	TodoMigrated    bool
	TodoTasks       int
	ArchiveMigrated bool
	ArchiveItems    int
}

func (r *MigrationResult) Empty() bool {
	return !r.TodoMigrated && !r.ArchiveMigrated
}

// MigrateLegacy converts the pre-markdown note.txt and archive.txt
// layout into todos.md and archive.md. The legacy format is one task
// per line, kept verbatim; archived lines land in the entry for date
// (YYYY-MM-DD, supplied by the caller). A legacy file migrates only
// when its replacement does not exist yet; the original is renamed
// next to the new file with a .bak suffix. The two files migrate
// independently.
func MigrateLegacy(dataDir, date string) (*MigrationResult, error) {
	result := &MigrationResult{}

	oldTodo := filepath.Join(dataDir, legacyTodoFile)
	newTodo := TodoPath(dataDir)
	if needsMigration(oldTodo, newTodo) {
		data, err := os.ReadFile(oldTodo)
		if err != nil {
			return result, fmt.Errorf("read legacy todo file: %w", err)
		}
		file := todo.NewFile(todo.DefaultTitle)
		for _, task := range legacyTasks(string(data)) {
			file.AppendTask(task)
		}
		if err := file.Save(newTodo); err != nil {
			return result, err
		}
		if err := os.Rename(oldTodo, oldTodo+legacyBackupExt); err != nil {
			return result, fmt.Errorf("back up legacy todo file: %w", err)
		}
		result.TodoMigrated = true
		result.TodoTasks = file.TaskCount()
	}

	oldArchive := filepath.Join(dataDir, legacyArchiveFile)
	newArchive := ArchivePath(dataDir)
	if needsMigration(oldArchive, newArchive) {
		data, err := os.ReadFile(oldArchive)
		if err != nil {
			return result, fmt.Errorf("read legacy archive file: %w", err)
		}
		archive := todo.NewArchive()
		tasks := legacyTasks(string(data))
		archive.AddItemsForDate(date, todo.DefaultList, tasks)
		if err := archive.Save(newArchive); err != nil {
			return result, err
		}
		if err := os.Rename(oldArchive, oldArchive+legacyBackupExt); err != nil {
			return result, fmt.Errorf("back up legacy archive file: %w", err)
		}
		result.ArchiveMigrated = true
		result.ArchiveItems = len(tasks)
	}

	return result, nil
}

// legacyTasks converts plain-text content into tasks, one per
// non-blank line. Lines are taken verbatim so markdown-looking text in
// a legacy file stays literal task text.
func legacyTasks(content string) []todo.Task {
	var tasks []todo.Task
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		tasks = append(tasks, todo.NewTask(trimmed))
	}
	return tasks
}

func needsMigration(oldPath, newPath string) bool {
	if _, err := os.Stat(oldPath); err != nil {
		return false
	}
	_, err := os.Stat(newPath)
	return os.IsNotExist(err)
}
