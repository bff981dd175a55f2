package todo

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Load reads and parses the todo file at path. Parse warnings are
// returned alongside the file. A missing file is an error; callers
// that treat absence as an empty file check with errors.Is against
// fs.ErrNotExist.
func Load(path string) (*File, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read todo file: %w", err)
	}
	file, warnings := ParseFile(string(data))
	return file, warnings, nil
}

// Save writes the canonical form of the file. The write goes through
// a temp file and rename so a crash never leaves a half-written
// document behind.
func (f *File) Save(path string) error {
	content := GenerateFile(f)
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	return nil
}

// LoadArchive reads and parses the archive at path. Format errors
// surface as *FormatError; a missing file surfaces the underlying
// fs.ErrNotExist.
func LoadArchive(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	return ParseArchive(string(data))
}

// Save writes the canonical form of the archive atomically.
func (a *Archive) Save(path string) error {
	content := GenerateArchive(a)
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write archive file: %w", err)
	}
	return nil
}
