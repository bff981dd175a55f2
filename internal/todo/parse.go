package todo

import (
	"fmt"
	"strings"
)

// parseState is the accumulator threaded through the line scan: the
// file built so far plus the task currently collecting subtasks.
type parseState struct {
	file       *File
	current    *Task
	warnings   []string
	deepWarned bool
}

// flush moves the open task, if any, into the file.
func (s *parseState) flush() {
	if s.current != nil {
		s.file.Tasks = append(s.file.Tasks, *s.current)
		s.current = nil
	}
}

func (s *parseState) open(text string) {
	s.flush()
	t := NewTask(text)
	s.current = &t
}

func (s *parseState) warnf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// ParseFile parses todo file content. Any input produces a File:
// deviations from canonical form are reported as warnings rather than
// errors, so a hand-edited file never fails to load.
//
// Per line, in priority order: a "# " heading sets the title; a "## "
// heading is skipped; an indented "- " line (two to four spaces, or
// one tab) is a subtask of the open task, or a new task when none is
// open; a "- ", "* ", or "+ " bullet opens a new task; a bullet
// indented five or more spaces (or two tabs) is flattened into a
// single-level subtask; any other line is a bare task unless it looks
// like a comment, HTML, or a code fence.
func ParseFile(content string) (*File, []string) {
	s := &parseState{file: NewFile(DefaultTitle)}

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Title heading. Does not close the open task, so a stray
		// heading in the middle of a list cannot split a task.
		if strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "##") {
			s.file.Title = strings.TrimSpace(trimmed[1:])
			continue
		}

		// Section headings are a multi-list leftover; the todo file
		// is a single list.
		if strings.HasPrefix(trimmed, "## ") {
			s.warnf("line %d: section heading %q ignored", i+1, trimmed)
			continue
		}

		if text, ok := subtaskLine(line); ok {
			if s.current != nil {
				s.current.AddSubtask(text)
			} else {
				s.open(text)
			}
			continue
		}

		if text, ok := deepLine(line); ok {
			if !s.deepWarned {
				s.warnf("line %d: deep nesting flattened to a single subtask level", i+1)
				s.deepWarned = true
			}
			if s.current != nil {
				s.current.AddSubtask(text)
			} else {
				s.open(text)
			}
			continue
		}

		if text, ok := bulletLine(trimmed); ok {
			s.open(text)
			continue
		}

		// Plain text is a bare task. Comments, HTML, and code fences
		// are the only things a hand-edit can add that we skip.
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "<") || strings.Contains(trimmed, "```") {
			continue
		}
		s.open(trimmed)
	}

	s.flush()
	return s.file, s.warnings
}

// subtaskLine reports whether line is a canonical subtask: exactly
// two, three, or four leading spaces, or exactly one leading tab,
// followed by "- " and text.
func subtaskLine(line string) (string, bool) {
	spaces, tabs, rest := leadingIndent(line)
	if tabs >= 2 || (tabs == 1 && spaces > 0) {
		return "", false
	}
	indented := (tabs == 1 && spaces == 0) || (tabs == 0 && spaces >= 2 && spaces <= 4)
	if !indented {
		return "", false
	}
	if text, ok := strings.CutPrefix(rest, "- "); ok {
		return strings.TrimSpace(text), true
	}
	return "", false
}

// deepLine reports whether line is a bullet nested deeper than one
// level: five or more leading spaces, or two or more leading tabs.
func deepLine(line string) (string, bool) {
	spaces, tabs, rest := leadingIndent(line)
	if spaces < 5 && tabs < 2 {
		return "", false
	}
	return bulletLine(rest)
}

// bulletLine strips a "- ", "* ", or "+ " marker.
func bulletLine(s string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if text, ok := strings.CutPrefix(s, marker); ok {
			return strings.TrimSpace(text), true
		}
	}
	return "", false
}

// leadingIndent counts the leading run of spaces or tabs. Mixed
// indentation counts both; rest is the line after the run.
func leadingIndent(line string) (spaces, tabs int, rest string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		if line[i] == ' ' {
			spaces++
		} else {
			tabs++
		}
		i++
	}
	return spaces, tabs, line[i:]
}
