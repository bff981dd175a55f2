package todo

import "strings"

// archiveState carries the open entry and list while parsing an
// archive. Tasks accumulate subtasks until the next structural line
// closes them.
type archiveState struct {
	archive  *Archive
	entry    *ArchiveEntry
	listName string
	task     *Task
}

func (s *archiveState) flushTask() {
	if s.task == nil {
		return
	}
	s.entry.Lists[s.listName] = append(s.entry.Lists[s.listName], *s.task)
	s.task = nil
}

func (s *archiveState) flushEntry() {
	if s.entry == nil {
		return
	}
	s.flushTask()
	s.archive.Entries = append(s.archive.Entries, *s.entry)
	s.entry = nil
}

func (s *archiveState) openEntry(date string) {
	s.flushEntry()
	s.entry = &ArchiveEntry{Date: date, Lists: make(map[string][]Task)}
	s.listName = DefaultList
}

// ParseArchive parses archive content. Unlike ParseFile it is strict:
// the archive is machine written, so any line outside the canonical
// form signals corruption and fails with a FormatError naming the
// line. Recognized lines are the "# " title, "## " date headings,
// "### " list headings, column-zero "- " tasks, and subtask lines
// indented with two to four spaces or one tab.
func ParseArchive(content string) (*Archive, error) {
	state := &archiveState{archive: NewArchive()}

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		lineno := i + 1
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if date, ok := strings.CutPrefix(trimmed, "## "); ok && !strings.HasPrefix(date, "#") {
			state.openEntry(strings.TrimSpace(date))
			continue
		}

		if name, ok := strings.CutPrefix(trimmed, "### "); ok && !strings.HasPrefix(name, "#") {
			if state.entry == nil {
				return nil, &FormatError{Line: lineno, Content: line, Msg: "List heading before any date heading"}
			}
			state.flushTask()
			state.listName = strings.TrimSpace(name)
			continue
		}

		if title, ok := strings.CutPrefix(trimmed, "# "); ok && !strings.HasPrefix(title, "#") {
			state.archive.Title = strings.TrimSpace(title)
			continue
		}

		if text, ok := subtaskLine(line); ok {
			if state.task == nil {
				return nil, &FormatError{Line: lineno, Content: line, Msg: "Subtask found without parent task"}
			}
			state.task.AddSubtask(text)
			continue
		}

		if text, ok := strings.CutPrefix(line, "- "); ok {
			if state.entry == nil {
				return nil, &FormatError{Line: lineno, Content: line, Msg: "Task before any date heading"}
			}
			state.flushTask()
			task := NewTask(strings.TrimSpace(text))
			state.task = &task
			continue
		}

		return nil, &FormatError{Line: lineno, Content: line, Msg: "Invalid archive format"}
	}

	state.flushEntry()
	return state.archive, nil
}
