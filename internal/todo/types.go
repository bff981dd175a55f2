// Package todo parses, generates, and mutates Markdown task files.
package todo

// Limits enforced by the mutating operations. The parser does not
// enforce them; hand-edited files beyond these sizes still load.
const (
	// MaxTaskText is the maximum length of a task or subtask in characters.
	MaxTaskText = 500

	// MaxTasks is the maximum number of top-level tasks per file.
	MaxTasks = 1000

	// MaxSubtasks is the maximum number of subtasks per task (a-z).
	MaxSubtasks = 26

	// MaxTaskNumber is the largest task number ParseRef accepts.
	MaxTaskNumber = 10000
)

// Default titles and list name used when creating fresh documents.
const (
	DefaultTitle        = "TODOs"
	DefaultArchiveTitle = "Archive"
	DefaultList         = "Default"
)

// Task is a single top-level item with optional single-level subtasks.
type Task struct {
	Text     string   `json:"text"`
	Subtasks []string `json:"subtasks,omitempty"`
}

// NewTask creates a task with no subtasks.
func NewTask(text string) Task {
	return Task{Text: text}
}

// AddSubtask appends a subtask. It does not enforce MaxSubtasks;
// that is the mutating operations' job.
func (t *Task) AddSubtask(text string) {
	t.Subtasks = append(t.Subtasks, text)
}

// HasSubtasks reports whether the task has any subtasks.
func (t *Task) HasSubtasks() bool {
	return len(t.Subtasks) > 0
}

// SubtaskCount returns the number of subtasks.
func (t *Task) SubtaskCount() int {
	return len(t.Subtasks)
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() Task {
	c := Task{Text: t.Text}
	if len(t.Subtasks) > 0 {
		c.Subtasks = make([]string, len(t.Subtasks))
		copy(c.Subtasks, t.Subtasks)
	}
	return c
}

// File is the in-memory form of a todo file: a title and an ordered
// task list. Structural operations live here; validation lives with
// the mutating operations.
type File struct {
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// NewFile creates an empty todo file with the given title.
func NewFile(title string) *File {
	return &File{Title: title}
}

// AppendTask adds a task at the end of the list.
func (f *File) AppendTask(t Task) {
	f.Tasks = append(f.Tasks, t)
}

// PrependTask adds a task at the front of the list, so the newest
// item is position 1 until explicitly reprioritized.
func (f *File) PrependTask(t Task) {
	f.Tasks = append([]Task{t}, f.Tasks...)
}

// IsEmpty reports whether the file has no tasks.
func (f *File) IsEmpty() bool {
	return len(f.Tasks) == 0
}

// TaskCount returns the number of top-level tasks.
func (f *File) TaskCount() int {
	return len(f.Tasks)
}

// TotalItemCount returns the number of tasks plus subtasks, the unit
// the list command truncates by.
func (f *File) TotalItemCount() int {
	n := len(f.Tasks)
	for i := range f.Tasks {
		n += len(f.Tasks[i].Subtasks)
	}
	return n
}

// Archive is the in-memory form of an archive file: date-grouped
// entries, newest first.
type Archive struct {
	Title   string         `json:"title"`
	Entries []ArchiveEntry `json:"entries"`
}

// ArchiveEntry holds the items archived on one calendar day, grouped
// into named lists. The Default list renders without a heading.
type ArchiveEntry struct {
	Date  string            `json:"date"`
	Lists map[string][]Task `json:"lists"`
}

// NewArchive creates an empty archive with the default title.
func NewArchive() *Archive {
	return &Archive{Title: DefaultArchiveTitle}
}

// AddItemsForDate appends tasks to the named list of the entry for
// date. An existing entry is located by date and mutated through its
// index; otherwise a new entry is inserted at the front so entries
// stay newest-first. The caller supplies the date (YYYY-MM-DD).
func (a *Archive) AddItemsForDate(date, list string, tasks []Task) {
	if len(tasks) == 0 {
		return
	}
	for i := range a.Entries {
		if a.Entries[i].Date == date {
			if a.Entries[i].Lists == nil {
				a.Entries[i].Lists = make(map[string][]Task)
			}
			a.Entries[i].Lists[list] = append(a.Entries[i].Lists[list], tasks...)
			return
		}
	}
	entry := ArchiveEntry{
		Date:  date,
		Lists: map[string][]Task{list: tasks},
	}
	a.Entries = append([]ArchiveEntry{entry}, a.Entries...)
}

// EntryCount returns the number of date entries.
func (a *Archive) EntryCount() int {
	return len(a.Entries)
}
