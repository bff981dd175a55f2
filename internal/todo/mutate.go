package todo

import (
	"sort"
	"strings"
	"unicode/utf8"
)

func validateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", validationErrorf(EmptyInput, "Cannot add empty task")
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxTaskText {
		return "", validationErrorf(LimitExceeded,
			"Task text too long (%d characters). Maximum length is %d characters", n, MaxTaskText)
	}
	return trimmed, nil
}

func (f *File) checkTaskNumber(ref Ref) error {
	if ref.TaskIndex < 0 || ref.TaskIndex >= len(f.Tasks) {
		return validationErrorf(OutOfRange,
			"Invalid task number: %d. Valid range: 1-%d", ref.TaskIndex+1, len(f.Tasks))
	}
	if ref.IsSubtask() && ref.SubtaskIndex >= f.Tasks[ref.TaskIndex].SubtaskCount() {
		return validationErrorf(OutOfRange,
			"Invalid subtask reference: task %d has %d subtasks",
			ref.TaskIndex+1, f.Tasks[ref.TaskIndex].SubtaskCount())
	}
	return nil
}

// Add validates text and prepends it as a new task, so the newest
// entry is always task 1.
func (f *File) Add(text string) error {
	trimmed, err := validateText(text)
	if err != nil {
		return err
	}
	if len(f.Tasks) >= MaxTasks {
		return validationErrorf(LimitExceeded,
			"Maximum number of tasks (%d) reached. Archive or remove tasks first", MaxTasks)
	}
	f.PrependTask(NewTask(trimmed))
	return nil
}

// AddUnder validates text and appends it as a subtask of the task
// with the given 1-based number.
func (f *File) AddUnder(number int, text string) error {
	trimmed, err := validateText(text)
	if err != nil {
		return err
	}
	ref := Ref{TaskIndex: number - 1, SubtaskIndex: -1}
	if err := f.checkTaskNumber(ref); err != nil {
		return err
	}
	task := &f.Tasks[ref.TaskIndex]
	if task.SubtaskCount() >= MaxSubtasks {
		return validationErrorf(LimitExceeded,
			"Task %d already has maximum number of subtasks (%d)", number, MaxSubtasks)
	}
	task.AddSubtask(trimmed)
	return nil
}

// Prioritize moves the referenced tasks to the front of the file in
// the order the references were given. Duplicates count once, at
// their first occurrence; every other task keeps its relative order.
// The whole call validates before anything moves. Subtask references
// prioritize the parent task.
func (f *File) Prioritize(refs []Ref) ([]Task, error) {
	for _, ref := range refs {
		if err := f.checkTaskNumber(ref); err != nil {
			return nil, err
		}
	}

	seen := make(map[int]bool, len(refs))
	var order []int
	for _, ref := range refs {
		if !seen[ref.TaskIndex] {
			seen[ref.TaskIndex] = true
			order = append(order, ref.TaskIndex)
		}
	}

	moved := make([]Task, 0, len(order))
	for _, idx := range order {
		moved = append(moved, f.Tasks[idx])
	}
	rest := make([]Task, 0, len(f.Tasks)-len(order))
	for i, task := range f.Tasks {
		if !seen[i] {
			rest = append(rest, task)
		}
	}
	f.Tasks = append(moved, rest...)
	return moved, nil
}

// Removal is the outcome of Remove: the items captured for the
// caller, in capture order, and the parent tasks completed when their
// last subtask was removed. Items returns both groups in the order
// they are archived: captured items first, then cascaded parents.
type Removal struct {
	Captured []Task
	Cascaded []Task
}

func (r *Removal) Items() []Task {
	items := make([]Task, 0, len(r.Captured)+len(r.Cascaded))
	items = append(items, r.Captured...)
	return append(items, r.Cascaded...)
}

func (r *Removal) Count() int {
	return len(r.Captured) + len(r.Cascaded)
}

// Remove deletes the referenced tasks and subtasks. The whole call
// validates before anything is deleted. Whole-task references capture
// the task with its subtasks; subtask references capture the subtask
// text as a standalone item. A parent whose last subtask is removed
// completes and is captured too. Duplicate references count once.
func (f *File) Remove(refs []Ref) (*Removal, error) {
	for _, ref := range refs {
		if err := f.checkTaskNumber(ref); err != nil {
			return nil, err
		}
	}

	removal := &Removal{}

	whole := make(map[int]bool)
	var wholeOrder []int
	for _, ref := range refs {
		if !ref.IsSubtask() && !whole[ref.TaskIndex] {
			whole[ref.TaskIndex] = true
			wholeOrder = append(wholeOrder, ref.TaskIndex)
		}
	}
	for _, idx := range wholeOrder {
		removal.Captured = append(removal.Captured, f.Tasks[idx].Clone())
	}

	// Subtask references not covered by a whole-task removal, grouped
	// by parent, deduplicated.
	subSeen := make(map[Ref]bool)
	subsByParent := make(map[int][]int)
	var parents []int
	for _, ref := range refs {
		if !ref.IsSubtask() || whole[ref.TaskIndex] || subSeen[ref] {
			continue
		}
		subSeen[ref] = true
		removal.Captured = append(removal.Captured,
			NewTask(f.Tasks[ref.TaskIndex].Subtasks[ref.SubtaskIndex]))
		if _, ok := subsByParent[ref.TaskIndex]; !ok {
			parents = append(parents, ref.TaskIndex)
		}
		subsByParent[ref.TaskIndex] = append(subsByParent[ref.TaskIndex], ref.SubtaskIndex)
	}

	// Delete subtasks highest index first so earlier deletions cannot
	// shift later ones.
	sort.Ints(parents)
	var cascaded []int
	for _, parent := range parents {
		idxs := subsByParent[parent]
		sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
		subs := f.Tasks[parent].Subtasks
		for _, si := range idxs {
			subs = append(subs[:si], subs[si+1:]...)
		}
		f.Tasks[parent].Subtasks = subs
		if len(subs) == 0 {
			cascaded = append(cascaded, parent)
		}
	}
	for _, parent := range cascaded {
		removal.Cascaded = append(removal.Cascaded, f.Tasks[parent].Clone())
	}

	doomed := append(append([]int{}, wholeOrder...), cascaded...)
	sort.Sort(sort.Reverse(sort.IntSlice(doomed)))
	prev := -1
	for _, idx := range doomed {
		if idx == prev {
			continue
		}
		prev = idx
		f.Tasks = append(f.Tasks[:idx], f.Tasks[idx+1:]...)
	}

	return removal, nil
}
