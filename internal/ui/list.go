package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/ldr-go/internal/todo"
)

// ListOptions controls how much of a file RenderList shows.
type ListOptions struct {
	// Limit is the maximum number of lines, counting tasks and
	// subtasks alike. Ignored when All is set.
	Limit int
	All   bool
	// Filter is a case-insensitive substring match over task and
	// subtask text. A matching task shows all its subtasks; a
	// matching subtask pulls in its parent line for context.
	Filter string
}

// listItem is one display line: a task line when letter is zero,
// otherwise a subtask line.
type listItem struct {
	number int // 1-based task number
	letter byte
	text   string
}

// RenderList formats a file for the ls command: tasks as "%3d. text",
// subtasks indented beneath them as "a. text", truncated to the item
// limit with a trailing "... and N more items" notice. Filtering
// keeps the original task numbers so the output stays addressable.
func RenderList(f *todo.File, opts ListOptions, st Styles) string {
	if f.IsEmpty() {
		return st.Notice.Render("No notes yet.") + "\n"
	}

	items := buildListItems(f, opts.Filter)
	if len(items) == 0 {
		notice := fmt.Sprintf("No items found matching filter: \"%s\"", opts.Filter)
		return st.Notice.Render(notice) + "\n"
	}

	count := len(items)
	if !opts.All && opts.Limit < count {
		count = opts.Limit
	}

	var b strings.Builder
	for _, item := range items[:count] {
		b.WriteString(renderListItem(st, item))
		b.WriteByte('\n')
	}
	if count < len(items) {
		notice := fmt.Sprintf("... and %d more items", len(items)-count)
		b.WriteString(st.Notice.Render(notice))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderListItem(st Styles, item listItem) string {
	if item.letter == 0 {
		line := fmt.Sprintf("%3d. %s", item.number, item.text)
		return st.Task(item.number).Render(line)
	}
	line := fmt.Sprintf("     %c. %s", item.letter, item.text)
	return st.Subtask(item.number).Render(line)
}

func buildListItems(f *todo.File, filter string) []listItem {
	needle := strings.ToLower(filter)
	var items []listItem
	for i, task := range f.Tasks {
		number := i + 1
		taskMatches := needle == "" || strings.Contains(strings.ToLower(task.Text), needle)

		var keep []int
		for j, sub := range task.Subtasks {
			if taskMatches || strings.Contains(strings.ToLower(sub), needle) {
				keep = append(keep, j)
			}
		}
		if !taskMatches && len(keep) == 0 {
			continue
		}

		items = append(items, listItem{number: number, text: task.Text})
		for _, j := range keep {
			items = append(items, listItem{number: number, letter: byte('a' + j), text: task.Subtasks[j]})
		}
	}
	return items
}
