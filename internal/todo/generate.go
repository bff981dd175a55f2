package todo

import (
	"sort"
	"strings"
)

// GenerateFile renders the canonical form of a todo file: the title
// heading, a blank line, then one "- " line per task with two-space
// indented subtask lines. The output carries exactly one trailing
// newline. ParseFile reproduces this form byte for byte.
func GenerateFile(f *File) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(f.Title)
	b.WriteString("\n\n")

	for i := range f.Tasks {
		writeTask(&b, &f.Tasks[i])
	}

	return trimTrailing(b.String())
}

// GenerateArchive renders the canonical archive form: the title
// heading, then one "## date" section per entry (entries are kept
// newest-first by the callers). Within a section the Default list
// renders without a heading, followed by the remaining lists under
// "### name" headings in sorted name order.
func GenerateArchive(a *Archive) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(a.Title)
	b.WriteString("\n\n")

	for _, entry := range a.Entries {
		b.WriteString("## ")
		b.WriteString(entry.Date)
		b.WriteString("\n")

		for i := range entry.Lists[DefaultList] {
			writeTask(&b, &entry.Lists[DefaultList][i])
		}

		for _, name := range sortedListNames(entry.Lists) {
			tasks := entry.Lists[name]
			if name == DefaultList || len(tasks) == 0 {
				continue
			}
			b.WriteString("\n### ")
			b.WriteString(name)
			b.WriteString("\n")
			for i := range tasks {
				writeTask(&b, &tasks[i])
			}
		}
		b.WriteString("\n")
	}

	return trimTrailing(b.String())
}

func writeTask(b *strings.Builder, t *Task) {
	b.WriteString("- ")
	b.WriteString(t.Text)
	b.WriteString("\n")
	for _, sub := range t.Subtasks {
		b.WriteString("  - ")
		b.WriteString(sub)
		b.WriteString("\n")
	}
}

func sortedListNames(lists map[string][]Task) []string {
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// trimTrailing right-trims trailing whitespace and appends exactly
// one newline.
func trimTrailing(s string) string {
	return strings.TrimRight(s, " \t\r\n") + "\n"
}
