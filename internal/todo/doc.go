// Package todo parses, generates, and mutates Markdown task files.
//
// The todo file (todos.md) is a single list of tasks, each optionally
// holding single-level subtasks:
//
//	# TODOs
//
//	- Buy groceries
//	  - Milk
//	  - Eggs
//	- Call the bank
//
// The archive file (archive.md) groups completed items by date,
// newest first:
//
//	# Archive
//
//	## 2026-08-22
//	- Call the bank
//
//	## 2026-08-20
//	- Ship the release
//
// # Parsing
//
// The todo parser is forgiving: it accepts any of the bullet markers
// "-", "*", and "+", subtask indents of two to four spaces or one tab,
// and treats other plain lines as bare tasks. It never fails; deviations
// from canonical form are reported as warnings. The archive parser is
// strict because archive files are machine-written only: any
// unrecognized line is a FormatError carrying the line number.
//
// # References
//
// Items are addressed by 1-based task number plus an optional subtask
// letter: "3" names the third task, "3a" its first subtask. ParseRef
// resolves the address grammar; bounds against an actual document are
// checked by the mutating operations.
//
// # Limits
//
//   - Task text: 500 characters
//   - Tasks per file: 1000
//   - Subtasks per task: 26 (letters a-z)
package todo
