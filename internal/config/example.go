package config

// ExampleConfig returns an example configuration showing all
// available options.
func ExampleConfig() string {
	return `# ldr configuration file
# Every value can be overridden by LDR_* environment variables or CLI flags.

# Where todo and archive files live.
# Defaults to $XDG_DATA_HOME/ldr (or ~/.local/share/ldr).
# data_dir = "~/.local/share/ldr"

# File names, resolved relative to data_dir unless absolute.
todo_file = "todos.md"
archive_file = "archive.md"

# Editor for the edit command. Empty means $EDITOR, then nano.
# editor = "vim"

# How many tasks ls shows by default (-a shows all).
list_limit = 5

# Color output: auto, always, never
color = "auto"

# Logging (diagnostics go to stderr)
log_level = "warn"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
