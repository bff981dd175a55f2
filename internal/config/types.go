// Package config handles configuration loading and defaults.
package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information
// for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultTodoFile    = "todos.md"
	DefaultArchiveFile = "archive.md"
	DefaultListLimit   = 5
	DefaultColor       = "auto"
	DefaultEditor      = "nano"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// Config holds the full configuration for ldr.
type Config struct {
	// Paths. DataDir defaults to the XDG data directory; the file
	// names resolve relative to it unless absolute.
	DataDir     string `toml:"data_dir"`
	TodoFile    string `toml:"todo_file"`
	ArchiveFile string `toml:"archive_file"`

	// Editor command for the edit command. Empty means $EDITOR, then
	// nano.
	Editor string `toml:"editor"`

	// Listing
	ListLimit int    `toml:"list_limit"`
	Color     string `toml:"color"` // auto, always, never

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}
