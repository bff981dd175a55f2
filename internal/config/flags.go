package config

import "flag"

// parseFlags defines the global flags on fs, parses args, and applies
// only the flags that were explicitly set, recording their source.
// Flags override every other layer.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("ldr", flag.ContinueOnError)
	}

	dataDir := fs.String("data-dir", cfg.DataDir, "Data directory for todo and archive files")
	todoFile := fs.String("todo", cfg.TodoFile, "Path to todo file")
	archiveFile := fs.String("archive", cfg.ArchiveFile, "Path to archive file")
	editor := fs.String("editor", cfg.Editor, "Editor command for the edit command")
	color := fs.String("color", cfg.Color, "Color output: auto, always, never")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	logTimestamps := fs.Bool("log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	logCaller := fs.Bool("log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		var field string
		switch f.Name {
		case "data-dir":
			cfg.DataDir = *dataDir
			field = "data_dir"
		case "todo":
			cfg.TodoFile = *todoFile
			field = "todo_file"
		case "archive":
			cfg.ArchiveFile = *archiveFile
			field = "archive_file"
		case "editor":
			cfg.Editor = *editor
			field = "editor"
		case "color":
			cfg.Color = *color
			field = "color"
		case "log-level":
			cfg.LogLevel = *logLevel
			field = "log_level"
		case "log-format":
			cfg.LogFormat = *logFormat
			field = "log_format"
		case "log-timestamps":
			cfg.LogTimestamps = *logTimestamps
			field = "log_timestamps"
		case "log-caller":
			cfg.LogCaller = *logCaller
			field = "log_caller"
		default:
			return
		}
		if sources != nil {
			sources[field] = SourceFlag
		}
	})

	return nil
}
