package config

import (
	"fmt"
	"os"
	"strings"
)

// loadFromEnv overrides config from LDR_* environment variables and
// records their source.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("LDR_DATA_DIR"); v != "" {
		cfg.DataDir = v
		set("data_dir")
	}
	if v := os.Getenv("LDR_TODO_FILE"); v != "" {
		cfg.TodoFile = v
		set("todo_file")
	}
	if v := os.Getenv("LDR_ARCHIVE_FILE"); v != "" {
		cfg.ArchiveFile = v
		set("archive_file")
	}
	if v := os.Getenv("LDR_EDITOR"); v != "" {
		cfg.Editor = v
		set("editor")
	}
	if v := os.Getenv("LDR_LIST_LIMIT"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			cfg.ListLimit = i
			set("list_limit")
		}
	}
	if v := os.Getenv("LDR_COLOR"); v != "" {
		cfg.Color = v
		set("color")
	}
	if v := os.Getenv("LDR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("LDR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("LDR_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("LDR_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
