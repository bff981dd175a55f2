package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// findProjectConfigFile looks for a config file in the current
// directory.
func findProjectConfigFile() string {
	names := []string{"ldr.toml", ".ldr.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for the user-level config file in the
// OS-specific config directory.
func findUserConfigFile() string {
	dir := osUserConfigDir()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, "ldr", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// UserConfigPath returns where the user config file belongs, whether
// or not it exists. Used by config --init.
func UserConfigPath() string {
	dir := osUserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "ldr", "config.toml")
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// setDefaults applies default values to the config. DataDir stays
// empty here; finalizeConfig resolves it so overrides from any layer
// win first.
func setDefaults(cfg *Config) {
	cfg.TodoFile = DefaultTodoFile
	cfg.ArchiveFile = DefaultArchiveFile
	cfg.ListLimit = DefaultListLimit
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
