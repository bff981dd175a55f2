// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (OS-specific config directory)
// 3. Project config file (ldr.toml or .ldr.toml in the current directory)
// 4. Environment variables (LDR_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - Linux/BSD: $XDG_CONFIG_HOME/ldr/config.toml or ~/.config/ldr/config.toml
// - macOS: ~/Library/Application Support/ldr/config.toml
// - Windows: %APPDATA%\ldr\config.toml
//
// A project-level ldr.toml lets a repository carry its own task list,
// for example by pointing data_dir at a directory inside the project.
package config
