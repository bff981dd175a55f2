package config

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/ldr-go/internal/ldrdir"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS-specific config dir)
// 3. Project config file (ldr.toml or .ldr.toml in current directory)
// 4. Environment variables (LDR_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := LoadWithSources(fs, args)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each
// value. The config command uses the sources to show where every
// setting came from.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	cfg := &Config{}
	sources := make(map[string]ConfigSource)

	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projFile := findProjectConfigFile(); projFile != "" {
		if err := loadConfigFile(cfg, projFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projFile, err)
		}
	}

	loadFromEnv(cfg, sources)

	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{Config: cfg, Sources: sources}, nil
}

// configFields returns the list of configurable field names for
// source tracking.
func configFields() []string {
	return []string{
		"data_dir",
		"todo_file",
		"archive_file",
		"editor",
		"list_limit",
		"color",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// loadConfigFile loads TOML config from the given file and records
// the source of every key the file actually defines.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig computes derived values and validates settings.
func finalizeConfig(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)
	if cfg.DataDir == "" {
		dir, err := ldrdir.DataDir()
		if err != nil {
			return err
		}
		cfg.DataDir = dir
	}

	cfg.TodoFile = expandPath(cfg.TodoFile)
	if !filepath.IsAbs(cfg.TodoFile) {
		cfg.TodoFile = filepath.Join(cfg.DataDir, cfg.TodoFile)
	}
	cfg.ArchiveFile = expandPath(cfg.ArchiveFile)
	if !filepath.IsAbs(cfg.ArchiveFile) {
		cfg.ArchiveFile = filepath.Join(cfg.DataDir, cfg.ArchiveFile)
	}

	if cfg.ListLimit < 1 {
		return fmt.Errorf("list_limit must be at least 1, got %d", cfg.ListLimit)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", cfg.Color)
	}

	return nil
}
