package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds shell configuration
type Config struct {
	MaxStackSize          int    `yaml:"max_stack_size"`
	DataDir               string `yaml:"data_dir"`
	StateFile             string `yaml:"state_file"`
	HistoryFile           string `yaml:"history_file"`
	Chooser               string `yaml:"chooser"`
	IgnoreCase            bool   `yaml:"ignore_case"`
	KeepSelectionAtBottom bool   `yaml:"keep_selection_at_bottom"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".dhsh")
	return Config{
		MaxStackSize:          100,
		DataDir:               dataDir,
		StateFile:             filepath.Join(dataDir, "stack.json"),
		HistoryFile:           filepath.Join(home, ".dhsh_history"),
		Chooser:               "tea",
		IgnoreCase:            true,
		KeepSelectionAtBottom: true,
	}
}

// loadConfig reads configuration from a YAML file, filling unset
// fields from the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Chooser != "tea" && cfg.Chooser != "tview" {
		return cfg, fmt.Errorf("config: unknown chooser %q (try: tea, tview)", cfg.Chooser)
	}
	if cfg.MaxStackSize < 0 {
		return cfg, fmt.Errorf("config: max_stack_size must not be negative")
	}

	return cfg, nil
}
