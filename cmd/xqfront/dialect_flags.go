package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"xqfront/internal/dialect"
)

// resolveDialect picks the configuration for target. An explicit --dialect
// preset wins, then --config, then a config file found above target, then
// the default.
func resolveDialect(cmd *cobra.Command, fs afero.Fs, target string) (dialect.Config, string, error) {
	preset, err := cmd.Flags().GetString("dialect")
	if err != nil {
		return dialect.Config{}, "", fmt.Errorf("failed to get dialect flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return dialect.Config{}, "", fmt.Errorf("failed to get config flag: %w", err)
	}

	if preset != "" {
		cfg, err := dialect.Preset(preset)
		return cfg, "preset " + preset, err
	}
	if configPath != "" {
		cfg, err := dialect.LoadFile(fs, configPath)
		return cfg, configPath, err
	}

	start := target
	if info, err := fs.Stat(target); err == nil && !info.IsDir() {
		start = filepath.Dir(target)
	} else if err != nil && !os.IsNotExist(err) {
		return dialect.Config{}, "", err
	}
	found, ok, err := dialect.Discover(fs, start)
	if err != nil {
		return dialect.Config{}, "", err
	}
	if !ok {
		return dialect.Default(), "default", nil
	}
	cfg, err := dialect.LoadFile(fs, found)
	return cfg, found, err
}
