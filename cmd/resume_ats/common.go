package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/logger"
)

// loadConfig reads the config file (or the environment when no file is given),
// lets explicitly set flags override it, fills the remaining defaults and
// validates the result. flags holds the current value of every flag; only
// the ones the user changed are applied.
func loadConfig(cmd *cobra.Command, flags config.Config) (config.Config, error) {
	var (
		base *config.Config
		err  error
	)
	if configPath != "" {
		base, err = config.LoadConfig(configPath)
	} else {
		base, err = config.LoadEnv()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	flags.Debug = debugLogs
	flags.JSONLogs = jsonLogs
	changed := func(key string) bool {
		return cmd.Flags().Changed(strings.ReplaceAll(key, "_", "-"))
	}

	merged := base.ApplyFlags(flags, changed)
	merged = merged.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config, interactive bool) *zap.Logger {
	return logger.New(logger.Options{
		JSON:        cfg.JSONLogs,
		Debug:       cfg.Debug,
		Interactive: interactive,
		Output:      cmd.ErrOrStderr(),
	})
}

// loadCatalog returns the embedded catalog, or the defaults overlaid with path
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// writeOutput writes data to path, or to the command's stdout when path is empty
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
