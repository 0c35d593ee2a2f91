package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/timereport/internal/config"
	"github.com/dbsmedya/timereport/internal/ingest"
	"github.com/dbsmedya/timereport/internal/logger"
	"github.com/dbsmedya/timereport/internal/report"
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	path, err := resolveSource(cmd, args, cfg)
	if err != nil {
		return err
	}

	file, err := openSource(path)
	if err != nil {
		return err
	}
	defer file.Close()

	log = log.WithFile(path)
	log.Debugw("Starting ingest", "malformed", cfg.Input.Malformed)

	// INGEST: the whole source is consumed and the sequence frozen before
	// any report line is written.
	seq, _, err := ingest.Run(file, ingest.Options{
		AbortOnMalformed: cfg.AbortOnMalformed(),
		Logger:           log,
	})
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	emitter := report.New(cmd.OutOrStdout(), report.Options{
		EarlyHeader: cfg.Output.EarlyHeader,
		LateHeader:  cfg.Output.LateHeader,
		Color:       cfg.Output.Color,
	})
	if err := emitter.Emit(seq); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// loadConfig loads the config file, applies CLI overrides, and validates.
// The default config file is optional; any other path must exist.
func loadConfig() (*config.Config, error) {
	configFile := GetConfigFile()

	load := config.Load
	if configFile == DefaultConfigFile {
		load = config.LoadOptional
	}

	cfg, err := load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.OnMalformed, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
