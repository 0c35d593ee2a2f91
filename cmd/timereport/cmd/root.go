package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// DefaultConfigFile is read when present; a missing default is not an error.
const DefaultConfigFile = "timereport.yaml"

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	onMalformed string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "timereport [file]",
	Short: "Early/late time pair reporter",
	Long: `Timereport reads a comma-delimited file where each line holds two times,
either 12-hour clock-face (9:00am) or ISO-like (2024-01-01 08:15), and prints:

  - the earlier time of every line, in file order
  - the later time of every line, in reverse file order

The file is read exactly once. If no file argument is given, input.path from
the configuration is used, and failing that the file name is prompted for.

Example:
  timereport times.csv
  timereport --on-malformed abort times.csv`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runReport,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", DefaultConfigFile,
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Input/output overrides
	rootCmd.PersistentFlags().StringVar(&onMalformed, "on-malformed", "",
		"Override malformed line policy (skip, abort)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored report headers")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel    string
	LogFormat   string
	OnMalformed string
	NoColor     bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		OnMalformed: onMalformed,
		NoColor:     noColor,
	}
}
