// Package config provides configuration structures and loading for timereport.
package config

// Malformed-line policies.
const (
	MalformedSkip  = "skip"
	MalformedAbort = "abort"
)

// Config represents the complete application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InputConfig represents where records come from and how bad lines are treated.
type InputConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`           // used when no file argument is given
	Malformed string `yaml:"malformed" mapstructure:"malformed"` // skip or abort
}

// OutputConfig represents report rendering settings.
type OutputConfig struct {
	Color       bool   `yaml:"color" mapstructure:"color"`
	EarlyHeader string `yaml:"early_header" mapstructure:"early_header"`
	LateHeader  string `yaml:"late_header" mapstructure:"late_header"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Malformed: MalformedSkip,
		},
		Output: OutputConfig{
			Color:       true,
			EarlyHeader: "Printing the early times in file order:",
			LateHeader:  "Printing the late times in reverse file order:",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// AbortOnMalformed reports whether a malformed line should fail the run.
func (c *Config) AbortOnMalformed() bool {
	return c.Input.Malformed == MalformedAbort
}
