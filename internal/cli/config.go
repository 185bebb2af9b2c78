package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/pflag"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

var (
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds CLI configuration
type Config struct {
	Size       int    `yaml:"size" env:"OTHELLO_SIZE" env-default:"8" env-description:"Board dimension (even, at least 4)"`
	Output     string `yaml:"output" env:"OTHELLO_OUTPUT" env-default:"text" env-description:"Output format: text, json"`
	LogLevel   string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"warn" env-description:"Log level: debug, info, warn, error"`
	Verbose    bool   `yaml:"verbose" env:"OTHELLO_VERBOSE" env-description:"Log at debug level"`
	ConfigFile string `yaml:"-" env:"OTHELLO_CONFIG" env-description:"Optional YAML config file"`
}

// DefaultConfig returns a Config filled from the environment, falling back to defaults
func DefaultConfig() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, fmt.Errorf("unable to read environment config: %w", err)
	}
	return c, nil
}

// LoadConfigFile reads a YAML config file; environment variables override the file
func LoadConfigFile(path string) (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadConfig(path, c); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return c, nil
}

// MergeFile takes values from the file config for every setting not given as a flag
func (c *Config) MergeFile(file *Config, flags *pflag.FlagSet) {
	if !flags.Changed("size") {
		c.Size = file.Size
	}
	if !flags.Changed("output") {
		c.Output = file.Output
	}
	if !flags.Changed("log-level") {
		c.LogLevel = file.LogLevel
	}
	if !flags.Changed("verbose") {
		c.Verbose = file.Verbose
	}
}

// Validate checks the settings the CLI interprets itself. Board size is left to the game.
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: %q, must be text or json", ErrInvalidOutput, c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level to log at
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Usage describes the environment variables the CLI reads
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
