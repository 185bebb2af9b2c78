package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaults() {
	c, err := DefaultConfig()
	s.Require().NoError(err)

	s.Equal(8, c.Size)
	s.Equal(OutputText, c.Output)
	s.Equal("warn", c.LogLevel)
	s.False(c.Verbose)
}

func (s *ConfigSuite) TestEnvironmentOverridesDefaults() {
	s.T().Setenv("OTHELLO_SIZE", "10")
	s.T().Setenv("OTHELLO_OUTPUT", "json")

	c, err := DefaultConfig()
	s.Require().NoError(err)

	s.Equal(10, c.Size)
	s.Equal(OutputJSON, c.Output)
}

func (s *ConfigSuite) TestBadEnvironmentValue() {
	s.T().Setenv("OTHELLO_SIZE", "eight")

	_, err := DefaultConfig()
	s.Require().Error(err)
	s.Contains(err.Error(), "unable to read environment config")
}

func (s *ConfigSuite) TestValidate() {
	c := &Config{Size: 8, Output: OutputJSON, LogLevel: "info"}
	s.Require().NoError(c.Validate())

	c.Output = "xml"
	s.Require().ErrorIs(c.Validate(), ErrInvalidOutput)

	c.Output = OutputText
	c.LogLevel = "chatty"
	s.Require().ErrorIs(c.Validate(), ErrInvalidLogLevel)
}

func (s *ConfigSuite) TestLevel() {
	c := &Config{LogLevel: "error"}
	level, err := c.Level()
	s.Require().NoError(err)
	s.Equal(slog.LevelError, level)

	c.Verbose = true
	level, err = c.Level()
	s.Require().NoError(err)
	s.Equal(slog.LevelDebug, level)
}

func (s *ConfigSuite) TestLoadConfigFile() {
	path := filepath.Join(s.T().TempDir(), "othello.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("size: 12\nlog-level: debug\n"), 0600))

	c, err := LoadConfigFile(path)
	s.Require().NoError(err)

	s.Equal(12, c.Size)
	s.Equal("debug", c.LogLevel)
	s.Equal(OutputText, c.Output)
}

func (s *ConfigSuite) TestMergeFileKeepsChangedFlags() {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := &Config{Size: 8, Output: OutputText, LogLevel: "warn"}
	flags.IntVar(&c.Size, "size", c.Size, "")
	flags.StringVar(&c.Output, "output", c.Output, "")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "")
	flags.BoolVar(&c.Verbose, "verbose", c.Verbose, "")
	s.Require().NoError(flags.Parse([]string{"--size", "4"}))

	c.MergeFile(&Config{Size: 6, Output: OutputJSON, LogLevel: "info", Verbose: true}, flags)

	s.Equal(4, c.Size)
	s.Equal(OutputJSON, c.Output)
	s.Equal("info", c.LogLevel)
	s.True(c.Verbose)
}

func (s *ConfigSuite) TestUsageListsVariables() {
	usage := Usage()
	s.Contains(usage, "OTHELLO_SIZE")
	s.Contains(usage, "OTHELLO_OUTPUT")
}
