package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/othello-go/internal/factory"
)

var (
	cfg    *Config
	cfgErr error
	app    *factory.App

	// newApp builds the application for a command run; tests replace it to inject mocks
	newApp = func(logger *slog.Logger) *factory.App {
		return factory.New(factory.Config{Logger: logger})
	}
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, cfgErr = DefaultConfig()
	if cfg == nil {
		cfg = &Config{Size: 8, Output: OutputText, LogLevel: "warn"}
	}

	rootCmd := &cobra.Command{
		Use:   "othello",
		Short: "Play Othello (Reversi) in the terminal",
		Long: `othello runs Othello games on an even, square board of size 4 or more.

Dark (X) moves first. Moves are entered as <col>,<row>, both counted from 0.
The game ends as soon as the side to move has no legal move.

Environment:
` + Usage(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}

			if cfg.ConfigFile != "" {
				fileCfg, err := LoadConfigFile(cfg.ConfigFile)
				if err != nil {
					return err
				}
				cfg.MergeFile(fileCfg, cmd.Flags())
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			app = newApp(newLogger(cmd.ErrOrStderr(), level))

			// In json mode errors are written by run as json documents
			cmd.Root().SilenceErrors = cfg.Output == OutputJSON
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&cfg.Size, "size", "s", cfg.Size, "Board dimension, even and at least 4 (env: OTHELLO_SIZE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: OTHELLO_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: OTHELLO_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file (env: OTHELLO_CONFIG)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newMovesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := run(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree, printing any error cobra was told to keep quiet about
func run(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil && rootCmd.SilenceErrors {
		NewOutput(OutputJSON, rootCmd.ErrOrStderr()).PrintError(err)
	}
	return err
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
