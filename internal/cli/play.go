package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game, reading moves from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, err := app.NewGame(cfg.Size)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			// Keep stdout parseable in json mode
			prompts := cmd.OutOrStdout()
			if cfg.Output == OutputJSON {
				prompts = cmd.ErrOrStderr()
			}

			session := NewSession(controller, cmd.InOrStdin(), out, prompts, cmd.ErrOrStderr())
			return session.Run()
		},
	}
}
