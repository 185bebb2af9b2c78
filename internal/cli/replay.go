package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/othello-go/internal/services/game"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <col,row>...",
		Short: "Apply a sequence of moves and print the resulting position",
		Example: `  othello replay --size 4 3,1 3,0
  othello replay -o json 2,3 2,2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, err := replay(args)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(controller.State())

			if summary, err := controller.Summary(); err == nil {
				out.Print(summary)
			}
			return nil
		},
	}
}

func newMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves [col,row]...",
		Short: "List the legal moves after an optional sequence of moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, err := replay(args)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			state := controller.State()
			out.Print(LegalMoves{Turn: state.Turn, Moves: state.LegalMoves})
			return nil
		},
	}
}

// replay starts a new game and applies the moves in order, stopping at the first rejected one
func replay(moves []string) (*game.Controller, error) {
	controller, err := app.NewGame(cfg.Size)
	if err != nil {
		return nil, err
	}

	for i, arg := range moves {
		pos, err := ParseMove(arg)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if _, err := controller.Play(pos); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return controller, nil
}
