package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/othello-go/internal/model"
	"github.com/mcoot/othello-go/internal/services/game"
)

// Session runs an interactive game: it prompts for moves until the game ends or input runs out
type Session struct {
	controller game.ControllerInterface
	in         *bufio.Scanner
	out        *Output
	prompts    io.Writer
	warnings   io.Writer
}

// NewSession creates a Session reading moves from in. Board and results go to out,
// prompts to prompts and rejected input to warnings.
func NewSession(controller game.ControllerInterface, in io.Reader, out *Output, prompts, warnings io.Writer) *Session {
	return &Session{
		controller: controller,
		in:         bufio.NewScanner(in),
		out:        out,
		prompts:    prompts,
		warnings:   warnings,
	}
}

// Run plays until the side to move is stuck. Running out of input ends the session early without error.
func (s *Session) Run() error {
	s.printCurrent()

	for {
		state := s.controller.State()
		if state.Terminal {
			return s.finish()
		}

		fmt.Fprintf(s.prompts, "Next move for %s? <col>,<row> ", state.Turn.Symbol())
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			fmt.Fprintln(s.prompts)
			return nil
		}

		pos, err := ParseMove(s.in.Text())
		if err != nil {
			fmt.Fprintln(s.warnings, err)
			continue
		}

		result, err := s.controller.Play(pos)
		switch {
		case errors.Is(err, model.ErrIllegalMove):
			fmt.Fprintf(s.warnings, "Could not make move at %d, %d\n", pos.Col, pos.Row)
			continue
		case err != nil:
			return err
		}

		s.out.Print(result)
		if !result.Complete {
			s.printCurrent()
		}
	}
}

func (s *Session) printCurrent() {
	s.out.PrintMessage("Current Game")
	s.out.Print(s.controller.State())
}

func (s *Session) finish() error {
	summary, err := s.controller.Summary()
	if err != nil {
		return err
	}

	s.out.Print(s.controller.State())
	s.out.Print(summary)
	return nil
}
