package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/othello-go/internal/model"
	"github.com/mcoot/othello-go/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// LegalMoves lists the moves available to one side
type LegalMoves struct {
	Turn  model.Piece      `json:"turn"`
	Moves []model.Position `json:"moves"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		o.printJSON(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.GameState:
		o.printGameState(v)
	case *model.GameSummary:
		o.printSummary(v)
	case *game.MoveResult:
		o.printMoveResult(v)
	case LegalMoves:
		o.printLegalMoves(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGameState(g model.GameState) {
	o.printBoard(g.Cells)
	fmt.Fprintf(o.w, "X: %d\tO: %d\n", g.DarkCount, g.LightCount)
	if g.Terminal {
		fmt.Fprintf(o.w, "No legal moves for %s\n", g.Turn.Symbol())
		return
	}
	fmt.Fprintf(o.w, "Move %d, %s to play\n", g.MoveCount+1, g.Turn.Symbol())
}

func (o *Output) printBoard(cells [][]model.Piece) {
	size := len(cells)
	if size == 0 {
		return
	}

	// Column headers
	fmt.Fprint(o.w, "     ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%3d", col)
	}
	fmt.Fprintln(o.w)

	border := "    +" + strings.Repeat("---", size) + "-+"
	fmt.Fprintln(o.w, border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, "%3d |", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(o.w, "%3s", cells[row][col].Symbol())
		}
		fmt.Fprintln(o.w, " |")
	}

	fmt.Fprintln(o.w, border)
}

func (o *Output) printSummary(s *model.GameSummary) {
	fmt.Fprintln(o.w, "Game Over !!!!!!")
	if s.Winner.IsPlayer() {
		fmt.Fprintf(o.w, "%s won\n", s.Winner.Symbol())
	} else {
		fmt.Fprintln(o.w, "X and O tied")
	}
	fmt.Fprintf(o.w, "X: %d pieces\n", s.DarkCount)
	fmt.Fprintf(o.w, "O: %d pieces\n", s.LightCount)
}

func (o *Output) printMoveResult(m *game.MoveResult) {
	fmt.Fprintf(o.w, "Successful move at %d, %d (%d flipped)\n", m.Position.Col, m.Position.Row, len(m.Flipped))
}

func (o *Output) printLegalMoves(l LegalMoves) {
	if len(l.Moves) == 0 {
		fmt.Fprintf(o.w, "No legal moves for %s\n", l.Turn.Symbol())
		return
	}

	moves := make([]string, 0, len(l.Moves))
	for _, m := range l.Moves {
		moves = append(moves, FormatMove(m))
	}
	fmt.Fprintf(o.w, "Legal moves for %s: %s\n", l.Turn.Symbol(), strings.Join(moves, " "))
}
