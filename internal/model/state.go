package model

import "time"

// GameState is a read-only snapshot of a game for rendering
type GameState struct {
	ID         GameID     `json:"id,omitempty"`
	Size       int        `json:"size"`
	Cells      [][]Piece  `json:"cells"` // Row-major: Cells[row][col]
	Turn       Piece      `json:"turn"`
	MoveCount  int        `json:"move_count"`
	DarkCount  int        `json:"dark_count"`
	LightCount int        `json:"light_count"`
	LegalMoves []Position `json:"legal_moves"`
	Terminal   bool       `json:"terminal"`
}

// State captures the current position of the game
func (g *Game) State() GameState {
	return GameState{
		Size:       g.Size(),
		Cells:      g.Board().Cells,
		Turn:       g.turn,
		MoveCount:  g.moveCount,
		DarkCount:  g.CountPieces(Dark),
		LightCount: g.CountPieces(Light),
		LegalMoves: g.LegalMoves(),
		Terminal:   g.IsTerminal(),
	}
}

// GameSummary is the outcome of a finished game
type GameSummary struct {
	ID          GameID    `json:"id,omitempty"`
	DarkCount   int       `json:"dark_count"`
	LightCount  int       `json:"light_count"`
	Winner      Piece     `json:"winner"` // Empty if tie
	Moves       int       `json:"moves"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// IsTie returns true if neither side has more pieces
func (s GameSummary) IsTie() bool {
	return s.Winner == Empty
}
