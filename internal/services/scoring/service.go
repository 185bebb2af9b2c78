package scoring

import (
	"github.com/mcoot/othello-go/internal/model"
)

// Service scores games by piece count
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Summarize counts both colors on the board and picks the winner.
// It does not check whether the game has ended.
func (s *Service) Summarize(game *model.Game) *model.GameSummary {
	dark := game.CountPieces(model.Dark)
	light := game.CountPieces(model.Light)

	return &model.GameSummary{
		DarkCount:  dark,
		LightCount: light,
		Winner:     s.DetermineWinner(dark, light),
		Moves:      game.MoveCount(),
	}
}

// DetermineWinner returns the color with more pieces, or Empty on a tie
func (s *Service) DetermineWinner(dark, light int) model.Piece {
	switch {
	case dark > light:
		return model.Dark
	case light > dark:
		return model.Light
	default:
		return model.Empty
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Summarize(game *model.Game) *model.GameSummary
	DetermineWinner(dark, light int) model.Piece
}

var _ ServiceInterface = (*Service)(nil)
