package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/othello-go/internal/dependencies/clock"
	"github.com/mcoot/othello-go/internal/dependencies/ids"
	"github.com/mcoot/othello-go/internal/model"
	"github.com/mcoot/othello-go/internal/services/scoring"
)

// MoveResult describes an accepted move
type MoveResult struct {
	Piece    model.Piece      `json:"piece"`
	Position model.Position   `json:"position"`
	Flipped  []model.Position `json:"flipped"`
	Complete bool             `json:"complete"`
}

// Controller owns a single game for one driver and reports moves as errors
// the driver can act on. Like the game it wraps, it has a single owner.
type Controller struct {
	id             model.GameID
	game           *model.Game
	scoringService *scoring.Service
	clock          clock.Clock
	logger         *slog.Logger
	startedAt      time.Time
}

// NewController creates a new game of the given size
func NewController(
	size int,
	idGen ids.Generator,
	scoringService *scoring.Service,
	clock clock.Clock,
	logger *slog.Logger,
) (*Controller, error) {
	game, err := model.NewGame(size)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		id:             model.GameID(idGen.NewID()),
		game:           game,
		scoringService: scoringService,
		clock:          clock,
		logger:         logger,
		startedAt:      clock.Now(),
	}

	c.logger.Info("game created",
		slog.String("game_id", string(c.id)),
		slog.Int("size", size),
	)

	return c, nil
}

// ID returns the identifier of the game
func (c *Controller) ID() model.GameID {
	return c.id
}

// Game returns the underlying game for read-only queries
func (c *Controller) Game() *model.Game {
	return c.game
}

// State returns a snapshot of the current position
func (c *Controller) State() model.GameState {
	state := c.game.State()
	state.ID = c.id
	return state
}

// Play applies a move for the side to move
func (c *Controller) Play(pos model.Position) (*MoveResult, error) {
	if c.game.IsTerminal() {
		return nil, model.ErrGameComplete
	}

	mover := c.game.Turn()
	flipped := c.game.Captures(pos.Col, pos.Row)
	if !c.game.ApplyMove(pos.Col, pos.Row) {
		c.logger.Debug("move rejected",
			slog.String("game_id", string(c.id)),
			slog.String("piece", mover.String()),
			slog.Int("col", pos.Col),
			slog.Int("row", pos.Row),
		)
		return nil, fmt.Errorf("%w at %d, %d", model.ErrIllegalMove, pos.Col, pos.Row)
	}

	result := &MoveResult{
		Piece:    mover,
		Position: pos,
		Flipped:  flipped,
		Complete: c.game.IsTerminal(),
	}

	c.logger.Debug("move applied",
		slog.String("game_id", string(c.id)),
		slog.String("piece", mover.String()),
		slog.Int("col", pos.Col),
		slog.Int("row", pos.Row),
		slog.Int("flipped", len(flipped)),
		slog.Int("move_count", c.game.MoveCount()),
	)

	if result.Complete {
		c.logger.Info("game completed",
			slog.String("game_id", string(c.id)),
			slog.Int("moves", c.game.MoveCount()),
			slog.Int("dark", c.game.CountPieces(model.Dark)),
			slog.Int("light", c.game.CountPieces(model.Light)),
		)
	}

	return result, nil
}

// Summary returns the final result once the side to move has no legal move
func (c *Controller) Summary() (*model.GameSummary, error) {
	if !c.game.IsTerminal() {
		return nil, model.ErrGameInProgress
	}

	summary := c.scoringService.Summarize(c.game)
	summary.ID = c.id
	summary.StartedAt = c.startedAt
	summary.CompletedAt = c.clock.Now()
	return summary, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	ID() model.GameID
	Game() *model.Game
	State() model.GameState
	Play(pos model.Position) (*MoveResult, error)
	Summary() (*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
