package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/othello-go/internal/dependencies/clock"
	"github.com/mcoot/othello-go/internal/dependencies/ids"
	"github.com/mcoot/othello-go/internal/services/game"
	"github.com/mcoot/othello-go/internal/services/scoring"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	ScoringService *scoring.Service

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return newWithDependencies(clock.New(), ids.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, idGen ids.Generator, logger *slog.Logger) *App {
	return &App{
		Clock:          clk,
		IDs:            idGen,
		ScoringService: scoring.New(),
		Logger:         logger,
	}
}

// NewGame starts a game of the given size with its own controller
func (a *App) NewGame(size int) (*game.Controller, error) {
	return game.NewController(size, a.IDs, a.ScoringService, a.Clock, a.Logger)
}
