package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/othello-go/internal/model"
)

func TestNewWiresServices(t *testing.T) {
	app := New(Config{})

	require.NotNil(t, app.Clock)
	require.NotNil(t, app.IDs)
	require.NotNil(t, app.ScoringService)
	require.NotNil(t, app.Logger)
}

func TestNewGameUsesGeneratedID(t *testing.T) {
	app := New(Config{})

	first, err := app.NewGame(8)
	require.NoError(t, err)
	second, err := app.NewGame(8)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 8, first.Game().Size())
}

func TestNewGameRejectsInvalidSize(t *testing.T) {
	app := NewTestApp()

	_, err := app.NewGame(7)
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestTestAppUsesMocks(t *testing.T) {
	app := NewTestApp()

	controller, err := app.NewGame(4)
	require.NoError(t, err)

	assert.Equal(t, model.GameID("test-game"), controller.ID())
}

func TestTestAppQueuedIDs(t *testing.T) {
	app := NewTestApp()
	app.MockIDs.Queue("second-game")

	first, err := app.NewGame(4)
	require.NoError(t, err)
	second, err := app.NewGame(6)
	require.NoError(t, err)

	assert.Equal(t, model.GameID("test-game"), first.ID())
	assert.Equal(t, model.GameID("second-game"), second.ID())
}
