package factory

import (
	"log/slog"
	"time"

	"github.com/mcoot/othello-go/internal/dependencies/mocks"
	"github.com/mcoot/othello-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithLogger(testutil.NopLogger())
}

// NewTestAppWithLogger is NewTestApp with a caller-supplied logger
func NewTestAppWithLogger(logger *slog.Logger) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs("test-game")

	return &TestApp{
		App:       newWithDependencies(mockClock, mockIDs, logger),
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
