package mocks

import (
	"github.com/mcoot/othello-go/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// Results is a queue of results to return from NewID
	Results []string
	index   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs returning the given values in order
func NewMockIDs(values ...string) *MockIDs {
	return &MockIDs{Results: values}
}

// NewID returns the next queued result, or empty string if none remaining
func (m *MockIDs) NewID() string {
	if m.index >= len(m.Results) {
		return ""
	}
	result := m.Results[m.index]
	m.index++
	return result
}

// Queue adds values to the result queue
func (m *MockIDs) Queue(values ...string) {
	m.Results = append(m.Results, values...)
}
