package handler

import "doc-summarizer/internal/domain"

// MockHandlerLogger is a no-op logger used by handler tests.
type MockHandlerLogger struct{}

// NewMockHandlerLogger creates a logger that discards everything.
func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (m *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (m *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (m *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (m *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}
