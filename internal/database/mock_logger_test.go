package database

import (
	"sync"
)

// mockLogEntry represents a log entry with its message and fields
type mockLogEntry struct {
	Message string
	Fields  map[string]interface{}
}

// mockLogger provides a logger implementation for testing
type mockLogger struct {
	mu            sync.RWMutex
	infoMessages  []mockLogEntry
	errorMessages []mockLogEntry
	warnMessages  []mockLogEntry
	debugMessages []mockLogEntry
}

// newMockLogger creates a new mock logger instance
func newMockLogger() *mockLogger {
	return &mockLogger{}
}

func (m *mockLogger) LogInfo(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMessages = append(m.infoMessages, mockLogEntry{Message: msg, Fields: fields})
}

func (m *mockLogger) LogError(err error, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	m.errorMessages = append(m.errorMessages, mockLogEntry{Message: msg, Fields: fields})
	return err
}

func (m *mockLogger) LogWarn(message string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, mockLogEntry{Message: message, Fields: fields})
}

func (m *mockLogger) LogDebug(message string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debugMessages = append(m.debugMessages, mockLogEntry{Message: message, Fields: fields})
}

func (m *mockLogger) GetInfoMessages() []mockLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]mockLogEntry(nil), m.infoMessages...)
}

func (m *mockLogger) GetErrorMessages() []mockLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]mockLogEntry(nil), m.errorMessages...)
}

func (m *mockLogger) GetWarnMessages() []mockLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]mockLogEntry(nil), m.warnMessages...)
}

func (m *mockLogger) GetDebugMessages() []mockLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]mockLogEntry(nil), m.debugMessages...)
}

func (m *mockLogger) ClearMessages() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMessages = nil
	m.errorMessages = nil
	m.warnMessages = nil
	m.debugMessages = nil
}
