package testhelper

import (
	"sync"
)

// LogEntry represents a log entry with its message and fields
type LogEntry struct {
	Message string
	Fields  map[string]interface{}
}

// TestLogger provides a logger.Logger implementation that records
// entries for assertions in tests
type TestLogger struct {
	mu            sync.RWMutex
	infoMessages  []LogEntry
	errorMessages []LogEntry
	warnMessages  []LogEntry
	debugMessages []LogEntry
}

// NewTestLogger creates a new test logger instance
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

// LogInfo implements logger.Logger
func (t *TestLogger) LogInfo(msg string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.infoMessages = append(t.infoMessages, LogEntry{Message: msg, Fields: fields})
}

// LogError implements logger.Logger
func (t *TestLogger) LogError(err error, msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.errorMessages = append(t.errorMessages, LogEntry{Message: msg, Fields: fields})
	return err
}

// LogWarn implements logger.Logger
func (t *TestLogger) LogWarn(message string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.warnMessages = append(t.warnMessages, LogEntry{Message: message, Fields: fields})
}

// LogDebug implements logger.Logger
func (t *TestLogger) LogDebug(message string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.debugMessages = append(t.debugMessages, LogEntry{Message: message, Fields: fields})
}

// InfoMessages returns a copy of the recorded info entries
func (t *TestLogger) InfoMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.infoMessages...)
}

// ErrorMessages returns a copy of the recorded error entries
func (t *TestLogger) ErrorMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.errorMessages...)
}

// WarnMessages returns a copy of the recorded warn entries
func (t *TestLogger) WarnMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.warnMessages...)
}

// DebugMessages returns a copy of the recorded debug entries
func (t *TestLogger) DebugMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.debugMessages...)
}

// Clear drops all recorded entries
func (t *TestLogger) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.infoMessages = nil
	t.errorMessages = nil
	t.warnMessages = nil
	t.debugMessages = nil
}
