package integrity

// mockLogger provides a logger implementation for testing
type mockLogger struct {
	infoMessages  []string
	warnMessages  []string
	errorMessages []string
	debugMessages []string
}

func newMockLogger() *mockLogger {
	return &mockLogger{}
}

func (m *mockLogger) LogInfo(msg string, fields map[string]interface{}) {
	m.infoMessages = append(m.infoMessages, msg)
}

func (m *mockLogger) LogError(err error, msg string) error {
	m.errorMessages = append(m.errorMessages, msg)
	return err
}

func (m *mockLogger) LogWarn(message string, fields map[string]interface{}) {
	m.warnMessages = append(m.warnMessages, message)
}

func (m *mockLogger) LogDebug(message string, fields map[string]interface{}) {
	m.debugMessages = append(m.debugMessages, message)
}
