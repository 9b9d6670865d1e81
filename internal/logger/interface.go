package logger

// Logger defines the logging operations the tooling relies on. Fatal
// and formatted variants are deliberately absent: callers return errors
// up to main instead of logging and dying in place.
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
}
