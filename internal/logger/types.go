package logger

// Level represents the logging level
type Level string

const (
	// Log levels
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
	FatalLevel Level = "fatal"
)

// Config holds the logger configuration
type Config struct {
	// Log level configuration
	Level Level `mapstructure:"level" yaml:"level"`

	// Output format (json or console)
	Format string `mapstructure:"format" yaml:"format"`

	// Output destination (stdout or file path)
	Output string `mapstructure:"output" yaml:"output"`

	// Development mode flag
	Development bool `mapstructure:"development" yaml:"development"`

	// File output configuration
	File struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Path    string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"file" yaml:"file"`
}
