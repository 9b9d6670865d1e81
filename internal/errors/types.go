package errors

// ValidationError represents a normalization/validation failure for a single field
type ValidationError struct {
	Field   string
	Message string
}

// ConnectionError represents a failure to open or reach the storage layer
type ConnectionError struct {
	Message string
	Cause   error
}

// MigrationError represents a failed migration statement batch
type MigrationError struct {
	Migration string
	Cause     error
}

// DataFileError represents a missing or malformed curated data file
type DataFileError struct {
	Path    string
	Message string
	Cause   error
}
