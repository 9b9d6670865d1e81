package errors

import (
	"errors"
	"fmt"
)

// ErrDuplicateMigration is returned when a migration identifier is recorded twice.
// Seeing it means the runner's ordering guarantees were violated upstream.
var ErrDuplicateMigration = errors.New("migration already recorded")

// Error method implementation for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error method implementation for ConnectionError
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Error method implementation for MigrationError
func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %s failed: %v", e.Migration, e.Cause)
}

func (e *MigrationError) Unwrap() error {
	return e.Cause
}

// Error method implementation for DataFileError
func (e *DataFileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *DataFileError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(message string, cause error) *ConnectionError {
	return &ConnectionError{
		Message: message,
		Cause:   cause,
	}
}

// NewMigrationError creates a new MigrationError
func NewMigrationError(migration string, cause error) *MigrationError {
	return &MigrationError{
		Migration: migration,
		Cause:     cause,
	}
}

// NewDataFileError creates a new DataFileError
func NewDataFileError(path, message string, cause error) *DataFileError {
	return &DataFileError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
