package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/collegenav/collegenav/backend/internal/errors"
)

// RecordStore tracks applied migrations in the schema_migrations table.
// Records are append-only; nothing ever updates or deletes a row.
type RecordStore struct {
	db     *gorm.DB
	logger Logger
}

// NewRecordStore creates a new migration record store
func NewRecordStore(db *gorm.DB, logger Logger) *RecordStore {
	return &RecordStore{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the migration tracking table if it does not exist.
// Safe to call on every run.
func (s *RecordStore) EnsureSchema() error {
	if s.db.Migrator().HasTable(&MigrationRecord{}) {
		return nil
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
	id SERIAL PRIMARY KEY,
	filename TEXT NOT NULL,
	executed_at TIMESTAMP NOT NULL DEFAULT now()
	)`
	if err := s.db.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %v", err)
	}

	createIndexSQL := `CREATE UNIQUE INDEX IF NOT EXISTS idx_schema_migrations_filename ON schema_migrations(filename)`
	if err := s.db.Exec(createIndexSQL).Error; err != nil {
		return fmt.Errorf("failed to create index on schema_migrations: %v", err)
	}

	s.logger.LogInfo("Initialized migration tracking table", nil)
	return nil
}

// ListApplied returns the filenames of all applied migrations, ordered by filename
func (s *RecordStore) ListApplied() ([]string, error) {
	var filenames []string
	err := s.db.Model(&MigrationRecord{}).Order("filename").Pluck("filename", &filenames).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applied migrations: %v", err)
	}
	return filenames, nil
}

// RecordApplied records a successfully applied migration. Returns
// ErrDuplicateMigration if the filename was already recorded.
func (s *RecordStore) RecordApplied(filename string) error {
	record := MigrationRecord{
		Filename:   filename,
		ExecutedAt: time.Now(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%s: %w", filename, apperrors.ErrDuplicateMigration)
		}
		return fmt.Errorf("failed to record migration %s: %v", filename, err)
	}
	return nil
}
