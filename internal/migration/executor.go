package migration

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/collegenav/collegenav/backend/internal/errors"
)

// GormExecutor applies migrations against a GORM database handle.
// The whole statement batch of a file runs inside one transaction, so a
// failed migration leaves no partial schema change behind.
type GormExecutor struct {
	db     *gorm.DB
	logger Logger
}

// NewGormExecutor creates a new migration executor
func NewGormExecutor(db *gorm.DB, logger Logger) *GormExecutor {
	return &GormExecutor{
		db:     db,
		logger: logger,
	}
}

// Apply executes the full statement batch for one migration
func (e *GormExecutor) Apply(ctx context.Context, m Migration) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range m.Statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewMigrationError(m.Filename, err)
	}
	return nil
}
