package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/logger"
)

// Source produces candidate domain records from one origin
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]college.Raw, error)
}

// Repository is the subset of the college repository the seeder uses
type Repository interface {
	Upsert(c college.College, policy string) (string, error)
	Clear() error
	Count() (int64, error)
}

// RunStore records seed run audit rows
type RunStore interface {
	Record(run SeedRun) error
}

// SeedRun is the audit row written for every seeder invocation, one per
// source. Append-only, like the migration record store.
type SeedRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source     string    `gorm:"not null"`
	Region     string
	Inserted   int
	Updated    int
	Skipped    int
	Invalid    int
	StartedAt  time.Time `gorm:"not null"`
	FinishedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for seed runs
func (SeedRun) TableName() string {
	return "seed_runs"
}

// Report aggregates the outcome of one seeder invocation
type Report struct {
	Inserted int
	Updated  int
	Skipped  int
	Invalid  int
}

// Logger interface for logging operations
type Logger = logger.Logger
