package migration

import (
	"context"

	"github.com/collegenav/collegenav/backend/internal/logger"
)

// Migration is one named unit of schema/data change, applied at most once.
// Filename is the identifier; lexical order of filenames is the apply order.
type Migration struct {
	Filename   string
	Statements []string
}

// Source lists available migration definitions in apply order
type Source interface {
	List() ([]Migration, error)
}

// RecordStore is the durable log of applied migrations
type RecordStore interface {
	EnsureSchema() error
	ListApplied() ([]string, error)
	RecordApplied(filename string) error
}

// Executor applies one migration's statement batch
type Executor interface {
	Apply(ctx context.Context, m Migration) error
}

// Logger interface for logging operations
type Logger = logger.Logger
