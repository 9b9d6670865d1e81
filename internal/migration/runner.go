package migration

import (
	"context"
	"fmt"
)

// Runner orchestrates the migration source, record store, and executor.
// Migrations are applied in strict lexical filename order, each at most
// once, and each is durably recorded before the next one starts. The
// first failure halts the run; a later invocation resumes at the first
// unapplied migration.
type Runner struct {
	source Source
	store  RecordStore
	exec   Executor
	logger Logger
}

// Summary reports the outcome of one runner invocation
type Summary struct {
	Applied []string
	Skipped int
}

// NewRunner creates a new migration runner
func NewRunner(source Source, store RecordStore, exec Executor, logger Logger) *Runner {
	return &Runner{
		source: source,
		store:  store,
		exec:   exec,
		logger: logger,
	}
}

// Run applies all pending migrations in order
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if err := r.store.EnsureSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize migration tracking: %v", err)
	}

	migrations, err := r.source.List()
	if err != nil {
		return nil, err
	}

	appliedList, err := r.store.ListApplied()
	if err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(appliedList))
	for _, filename := range appliedList {
		applied[filename] = true
	}

	summary := &Summary{}
	for _, m := range migrations {
		if applied[m.Filename] {
			summary.Skipped++
			r.logger.LogDebug("Migration already applied", map[string]interface{}{
				"migration": m.Filename,
			})
			continue
		}

		r.logger.LogInfo("Running migration", map[string]interface{}{
			"migration":  m.Filename,
			"statements": len(m.Statements),
		})

		if err := r.exec.Apply(ctx, m); err != nil {
			// Fatal to the run: the failed migration stays unrecorded and
			// nothing after it is attempted.
			return summary, err
		}

		if err := r.store.RecordApplied(m.Filename); err != nil {
			return summary, err
		}
		summary.Applied = append(summary.Applied, m.Filename)
	}

	if len(summary.Applied) == 0 {
		r.logger.LogInfo("No pending migrations", map[string]interface{}{
			"already_applied": summary.Skipped,
		})
	} else {
		r.logger.LogInfo("Migrations applied", map[string]interface{}{
			"count":           len(summary.Applied),
			"already_applied": summary.Skipped,
		})
	}

	return summary, nil
}
