package seeder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collegenav/collegenav/backend/internal/college"
	apperrors "github.com/collegenav/collegenav/backend/internal/errors"
)

// SeederService gathers candidate records from its sources, normalizes
// them, and upserts them into the colleges table. Re-running with the
// same inputs does not duplicate natural keys.
type SeederService struct {
	repo    Repository
	runs    RunStore
	sources []Source
	policy  string // duplicate policy: "skip" or "update"
	region  string
	logger  Logger
}

// NewSeederService creates a new seeder service
func NewSeederService(repo Repository, runs RunStore, sources []Source, policy, region string, logger Logger) *SeederService {
	return &SeederService{
		repo:    repo,
		runs:    runs,
		sources: sources,
		policy:  policy,
		region:  region,
		logger:  logger,
	}
}

// Run executes one seeding pass. fresh clears the domain table first;
// callers must opt into that explicitly.
func (s *SeederService) Run(ctx context.Context, fresh bool) (*Report, error) {
	if fresh {
		if err := s.repo.Clear(); err != nil {
			return nil, err
		}
	}

	total := &Report{}
	for _, source := range s.sources {
		startedAt := time.Now()

		// A failed fetch still yields the records gathered before the
		// failure. Persist them before propagating the error, so a
		// source checkpoint that covers those records stays truthful
		// and a resumed run continues instead of losing them.
		records, fetchErr := source.Fetch(ctx)

		report := s.seedRecords(records)
		total.Inserted += report.Inserted
		total.Updated += report.Updated
		total.Skipped += report.Skipped
		total.Invalid += report.Invalid

		run := SeedRun{
			ID:         uuid.New(),
			Source:     source.Name(),
			Region:     s.region,
			Inserted:   report.Inserted,
			Updated:    report.Updated,
			Skipped:    report.Skipped,
			Invalid:    report.Invalid,
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
		}
		if err := s.runs.Record(run); err != nil {
			return total, err
		}

		s.logger.LogInfo("Seeded source", map[string]interface{}{
			"source":   source.Name(),
			"inserted": report.Inserted,
			"updated":  report.Updated,
			"skipped":  report.Skipped,
			"invalid":  report.Invalid,
		})

		if fetchErr != nil {
			return total, fetchErr
		}
	}

	count, err := s.repo.Count()
	if err == nil {
		s.logger.LogInfo("Seeding complete", map[string]interface{}{
			"total_colleges": count,
		})
	}

	return total, nil
}

// seedRecords normalizes and upserts one source's batch. Records that
// fail validation are counted and logged, never inserted.
func (s *SeederService) seedRecords(records []college.Raw) *Report {
	report := &Report{}
	seen := map[string]bool{}

	for _, raw := range records {
		normalized, err := college.Normalize(raw)
		if err != nil {
			var vErr *apperrors.ValidationError
			if errors.As(err, &vErr) {
				report.Invalid++
				s.logger.LogWarn("Dropping invalid record", map[string]interface{}{
					"name":  raw.Name,
					"field": vErr.Field,
					"error": vErr.Message,
				})
				continue
			}
			report.Invalid++
			s.logger.LogError(err, "Dropping record")
			continue
		}

		if reasons := college.SuspicionReasons(raw); len(reasons) > 0 {
			s.logger.LogWarn("Record flagged as suspicious", map[string]interface{}{
				"name":    normalized.Name,
				"reasons": reasons,
			})
		}

		// Dedupe within the batch on the natural key
		if seen[normalized.Name] {
			report.Skipped++
			continue
		}
		seen[normalized.Name] = true

		outcome, err := s.repo.Upsert(normalized, s.policy)
		if err != nil {
			s.logger.LogError(err, "Upsert failed")
			report.Invalid++
			continue
		}
		switch outcome {
		case college.OutcomeInserted:
			report.Inserted++
		case college.OutcomeUpdated:
			report.Updated++
		default:
			report.Skipped++
		}
	}

	return report
}

// GormRunStore persists seed run audit rows with GORM
type GormRunStore struct {
	db *gorm.DB
}

// NewGormRunStore creates a new seed run store
func NewGormRunStore(db *gorm.DB) *GormRunStore {
	return &GormRunStore{db: db}
}

// Record implements RunStore
func (s *GormRunStore) Record(run SeedRun) error {
	return s.db.Create(&run).Error
}

var _ RunStore = (*GormRunStore)(nil)
