package integrity

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/database"
	"github.com/collegenav/collegenav/backend/internal/seeder"
)

// Capability shapes each module is expected to implement, verified at
// compile time instead of by runtime introspection.
type collegeStore interface {
	Upsert(c college.College, policy string) (string, error)
	FindByName(name string) (*college.College, error)
	Count() (int64, error)
}

type migrationLog interface {
	EnsureSchema() error
	ListApplied() ([]string, error)
	RecordApplied(filename string) error
}

var (
	_ collegeStore = (*college.Repository)(nil)
	_ migrationLog = (*database.RecordStore)(nil)
)

// collegeColumns are the columns the web application reads; the checker
// fails if any is missing from the live schema
var collegeColumns = []string{
	"name",
	"country",
	"location",
	"type",
	"official_website",
	"programs",
	"major_categories",
	"academic_strengths",
	"acceptance_rate",
	"tuition_cost",
	"trust_tier",
	"quality_score",
	"is_verified",
}

// SchemaChecks verifies the record, domain, and audit tables exist with
// the columns the application depends on
func SchemaChecks(db *gorm.DB) []Check {
	checks := []Check{
		tableCheck(db, "table schema_migrations", &database.MigrationRecord{}),
		tableCheck(db, "table colleges", &college.College{}),
		tableCheck(db, "table seed_runs", &seeder.SeedRun{}),
	}

	for _, column := range collegeColumns {
		column := column
		checks = append(checks, Check{
			Name: "column colleges." + column,
			Run: func(ctx context.Context) error {
				if !db.Migrator().HasColumn(&college.College{}, column) {
					return fmt.Errorf("column %s missing from colleges", column)
				}
				return nil
			},
		})
	}

	// Advisory: an empty domain table usually means seeding never ran
	checks = append(checks, Check{
		Name: "colleges populated",
		Warn: true,
		Run: func(ctx context.Context) error {
			var count int64
			if err := db.Model(&college.College{}).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("colleges table is empty")
			}
			return nil
		},
	})

	return checks
}

func tableCheck(db *gorm.DB, name string, model interface{}) Check {
	return Check{
		Name: name,
		Run: func(ctx context.Context) error {
			if !db.Migrator().HasTable(model) {
				return fmt.Errorf("%s does not exist", name)
			}
			return nil
		},
	}
}

// MigrationChecks verifies the migration directory is present, non-empty,
// and that filenames sort in their intended order
func MigrationChecks(dir string) []Check {
	return []Check{
		{
			Name: "migrations directory",
			Run: func(ctx context.Context) error {
				entries, err := os.ReadDir(dir)
				if err != nil {
					return fmt.Errorf("cannot read %s: %v", dir, err)
				}
				count := 0
				for _, entry := range entries {
					if strings.HasSuffix(entry.Name(), ".sql") {
						count++
					}
				}
				if count == 0 {
					return fmt.Errorf("no .sql migrations in %s", dir)
				}
				return nil
			},
		},
		{
			Name: "migration filenames ordered",
			Run: func(ctx context.Context) error {
				entries, err := os.ReadDir(dir)
				if err != nil {
					return fmt.Errorf("cannot read %s: %v", dir, err)
				}
				for _, entry := range entries {
					name := entry.Name()
					if !strings.HasSuffix(name, ".sql") {
						continue
					}
					if len(name) < 5 || !isDigits(name[:4]) {
						return fmt.Errorf("migration %s lacks a zero-padded numeric prefix", name)
					}
				}
				return nil
			},
		},
	}
}

// DataFileChecks verifies every curated data file exists and has the
// expected shape
func DataFileChecks(dir string) []Check {
	checks := []Check{
		{
			Name: "curated data directory",
			Run: func(ctx context.Context) error {
				info, err := os.Stat(dir)
				if err != nil {
					return fmt.Errorf("cannot stat %s: %v", dir, err)
				}
				if !info.IsDir() {
					return fmt.Errorf("%s is not a directory", dir)
				}
				return nil
			},
		},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// The directory check above reports the underlying problem
		return checks
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		checks = append(checks, Check{
			Name: "data file " + entry.Name(),
			Run: func(ctx context.Context) error {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("cannot read %s: %v", path, err)
				}
				var file struct {
					Colleges map[string]json.RawMessage `json:"colleges"`
				}
				if err := json.Unmarshal(content, &file); err != nil {
					return fmt.Errorf("cannot decode %s: %v", path, err)
				}
				if len(file.Colleges) == 0 {
					return fmt.Errorf("%s has no colleges field or it is empty", path)
				}
				return nil
			},
		})
	}

	return checks
}

// CapabilityChecks verifies each registered capability is reachable
func CapabilityChecks(descriptors []Descriptor) []Check {
	var checks []Check
	for _, d := range descriptors {
		d := d
		checks = append(checks, Check{
			Name: "capability " + d.Name,
			Run: func(ctx context.Context) error {
				return d.Probe(ctx)
			},
		})
	}
	return checks
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
