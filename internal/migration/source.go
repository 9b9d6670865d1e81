package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const migrationSuffix = ".sql"

// FileSource reads migration definitions from a directory of SQL files.
// Filenames must be zero-padded so lexical order equals intended order,
// e.g. 0001_create_colleges.sql.
type FileSource struct {
	dir string
}

// NewFileSource creates a new file-based migration source
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// List returns all migration definitions in the directory, sorted by filename
func (s *FileSource) List() ([]Migration, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory %s: %v", s.dir, err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), migrationSuffix) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Filename:   entry.Name(),
			Statements: splitStatements(string(content)),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Filename < migrations[j].Filename
	})

	return migrations, nil
}

// splitStatements splits a migration file into individual statements.
// Statements are separated by semicolons; line comments are dropped.
// Migration files must not embed semicolons inside string literals.
func splitStatements(content string) []string {
	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	var statements []string
	for _, raw := range strings.Split(sb.String(), ";") {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}
