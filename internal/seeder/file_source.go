package seeder

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/collegenav/collegenav/backend/internal/college"
	apperrors "github.com/collegenav/collegenav/backend/internal/errors"
)

// curatedFile is the shape of a per-region curated data file: records
// keyed by slug under a top-level "colleges" field.
type curatedFile struct {
	Region   string                 `json:"region"`
	Colleges map[string]college.Raw `json:"colleges"`
}

// FileSource loads curated college records from per-region JSON files.
// A malformed file is reported and skipped; it never aborts siblings.
type FileSource struct {
	dir    string
	region string // optional filter; empty means all regions
	logger Logger
}

// NewFileSource creates a new curated file source
func NewFileSource(dir, region string, logger Logger) *FileSource {
	return &FileSource{
		dir:    dir,
		region: region,
		logger: logger,
	}
}

// Name implements Source
func (s *FileSource) Name() string {
	return "curated-files"
}

// Fetch implements Source
func (s *FileSource) Fetch(ctx context.Context) ([]college.Raw, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, apperrors.NewDataFileError(s.dir, apperrors.ErrMsgFileNotFound, err)
	}

	var records []college.Raw
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		region := strings.TrimSuffix(entry.Name(), ".json")
		if s.region != "" && region != s.region {
			continue
		}

		fileRecords, err := s.loadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			// Per-file failure; siblings still load
			s.logger.LogError(err, "Skipping curated file")
			continue
		}
		records = append(records, fileRecords...)
	}

	s.logger.LogInfo("Loaded curated records", map[string]interface{}{
		"dir":     s.dir,
		"region":  s.region,
		"records": len(records),
	})
	return records, nil
}

func (s *FileSource) loadFile(path string) ([]college.Raw, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewDataFileError(path, apperrors.ErrMsgFileNotFound, err)
	}

	var file curatedFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, apperrors.NewDataFileError(path, apperrors.ErrMsgFileMalformed, err)
	}
	if len(file.Colleges) == 0 {
		return nil, apperrors.NewDataFileError(path, apperrors.ErrMsgFileEmpty, nil)
	}

	// Deterministic order regardless of map iteration
	slugs := make([]string, 0, len(file.Colleges))
	for slug := range file.Colleges {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	records := make([]college.Raw, 0, len(slugs))
	for _, slug := range slugs {
		raw := file.Colleges[slug]
		if raw.Name == "" {
			raw.Name = slugToName(slug)
		}
		raw.Source = "curated"
		records = append(records, raw)
	}
	return records, nil
}

// slugToName turns a file slug like "example-state-university" into a
// display name when the record omits one
func slugToName(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "_", "-"), "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

var _ Source = (*FileSource)(nil)
