package seeder

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegenav/collegenav/backend/internal/college"
)

// fakeSource returns a fixed batch of raw records
type fakeSource struct {
	name    string
	records []college.Raw
	err     error
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Fetch(ctx context.Context) ([]college.Raw, error) {
	return s.records, s.err
}

// fakeRepo is an in-memory college repository keyed by name
type fakeRepo struct {
	colleges map[string]college.College
	cleared  bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{colleges: map[string]college.College{}}
}

func (r *fakeRepo) Upsert(c college.College, policy string) (string, error) {
	if existing, ok := r.colleges[c.Name]; ok {
		if policy != "update" || c.TrustTier > existing.TrustTier {
			return college.OutcomeSkipped, nil
		}
		r.colleges[c.Name] = c
		return college.OutcomeUpdated, nil
	}
	r.colleges[c.Name] = c
	return college.OutcomeInserted, nil
}

func (r *fakeRepo) Clear() error {
	r.colleges = map[string]college.College{}
	r.cleared = true
	return nil
}

func (r *fakeRepo) Count() (int64, error) {
	return int64(len(r.colleges)), nil
}

// fakeRunStore collects audit rows
type fakeRunStore struct {
	runs []SeedRun
}

func (s *fakeRunStore) Record(run SeedRun) error {
	s.runs = append(s.runs, run)
	return nil
}

func curatedRaw(name string) college.Raw {
	return college.Raw{
		Name:    name,
		Country: "US",
		Website: fmt.Sprintf("www.%s.edu", name),
		Source:  "curated",
	}
}

func TestSeederService_Run(t *testing.T) {
	repo := newFakeRepo()
	runs := &fakeRunStore{}
	source := &fakeSource{
		name: "curated-files",
		records: []college.Raw{
			curatedRaw("alpha"),
			curatedRaw("beta"),
			{Name: "", Country: "US"}, // invalid: missing name
		},
	}

	service := NewSeederService(repo, runs, []Source{source}, "skip", "us", newMockLogger())
	report, err := service.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 0, report.Skipped)
	assert.False(t, repo.cleared)

	require.Len(t, runs.runs, 1)
	assert.Equal(t, "curated-files", runs.runs[0].Source)
	assert.Equal(t, 2, runs.runs[0].Inserted)
	assert.Equal(t, "us", runs.runs[0].Region)
}

func TestSeederService_RerunDoesNotDuplicate(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeSource{
		name:    "curated-files",
		records: []college.Raw{curatedRaw("alpha"), curatedRaw("beta")},
	}
	service := NewSeederService(repo, &fakeRunStore{}, []Source{source}, "skip", "", newMockLogger())

	_, err := service.Run(context.Background(), false)
	require.NoError(t, err)

	report, err := service.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Inserted)
	assert.Equal(t, 2, report.Skipped)

	count, _ := repo.Count()
	assert.Equal(t, int64(2), count, "re-seeding must not double the record count")
}

func TestSeederService_BatchDedupe(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeSource{
		name:    "college-api",
		records: []college.Raw{curatedRaw("alpha"), curatedRaw("alpha")},
	}
	service := NewSeederService(repo, &fakeRunStore{}, []Source{source}, "skip", "", newMockLogger())

	report, err := service.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Skipped)
}

func TestSeederService_Fresh(t *testing.T) {
	repo := newFakeRepo()
	repo.colleges["stale"] = college.College{Name: "stale"}

	source := &fakeSource{name: "curated-files", records: []college.Raw{curatedRaw("alpha")}}
	service := NewSeederService(repo, &fakeRunStore{}, []Source{source}, "skip", "", newMockLogger())

	_, err := service.Run(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, repo.cleared)
	_, stale := repo.colleges["stale"]
	assert.False(t, stale, "fresh run must clear pre-existing rows")
}

func TestSeederService_SourceFailureStopsRun(t *testing.T) {
	repo := newFakeRepo()
	failing := &fakeSource{name: "college-api", err: fmt.Errorf("provider returned status 503")}
	later := &fakeSource{name: "curated-files", records: []college.Raw{curatedRaw("alpha")}}
	service := NewSeederService(repo, &fakeRunStore{}, []Source{failing, later}, "skip", "", newMockLogger())

	_, err := service.Run(context.Background(), false)
	require.Error(t, err)

	count, _ := repo.Count()
	assert.Equal(t, int64(0), count, "sources after the failed one must not run")
}

func TestSeederService_PersistsPartialBatchOnSourceFailure(t *testing.T) {
	repo := newFakeRepo()
	runs := &fakeRunStore{}
	// A paginated source that failed mid-run hands back what it fetched
	// before the failure, together with the error.
	partial := &fakeSource{
		name:    "college-api",
		records: []college.Raw{curatedRaw("alpha")},
		err:     fmt.Errorf("provider returned status 429 for page 2"),
	}
	service := NewSeederService(repo, runs, []Source{partial}, "skip", "", newMockLogger())

	report, err := service.Run(context.Background(), false)
	require.Error(t, err)

	assert.Equal(t, 1, report.Inserted, "records fetched before the failure must be persisted")
	count, _ := repo.Count()
	assert.Equal(t, int64(1), count)
	require.Len(t, runs.runs, 1, "the partial run still gets an audit row")

	// The retried run seeds the remainder without duplicating alpha
	retry := &fakeSource{name: "college-api", records: []college.Raw{curatedRaw("alpha"), curatedRaw("beta")}}
	service = NewSeederService(repo, runs, []Source{retry}, "skip", "", newMockLogger())
	report, err = service.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Skipped)
	count, _ = repo.Count()
	assert.Equal(t, int64(2), count)
}
