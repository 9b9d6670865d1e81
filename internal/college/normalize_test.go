package college

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/collegenav/collegenav/backend/internal/errors"
)

func TestCanonicalWebsite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Bare Domain", "www.mit.edu", "https://www.mit.edu"},
		{"HTTP Upgraded", "http://www.stanford.edu/", "https://www.stanford.edu"},
		{"Uppercase Host", "HTTPS://WWW.OX.AC.UK/admissions/", "https://www.ox.ac.uk/admissions"},
		{"Default Port Stripped", "https://www.ethz.ch:443", "https://www.ethz.ch"},
		{"Tracking Params Stripped", "https://www.ubc.ca/?utm_source=mail&utm_campaign=x&page=2", "https://www.ubc.ca?page=2"},
		{"Fragment Stripped", "https://www.unimelb.edu.au/study#fees", "https://www.unimelb.edu.au/study"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalWebsite(tt.input)
			if err != nil {
				t.Fatalf("CanonicalWebsite(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("CanonicalWebsite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalWebsite_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "https://"} {
		if _, err := CanonicalWebsite(input); err == nil {
			t.Errorf("Expected error for input %q", input)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := Raw{
		Name:              "  Example State University ",
		Country:           "US",
		Location:          "Springfield, IL",
		Type:              "Public",
		Website:           "http://www.example-state.edu/",
		Programs:          []string{"Computer Science", "Nursing", " Finance "},
		AcademicStrengths: []string{"Research"},
		AcceptanceRate:    0.62,
		TuitionCost:       24000,
		Source:            "curated",
	}

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if c.Name != "Example State University" {
		t.Errorf("Expected trimmed name, got %q", c.Name)
	}
	if c.Type != "public" {
		t.Errorf("Expected lowercased type, got %q", c.Type)
	}
	if c.OfficialWebsite != "https://www.example-state.edu" {
		t.Errorf("Expected canonical website, got %q", c.OfficialWebsite)
	}
	if c.TrustTier != TrustTierCurated {
		t.Errorf("Expected curated trust tier, got %d", c.TrustTier)
	}
	if !c.IsVerified {
		t.Error("Expected curated record to be verified")
	}
	wantCategories := []string{"Business", "Health", "STEM"}
	if !reflect.DeepEqual(c.MajorCategories, wantCategories) {
		t.Errorf("Expected categories %v, got %v", wantCategories, c.MajorCategories)
	}
	if c.ID == uuid.Nil {
		t.Error("Expected a generated ID")
	}
}

func TestNormalize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
	}{
		{"Missing Name", Raw{Country: "US"}},
		{"Missing Country", Raw{Name: "Example"}},
		{"Bad Website", Raw{Name: "Example", Country: "US", Website: "://broken"}},
		{"Acceptance Rate Out Of Range", Raw{Name: "Example", Country: "US", AcceptanceRate: 62.0}},
		{"Negative Tuition", Raw{Name: "Example", Country: "US", TuitionCost: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var vErr *apperrors.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("Expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestNormalize_APITrustTier(t *testing.T) {
	c, err := Normalize(Raw{Name: "Example", Country: "US", Source: "api"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if c.TrustTier != TrustTierOfficial {
		t.Errorf("Expected official trust tier, got %d", c.TrustTier)
	}
	if c.IsVerified {
		t.Error("Expected API record to be unverified")
	}
}

func TestQualityScore(t *testing.T) {
	complete := Raw{
		Name:           "Example State University",
		Country:        "US",
		Location:       "Springfield, IL",
		Type:           "public",
		Website:        "https://www.example-state.edu",
		Programs:       []string{"Computer Science"},
		AcceptanceRate: 0.62,
		Source:         "curated",
	}
	sparse := Raw{Name: "Example", Country: "US"}

	completeScore := QualityScore(complete)
	sparseScore := QualityScore(sparse)

	if completeScore <= sparseScore {
		t.Errorf("Expected complete record to score higher: %.2f vs %.2f", completeScore, sparseScore)
	}
	if completeScore != 1.0 {
		t.Errorf("Expected fully populated curated record to score 1.0, got %.2f", completeScore)
	}
	if sparseScore < 0 || sparseScore > 1 {
		t.Errorf("Expected score in [0,1], got %.2f", sparseScore)
	}

	api := complete
	api.Source = "api"
	if QualityScore(api) >= completeScore {
		t.Error("Expected curated source to outscore the bulk API source")
	}
}

func TestSuspicionReasons(t *testing.T) {
	clean := Raw{
		Name:           "Example State University",
		Country:        "US",
		Type:           "private",
		Website:        "https://www.example-state.edu",
		AcceptanceRate: 0.33,
		TuitionCost:    0, // tuition-free private colleges exist
	}
	if reasons := SuspicionReasons(clean); len(reasons) != 0 {
		t.Errorf("Expected clean record, got reasons %v", reasons)
	}

	tests := []struct {
		name string
		raw  Raw
	}{
		{"Implausible Tuition", Raw{Name: "Example", Country: "US", TuitionCost: 900000}},
		{"Implausible Acceptance Rate", Raw{Name: "Example", Country: "US", AcceptanceRate: 0.0001}},
		{"Name Too Short", Raw{Name: "X", Country: "US"}},
		{"Private Without Tuition Or Website", Raw{Name: "Example", Country: "US", Type: "private"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if reasons := SuspicionReasons(tt.raw); len(reasons) == 0 {
				t.Error("Expected the record to be flagged")
			}
		})
	}
}

func TestNormalize_SuspiciousCuratedRecordNotVerified(t *testing.T) {
	c, err := Normalize(Raw{
		Name:        "Example State University",
		Country:     "US",
		TuitionCost: 900000,
		Source:      "curated",
	})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if c.TrustTier != TrustTierCurated {
		t.Errorf("Expected curated trust tier, got %d", c.TrustTier)
	}
	if c.IsVerified {
		t.Error("Expected suspicious record to stay unverified")
	}
	if c.QualityScore <= 0 {
		t.Errorf("Expected a positive quality score, got %.2f", c.QualityScore)
	}
}

func TestTagCategories_NoMatch(t *testing.T) {
	if got := TagCategories([]string{"Culinary Arts of Noodles"}); len(got) != 1 {
		// "art" keyword matches Culinary Arts; verify it maps to the humanities bucket
		t.Errorf("Expected a single category, got %v", got)
	}
	if got := TagCategories(nil); len(got) != 0 {
		t.Errorf("Expected no categories for empty programs, got %v", got)
	}
}
