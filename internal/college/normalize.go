package college

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/collegenav/collegenav/backend/internal/errors"
)

// categoryKeywords maps program name fragments to major categories
var categoryKeywords = map[string][]string{
	"STEM":              {"engineering", "computer", "mathematics", "physics", "chemistry", "biology", "data science"},
	"Business":          {"business", "finance", "accounting", "economics", "management", "marketing"},
	"Arts & Humanities": {"art", "music", "history", "philosophy", "literature", "design", "languages"},
	"Health":            {"medicine", "nursing", "pharmacy", "public health", "dentistry"},
	"Social Sciences":   {"psychology", "sociology", "political science", "anthropology", "law"},
	"Education":         {"education", "teaching", "pedagogy"},
}

// Normalize converts a raw record into a College. It is pure: validation
// failures surface as ValidationError, nothing is silently coerced.
func Normalize(raw Raw) (College, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return College{}, apperrors.NewValidationError("name", apperrors.ErrMsgNameRequired)
	}

	country := strings.TrimSpace(raw.Country)
	if country == "" {
		return College{}, apperrors.NewValidationError("country", "Country is required")
	}

	website := ""
	if strings.TrimSpace(raw.Website) != "" {
		canonical, err := CanonicalWebsite(raw.Website)
		if err != nil {
			return College{}, apperrors.NewValidationError("website", apperrors.ErrMsgWebsiteInvalid)
		}
		website = canonical
	}

	if raw.AcceptanceRate < 0 || raw.AcceptanceRate > 1 {
		return College{}, apperrors.NewValidationError("acceptance_rate", "Acceptance rate must be between 0 and 1")
	}
	if raw.TuitionCost < 0 {
		return College{}, apperrors.NewValidationError("tuition_cost", "Tuition cost cannot be negative")
	}

	tier := classifyTrustTier(raw.Source)

	return College{
		ID:                uuid.New(),
		Name:              name,
		Country:           country,
		Location:          strings.TrimSpace(raw.Location),
		Type:              strings.ToLower(strings.TrimSpace(raw.Type)),
		OfficialWebsite:   website,
		Programs:          cleanList(raw.Programs),
		MajorCategories:   TagCategories(raw.Programs),
		AcademicStrengths: cleanList(raw.AcademicStrengths),
		AcceptanceRate:    raw.AcceptanceRate,
		TuitionCost:       raw.TuitionCost,
		TrustTier:         tier,
		QualityScore:      QualityScore(raw),
		// A record only counts as verified when it came from a curated
		// file AND nothing about it looks implausible
		IsVerified: tier == TrustTierCurated && len(SuspicionReasons(raw)) == 0,
	}, nil
}

// QualityScore rates a record's data quality on a 0-1 scale from field
// completeness and source reliability. It never rejects a record; it
// gives the application a way to rank or filter thin entries.
func QualityScore(raw Raw) float64 {
	score, max := 0.0, 0.0

	// Essential fields
	for _, present := range []bool{
		strings.TrimSpace(raw.Name) != "",
		strings.TrimSpace(raw.Country) != "",
	} {
		max += 0.3
		if present {
			score += 0.3
		}
	}

	// Supporting fields
	for _, present := range []bool{
		strings.TrimSpace(raw.Website) != "",
		strings.TrimSpace(raw.Location) != "",
		strings.TrimSpace(raw.Type) != "",
		len(raw.Programs) > 0,
		raw.AcceptanceRate > 0,
	} {
		max += 0.1
		if present {
			score += 0.1
		}
	}

	// Source reliability
	max += 0.2
	switch raw.Source {
	case "curated":
		score += 0.2
	case "api":
		score += 0.18
	default:
		if raw.Source != "" {
			score += 0.1
		}
	}

	return score / max
}

// SuspicionReasons flags plausibility problems a record can carry while
// still passing validation. Suspicious records are kept but never
// marked verified, and the seeder logs the reasons.
func SuspicionReasons(raw Raw) []string {
	var reasons []string

	name := strings.TrimSpace(raw.Name)
	if name != "" && len(name) < 3 {
		reasons = append(reasons, "name implausibly short")
	}
	if raw.AcceptanceRate > 0 && raw.AcceptanceRate < 0.005 {
		reasons = append(reasons, fmt.Sprintf("acceptance rate implausibly low: %.4f", raw.AcceptanceRate))
	}
	if raw.TuitionCost > 150000 {
		reasons = append(reasons, fmt.Sprintf("tuition cost implausibly high: %d", raw.TuitionCost))
	}
	if strings.EqualFold(strings.TrimSpace(raw.Type), "private") &&
		raw.TuitionCost == 0 && strings.TrimSpace(raw.Website) == "" {
		reasons = append(reasons, "private institution with neither tuition nor website")
	}

	return reasons
}

// CanonicalWebsite normalizes a website URL to its canonical form:
// https scheme, lowercase host, no default port, no tracking params,
// no fragment, no trailing slash.
func CanonicalWebsite(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperrors.NewValidationError("website", apperrors.ErrMsgWebsiteInvalid)
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return "", apperrors.NewValidationError("website", apperrors.ErrMsgWebsiteInvalid)
	}

	u.Scheme = "https"
	host := strings.ToLower(u.Host)
	host = strings.TrimSuffix(host, ":443")
	host = strings.TrimSuffix(host, ":80")
	u.Host = host
	u.Fragment = ""

	query := u.Query()
	for key := range query {
		if strings.HasPrefix(key, "utm_") || key == "fbclid" || key == "gclid" {
			query.Del(key)
		}
	}
	u.RawQuery = query.Encode()

	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String(), nil
}

// TagCategories derives major categories from a program list
func TagCategories(programs []string) []string {
	var categories []string
	seen := map[string]bool{}
	for category, keywords := range categoryKeywords {
		for _, program := range programs {
			lower := strings.ToLower(program)
			for _, keyword := range keywords {
				if strings.Contains(lower, keyword) && !seen[category] {
					seen[category] = true
					categories = append(categories, category)
				}
			}
		}
	}
	// Stable output independent of map iteration order
	sort.Strings(categories)
	return categories
}

func classifyTrustTier(source string) int {
	switch source {
	case "curated":
		return TrustTierCurated
	case "api":
		return TrustTierOfficial
	default:
		return TrustTierUnknown
	}
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
