package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/collegenav/collegenav/backend/internal/cache"
	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/config"
)

const checkpointKey = "seeder:api:last_page"
const checkpointTTL = 24 * time.Hour

// apiPage is one page of the provider's paginated response
type apiPage struct {
	Results    []college.Raw `json:"results"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// APISource fetches college records from the paginated government data
// provider. A checkpoint of the last completed page is kept in the cache
// so an interrupted bulk fetch resumes instead of restarting; a missing
// or unreachable cache degrades to a fresh fetch.
type APISource struct {
	config config.APIConfig
	client *http.Client
	cache  cache.Service
	logger Logger
}

// NewAPISource creates a new API source
func NewAPISource(cfg config.APIConfig, cacheService cache.Service, logger Logger) *APISource {
	return &APISource{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cacheService,
		logger: logger,
	}
}

// Name implements Source
func (s *APISource) Name() string {
	return "college-api"
}

// Fetch implements Source. On a mid-run failure the records fetched so
// far are returned alongside the error; the checkpoint only ever covers
// pages whose records are in the returned batch, so persisting that
// batch keeps the checkpoint honest and nothing is lost on resume.
func (s *APISource) Fetch(ctx context.Context) ([]college.Raw, error) {
	page := s.loadCheckpoint(ctx) + 1

	var records []college.Raw
	fetched := 0
	for {
		if s.config.MaxPages > 0 && fetched >= s.config.MaxPages {
			break
		}

		result, err := s.fetchPage(ctx, page)
		if err != nil {
			return records, err
		}
		fetched++

		for _, raw := range result.Results {
			raw.Source = "api"
			records = append(records, raw)
		}

		s.saveCheckpoint(ctx, page)
		s.logger.LogDebug("Fetched provider page", map[string]interface{}{
			"page":        page,
			"total_pages": result.TotalPages,
			"records":     len(result.Results),
		})

		if result.TotalPages > 0 && page >= result.TotalPages {
			break
		}
		if len(result.Results) == 0 {
			break
		}
		page++

		// The provider rate-limits aggressive clients
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		case <-time.After(s.config.PageDelay):
		}
	}

	s.clearCheckpoint(ctx)
	s.logger.LogInfo("Fetched provider records", map[string]interface{}{
		"pages":   fetched,
		"records": len(records),
	})
	return records, nil
}

func (s *APISource) fetchPage(ctx context.Context, page int) (*apiPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %v", err)
	}

	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(s.config.PerPage))
	req.URL.RawQuery = q.Encode()
	if s.config.APIKey != "" {
		req.Header.Set("X-Api-Key", s.config.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed for page %d: %v", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d for page %d", resp.StatusCode, page)
	}

	var result apiPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode provider page %d: %v", page, err)
	}
	return &result, nil
}

func (s *APISource) loadCheckpoint(ctx context.Context) int {
	if s.cache == nil {
		return 0
	}
	value, err := s.cache.Get(ctx, checkpointKey)
	if err != nil {
		return 0
	}
	page, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	s.logger.LogInfo("Resuming provider fetch from checkpoint", map[string]interface{}{
		"last_page": page,
	})
	return page
}

func (s *APISource) saveCheckpoint(ctx context.Context, page int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, checkpointKey, strconv.Itoa(page), checkpointTTL); err != nil {
		s.logger.LogDebug("Failed to save fetch checkpoint", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *APISource) clearCheckpoint(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, checkpointKey); err != nil {
		s.logger.LogDebug("Failed to clear fetch checkpoint", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

var _ Source = (*APISource)(nil)
