package college

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collegenav/collegenav/backend/internal/logger"
)

// Upsert outcomes
const (
	OutcomeInserted = "inserted"
	OutcomeUpdated  = "updated"
	OutcomeSkipped  = "skipped"
)

// Repository persists colleges, guarding the natural-key invariant:
// no two rows share a name.
type Repository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewRepository creates a new college repository
func NewRepository(db *gorm.DB, logger logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// FindByName returns the college with the given name, or nil if absent
func (r *Repository) FindByName(name string) (*College, error) {
	var c College
	err := r.db.Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up college %q: %v", name, err)
	}
	return &c, nil
}

// Upsert inserts a college, or resolves a name collision according to
// the duplicate policy ("skip" or "update"). Returns the outcome.
func (r *Repository) Upsert(c College, policy string) (string, error) {
	existing, err := r.FindByName(c.Name)
	if err != nil {
		return "", err
	}

	if existing == nil {
		if err := r.db.Create(&c).Error; err != nil {
			return "", fmt.Errorf("failed to insert college %q: %v", c.Name, err)
		}
		return OutcomeInserted, nil
	}

	if policy != "update" {
		return OutcomeSkipped, nil
	}

	// Never let a lower-trust source overwrite higher-trust data
	if c.TrustTier > existing.TrustTier {
		r.logger.LogDebug("Skipping update from lower-trust source", map[string]interface{}{
			"name":          c.Name,
			"existing_tier": existing.TrustTier,
			"incoming_tier": c.TrustTier,
		})
		return OutcomeSkipped, nil
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := r.db.Model(&College{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"country":            c.Country,
		"location":           c.Location,
		"type":               c.Type,
		"official_website":   c.OfficialWebsite,
		"programs":           c.Programs,
		"major_categories":   c.MajorCategories,
		"academic_strengths": c.AcademicStrengths,
		"acceptance_rate":    c.AcceptanceRate,
		"tuition_cost":       c.TuitionCost,
		"trust_tier":         c.TrustTier,
		"quality_score":      c.QualityScore,
		"is_verified":        c.IsVerified,
	}).Error; err != nil {
		return "", fmt.Errorf("failed to update college %q: %v", c.Name, err)
	}
	return OutcomeUpdated, nil
}

// UpdateWebsite sets the canonical website for one college
func (r *Repository) UpdateWebsite(id uuid.UUID, website string) error {
	return r.db.Model(&College{}).Where("id = ?", id).Update("official_website", website).Error
}

// All returns every college, ordered by name
func (r *Repository) All() ([]College, error) {
	var colleges []College
	if err := r.db.Order("name").Find(&colleges).Error; err != nil {
		return nil, fmt.Errorf("failed to list colleges: %v", err)
	}
	return colleges, nil
}

// Count returns the number of colleges
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&College{}).Count(&count).Error
	return count, err
}

// Clear deletes every college row. Destructive; only the seeder's
// explicit fresh mode calls this.
func (r *Repository) Clear() error {
	if err := r.db.Exec("DELETE FROM colleges").Error; err != nil {
		return fmt.Errorf("failed to clear colleges table: %v", err)
	}
	r.logger.LogWarn("Cleared colleges table", nil)
	return nil
}
