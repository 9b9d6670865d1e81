package college

import (
	"time"

	"github.com/google/uuid"
)

// Trust tiers order sources by how much review their data received.
// Lower is more trusted.
const (
	TrustTierCurated  = 1 // hand-curated regional files
	TrustTierOfficial = 2 // government dataset rows
	TrustTierUnknown  = 3
)

// College represents one institution in the domain table.
// Name is the natural key; the seeder avoids inserting duplicates.
type College struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"not null;index" json:"name"`
	Country           string    `gorm:"not null" json:"country"`
	Location          string    `json:"location"`
	Type              string    `json:"type"` // public, private, community
	OfficialWebsite   string    `gorm:"column:official_website" json:"official_website"`
	Programs          []string  `gorm:"serializer:json" json:"programs"`
	MajorCategories   []string  `gorm:"serializer:json" json:"major_categories"`
	AcademicStrengths []string  `gorm:"serializer:json" json:"academic_strengths"`
	AcceptanceRate    float64   `json:"acceptance_rate"`
	TuitionCost       int       `json:"tuition_cost"`
	TrustTier         int       `gorm:"not null;default:3" json:"trust_tier"`
	QualityScore      float64   `gorm:"not null;default:0" json:"quality_score"`
	IsVerified        bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for colleges
func (College) TableName() string {
	return "colleges"
}

// Raw is the untyped shape of a record as it arrives from the external
// API or a curated file, before normalization
type Raw struct {
	Name              string   `json:"name"`
	Country           string   `json:"country"`
	Location          string   `json:"location"`
	Type              string   `json:"type"`
	Website           string   `json:"website"`
	Programs          []string `json:"programs"`
	AcademicStrengths []string `json:"academic_strengths"`
	AcceptanceRate    float64  `json:"acceptance_rate"`
	TuitionCost       int      `json:"tuition_cost"`
	// Source marks where the record came from: "curated" or "api"
	Source string `json:"-"`
}
