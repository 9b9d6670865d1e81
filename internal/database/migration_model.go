package database

import "time"

// MigrationRecord tracks which migrations have been executed
type MigrationRecord struct {
	ID         uint      `gorm:"primaryKey"`
	Filename   string    `gorm:"uniqueIndex;not null"` // Migration file name, lexically sortable
	ExecutedAt time.Time `gorm:"not null;default:now()"`
}

// TableName specifies the table name for migration records
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}
