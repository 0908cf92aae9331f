package nba

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the NBA directory tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Team{}, &Player{}); err != nil {
		return fmt.Errorf("migrate nba tables: %w", err)
	}
	return nil
}
