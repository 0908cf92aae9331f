package wager

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the apuestas table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Wager{}); err != nil {
		return fmt.Errorf("migrate apuestas table: %w", err)
	}
	return nil
}
