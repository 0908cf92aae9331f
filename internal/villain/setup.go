package villain

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the hall-of-hate tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Villain{}, &Rating{}); err != nil {
		return fmt.Errorf("migrate hall of hate tables: %w", err)
	}
	return nil
}
