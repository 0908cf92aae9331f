package nba

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertTeams refreshes the local team directory. Rows are keyed by the
// league id, so reruns update in place.
func UpsertTeams(db *gorm.DB, teams []Team) error {
	if len(teams) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&teams).Error
	if err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	return nil
}

// UpsertPlayers refreshes the local player directory.
func UpsertPlayers(db *gorm.DB, players []Player) error {
	if len(players) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&players).Error
	if err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}
