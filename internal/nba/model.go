package nba

// Team is one franchise in the local directory, keyed by the league's
// own team id. The seeder refreshes it from the standings.
type Team struct {
	ID         uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	City       string `json:"city"`
	Name       string `gorm:"not null" json:"name"`
	Conference string `json:"conference"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
}

func (Team) TableName() string {
	return "nba_teams"
}

// Player is one league player, keyed by the league's person id.
type Player struct {
	ID     uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name   string `gorm:"not null;index" json:"name"`
	TeamID uint   `gorm:"index" json:"teamId"`
	Team   string `json:"team"`
}

func (Player) TableName() string {
	return "nba_players"
}
