package wager

import "time"

// Wager is one entry of the shared betting ledger. Up to three bettors
// put a stake on the same claim; Winner and Loser are free-text and get
// filled in whenever the group settles. A locked wager is frozen: the
// terms cannot be edited anymore.
type Wager struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Category    string    `json:"category"`
	Kind        string    `gorm:"column:type" json:"type"`
	Multiplier  float64   `gorm:"not null;default:1" json:"multiplier"`
	Bettor1     string    `json:"bettor1"`
	Bettor2     string    `json:"bettor2"`
	Bettor3     string    `json:"bettor3"`
	Stake1      string    `json:"stake1"`
	Stake2      string    `json:"stake2"`
	Stake3      string    `json:"stake3"`
	Winner      string    `json:"winner"`
	Loser       string    `json:"loser"`
	Locked      bool      `gorm:"not null;default:false" json:"locked"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName keeps the name the group has used since the first spreadsheet.
func (Wager) TableName() string {
	return "apuestas"
}
