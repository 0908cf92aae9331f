package villain

import "time"

// Villain is one entry of the hall of hate. Name is the identity: two
// villains never share one (exact, case-sensitive match).
type Villain struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Image     string    `gorm:"not null" json:"image"`
	FrameType string    `gorm:"not null;default:'default'" json:"frameType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Ratings go down with their villain.
	Ratings []Rating `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the table the deployed schema already uses.
func (Villain) TableName() string {
	return "hall_of_hate_v2"
}

// Rating is a single user's score for one villain on the 1-99 scale.
// A (villain, rater) pair holds at most one row; rating again overwrites
// the score and refreshes the timestamp.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VillainID uint      `gorm:"not null;index;uniqueIndex:idx_hof_villain_rater" json:"villainId"`
	Rater     string    `gorm:"not null;uniqueIndex:idx_hof_villain_rater" json:"rater"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 99" json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the table the deployed schema already uses.
func (Rating) TableName() string {
	return "hall_of_hate_v2_ratings"
}
