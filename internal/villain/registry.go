package villain

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/21javi21/corderos-app/internal/frame"
)

// Score bounds of a rating, inclusive.
const (
	MinScore = 1
	MaxScore = 99
)

// Registry owns every read and write of villains and their ratings.
// Each mutation runs inside a single transaction so a failed step never
// leaves partial rows behind.
type Registry struct {
	db *gorm.DB
}

// NewRegistry wraps the given database handle.
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Create registers a new villain. An empty frameType falls back to the
// default frame. Returns ErrDuplicateName when the name is taken.
func (r *Registry) Create(name, image, frameType string) (*Villain, error) {
	if frameType == "" {
		frameType = frame.DefaultName
	}
	v := &Villain{Name: name, Image: image, FrameType: frameType}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}
		if err := tx.Create(v).Error; err != nil {
			// The unique index catches the race the pre-check cannot.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateName
			}
			return fmt.Errorf("create villain: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns one villain by id.
func (r *Registry) Get(id uint) (*Villain, error) {
	var v Villain
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get villain: %w", err)
	}
	return &v, nil
}

// Update replaces a villain's name, image and frame. Renaming onto an
// existing villain fails with ErrDuplicateName; ratings are untouched.
func (r *Registry) Update(id uint, name, image, frameType string) (*Villain, error) {
	if frameType == "" {
		frameType = frame.DefaultName
	}
	var v Villain
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if name != v.Name {
			taken, err := nameTaken(tx, name, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateName
			}
		}
		v.Name = name
		v.Image = image
		v.FrameType = frameType
		if err := tx.Save(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateName
			}
			return fmt.Errorf("update villain: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete removes a villain and all of its ratings. The ratings are
// deleted explicitly so no store is left with orphans even when the
// foreign key cascade is not enforced.
func (r *Registry) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("villain_id = ?", id).Delete(&Rating{}).Error; err != nil {
			return fmt.Errorf("delete ratings: %w", err)
		}
		res := tx.Delete(&Villain{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete villain: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Rate records rater's score for a villain. A second rating by the same
// rater overwrites the first and refreshes its timestamp, so every
// (villain, rater) pair keeps exactly one row.
func (r *Registry) Rate(villainID uint, rater string, score int) (*Rating, error) {
	if score < MinScore || score > MaxScore {
		return nil, ErrInvalidScore
	}
	rating := &Rating{VillainID: villainID, Rater: rater, Score: score}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Villain{}).Where("id = ?", villainID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "villain_id"}, {Name: "rater"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "created_at"}),
		}).Create(rating).Error
		if err != nil {
			return fmt.Errorf("upsert rating: %w", err)
		}
		// Re-read into a fresh struct so the caller sees the stored row:
		// on the conflict path the insert candidate's id is meaningless.
		var stored Rating
		if err := tx.Where("villain_id = ? AND rater = ?", villainID, rater).First(&stored).Error; err != nil {
			return fmt.Errorf("read rating: %w", err)
		}
		*rating = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

// Aggregate summarizes the ratings of one villain. Count zero is the
// defined "no ratings yet" state; Average is held at zero then and must
// not be read as a score.
type Aggregate struct {
	VillainID uint    `json:"villainId"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

// HasRatings reports whether Average carries a real mean.
func (a Aggregate) HasRatings() bool {
	return a.Count > 0
}

// AggregateScore computes the mean score of a villain in the store, never
// in application code, so it stays correct under concurrent raters.
func (r *Registry) AggregateScore(villainID uint) (Aggregate, error) {
	agg := Aggregate{VillainID: villainID}
	var count int64
	if err := r.db.Model(&Villain{}).Where("id = ?", villainID).Count(&count).Error; err != nil {
		return agg, fmt.Errorf("aggregate score: %w", err)
	}
	if count == 0 {
		return agg, ErrNotFound
	}
	var row struct {
		Average sql.NullFloat64
		Total   int64
	}
	err := r.db.Model(&Rating{}).
		Where("villain_id = ?", villainID).
		Select("AVG(score) AS average, COUNT(*) AS total").
		Scan(&row).Error
	if err != nil {
		return agg, fmt.Errorf("aggregate score: %w", err)
	}
	agg.Average = row.Average.Float64
	agg.Count = row.Total
	return agg, nil
}

// Standing is one gallery row: a villain plus its current aggregate.
type Standing struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	FrameType   string          `json:"frameType"`
	Average     sql.NullFloat64 `json:"-"`
	RatingCount int64           `json:"count"`
}

// Standings lists every villain with its mean score, most hated first.
// Villains without ratings sort last, then alphabetically.
func (r *Registry) Standings() ([]Standing, error) {
	var rows []Standing
	err := r.db.Model(&Villain{}).
		Select("hall_of_hate_v2.id, hall_of_hate_v2.name, hall_of_hate_v2.image, hall_of_hate_v2.frame_type, AVG(hall_of_hate_v2_ratings.score) AS average, COUNT(hall_of_hate_v2_ratings.id) AS rating_count").
		Joins("LEFT JOIN hall_of_hate_v2_ratings ON hall_of_hate_v2_ratings.villain_id = hall_of_hate_v2.id").
		Group("hall_of_hate_v2.id, hall_of_hate_v2.name, hall_of_hate_v2.image, hall_of_hate_v2.frame_type").
		Order("COUNT(hall_of_hate_v2_ratings.id) = 0, AVG(hall_of_hate_v2_ratings.score) DESC, hall_of_hate_v2.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}
	return rows, nil
}

func nameTaken(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	q := tx.Model(&Villain{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check name: %w", err)
	}
	return count > 0, nil
}
