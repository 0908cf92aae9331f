package wager

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository owns the apuestas table.
type Repository struct {
	db *gorm.DB
}

// NewRepository wraps the given database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new wager.
func (r *Repository) Create(w *Wager) error {
	if err := r.db.Create(w).Error; err != nil {
		return fmt.Errorf("create wager: %w", err)
	}
	return nil
}

// Get returns one wager by id.
func (r *Repository) Get(id uint) (*Wager, error) {
	var w Wager
	if err := r.db.First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get wager: %w", err)
	}
	return &w, nil
}

// List returns every wager, newest first.
func (r *Repository) List() ([]Wager, error) {
	var wagers []Wager
	if err := r.db.Order("created_at DESC, id DESC").Find(&wagers).Error; err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}
	return wagers, nil
}

// Update replaces the editable fields of a wager. A wager that was
// already locked rejects the edit; locking happens through this same
// path by submitting locked=true.
func (r *Repository) Update(id uint, upd *Wager) (*Wager, error) {
	var w Wager
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&w, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if w.Locked {
			return ErrLocked
		}
		w.Description = upd.Description
		w.Category = upd.Category
		w.Kind = upd.Kind
		w.Multiplier = upd.Multiplier
		w.Bettor1, w.Bettor2, w.Bettor3 = upd.Bettor1, upd.Bettor2, upd.Bettor3
		w.Stake1, w.Stake2, w.Stake3 = upd.Stake1, upd.Stake2, upd.Stake3
		w.Winner = upd.Winner
		w.Loser = upd.Loser
		w.Locked = upd.Locked
		if err := tx.Save(&w).Error; err != nil {
			return fmt.Errorf("update wager: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Delete removes a wager. Locked wagers may be deleted; the lock guards
// the terms, not the row.
func (r *Repository) Delete(id uint) error {
	res := r.db.Delete(&Wager{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete wager: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
