package wager

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "apuestas.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewRepository(db)
}

func seedWager(t *testing.T, repo *Repository, description string) *Wager {
	t.Helper()
	w := &Wager{
		Description: description,
		Category:    "football",
		Kind:        "season",
		Multiplier:  2,
		Bettor1:     "javi",
		Bettor2:     "dani",
		Stake1:      "a dinner",
		Stake2:      "a dinner",
	}
	require.NoError(t, repo.Create(w))
	return w
}

func TestWagerCRUD(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("create assigns an id", func(t *testing.T) {
		w := seedWager(t, repo, "Madrid wins the league")
		assert.NotZero(t, w.ID)
		assert.False(t, w.CreatedAt.IsZero())
	})

	t.Run("get returns the stored wager", func(t *testing.T) {
		w := seedWager(t, repo, "Relegation bet")
		got, err := repo.Get(w.ID)
		require.NoError(t, err)
		assert.Equal(t, "Relegation bet", got.Description)
		assert.Equal(t, "javi", got.Bettor1)
	})

	t.Run("get unknown wager", func(t *testing.T) {
		_, err := repo.Get(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		repo := newTestRepo(t)
		first := seedWager(t, repo, "first")
		second := seedWager(t, repo, "second")

		wagers, err := repo.List()
		require.NoError(t, err)
		require.Len(t, wagers, 2)
		assert.Equal(t, second.ID, wagers[0].ID)
		assert.Equal(t, first.ID, wagers[1].ID)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		w := seedWager(t, repo, "short lived")
		require.NoError(t, repo.Delete(w.ID))
		_, err := repo.Get(w.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete unknown wager", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(9999), ErrNotFound)
	})
}

func TestWagerUpdate(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("replaces the terms", func(t *testing.T) {
		w := seedWager(t, repo, "Madrid wins the league")

		upd := *w
		upd.Winner = "javi"
		upd.Loser = "dani"
		got, err := repo.Update(w.ID, &upd)
		require.NoError(t, err)
		assert.Equal(t, "javi", got.Winner)
		assert.Equal(t, "dani", got.Loser)
	})

	t.Run("locking freezes later edits", func(t *testing.T) {
		w := seedWager(t, repo, "Cup final bet")

		locked := *w
		locked.Locked = true
		_, err := repo.Update(w.ID, &locked)
		require.NoError(t, err)

		again := *w
		again.Description = "rewritten terms"
		_, err = repo.Update(w.ID, &again)
		assert.ErrorIs(t, err, ErrLocked)

		got, err := repo.Get(w.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cup final bet", got.Description)
		assert.True(t, got.Locked)
	})

	t.Run("a locked wager can still be deleted", func(t *testing.T) {
		w := seedWager(t, repo, "settled and archived")
		locked := *w
		locked.Locked = true
		_, err := repo.Update(w.ID, &locked)
		require.NoError(t, err)

		assert.NoError(t, repo.Delete(w.ID))
	})

	t.Run("unknown wager", func(t *testing.T) {
		_, err := repo.Update(9999, &Wager{Description: "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
