package villain

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "hof.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func mustCreate(t *testing.T, r *Registry, name string) *Villain {
	t.Helper()
	v, err := r.Create(name, name+".png", "")
	require.NoError(t, err)
	return v
}

func TestCreateVillain(t *testing.T) {
	r := NewRegistry(newTestDB(t))

	t.Run("assigns id and default frame", func(t *testing.T) {
		v, err := r.Create("Scar", "scar.png", "")
		require.NoError(t, err)
		assert.NotZero(t, v.ID)
		assert.Equal(t, "default", v.FrameType)
		assert.False(t, v.CreatedAt.IsZero())
	})

	t.Run("keeps an explicit frame", func(t *testing.T) {
		v, err := r.Create("Hans Gruber", "hans.png", "gold")
		require.NoError(t, err)
		assert.Equal(t, "gold", v.FrameType)
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		_, err := r.Create("Scar", "other.png", "")
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("name match is case sensitive", func(t *testing.T) {
		_, err := r.Create("scar", "lower.png", "")
		assert.NoError(t, err)
	})
}

func TestUpdateVillain(t *testing.T) {
	r := NewRegistry(newTestDB(t))
	scar := mustCreate(t, r, "Scar")
	mustCreate(t, r, "Mojo Jojo")

	t.Run("replaces fields and keeps ratings", func(t *testing.T) {
		_, err := r.Rate(scar.ID, "javi", 80)
		require.NoError(t, err)

		updated, err := r.Update(scar.ID, "Scar the First", "scar-v2.png", "inferno")
		require.NoError(t, err)
		assert.Equal(t, "Scar the First", updated.Name)
		assert.Equal(t, "scar-v2.png", updated.Image)
		assert.Equal(t, "inferno", updated.FrameType)

		agg, err := r.AggregateScore(scar.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, agg.Count)
	})

	t.Run("renaming onto a taken name fails", func(t *testing.T) {
		_, err := r.Update(scar.ID, "Mojo Jojo", "scar.png", "")
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("keeping the own name is not a collision", func(t *testing.T) {
		_, err := r.Update(scar.ID, "Scar the First", "scar-v3.png", "")
		assert.NoError(t, err)
	})

	t.Run("unknown villain", func(t *testing.T) {
		_, err := r.Update(9999, "Nobody", "no.png", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRateVillain(t *testing.T) {
	db := newTestDB(t)
	r := NewRegistry(db)
	scar := mustCreate(t, r, "Scar")

	t.Run("stores a score inside the scale", func(t *testing.T) {
		rating, err := r.Rate(scar.ID, "javi", 85)
		require.NoError(t, err)
		assert.Equal(t, 85, rating.Score)
		assert.NotZero(t, rating.ID)
	})

	t.Run("rejects scores outside the scale", func(t *testing.T) {
		for _, score := range []int{0, -5, 100, 1000} {
			_, err := r.Rate(scar.ID, "dani", score)
			assert.ErrorIs(t, err, ErrInvalidScore)
		}
		var count int64
		require.NoError(t, db.Model(&Rating{}).Where("rater = ?", "dani").Count(&count).Error)
		assert.Zero(t, count, "a rejected rating must not persist")
	})

	t.Run("accepts the scale bounds", func(t *testing.T) {
		_, err := r.Rate(scar.ID, "min", MinScore)
		assert.NoError(t, err)
		_, err = r.Rate(scar.ID, "max", MaxScore)
		assert.NoError(t, err)
	})

	t.Run("second rating by the same rater overwrites", func(t *testing.T) {
		first, err := r.Rate(scar.ID, "javi", 42)
		require.NoError(t, err)

		// The store keeps second-resolution timestamps.
		time.Sleep(1100 * time.Millisecond)

		second, err := r.Rate(scar.ID, "javi", 60)
		require.NoError(t, err)
		assert.Equal(t, 60, second.Score)
		assert.Equal(t, first.ID, second.ID, "overwrite keeps the row")
		assert.True(t, second.CreatedAt.After(first.CreatedAt),
			"overwrite refreshes the timestamp")

		var count int64
		require.NoError(t, db.Model(&Rating{}).
			Where("villain_id = ? AND rater = ?", scar.ID, "javi").
			Count(&count).Error)
		assert.EqualValues(t, 1, count, "one row per (villain, rater)")
	})

	t.Run("same rater may rate different villains", func(t *testing.T) {
		hans := mustCreate(t, r, "Hans Gruber")
		_, err := r.Rate(hans.ID, "javi", 60)
		assert.NoError(t, err)
	})

	t.Run("unknown villain", func(t *testing.T) {
		_, err := r.Rate(9999, "javi", 50)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAggregateScore(t *testing.T) {
	r := NewRegistry(newTestDB(t))
	scar := mustCreate(t, r, "Scar")

	t.Run("no ratings yet", func(t *testing.T) {
		agg, err := r.AggregateScore(scar.ID)
		require.NoError(t, err)
		assert.False(t, agg.HasRatings())
		assert.Zero(t, agg.Count)
	})

	t.Run("mean of all ratings", func(t *testing.T) {
		for rater, score := range map[string]int{"a": 10, "b": 20, "c": 30} {
			_, err := r.Rate(scar.ID, rater, score)
			require.NoError(t, err)
		}
		agg, err := r.AggregateScore(scar.ID)
		require.NoError(t, err)
		assert.True(t, agg.HasRatings())
		assert.EqualValues(t, 3, agg.Count)
		assert.InDelta(t, 20.0, agg.Average, 1e-9)
	})

	t.Run("overwrite moves the mean", func(t *testing.T) {
		_, err := r.Rate(scar.ID, "a", 40)
		require.NoError(t, err)
		agg, err := r.AggregateScore(scar.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 3, agg.Count)
		assert.InDelta(t, 30.0, agg.Average, 1e-9)
	})

	t.Run("unknown villain", func(t *testing.T) {
		_, err := r.AggregateScore(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteVillain(t *testing.T) {
	db := newTestDB(t)
	r := NewRegistry(db)

	t.Run("removes the villain and its ratings", func(t *testing.T) {
		scar := mustCreate(t, r, "Scar")
		for rater, score := range map[string]int{"a": 10, "b": 90} {
			_, err := r.Rate(scar.ID, rater, score)
			require.NoError(t, err)
		}

		require.NoError(t, r.Delete(scar.ID))

		_, err := r.Get(scar.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		var orphans int64
		require.NoError(t, db.Model(&Rating{}).Where("villain_id = ?", scar.ID).Count(&orphans).Error)
		assert.Zero(t, orphans, "ratings must go down with their villain")
	})

	t.Run("leaves other villains alone", func(t *testing.T) {
		hans := mustCreate(t, r, "Hans Gruber")
		_, err := r.Rate(hans.ID, "javi", 70)
		require.NoError(t, err)

		doomed := mustCreate(t, r, "Doomed")
		require.NoError(t, r.Delete(doomed.ID))

		agg, err := r.AggregateScore(hans.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, agg.Count)
	})

	t.Run("unknown villain", func(t *testing.T) {
		assert.ErrorIs(t, r.Delete(9999), ErrNotFound)
	})
}

func TestStandings(t *testing.T) {
	r := NewRegistry(newTestDB(t))

	mild := mustCreate(t, r, "Mild Mannered")
	worst := mustCreate(t, r, "The Worst")
	mustCreate(t, r, "Unrated B")
	mustCreate(t, r, "Unrated A")

	_, err := r.Rate(worst.ID, "a", 95)
	require.NoError(t, err)
	_, err = r.Rate(worst.ID, "b", 85)
	require.NoError(t, err)
	_, err = r.Rate(mild.ID, "a", 30)
	require.NoError(t, err)

	standings, err := r.Standings()
	require.NoError(t, err)
	require.Len(t, standings, 4)

	assert.Equal(t, "The Worst", standings[0].Name)
	assert.InDelta(t, 90.0, standings[0].Average.Float64, 1e-9)
	assert.EqualValues(t, 2, standings[0].RatingCount)

	assert.Equal(t, "Mild Mannered", standings[1].Name)

	// Unrated villains close the list in name order.
	assert.Equal(t, "Unrated A", standings[2].Name)
	assert.False(t, standings[2].Average.Valid)
	assert.Equal(t, "Unrated B", standings[3].Name)
}
